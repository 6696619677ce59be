package dto

import (
	"time"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

type ChallengeRequestDTO struct {
	Address string `json:"address" example:"0x742d35Cc6634C0532925a3b844Bc9e7595f1bEb5"`
}

type ChallengeResponseDTO struct {
	Message string `json:"message" example:"Sign in to fundtracker\nAddress: 0x742d35cc6634c0532925a3b844bc9e7595f1beb5\nNonce: 3f0c2a9e-7b1d-4c55-9a61-0f4d2b8e6c11"`
}

type LoginRequestDTO struct {
	Address   string `json:"address" example:"0x742d35Cc6634C0532925a3b844Bc9e7595f1bEb5"`
	Message   string `json:"message" example:"Sign in to fundtracker\nAddress: 0x742d35cc6634c0532925a3b844bc9e7595f1beb5\nNonce: 3f0c2a9e-7b1d-4c55-9a61-0f4d2b8e6c11"`
	Signature string `json:"signature" example:"0x5f1c...1b"`
}

type LoginResponseDTO struct {
	Token   string             `json:"token"`
	Profile ProfileResponseDTO `json:"profile"`
}

type ProfileResponseDTO struct {
	WalletAddress string    `json:"wallet_address" example:"0x742d35cc6634c0532925a3b844bc9e7595f1beb5"`
	Role          string    `json:"role" example:"viewer"`
	CreatedAt     time.Time `json:"created_at"`
	LastLogin     time.Time `json:"last_login"`
}

type UpdateRoleRequestDTO struct {
	Role string `json:"role" example:"admin"`
}

func FromProfile(p *domain.UserProfile) ProfileResponseDTO {
	return ProfileResponseDTO{
		WalletAddress: p.WalletAddress,
		Role:          p.Role,
		CreatedAt:     p.CreatedAt,
		LastLogin:     p.LastLogin,
	}
}
