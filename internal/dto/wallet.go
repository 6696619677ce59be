package dto

import "github.com/GlebRadaev/fundtracker/internal/wallet"

type WalletStatusDTO struct {
	ProviderAvailable bool   `json:"provider_available"`
	Connected         bool   `json:"connected"`
	Account           string `json:"account,omitempty"`
	ChainID           uint64 `json:"chain_id,omitempty" example:"11155111"`
	ExpectedChainID   uint64 `json:"expected_chain_id" example:"11155111"`
	CorrectNetwork    bool   `json:"correct_network"`
	NetworkName       string `json:"network_name,omitempty" example:"Sepolia"`
}

func FromWalletStatus(s wallet.Status) WalletStatusDTO {
	out := WalletStatusDTO{
		ProviderAvailable: s.ProviderAvailable,
		Connected:         s.Connected,
		CorrectNetwork:    s.CorrectNetwork,
		NetworkName:       s.NetworkName,
	}
	if s.Connected {
		out.Account = s.Account.Hex()
	}
	if s.ChainID != nil {
		out.ChainID = s.ChainID.Uint64()
	}
	if s.ExpectedChainID != nil {
		out.ExpectedChainID = s.ExpectedChainID.Uint64()
	}
	return out
}
