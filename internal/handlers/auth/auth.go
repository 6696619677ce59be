package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/dto"
	"github.com/GlebRadaev/fundtracker/internal/handlers/apierr"
	pkgauth "github.com/GlebRadaev/fundtracker/pkg/auth"
	"github.com/GlebRadaev/fundtracker/pkg/utils"
)

type Service interface {
	Challenge(address string) (string, error)
	Login(ctx context.Context, address, message, signature string) (*domain.UserProfile, error)
	GenerateToken(profile *domain.UserProfile) (string, error)
	Profile(ctx context.Context, address string) (*domain.UserProfile, error)
	UpdateRole(ctx context.Context, address, role string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Challenge godoc
//
//	@Summary		Request a login challenge
//	@Description	Returns a message with a single-use nonce. Sign it with personal_sign and post it to /api/auth/login within five minutes.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChallengeRequestDTO	true	"Wallet address"
//	@Success		200		{object}	dto.ChallengeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid address"
//	@Router			/api/auth/challenge [post]
func (h *AuthHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	var req dto.ChallengeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	message, err := h.authService.Challenge(req.Address)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ChallengeResponseDTO{Message: message})
}

// Login godoc
//
//	@Summary		Log in with a wallet signature
//	@Description	Verifies a personal_sign signature of a challenge message by address, creates a viewer profile on first login and returns a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Signed challenge message"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Signature does not match or challenge is unknown"
//	@Failure		503		{object}	utils.Response	"Off-chain store unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile, err := h.authService.Login(r.Context(), req.Address, req.Message, req.Signature)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	token, err := h.authService.GenerateToken(profile)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:   token,
		Profile: dto.FromProfile(profile),
	})
}

// Profile godoc
//
//	@Summary		Current user profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Router			/api/auth/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.authService.Profile(r.Context(), pkgauth.AddressFromContext(r.Context()))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(profile))
}

// UpdateRole godoc
//
//	@Summary		Change a user's role
//	@Description	The new role applies from the user's next login.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string						true	"Wallet address"
//	@Param			request	body		dto.UpdateRoleRequestDTO	true	"government_official, admin or viewer"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid role"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/users/{address}/role [put]
func (h *AuthHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.authService.UpdateRole(r.Context(), chi.URLParam(r, "address"), req.Role); err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "role updated"})
}
