package wallet

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/GlebRadaev/fundtracker/internal/dto"
	"github.com/GlebRadaev/fundtracker/internal/handlers/apierr"
	"github.com/GlebRadaev/fundtracker/internal/wallet"
	"github.com/GlebRadaev/fundtracker/pkg/utils"
)

type Adapter interface {
	Status(ctx context.Context, expected *big.Int) wallet.Status
	Connect(ctx context.Context) (common.Address, error)
	EnsureNetwork(ctx context.Context, expected *big.Int) error
}

type SwitchNetworkRequestDTO struct {
	ChainID uint64 `json:"chain_id,omitempty" example:"11155111"`
}

type WalletHandler struct {
	adapter  Adapter
	expected *big.Int
}

func New(adapter Adapter, expected *big.Int) *WalletHandler {
	return &WalletHandler{
		adapter:  adapter,
		expected: expected,
	}
}

// GetStatus godoc
//
//	@Summary		Wallet status
//	@Description	Whether a wallet provider is configured, the connected account and whether it is on the expected network.
//	@Tags			Wallet
//	@Produce		json
//	@Success		200	{object}	dto.WalletStatusDTO
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWalletStatus(h.adapter.Status(r.Context(), h.expected)))
}

// Connect godoc
//
//	@Summary		Connect wallet
//	@Description	Requests account access from the wallet provider.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletStatusDTO
//	@Failure		403	{object}	utils.Response	"Rejected in wallet"
//	@Failure		503	{object}	utils.Response	"No wallet provider"
//	@Router			/api/wallet/connect [post]
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if _, err := h.adapter.Connect(r.Context()); err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWalletStatus(h.adapter.Status(r.Context(), h.expected)))
}

// SwitchNetwork godoc
//
//	@Summary		Switch wallet network
//	@Description	Asks the wallet to switch to chain_id (the expected chain when omitted), registering the chain first when the wallet does not know it.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SwitchNetworkRequestDTO	false	"Target chain"
//	@Success		200		{object}	dto.WalletStatusDTO
//	@Failure		403		{object}	utils.Response	"Rejected in wallet"
//	@Failure		409		{object}	utils.Response	"Unknown network"
//	@Failure		503		{object}	utils.Response	"No wallet provider"
//	@Router			/api/wallet/network [post]
func (h *WalletHandler) SwitchNetwork(w http.ResponseWriter, r *http.Request) {
	var req SwitchNetworkRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	target := h.expected
	if req.ChainID != 0 {
		target = new(big.Int).SetUint64(req.ChainID)
	}
	if err := h.adapter.EnsureNetwork(r.Context(), target); err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWalletStatus(h.adapter.Status(r.Context(), h.expected)))
}
