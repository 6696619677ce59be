// Package apierr maps domain errors to HTTP responses.
package apierr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/pkg/utils"
)

// Status returns the HTTP status and a message the client can act on.
func Status(err error) (int, string) {
	var revert *domain.RevertError
	switch {
	case errors.As(err, &revert):
		return http.StatusUnprocessableEntity, revert.Error()
	case errors.Is(err, domain.ErrProviderMissing):
		return http.StatusServiceUnavailable, "No wallet provider is configured. Install or configure a wallet and try again."
	case errors.Is(err, domain.ErrWalletNotConnected):
		return http.StatusConflict, "Wallet is not connected. Connect the wallet first."
	case errors.Is(err, domain.ErrUserRejected):
		return http.StatusForbidden, "The request was rejected in the wallet. Retry and approve it."
	case errors.Is(err, domain.ErrWrongNetwork):
		return http.StatusConflict, "Wallet is on the wrong network. Switch to the expected network and retry."
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable, "Ledger is unavailable. Try again later."
	case errors.Is(err, domain.ErrProviderFailure):
		return http.StatusBadGateway, "Wallet provider failed to process the request."
	case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrProjectInactive):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Off-chain store is unavailable."
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func Respond(w http.ResponseWriter, err error) {
	status, message := Status(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}
	utils.RespondWithError(w, status, message)
}
