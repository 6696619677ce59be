package operations

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/dto"
	"github.com/GlebRadaev/fundtracker/internal/handlers/apierr"
	"github.com/GlebRadaev/fundtracker/internal/reconcile"
	"github.com/GlebRadaev/fundtracker/pkg/utils"
)

type Service interface {
	Operations(ctx context.Context, status domain.OperationStatus) ([]domain.Operation, error)
}

type Reconciler interface {
	Run(ctx context.Context) (*reconcile.Report, error)
}

type OperationsHandler struct {
	service    Service
	reconciler Reconciler
}

func New(service Service, reconciler Reconciler) *OperationsHandler {
	return &OperationsHandler{
		service:    service,
		reconciler: reconciler,
	}
}

// List godoc
//
//	@Summary		Journaled writes
//	@Description	Dual writes recorded in the local journal, optionally filtered by status.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"pending, committed, partial or failed"
//	@Success		200		{array}		dto.OperationDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Router			/api/operations [get]
func (h *OperationsHandler) List(w http.ResponseWriter, r *http.Request) {
	ops, err := h.service.Operations(r.Context(), domain.OperationStatus(r.URL.Query().Get("status")))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromOperations(ops))
}

// Reconcile godoc
//
//	@Summary		Replay partial writes
//	@Description	Retries the off-chain half of every partial operation. Operations that still fail stay partial.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReconcileResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		503	{object}	utils.Response	"Off-chain store unavailable"
//	@Router			/api/operations/reconcile [post]
func (h *OperationsHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciler.Run(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReconcileResponseDTO{
		Replayed: report.Replayed,
		Failed:   report.Failed,
		Errors:   report.Errors,
	})
}
