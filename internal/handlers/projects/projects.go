package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/dto"
	"github.com/GlebRadaev/fundtracker/internal/handlers/apierr"
	"github.com/GlebRadaev/fundtracker/pkg/auth"
	"github.com/GlebRadaev/fundtracker/pkg/utils"
)

type Service interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Project(ctx context.Context, id uint64) (*domain.ProjectDetails, error)
	CreateProject(ctx context.Context, actor string, input domain.CreateProjectInput) (*domain.WriteResult, error)
	SpendFunds(ctx context.Context, actor string, input domain.SpendInput) (*domain.WriteResult, error)
	SetProjectStatus(ctx context.Context, id uint64, status domain.ProjectStatus) (*domain.WriteResult, error)
	AddApprover(ctx context.Context, id uint64, approver string) (*domain.WriteResult, error)
	AddAdmin(ctx context.Context, admin string) (*domain.WriteResult, error)
	AddGovernmentOfficial(ctx context.Context, official string) (*domain.WriteResult, error)
	Decimals() int32
}

type ProjectsHandler struct {
	projectService Service
}

func New(projectService Service) *ProjectsHandler {
	return &ProjectsHandler{
		projectService: projectService,
	}
}

// GetDashboard godoc
//
//	@Summary		Dashboard
//	@Description	All ledger projects enriched with off-chain names, plus aggregate totals. Falls back to sample data flagged demo when the ledger is unreachable and demo mode is on.
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		503	{object}	utils.Response	"Ledger unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/projects [get]
func (h *ProjectsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.projectService.Dashboard(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromDashboard(dashboard, h.projectService.Decimals()))
}

// GetProject godoc
//
//	@Summary		Project details
//	@Description	One project with its on-chain spending records joined to off-chain descriptions.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		int	true	"Project id"
//	@Success		200	{object}	dto.ProjectDetailsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid project id"
//	@Failure		404	{object}	utils.Response	"Project not found"
//	@Failure		503	{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/projects/{id} [get]
func (h *ProjectsHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	details, err := h.projectService.Project(r.Context(), id)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProjectDetails(details, h.projectService.Decimals()))
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Allocates funds to a new project on the ledger, then stores its name and description off-chain. A failed off-chain write still returns 200 with status partial.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProjectRequestDTO	true	"Project"
//	@Success		200		{object}	dto.WriteResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Rejected in wallet"
//	@Failure		409		{object}	utils.Response	"Wrong network"
//	@Failure		422		{object}	utils.Response	"Ledger reverted"
//	@Failure		503		{object}	utils.Response	"Wallet or ledger unavailable"
//	@Router			/api/projects [post]
func (h *ProjectsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.projectService.CreateProject(r.Context(), auth.AddressFromContext(r.Context()), domain.CreateProjectInput{
		Name:            req.Name,
		Description:     req.Description,
		AllocatedAmount: req.AllocatedAmount,
		ProjectOwner:    req.ProjectOwner,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWriteResult(result))
}

// SpendFunds godoc
//
//	@Summary		Record spending
//	@Description	Spends from a project's remaining funds on the ledger, then stores the description off-chain.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Project id"
//	@Param			request	body		dto.SpendRequestDTO		true	"Spending"
//	@Success		200		{object}	dto.WriteResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Project not found"
//	@Failure		422		{object}	utils.Response	"Insufficient funds, inactive project or ledger revert"
//	@Router			/api/projects/{id}/spend [post]
func (h *ProjectsHandler) SpendFunds(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	var req dto.SpendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.projectService.SpendFunds(r.Context(), auth.AddressFromContext(r.Context()), domain.SpendInput{
		ProjectID:   id,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWriteResult(result))
}

// SetStatus godoc
//
//	@Summary		Change project status
//	@Description	Any status other than active deactivates the project on the ledger.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Project id"
//	@Param			request	body		dto.StatusRequestDTO	true	"active, paused, completed or cancelled"
//	@Success		200		{object}	dto.WriteResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		422		{object}	utils.Response	"Ledger reverted"
//	@Router			/api/projects/{id}/status [put]
func (h *ProjectsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	var req dto.StatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status, ok := domain.ParseProjectStatus(req.Status)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Unknown status %q", req.Status))
		return
	}
	result, err := h.projectService.SetProjectStatus(r.Context(), id, status)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWriteResult(result))
}

// AddApprover godoc
//
//	@Summary		Add approver
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Project id"
//	@Param			request	body		dto.AddressRequestDTO	true	"Approver address"
//	@Success		200		{object}	dto.WriteResultDTO
//	@Failure		400		{object}	utils.Response	"Invalid address"
//	@Failure		422		{object}	utils.Response	"Ledger reverted"
//	@Router			/api/projects/{id}/approvers [post]
func (h *ProjectsHandler) AddApprover(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}
	var req dto.AddressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.projectService.AddApprover(r.Context(), id, req.Address)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWriteResult(result))
}

// AddAdmin godoc
//
//	@Summary		Grant ledger admin
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddressRequestDTO	true	"Admin address"
//	@Success		200		{object}	dto.WriteResultDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Ledger reverted"
//	@Router			/api/admins [post]
func (h *ProjectsHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	h.grant(w, r, h.projectService.AddAdmin)
}

// AddOfficial godoc
//
//	@Summary		Grant government official
//	@Description	Officials may create projects on the ledger.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddressRequestDTO	true	"Official address"
//	@Success		200		{object}	dto.WriteResultDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Ledger reverted"
//	@Router			/api/officials [post]
func (h *ProjectsHandler) AddOfficial(w http.ResponseWriter, r *http.Request) {
	h.grant(w, r, h.projectService.AddGovernmentOfficial)
}

func (h *ProjectsHandler) grant(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (*domain.WriteResult, error)) {
	var req dto.AddressRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := fn(r.Context(), req.Address)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromWriteResult(result))
}

func projectID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid project id")
		return 0, false
	}
	return id, true
}
