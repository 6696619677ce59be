package handlers

import (
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/fundtracker/docs"
	"github.com/GlebRadaev/fundtracker/internal/domain"
	authhandlers "github.com/GlebRadaev/fundtracker/internal/handlers/auth"
	operationshandlers "github.com/GlebRadaev/fundtracker/internal/handlers/operations"
	projectshandlers "github.com/GlebRadaev/fundtracker/internal/handlers/projects"
	wallethandlers "github.com/GlebRadaev/fundtracker/internal/handlers/wallet"
	"github.com/GlebRadaev/fundtracker/internal/service"
	"github.com/GlebRadaev/fundtracker/pkg/auth"
)

type AuthHandler interface {
	Challenge(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
}

type ProjectHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
	SpendFunds(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	AddApprover(w http.ResponseWriter, r *http.Request)
	AddAdmin(w http.ResponseWriter, r *http.Request)
	AddOfficial(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	Connect(w http.ResponseWriter, r *http.Request)
	SwitchNetwork(w http.ResponseWriter, r *http.Request)
}

type OperationsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	ProjectHandler    ProjectHandler
	WalletHandler     WalletHandler
	OperationsHandler OperationsHandler
	JWTService        auth.JWTServiceInterface
}

func New(s *service.Services, adapter wallethandlers.Adapter, expected *big.Int, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		ProjectHandler:    projectshandlers.New(s.ProjectService),
		WalletHandler:     wallethandlers.New(adapter, expected),
		OperationsHandler: operationshandlers.New(s.OperationService, s.Reconciler),
		JWTService:        jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.ProjectHandler.GetDashboard)
		r.Get("/projects/{id}", h.ProjectHandler.GetProject)
		r.Get("/wallet", h.WalletHandler.GetStatus)
		r.Post("/auth/challenge", h.AuthHandler.Challenge)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService))
			r.Get("/auth/profile", h.AuthHandler.Profile)
			r.Post("/wallet/connect", h.WalletHandler.Connect)
			r.Post("/wallet/network", h.WalletHandler.SwitchNetwork)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleOfficial, domain.RoleAdmin))
				r.Post("/projects", h.ProjectHandler.CreateProject)
				r.Post("/projects/{id}/spend", h.ProjectHandler.SpendFunds)
				r.Put("/projects/{id}/status", h.ProjectHandler.SetStatus)
				r.Post("/projects/{id}/approvers", h.ProjectHandler.AddApprover)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))
				r.Post("/admins", h.ProjectHandler.AddAdmin)
				r.Post("/officials", h.ProjectHandler.AddOfficial)
				r.Get("/operations", h.OperationsHandler.List)
				r.Post("/operations/reconcile", h.OperationsHandler.Reconcile)
				r.Put("/users/{address}/role", h.AuthHandler.UpdateRole)
			})
		})
	})

	return r
}
