package service

import (
	"github.com/GlebRadaev/fundtracker/internal/config"
	"github.com/GlebRadaev/fundtracker/internal/handlers/auth"
	"github.com/GlebRadaev/fundtracker/internal/handlers/operations"
	"github.com/GlebRadaev/fundtracker/internal/handlers/projects"
	"github.com/GlebRadaev/fundtracker/internal/reconcile"
	"github.com/GlebRadaev/fundtracker/internal/repo"
	authservice "github.com/GlebRadaev/fundtracker/internal/service/authservice"
	projectservice "github.com/GlebRadaev/fundtracker/internal/service/projectservice"

	pkgauth "github.com/GlebRadaev/fundtracker/pkg/auth"
)

type Services struct {
	AuthService      auth.Service
	ProjectService   projects.Service
	OperationService operations.Service
	Reconciler       operations.Reconciler
}

func New(repos *repo.Repositories, ledger projectservice.Ledger, journal projectservice.Journal, jwtService pkgauth.JWTServiceInterface, cfg *config.Config) *Services {
	if repos == nil {
		repos = &repo.Repositories{}
	}
	projectService := projectservice.New(ledger, repos.MetadataRepo, repos.SpendingRepo, journal, cfg.TokenDecimals, cfg.DemoMode)
	authService := authservice.New(repos.ProfileRepo, jwtService, cfg.AdminAddresses)

	reconciler := reconcile.New(journal, repos.MetadataRepo, repos.SpendingRepo)

	return &Services{
		AuthService:      authService,
		ProjectService:   projectService,
		OperationService: projectService,
		Reconciler:       reconciler,
	}
}
