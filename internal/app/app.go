package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/config"
	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/handlers"
	"github.com/GlebRadaev/fundtracker/internal/journal"
	"github.com/GlebRadaev/fundtracker/internal/ledger"
	"github.com/GlebRadaev/fundtracker/internal/ledger/memledger"
	"github.com/GlebRadaev/fundtracker/internal/pg"
	"github.com/GlebRadaev/fundtracker/internal/repo"
	"github.com/GlebRadaev/fundtracker/internal/service"
	"github.com/GlebRadaev/fundtracker/internal/session"
	"github.com/GlebRadaev/fundtracker/internal/wallet"
	"github.com/GlebRadaev/fundtracker/pkg/auth"
	"github.com/GlebRadaev/fundtracker/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	adapter  *wallet.Adapter
	provider wallet.Provider
	session  *session.Session
	journal  *journal.Journal

	closers []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New(cfg *config.Config) *Application {
	if cfg == nil {
		cfg = config.New()
	}
	return &Application{
		cfg:   cfg,
		errCh: make(chan error),
	}
}

// Init wires every component without starting any background work.
// Commands that only need the services call Init and Close.
func (a *Application) Init(ctx context.Context) error {
	cfg := a.cfg

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.warnDefaultSecret()

	registry, err := wallet.LoadRegistry(cfg.ChainsFile)
	if err != nil {
		zap.L().Error("load chain registry failed: ", zap.Error(err))
		return fmt.Errorf("can't load chains: %w", err)
	}

	expected := new(big.Int).SetUint64(cfg.ChainID)
	provider, err := a.buildProvider(ctx, expected)
	if err != nil {
		zap.L().Error("wallet provider failed: ", zap.Error(err))
		return fmt.Errorf("can't build wallet provider: %w", err)
	}
	a.provider = provider
	a.adapter = wallet.NewAdapter(provider, registry)
	a.session = session.New(a.adapter, a.buildDialer(provider, expected), expected)
	a.closers = append(a.closers, a.session.Close)

	a.repo, err = a.buildRepositories(ctx)
	if err != nil {
		return err
	}

	a.journal, err = journal.Open(cfg.JournalPath)
	if err != nil {
		zap.L().Error("open journal failed: ", zap.Error(err))
		return fmt.Errorf("can't open journal: %w", err)
	}
	a.closers = append(a.closers, func() {
		if err := a.journal.Close(); err != nil {
			zap.L().Error("close journal failed", zap.Error(err))
		}
	})

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, a.session, a.journal, jwtService, cfg)
	a.api = handlers.New(a.srv, a.adapter, expected, jwtService)
	return nil
}

func (a *Application) warnDefaultSecret() {
	if a.cfg.UsesDefaultJWTSecret() {
		zap.L().Warn("JWT_SECRET is not set, bearer tokens are signed with the public default secret")
	}
}

func (a *Application) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}

	if _, ok := a.provider.(*wallet.KeyProvider); ok {
		if _, err := a.adapter.Connect(ctx); err != nil {
			zap.L().Warn("custodial wallet connect failed", zap.Error(err))
		}
	}

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWalletWatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) Services() *service.Services {
	return a.srv
}

func (a *Application) Config() *config.Config {
	return a.cfg
}

// Close releases the journal, the database pool and any open provider
// connections. It is safe to call more than once.
func (a *Application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *Application) buildProvider(ctx context.Context, chainID *big.Int) (wallet.Provider, error) {
	cfg := a.cfg
	switch {
	case cfg.WalletURL != "":
		p, err := wallet.DialRPCProvider(ctx, cfg.WalletURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, p.Close)
		zap.L().Info("using remote wallet", zap.String("url", cfg.WalletURL))
		return p, nil
	case cfg.WalletKey != "":
		p, err := wallet.KeyProviderFromHex(cfg.WalletKey, chainID)
		if err != nil {
			return nil, err
		}
		zap.L().Info("using custodial key", zap.Stringer("account", p.Address()))
		return p, nil
	case cfg.LedgerMode == config.LedgerModeMemory:
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		p := wallet.NewKeyProvider(key, chainID)
		zap.L().Info("using ephemeral key", zap.Stringer("account", p.Address()))
		return p, nil
	}
	zap.L().Warn("no wallet provider configured, writes are disabled")
	return nil, nil
}

func (a *Application) buildDialer(provider wallet.Provider, chainID *big.Int) session.Dialer {
	cfg := a.cfg
	if cfg.LedgerMode == config.LedgerModeMemory {
		mem := memledger.New(chainID, ledgerAdmin(provider, cfg.AdminAddresses))
		return func(context.Context) (ledger.Client, error) {
			return mem, nil
		}
	}
	if !cfg.LedgerEnabled() {
		zap.L().Warn("ledger is not configured")
		return func(context.Context) (ledger.Client, error) {
			return nil, domain.ErrLedgerUnavailable
		}
	}

	address := common.HexToAddress(cfg.ContractAddress)
	return func(ctx context.Context) (ledger.Client, error) {
		c, err := ledger.Dial(ctx, cfg.RPCURL, address)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// ledgerAdmin picks the deployer of the in-process ledger.
func ledgerAdmin(provider wallet.Provider, admins []string) common.Address {
	if kp, ok := provider.(*wallet.KeyProvider); ok {
		return kp.Address()
	}
	if len(admins) > 0 && common.IsHexAddress(admins[0]) {
		return common.HexToAddress(admins[0])
	}
	return common.Address{}
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	if !a.cfg.OffchainEnabled() {
		zap.L().Warn("off-chain store disabled, serving ledger data only")
		return &repo.Repositories{}, nil
	}
	pool, err := pg.Connect(ctx, a.cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	return repo.New(pg.New(pool)), nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startWalletWatcher(ctx context.Context) {
	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		a.adapter.Watch(ctx, a.cfg.WatchInterval)
	}()
	go func() {
		defer a.wg.Done()
		a.session.Run(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.Close()

	return appErr
}
