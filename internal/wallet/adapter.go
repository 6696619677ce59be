package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

type EventKind int

const (
	AccountsChanged EventKind = iota + 1
	ChainChanged
)

func (k EventKind) String() string {
	switch k {
	case AccountsChanged:
		return "accountsChanged"
	case ChainChanged:
		return "chainChanged"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind      EventKind
	Account   common.Address
	Connected bool
	ChainID   *big.Int
}

type Status struct {
	ProviderAvailable bool
	Connected         bool
	Account           common.Address
	ChainID           *big.Int
	ExpectedChainID   *big.Int
	CorrectNetwork    bool
	NetworkName       string
}

// Adapter keeps the connection state of a single wallet provider. A nil
// provider means no wallet is installed.
type Adapter struct {
	provider Provider
	registry *Registry
	feed     event.Feed

	mu        sync.RWMutex
	account   common.Address
	connected bool
	chainID   *big.Int
}

func NewAdapter(provider Provider, registry *Registry) *Adapter {
	return &Adapter{
		provider: provider,
		registry: registry,
	}
}

// Connect requests account access. On failure the account state is left
// untouched.
func (a *Adapter) Connect(ctx context.Context) (common.Address, error) {
	if a.provider == nil {
		return common.Address{}, domain.ErrProviderMissing
	}
	accounts, err := a.provider.RequestAccounts(ctx)
	if err != nil {
		zap.L().Warn("wallet connection failed", zap.Error(err))
		return common.Address{}, err
	}
	if len(accounts) == 0 {
		return common.Address{}, domain.ErrUserRejected
	}
	a.setAccount(accounts[0], true)

	if _, err := a.ChainID(ctx); err != nil {
		zap.L().Warn("can't read wallet chain id", zap.Error(err))
	}
	zap.L().Info("wallet connected", zap.String("account", accounts[0].Hex()))
	return accounts[0], nil
}

func (a *Adapter) CurrentAccount() (common.Address, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.account, a.connected
}

func (a *Adapter) ChainID(ctx context.Context) (*big.Int, error) {
	if a.provider == nil {
		return nil, domain.ErrProviderMissing
	}
	id, err := a.provider.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	a.setChain(id)
	return id, nil
}

// EnsureNetwork switches the wallet to expected if it is elsewhere. A chain
// unknown to the wallet is registered from the chain registry and the switch
// retried once.
func (a *Adapter) EnsureNetwork(ctx context.Context, expected *big.Int) error {
	current, err := a.ChainID(ctx)
	if err != nil {
		return err
	}
	if current.Cmp(expected) == 0 {
		return nil
	}

	zap.L().Info("switching wallet network", zap.Stringer("from", current), zap.Stringer("to", expected))
	err = a.provider.SwitchChain(ctx, expected)
	if errors.Is(err, ErrUnknownChain) {
		params, ok := a.registry.Lookup(expected.Uint64())
		if !ok {
			return fmt.Errorf("%w: chain %s is unknown to the wallet and to the chain registry", domain.ErrWrongNetwork, expected)
		}
		if err := a.provider.AddChain(ctx, params); err != nil {
			return networkError(err)
		}
		err = a.provider.SwitchChain(ctx, expected)
	}
	if err != nil {
		return networkError(err)
	}

	current, err = a.ChainID(ctx)
	if err != nil {
		return err
	}
	if current.Cmp(expected) != 0 {
		return fmt.Errorf("%w: wallet is on chain %s, expected %s", domain.ErrWrongNetwork, current, expected)
	}
	return nil
}

func networkError(err error) error {
	if errors.Is(err, domain.ErrUserRejected) || errors.Is(err, domain.ErrWrongNetwork) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrWrongNetwork, err)
}

// Signer returns transaction options that sign through the provider as the
// connected account.
func (a *Adapter) Signer(ctx context.Context) (*bind.TransactOpts, error) {
	if a.provider == nil {
		return nil, domain.ErrProviderMissing
	}
	account, ok := a.CurrentAccount()
	if !ok {
		return nil, domain.ErrWalletNotConnected
	}
	chainID, err := a.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	return &bind.TransactOpts{
		From:    account,
		Context: ctx,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != account {
				return nil, bind.ErrNotAuthorized
			}
			return a.provider.SignTx(ctx, addr, tx, chainID)
		},
	}, nil
}

// Subscribe delivers account and chain change events to ch until the
// subscription is unsubscribed. Subscribers must keep draining ch.
func (a *Adapter) Subscribe(ch chan<- Event) event.Subscription {
	return a.feed.Subscribe(ch)
}

// Refresh polls the provider and publishes whatever changed.
func (a *Adapter) Refresh(ctx context.Context) error {
	if a.provider == nil {
		return nil
	}
	accounts, err := a.provider.Accounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		a.setAccount(common.Address{}, false)
	} else {
		a.setAccount(accounts[0], true)
	}
	_, err = a.ChainID(ctx)
	return err
}

// Watch polls the provider every interval until ctx is done.
func (a *Adapter) Watch(ctx context.Context, interval time.Duration) {
	if a.provider == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping wallet watcher")
			return
		case <-ticker.C:
			if err := a.Refresh(ctx); err != nil && ctx.Err() == nil {
				zap.L().Warn("wallet refresh failed", zap.Error(err))
			}
		}
	}
}

func (a *Adapter) Status(ctx context.Context, expected *big.Int) Status {
	status := Status{
		ProviderAvailable: a.provider != nil,
		ExpectedChainID:   expected,
	}
	if a.provider == nil {
		return status
	}
	status.Account, status.Connected = a.CurrentAccount()

	chainID, err := a.ChainID(ctx)
	if err != nil {
		zap.L().Warn("can't read wallet chain id", zap.Error(err))
		return status
	}
	status.ChainID = chainID
	status.CorrectNetwork = chainID.Cmp(expected) == 0
	status.NetworkName = a.registry.Name(chainID.Uint64())
	return status
}

func (a *Adapter) setAccount(account common.Address, connected bool) {
	a.mu.Lock()
	changed := a.account != account || a.connected != connected
	a.account, a.connected = account, connected
	a.mu.Unlock()

	if changed {
		zap.L().Debug("wallet account changed", zap.String("account", account.Hex()), zap.Bool("connected", connected))
		a.feed.Send(Event{Kind: AccountsChanged, Account: account, Connected: connected})
	}
}

func (a *Adapter) setChain(chainID *big.Int) {
	a.mu.Lock()
	changed := a.chainID == nil || a.chainID.Cmp(chainID) != 0
	a.chainID = new(big.Int).Set(chainID)
	a.mu.Unlock()

	if changed {
		zap.L().Info("wallet chain changed", zap.Stringer("chainID", chainID))
		a.feed.Send(Event{Kind: ChainChanged, ChainID: new(big.Int).Set(chainID)})
	}
}
