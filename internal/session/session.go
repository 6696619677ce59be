package session

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/ledger"
	"github.com/GlebRadaev/fundtracker/internal/wallet"
)

// Dialer binds a ledger client for the current chain. Clients that hold a
// connection should implement Close; the session closes them when the
// binding is dropped.
type Dialer func(ctx context.Context) (ledger.Client, error)

type closer interface {
	Close()
}

// Session owns the wallet adapter and the chain-specific ledger binding.
// A chain change drops the binding and advances the epoch; reads that span
// an epoch change are reported as stale.
type Session struct {
	adapter  *wallet.Adapter
	dial     Dialer
	expected *big.Int

	mu     sync.Mutex
	client ledger.Client
	epoch  uint64
}

func New(adapter *wallet.Adapter, dial Dialer, expected *big.Int) *Session {
	return &Session{
		adapter:  adapter,
		dial:     dial,
		expected: new(big.Int).Set(expected),
	}
}

func (s *Session) Adapter() *wallet.Adapter {
	return s.adapter
}

func (s *Session) ExpectedChainID() *big.Int {
	return new(big.Int).Set(s.expected)
}

func (s *Session) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// Invalidate drops and closes the current binding. The next call binds again.
func (s *Session) Invalidate() {
	s.mu.Lock()
	dropped := s.client
	s.client = nil
	s.epoch++
	epoch := s.epoch
	s.mu.Unlock()

	release(dropped)
	zap.L().Info("ledger binding dropped", zap.Uint64("epoch", epoch))
}

// Close releases the current binding without advancing the epoch.
func (s *Session) Close() {
	s.mu.Lock()
	dropped := s.client
	s.client = nil
	s.mu.Unlock()

	release(dropped)
}

// Read runs fn against the bound ledger. If the chain changed while fn was
// running the result is discarded and ErrStaleChain returned.
func (s *Session) Read(ctx context.Context, fn func(ledger.Client) error) error {
	client, epoch, err := s.bind(ctx)
	if err != nil {
		return err
	}
	err = fn(client)
	if s.Epoch() != epoch {
		zap.L().Warn("discarding read across chain change", zap.Error(err))
		return domain.ErrStaleChain
	}
	return err
}

// Write makes sure the wallet is on the expected chain, obtains a signer and
// runs fn with it.
func (s *Session) Write(ctx context.Context, fn func(ledger.Client, *bind.TransactOpts) error) error {
	if err := s.adapter.EnsureNetwork(ctx, s.expected); err != nil {
		return err
	}
	opts, err := s.adapter.Signer(ctx)
	if err != nil {
		return err
	}
	client, _, err := s.bind(ctx)
	if err != nil {
		return err
	}
	return fn(client, opts)
}

// Run listens for wallet chain changes until ctx is done.
func (s *Session) Run(ctx context.Context) {
	events := make(chan wallet.Event, 16)
	sub := s.adapter.Subscribe(events)
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping session listener")
			return
		case err := <-sub.Err():
			if err != nil {
				zap.L().Error("wallet subscription failed", zap.Error(err))
			}
			return
		case ev := <-events:
			if ev.Kind == wallet.ChainChanged {
				zap.L().Info("wallet switched chain", zap.Stringer("chainID", ev.ChainID))
				s.Invalidate()
			}
		}
	}
}

func (s *Session) bind(ctx context.Context) (ledger.Client, uint64, error) {
	s.mu.Lock()
	if s.client != nil {
		client, epoch := s.client, s.epoch
		s.mu.Unlock()
		return client, epoch, nil
	}
	epoch := s.epoch
	s.mu.Unlock()

	client, err := s.dial(ctx)
	if err != nil {
		zap.L().Error("can't bind ledger", zap.Error(err))
		return nil, 0, err
	}

	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		release(client)
		return nil, 0, domain.ErrStaleChain
	}
	if s.client != nil {
		bound, epoch := s.client, s.epoch
		s.mu.Unlock()
		release(client)
		return bound, epoch, nil
	}
	s.client = client
	s.mu.Unlock()
	return client, epoch, nil
}

func release(client ledger.Client) {
	if c, ok := client.(closer); ok {
		c.Close()
	}
}
