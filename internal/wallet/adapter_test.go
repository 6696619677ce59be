package wallet

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

var (
	sepolia = big.NewInt(11155111)
	mainnet = big.NewInt(1)
	account = common.HexToAddress("0x742d35Cc6634C0532925a3b844Bc9e7595f1bEb5")
)

func NewMock(t *testing.T) (*Adapter, *MockProvider) {
	ctrl := gomock.NewController(t)
	provider := NewMockProvider(ctrl)
	registry, err := LoadRegistry("")
	require.NoError(t, err)
	return NewAdapter(provider, registry), provider
}

func drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case ev := <-ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestConnect_ProviderMissing(t *testing.T) {
	a := NewAdapter(nil, nil)
	events := make(chan Event, 4)
	sub := a.Subscribe(events)
	defer sub.Unsubscribe()

	_, err := a.Connect(context.Background())

	assert.ErrorIs(t, err, domain.ErrProviderMissing)
	_, connected := a.CurrentAccount()
	assert.False(t, connected)
	assert.Empty(t, drain(events))
}

func TestConnect(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(p *MockProvider)
		expectedErr error
		connected   bool
	}{
		{
			name: "Connected",
			prepareMock: func(p *MockProvider) {
				p.EXPECT().RequestAccounts(gomock.Any()).Return([]common.Address{account}, nil)
				p.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil)
			},
			connected: true,
		},
		{
			name: "User rejected",
			prepareMock: func(p *MockProvider) {
				p.EXPECT().RequestAccounts(gomock.Any()).Return(nil, domain.ErrUserRejected)
			},
			expectedErr: domain.ErrUserRejected,
		},
		{
			name: "No accounts returned",
			prepareMock: func(p *MockProvider) {
				p.EXPECT().RequestAccounts(gomock.Any()).Return([]common.Address{}, nil)
			},
			expectedErr: domain.ErrUserRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, provider := NewMock(t)
			tt.prepareMock(provider)

			got, err := a.Connect(context.Background())
			current, connected := a.CurrentAccount()

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.False(t, connected)
				assert.Equal(t, common.Address{}, current)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, account, got)
			assert.True(t, connected)
			assert.Equal(t, account, current)
		})
	}
}

func TestConnect_PublishesEvents(t *testing.T) {
	a, provider := NewMock(t)
	provider.EXPECT().RequestAccounts(gomock.Any()).Return([]common.Address{account}, nil)
	provider.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil)

	events := make(chan Event, 4)
	sub := a.Subscribe(events)
	defer sub.Unsubscribe()

	_, err := a.Connect(context.Background())
	require.NoError(t, err)

	got := drain(events)
	require.Len(t, got, 2)
	assert.Equal(t, AccountsChanged, got[0].Kind)
	assert.Equal(t, account, got[0].Account)
	assert.Equal(t, ChainChanged, got[1].Kind)
	assert.Equal(t, 0, got[1].ChainID.Cmp(sepolia))
}

func TestEnsureNetwork(t *testing.T) {
	tests := []struct {
		name        string
		expected    *big.Int
		prepareMock func(p *MockProvider)
		expectedErr error
	}{
		{
			name:     "Already on expected chain",
			expected: sepolia,
			prepareMock: func(p *MockProvider) {
				p.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil)
			},
		},
		{
			name:     "Switches chain",
			expected: sepolia,
			prepareMock: func(p *MockProvider) {
				gomock.InOrder(
					p.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil),
					p.EXPECT().SwitchChain(gomock.Any(), sepolia).Return(nil),
					p.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil),
				)
			},
		},
		{
			name:     "Adds unknown chain then retries switch",
			expected: sepolia,
			prepareMock: func(p *MockProvider) {
				gomock.InOrder(
					p.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil),
					p.EXPECT().SwitchChain(gomock.Any(), sepolia).Return(ErrUnknownChain),
					p.EXPECT().AddChain(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, params ChainParams) error {
							assert.Equal(t, uint64(11155111), params.ChainID)
							assert.Equal(t, "Sepolia", params.ChainName)
							return nil
						}),
					p.EXPECT().SwitchChain(gomock.Any(), sepolia).Return(nil),
					p.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil),
				)
			},
		},
		{
			name:     "Unknown chain missing from registry",
			expected: big.NewInt(424242),
			prepareMock: func(p *MockProvider) {
				p.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil)
				p.EXPECT().SwitchChain(gomock.Any(), gomock.Any()).Return(ErrUnknownChain)
			},
			expectedErr: domain.ErrWrongNetwork,
		},
		{
			name:     "Add chain rejected by user",
			expected: sepolia,
			prepareMock: func(p *MockProvider) {
				p.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil)
				p.EXPECT().SwitchChain(gomock.Any(), gomock.Any()).Return(ErrUnknownChain)
				p.EXPECT().AddChain(gomock.Any(), gomock.Any()).Return(domain.ErrUserRejected)
			},
			expectedErr: domain.ErrUserRejected,
		},
		{
			name:     "Switch fails",
			expected: sepolia,
			prepareMock: func(p *MockProvider) {
				p.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil)
				p.EXPECT().SwitchChain(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			expectedErr: domain.ErrWrongNetwork,
		},
		{
			name:     "Wallet stays on the old chain",
			expected: sepolia,
			prepareMock: func(p *MockProvider) {
				p.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil).Times(2)
				p.EXPECT().SwitchChain(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedErr: domain.ErrWrongNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, provider := NewMock(t)
			tt.prepareMock(provider)

			err := a.EnsureNetwork(context.Background(), tt.expected)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRefresh_ChainChange(t *testing.T) {
	a, provider := NewMock(t)
	gomock.InOrder(
		provider.EXPECT().Accounts(gomock.Any()).Return([]common.Address{account}, nil),
		provider.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil),
		provider.EXPECT().Accounts(gomock.Any()).Return([]common.Address{account}, nil),
		provider.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil),
		provider.EXPECT().Accounts(gomock.Any()).Return(nil, nil),
		provider.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil),
	)
	events := make(chan Event, 8)
	sub := a.Subscribe(events)
	defer sub.Unsubscribe()

	require.NoError(t, a.Refresh(context.Background()))
	assert.Len(t, drain(events), 2)

	require.NoError(t, a.Refresh(context.Background()))
	got := drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, ChainChanged, got[0].Kind)
	assert.Equal(t, 0, got[0].ChainID.Cmp(mainnet))

	require.NoError(t, a.Refresh(context.Background()))
	got = drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, AccountsChanged, got[0].Kind)
	assert.False(t, got[0].Connected)
}

func TestUnsubscribe(t *testing.T) {
	a, provider := NewMock(t)
	provider.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil)

	events := make(chan Event, 1)
	sub := a.Subscribe(events)
	sub.Unsubscribe()

	_, err := a.ChainID(context.Background())
	require.NoError(t, err)
	assert.Empty(t, drain(events))
}

func TestSigner(t *testing.T) {
	t.Run("Provider missing", func(t *testing.T) {
		_, err := NewAdapter(nil, nil).Signer(context.Background())
		assert.ErrorIs(t, err, domain.ErrProviderMissing)
	})

	t.Run("Not connected", func(t *testing.T) {
		a, _ := NewMock(t)
		_, err := a.Signer(context.Background())
		assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	})

	t.Run("Connected", func(t *testing.T) {
		a, provider := NewMock(t)
		provider.EXPECT().RequestAccounts(gomock.Any()).Return([]common.Address{account}, nil)
		provider.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil).Times(2)
		_, err := a.Connect(context.Background())
		require.NoError(t, err)

		opts, err := a.Signer(context.Background())
		require.NoError(t, err)
		assert.Equal(t, account, opts.From)

		_, err = opts.Signer(common.HexToAddress("0x01"), nil)
		assert.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	t.Run("No provider", func(t *testing.T) {
		status := NewAdapter(nil, nil).Status(context.Background(), sepolia)
		assert.False(t, status.ProviderAvailable)
		assert.False(t, status.Connected)
	})

	t.Run("Wrong network", func(t *testing.T) {
		a, provider := NewMock(t)
		provider.EXPECT().ChainID(gomock.Any()).Return(mainnet, nil)

		status := a.Status(context.Background(), sepolia)
		assert.True(t, status.ProviderAvailable)
		assert.False(t, status.CorrectNetwork)
		assert.Equal(t, "Ethereum Mainnet", status.NetworkName)
	})
}

func TestWatch(t *testing.T) {
	a, provider := NewMock(t)
	provider.EXPECT().Accounts(gomock.Any()).Return([]common.Address{account}, nil).AnyTimes()
	provider.EXPECT().ChainID(gomock.Any()).Return(sepolia, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Watch(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_, connected := a.CurrentAccount()
		return connected
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
