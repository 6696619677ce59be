// Package wallet wraps a wallet provider (an injected-style JSON-RPC wallet or
// a local key) and publishes account and chain changes.
package wallet

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrUnknownChain is returned by SwitchChain when the provider has no record
// of the requested chain; the chain must be added first.
var ErrUnknownChain = errors.New("chain is not registered in the wallet")

// Provider mirrors the request surface of a browser-injected wallet.
type Provider interface {
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	Accounts(ctx context.Context) ([]common.Address, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SwitchChain(ctx context.Context, chainID *big.Int) error
	AddChain(ctx context.Context, params ChainParams) error
	SignTx(ctx context.Context, from common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}
