package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

// KeyProvider signs with a local private key. It is bound to the chain of
// the node it sends through and cannot switch away from it.
type KeyProvider struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int

	mu        sync.Mutex
	connected bool
	known     map[uint64]bool
}

func NewKeyProvider(key *ecdsa.PrivateKey, chainID *big.Int) *KeyProvider {
	return &KeyProvider{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: new(big.Int).Set(chainID),
		known:   map[uint64]bool{chainID.Uint64(): true},
	}
}

func KeyProviderFromHex(hexKey string, chainID *big.Int) (*KeyProvider, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse wallet key: %w", err)
	}
	return NewKeyProvider(key, chainID), nil
}

func (p *KeyProvider) Address() common.Address {
	return p.address
}

func (p *KeyProvider) RequestAccounts(_ context.Context) ([]common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.connected = true
	return []common.Address{p.address}, nil
}

func (p *KeyProvider) Accounts(_ context.Context) ([]common.Address, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.connected {
		return nil, nil
	}
	return []common.Address{p.address}, nil
}

func (p *KeyProvider) ChainID(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(p.chainID), nil
}

func (p *KeyProvider) SwitchChain(_ context.Context, chainID *big.Int) error {
	if chainID.Cmp(p.chainID) == 0 {
		return nil
	}
	p.mu.Lock()
	known := p.known[chainID.Uint64()]
	p.mu.Unlock()
	if !known {
		return fmt.Errorf("%w: %s", ErrUnknownChain, chainID)
	}
	return fmt.Errorf("%w: local signer is bound to chain %s", domain.ErrWrongNetwork, p.chainID)
}

func (p *KeyProvider) AddChain(_ context.Context, params ChainParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.known[params.ChainID] = true
	return nil
}

func (p *KeyProvider) SignTx(_ context.Context, from common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if from != p.address {
		return nil, bind.ErrNotAuthorized
	}
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), p.key)
}
