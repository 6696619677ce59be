package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProviderMissing    = errors.New("no wallet provider")
	ErrUserRejected       = errors.New("request rejected by user")
	ErrWrongNetwork       = errors.New("wrong network")
	ErrLedgerUnavailable  = errors.New("ledger unavailable")
	ErrLedgerRevert       = errors.New("ledger reverted")
	ErrStoreWriteFailed   = errors.New("off-chain store write failed")
	ErrNotFound           = errors.New("not found")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrProviderFailure    = errors.New("provider failure")
	ErrStaleChain         = fmt.Errorf("%w: chain changed during read", ErrWrongNetwork)
	ErrStoreUnavailable   = errors.New("off-chain store unavailable")
	ErrInsufficientFunds  = errors.New("amount exceeds remaining funds")
	ErrProjectInactive    = errors.New("project is not active")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
)

// RevertError is a business-rule rejection reported by the ledger.
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return ErrLedgerRevert.Error()
	}
	return fmt.Sprintf("%s: %s", ErrLedgerRevert, e.Reason)
}

func (e *RevertError) Unwrap() error {
	return ErrLedgerRevert
}
