package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/GlebRadaev/fundtracker/internal/domain"
)

const revertMarker = "execution reverted"

// ErrAmountOutOfRange marks amounts the ABI encoder would wrap modulo 2^256.
var ErrAmountOutOfRange = fmt.Errorf("%w: amount does not fit uint256", domain.ErrInvalidInput)

// CheckAmount rejects amounts that can't be sent as a uint256 argument.
func CheckAmount(amount *big.Int) error {
	if amount != nil && (amount.Sign() < 0 || amount.Cmp(math.MaxBig256) > 0) {
		return ErrAmountOutOfRange
	}
	return nil
}

// classify maps a raw backend error onto the domain sentinels. fallback is
// used for anything that is neither a revert nor a wallet decision.
func classify(err error, fallback error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrUserRejected),
		errors.Is(err, domain.ErrWalletNotConnected),
		errors.Is(err, domain.ErrProviderMissing),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, bind.ErrNoCode):
		return fmt.Errorf("%w: no contract deployed at address", domain.ErrLedgerUnavailable)
	case errors.Is(err, bind.ErrNotAuthorized):
		return fmt.Errorf("%w: %v", domain.ErrWalletNotConnected, err)
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := revertReason(dataErr.ErrorData()); ok {
			return &domain.RevertError{Reason: reason}
		}
	}
	if msg := err.Error(); strings.Contains(msg, revertMarker) {
		reason := msg[strings.Index(msg, revertMarker)+len(revertMarker):]
		return &domain.RevertError{Reason: strings.TrimSpace(strings.TrimPrefix(reason, ":"))}
	}
	return fmt.Errorf("%w: %v", fallback, err)
}

func revertReason(data any) (string, bool) {
	raw, ok := data.(string)
	if !ok {
		return "", false
	}
	payload, err := hexutil.Decode(raw)
	if err != nil {
		return "", false
	}
	reason, err := abi.UnpackRevert(payload)
	if err != nil {
		return "", false
	}
	return reason, true
}
