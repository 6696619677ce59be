package auth

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrBadSignature = errors.New("signature does not match address")

// VerifyPersonalSignature checks a personal_sign (EIP-191) signature over
// message against address. Wallets report v as 27/28; both that and the raw
// 0/1 form are accepted.
func VerifyPersonalSignature(address, message, signature string) error {
	if !common.IsHexAddress(address) {
		return errors.New("invalid address")
	}
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return errors.New("invalid signature encoding")
	}
	if len(sig) != crypto.SignatureLength {
		return errors.New("invalid signature length")
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return ErrBadSignature
	}
	if !strings.EqualFold(crypto.PubkeyToAddress(*pub).Hex(), address) {
		return ErrBadSignature
	}
	return nil
}
