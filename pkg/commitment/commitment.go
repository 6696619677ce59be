// Package commitment computes the keccak256 content hashes the ledger stores
// in place of plaintext project and spending descriptions.
package commitment

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

func Keccak256(data []byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out common.Hash
	h.Sum(out[:0])
	return out
}

// ProjectHash commits to a project's name and description, concatenated
// without a separator.
func ProjectHash(name, description string) common.Hash {
	return Keccak256([]byte(name + description))
}

func DescriptionHash(description string) common.Hash {
	return Keccak256([]byte(description))
}

func Verify(text string, hash common.Hash) bool {
	return Keccak256([]byte(text)) == hash
}

func VerifyProject(name, description string, hash common.Hash) bool {
	return ProjectHash(name, description) == hash
}
