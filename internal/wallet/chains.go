package wallet

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed chains.toml
var defaultChains string

type Currency struct {
	Name     string `toml:"name"     json:"name"`
	Symbol   string `toml:"symbol"   json:"symbol"`
	Decimals int    `toml:"decimals" json:"decimals"`
}

// ChainParams is what a wallet needs to add an unknown chain.
type ChainParams struct {
	ChainID           uint64   `toml:"chain_id"        json:"-"`
	ChainName         string   `toml:"name"            json:"chainName"`
	RPCURLs           []string `toml:"rpc_urls"        json:"rpcUrls"`
	NativeCurrency    Currency `toml:"native_currency" json:"nativeCurrency"`
	BlockExplorerURLs []string `toml:"explorer_urls"   json:"blockExplorerUrls,omitempty"`
}

type chainsFile struct {
	Chains []ChainParams `toml:"chain"`
}

type Registry struct {
	mu     sync.RWMutex
	chains map[uint64]ChainParams
}

// LoadRegistry loads the built-in chains and, if path is set, merges the
// chains defined in that file over them.
func LoadRegistry(path string) (*Registry, error) {
	r := &Registry{chains: make(map[uint64]ChainParams)}

	var builtin chainsFile
	if _, err := toml.Decode(defaultChains, &builtin); err != nil {
		return nil, fmt.Errorf("decode built-in chains: %w", err)
	}
	r.add(builtin.Chains)

	if path != "" {
		var custom chainsFile
		if _, err := toml.DecodeFile(path, &custom); err != nil {
			return nil, fmt.Errorf("decode chains file %s: %w", path, err)
		}
		r.add(custom.Chains)
	}
	return r, nil
}

func (r *Registry) add(chains []ChainParams) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range chains {
		r.chains[c.ChainID] = c
	}
}

func (r *Registry) Lookup(chainID uint64) (ChainParams, bool) {
	if r == nil {
		return ChainParams{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.chains[chainID]
	return c, ok
}

// Name returns a human readable network name, falling back to the id.
func (r *Registry) Name(chainID uint64) string {
	if c, ok := r.Lookup(chainID); ok {
		return c.ChainName
	}
	return fmt.Sprintf("chain %d", chainID)
}
