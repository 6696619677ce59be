package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
)

const (
	LedgerModeRPC    = "rpc"
	LedgerModeMemory = "memory"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"

	// DefaultJWTSecret must stay in sync with the JWT_SECRET envDefault.
	DefaultJWTSecret = "change-me"
)

type Config struct {
	Address         string        `env:"RUN_ADDRESS"      envDefault:"localhost:8080"`
	Database        string        `env:"DATABASE_URI"`
	LogLvl          string        `env:"LOG_LVL"          envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"       envDefault:"console"`
	RPCURL          string        `env:"RPC_URL"`
	WalletURL       string        `env:"WALLET_URL"`
	WalletKey       string        `env:"WALLET_KEY"`
	ContractAddress string        `env:"CONTRACT_ADDRESS"`
	ChainID         uint64        `env:"CHAIN_ID"         envDefault:"11155111"`
	ChainsFile      string        `env:"CHAINS_FILE"`
	LedgerMode      string        `env:"LEDGER_MODE"      envDefault:"rpc"`
	JournalPath     string        `env:"JOURNAL_PATH"     envDefault:"fundtracker.db"`
	JWTSecret       string        `env:"JWT_SECRET"       envDefault:"change-me"`
	AdminAddresses  []string      `env:"ADMIN_ADDRESSES"  envSeparator:","`
	DemoMode        bool          `env:"DEMO_MODE"        envDefault:"true"`
	TokenDecimals   int32         `env:"TOKEN_DECIMALS"   envDefault:"18"`
	WatchInterval   time.Duration `env:"WATCH_INTERVAL"   envDefault:"5s"`
}

// New reads the configuration from the environment.
func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)
	cfg.normalize()

	return cfg
}

// RegisterFlags binds command line overrides for the most common settings.
// Call Normalize after the flags are parsed.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Address, "address", "a", c.Address, "address and port to run server")
	fs.StringVarP(&c.Database, "database", "d", c.Database, "off-chain store DSN")
	fs.StringVarP(&c.LogLvl, "log-level", "l", c.LogLvl, "log level")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log encoding: console or json")
	fs.StringVarP(&c.RPCURL, "rpc", "r", c.RPCURL, "ledger RPC endpoint")
	fs.StringVarP(&c.WalletURL, "wallet", "w", c.WalletURL, "wallet provider endpoint")
	fs.StringVarP(&c.ContractAddress, "contract", "c", c.ContractAddress, "deployed ledger contract address")
	fs.Uint64Var(&c.ChainID, "chain-id", c.ChainID, "expected chain id")
	fs.StringVar(&c.LedgerMode, "ledger-mode", c.LedgerMode, "ledger backend: rpc or memory")
	fs.StringVar(&c.JournalPath, "journal", c.JournalPath, "operation journal path")
	fs.BoolVar(&c.DemoMode, "demo", c.DemoMode, "serve sample data when the ledger is unreachable")
}

func (c *Config) Normalize() {
	c.normalize()
}

func (c *Config) normalize() {
	if c.RPCURL != "" && !strings.Contains(c.RPCURL, "://") {
		c.RPCURL = "http://" + c.RPCURL
	}
	if c.WalletURL != "" && !strings.Contains(c.WalletURL, "://") {
		c.WalletURL = "http://" + c.WalletURL
	}
	c.LogLvl = strings.ToLower(strings.TrimSpace(c.LogLvl))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.LedgerMode = strings.ToLower(strings.TrimSpace(c.LedgerMode))
	if c.LedgerMode != LedgerModeMemory {
		c.LedgerMode = LedgerModeRPC
	}
	for i, addr := range c.AdminAddresses {
		c.AdminAddresses[i] = strings.ToLower(strings.TrimSpace(addr))
	}
}

func (c *Config) OffchainEnabled() bool {
	return c.Database != ""
}

func (c *Config) LedgerEnabled() bool {
	if c.LedgerMode == LedgerModeMemory {
		return true
	}
	return c.RPCURL != "" && c.ContractAddress != ""
}

// UsesDefaultJWTSecret reports whether bearer tokens are signed with the
// published default secret.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret
}

func (c *Config) IsAdmin(address string) bool {
	address = strings.ToLower(address)
	for _, admin := range c.AdminAddresses {
		if admin == address {
			return true
		}
	}
	return false
}
