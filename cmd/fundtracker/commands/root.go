package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/fundtracker/internal/app"
	"github.com/GlebRadaev/fundtracker/internal/config"
	"github.com/GlebRadaev/fundtracker/internal/service"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "fundtracker",
	Short: "Public fund tracking dashboard",
	Long: `fundtracker serves a read-mostly dashboard over a FundTracker ledger
contract. Allocations and spending live on the ledger; names and
descriptions live in the off-chain store and are matched to the ledger by
keccak256 commitments.

Running without a subcommand starts the HTTP API.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		cfg.Normalize()
	},
	RunE: runServe,
}

// Execute runs the root command. It is called by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cfg.RegisterFlags(rootCmd.PersistentFlags())
}

// withServices wires the application without starting the server and hands
// the services to fn.
func withServices(ctx context.Context, fn func(*service.Services) error) error {
	application := app.New(cfg)
	defer application.Close()

	if err := application.Init(ctx); err != nil {
		return err
	}
	return fn(application.Services())
}
