package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New(cfg)
	err := application.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		application.Close()
		return err
	}

	err = application.Wait(ctx, cancel)
	if err != nil {
		zap.L().Error("All systems closed with errors. LastError:", zap.Error(err))
		return err
	}

	zap.L().Info("All systems closed without errors")
	return nil
}
