package main

import (
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/fundtracker/cmd/fundtracker/commands"
)

//	@title			Fund Tracker API
//	@version		1.0
//	@description	Public fund tracking dashboard backed by an on-chain ledger

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	if err := commands.Execute(); err != nil {
		log.Fatal().Err(err).Msg("fundtracker failed")
	}
}
