package main

import (
	"context"

	"github.com/fintrack-ph/backend/internal/cli"
	"github.com/fintrack-ph/backend/internal/router"
	"github.com/rs/zerolog/log"
)

// @title						fintrack
// @description				The backend for fintrack, a finance tracker for expenses, revenue, invoices, budgets and savings.
// @license.name				AGPL-3.0-or-later
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	if err := cli.NewRootCommand(router.Version()).ExecuteContext(context.Background()); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
