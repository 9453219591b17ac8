// Command linksupervisors runs the one-shot migration that links projects
// carrying a legacy free-text supervisor name to the matching roster account.
// It seeds missing roster accounts first so every roster name can resolve.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/selorm/scholarbase/internal/bootstrap"
	"github.com/selorm/scholarbase/internal/seed"
	"github.com/selorm/scholarbase/internal/supervisor"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer dbPool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := seed.CreateSupervisorAccounts(ctx, dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Supervisor account seeding reported errors")
		os.Exit(1)
	}

	report, err := supervisor.NewLinker(dbPool, lgr).Run(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Supervisor linking failed, no changes were applied")
		os.Exit(1)
	}

	// The report goes to stdout so it can be captured alongside the logs.
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to render report")
		os.Exit(1)
	}
	fmt.Println(string(out))
}
