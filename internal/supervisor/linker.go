package supervisor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/selorm/scholarbase/internal/app/repositories"
	"github.com/selorm/scholarbase/internal/db"
	"github.com/selorm/scholarbase/internal/roster"
)

// Report summarizes one linking pass.
type Report struct {
	IndexedAccounts int          `json:"indexedAccounts"`
	Pending         int          `json:"pending"`
	Resolved        int          `json:"resolved"`
	Unresolved      []Unresolved `json:"unresolved,omitempty"`
}

// Linker runs the supervisor backfill: build the name index, load every
// project with a non-empty free-text supervisor and no supervisor_id, match,
// and apply all matches in a single transaction. A store fault rolls the
// whole pass back; no project is left half-linked.
type Linker struct {
	db       *pgxpool.Pool
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewLinker creates a Linker.
func NewLinker(db *pgxpool.Pool, logger zerolog.Logger) *Linker {
	return &Linker{
		db:       db,
		userRepo: repositories.NewUserRepository(db),
		logger:   logger,
	}
}

// Run executes one linking pass. Reruns are idempotent: the pending query
// filters on supervisor_id IS NULL, so already-linked projects are never
// revisited and a second run only touches newly added rows.
func (l *Linker) Run(ctx context.Context) (*Report, error) {
	index, accounts, err := l.buildIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build supervisor name index: %w", err)
	}
	l.logger.Info().Int("accounts", accounts).Msg("Supervisor name index built")

	var pending []PendingItem
	var outcome Outcome
	err = db.WithTransaction(ctx, l.db, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT id, title, supervisor
			FROM projects
			WHERE supervisor IS NOT NULL
			  AND btrim(supervisor) <> ''
			  AND supervisor_id IS NULL
			ORDER BY id`)
		if err != nil {
			return fmt.Errorf("failed to query pending projects: %w", err)
		}

		for rows.Next() {
			var item PendingItem
			if err := rows.Scan(&item.ID, &item.Title, &item.RawName); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan pending project: %w", err)
			}
			pending = append(pending, item)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to read pending projects: %w", err)
		}

		outcome = ResolvePending(pending, index)

		for _, a := range outcome.Assignments {
			if _, err := tx.Exec(ctx, `
				UPDATE projects SET supervisor_id = $1, updated_at = NOW()
				WHERE id = $2`,
				a.AccountID, a.ItemID); err != nil {
				return fmt.Errorf("failed to link project %d: %w", a.ItemID, err)
			}
			l.logger.Debug().Int64("projectId", a.ItemID).Int64("supervisorId", a.AccountID).Msg("Linked project to supervisor")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		IndexedAccounts: accounts,
		Pending:         len(pending),
		Resolved:        len(outcome.Assignments),
		Unresolved:      outcome.Unresolved,
	}

	for _, u := range report.Unresolved {
		l.logger.Warn().
			Int64("projectId", u.ItemID).
			Str("title", u.Title).
			Str("supervisor", u.RawName).
			Msg("No supervisor account matched")
	}
	l.logger.Info().
		Int("pending", report.Pending).
		Int("resolved", report.Resolved).
		Int("unresolved", len(report.Unresolved)).
		Msg("Supervisor linking pass finished")

	return report, nil
}

// buildIndex resolves roster emails to account ids. A missing account only
// drops the entry from the index; a store error aborts the pass.
func (l *Linker) buildIndex(ctx context.Context) (NameIndex, int, error) {
	ids := make(map[string]int64, len(roster.Supervisors))
	for _, e := range roster.Supervisors {
		if e.ID == roster.OthersID {
			continue
		}
		id, found, err := l.userRepo.GetIDByEmail(ctx, e.Email)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to look up account for %s: %w", e.Email, err)
		}
		if !found {
			continue
		}
		ids[e.Email] = id
	}

	index := BuildNameIndex(roster.Supervisors, func(email string) (int64, bool) {
		id, ok := ids[email]
		return id, ok
	})
	return index, len(ids), nil
}
