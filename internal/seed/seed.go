package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/app/repositories"
	"github.com/selorm/scholarbase/internal/config"
	"github.com/selorm/scholarbase/internal/pkg/auth"
	"github.com/selorm/scholarbase/internal/pkg/slug"
	"github.com/selorm/scholarbase/internal/roster"
)

// accountStore is the slice of the user repository the seeding pass needs.
type accountStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	ProfileSlugExists(ctx context.Context, slug string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	SetProfileSlug(ctx context.Context, userID int64, profileSlug string) error
}

// CreateSupervisorAccounts creates a faculty account for every roster entry
// that does not have one yet. The pass is idempotent: existing accounts are
// left untouched except for backfilling a missing profile slug. Individual
// failures are collected so one bad entry does not block the rest.
func CreateSupervisorAccounts(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	store := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating supervisor accounts from roster...")

	created, existing, err := seedAccounts(ctx, store, cfg.Seed.DefaultFacultyPassword, lgr)
	if err != nil && created == 0 && existing == 0 {
		return err
	}

	lgr.Info().Int("created", created).Int("existing", existing).Msg("Supervisor account seeding finished")
	return err
}

// seedAccounts walks the roster and returns how many accounts were created
// and how many already existed.
func seedAccounts(ctx context.Context, store accountStore, defaultPassword string, lgr zerolog.Logger) (created, existing int, _ error) {
	hashed, err := auth.HashPassword(defaultPassword)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to hash default faculty password: %w", err)
	}

	var finalErr error
	for _, entry := range roster.Supervisors {
		if entry.ID == roster.OthersID {
			continue
		}

		exists, err := store.EmailExists(ctx, entry.Email)
		if err != nil {
			lgr.Error().Err(err).Str("email", entry.Email).Msg("Error checking roster account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			existing++
			if err := backfillProfileSlug(ctx, store, entry, lgr); err != nil {
				finalErr = errors.Join(finalErr, err)
			}
			continue
		}

		username, err := uniqueUsername(ctx, store, entry.Email)
		if err != nil {
			lgr.Error().Err(err).Str("email", entry.Email).Msg("Error deriving username")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		profileSlug, err := uniqueProfileSlug(ctx, store, entry)
		if err != nil {
			lgr.Error().Err(err).Str("email", entry.Email).Msg("Error deriving profile slug")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		institution := entry.Institution
		user := &models.User{
			Username:    username,
			Email:       entry.Email,
			Password:    hashed,
			FullName:    entry.Name,
			Role:        models.RoleFaculty,
			IsActive:    true,
			Institution: &institution,
			ProfileSlug: &profileSlug,
		}

		if _, err := store.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Str("email", entry.Email).Msg("Error creating roster account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	return created, existing, finalErr
}

// backfillProfileSlug assigns a profile slug to an existing roster account
// that predates slug support.
func backfillProfileSlug(ctx context.Context, store accountStore, entry roster.Entry, lgr zerolog.Logger) error {
	user, err := store.GetByEmail(ctx, entry.Email)
	if err != nil {
		return err
	}
	if user.ProfileSlug != nil && *user.ProfileSlug != "" {
		return nil
	}

	profileSlug, err := uniqueProfileSlug(ctx, store, entry)
	if err != nil {
		return err
	}
	if err := store.SetProfileSlug(ctx, user.ID, profileSlug); err != nil {
		return err
	}

	lgr.Info().Str("email", entry.Email).Str("slug", profileSlug).Msg("Backfilled profile slug")
	return nil
}

// uniqueUsername derives a username from the email local part, probing
// numeric suffixes until one is free.
func uniqueUsername(ctx context.Context, store accountStore, email string) (string, error) {
	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])

	var probeErr error
	username := slug.Unique(base, func(candidate string) bool {
		if probeErr != nil {
			return false
		}
		taken, err := store.UsernameExists(ctx, candidate)
		if err != nil {
			probeErr = err
			return false
		}
		return taken
	})
	if probeErr != nil {
		return "", probeErr
	}
	return username, nil
}

func uniqueProfileSlug(ctx context.Context, store accountStore, entry roster.Entry) (string, error) {
	base := slug.Make(entry.Name)
	if base == "" {
		base = "user-" + entry.ID
	}

	var probeErr error
	unique := slug.Unique(base, func(candidate string) bool {
		if probeErr != nil {
			return false
		}
		taken, err := store.ProfileSlugExists(ctx, candidate)
		if err != nil {
			probeErr = err
			return false
		}
		return taken
	})
	if probeErr != nil {
		return "", probeErr
	}
	return unique, nil
}
