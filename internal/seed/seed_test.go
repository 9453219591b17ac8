package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccountStore struct {
	users  map[string]*models.User // keyed by email
	nextID int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{users: make(map[string]*models.User)}
}

func (s *fakeAccountStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *fakeAccountStore) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAccountStore) ProfileSlugExists(_ context.Context, profileSlug string) (bool, error) {
	for _, u := range s.users {
		if u.ProfileSlug != nil && *u.ProfileSlug == profileSlug {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAccountStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return s.users[email], nil
}

func (s *fakeAccountStore) Create(_ context.Context, user *models.User) (int64, error) {
	s.nextID++
	user.ID = s.nextID
	s.users[user.Email] = user
	return user.ID, nil
}

func (s *fakeAccountStore) SetProfileSlug(_ context.Context, userID int64, profileSlug string) error {
	for _, u := range s.users {
		if u.ID == userID {
			v := profileSlug
			u.ProfileSlug = &v
			return nil
		}
	}
	return nil
}

func rosterAccountTotal() int {
	total := 0
	for _, e := range roster.Supervisors {
		if e.ID != roster.OthersID {
			total++
		}
	}
	return total
}

func TestSeedAccountsCountsCreatedAndExisting(t *testing.T) {
	store := newFakeAccountStore()

	// Two roster accounts already present, slugs assigned.
	for i, entry := range roster.Supervisors[:2] {
		slugVal := "existing-" + entry.ID
		store.users[entry.Email] = &models.User{
			ID:          int64(i + 100),
			Username:    entry.ID,
			Email:       entry.Email,
			Role:        models.RoleFaculty,
			IsActive:    true,
			ProfileSlug: &slugVal,
		}
	}

	created, existing, err := seedAccounts(context.Background(), store, "changeme", zerolog.Nop())
	require.NoError(t, err)

	total := rosterAccountTotal()
	assert.Equal(t, 2, existing)
	assert.Equal(t, total-2, created)
	assert.Len(t, store.users, total)

	for _, u := range store.users {
		assert.Equal(t, models.RoleFaculty, u.Role, u.Email)
		require.NotNil(t, u.ProfileSlug, u.Email)
		assert.NotEmpty(t, *u.ProfileSlug, u.Email)
		assert.True(t, u.IsActive, u.Email)
	}
}

func TestSeedAccountsSecondRunReportsAllExisting(t *testing.T) {
	store := newFakeAccountStore()

	created, existing, err := seedAccounts(context.Background(), store, "changeme", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, rosterAccountTotal(), created)
	assert.Zero(t, existing)

	created, existing, err = seedAccounts(context.Background(), store, "changeme", zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, rosterAccountTotal(), existing)
}

func TestSeedAccountsBackfillsMissingSlug(t *testing.T) {
	store := newFakeAccountStore()

	entry := roster.Supervisors[0]
	store.users[entry.Email] = &models.User{ID: 7, Username: entry.ID, Email: entry.Email}

	created, existing, err := seedAccounts(context.Background(), store, "changeme", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, existing)
	assert.Equal(t, rosterAccountTotal()-1, created)

	backfilled := store.users[entry.Email]
	require.NotNil(t, backfilled.ProfileSlug)
	assert.NotEmpty(t, *backfilled.ProfileSlug)
}
