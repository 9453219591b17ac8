package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleCoordinator.Valid())
	assert.True(t, RoleFaculty.Valid())
	assert.False(t, RoleType("admin").Valid())
	assert.False(t, RoleType("").Valid())
}

func TestHasResetTokenExpired(t *testing.T) {
	user := &User{}
	assert.True(t, user.HasResetTokenExpired(), "no pending token counts as expired")

	past := time.Now().Add(-time.Minute)
	user.ResetTokenExpires = &past
	assert.True(t, user.HasResetTokenExpired())

	future := time.Now().Add(time.Hour)
	user.ResetTokenExpires = &future
	assert.False(t, user.HasResetTokenExpired())
}
