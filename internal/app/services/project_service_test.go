package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/app/models/dto"
)

func TestResolveOption(t *testing.T) {
	t.Run("passes through a regular selection", func(t *testing.T) {
		selected := "Public Health"
		value, err := resolveOption(&selected, nil, "research area")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, "Public Health", *value)
	})

	t.Run("nil selection stays nil", func(t *testing.T) {
		value, err := resolveOption(nil, nil, "research area")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("custom option uses the free-text value", func(t *testing.T) {
		selected := CustomOption
		custom := "  Marine Biology  "
		value, err := resolveOption(&selected, &custom, "research area")
		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, "Marine Biology", *value)
	})

	t.Run("custom option without text fails", func(t *testing.T) {
		selected := CustomOption
		empty := "   "
		_, err := resolveOption(&selected, &empty, "degree type")
		assert.Error(t, err)

		_, err = resolveOption(&selected, nil, "degree type")
		assert.Error(t, err)
	})
}

func TestCanManageProject(t *testing.T) {
	coordinator := &models.User{ID: 1, Role: models.RoleCoordinator}
	owner := &models.User{ID: 2, Role: models.RoleFaculty}
	other := &models.User{ID: 3, Role: models.RoleFaculty}
	project := &models.Project{ID: 10, CreatedByID: 2}

	assert.True(t, canManageProject(coordinator, project))
	assert.True(t, canManageProject(owner, project))
	assert.False(t, canManageProject(other, project))
}

func TestListParamsFromFilter(t *testing.T) {
	t.Run("nil filter keeps only paging", func(t *testing.T) {
		params := listParamsFromFilter(nil, 2, 25)
		assert.Equal(t, 2, params.Page)
		assert.Equal(t, 25, params.Size)
		assert.Empty(t, params.Search)
		assert.Nil(t, params.ResearchArea)
		assert.Nil(t, params.IsPublished)
	})

	t.Run("populated filter maps to repository params", func(t *testing.T) {
		published := true
		creatorID := int64(7)
		filter := &dto.ProjectFilter{
			Search:       "malaria",
			ResearchArea: "Public Health",
			DegreeType:   "MPhil",
			IsPublished:  &published,
			CreatedByID:  &creatorID,
		}

		params := listParamsFromFilter(filter, 1, 10)
		assert.Equal(t, "malaria", params.Search)
		require.NotNil(t, params.ResearchArea)
		assert.Equal(t, "Public Health", *params.ResearchArea)
		require.NotNil(t, params.DegreeType)
		assert.Equal(t, "MPhil", *params.DegreeType)
		assert.Equal(t, &published, params.IsPublished)
		assert.Equal(t, &creatorID, params.CreatedByID)
	})

	t.Run("empty option strings stay nil", func(t *testing.T) {
		params := listParamsFromFilter(&dto.ProjectFilter{}, 1, 10)
		assert.Nil(t, params.ResearchArea)
		assert.Nil(t, params.DegreeType)
	})
}
