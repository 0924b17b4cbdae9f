package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkillCategory(t *testing.T) {
	category := NewSkillCategory(SkillCategoryCreate{
		Category: "Backend",
		Skills:   []SkillItem{{Name: "Go", Level: 90}},
	})

	require.NotEmpty(t, category.ID)
	assert.Equal(t, "Backend", category.Category)
	assert.Equal(t, category.CreatedAt, category.UpdatedAt)
}

func TestNewSkillCategoryNormalizesNilSkills(t *testing.T) {
	category := NewSkillCategory(SkillCategoryCreate{Category: "Backend"})

	assert.NotNil(t, category.Skills)
	assert.Empty(t, category.Skills)
}

func TestSkillCategoryUpdateSetFields(t *testing.T) {
	skills := []SkillItem{{Name: "Go", Level: 95}}
	patch := SkillCategoryUpdate{Skills: &skills}

	set := patch.SetFields()

	require.Len(t, set, 1)
	assert.Equal(t, skills, set["skills"])
}
