package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// SkillItem is a single skill inside a category
type SkillItem struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Level int    `json:"level" bson:"level" validate:"min=0,max=100"`
	Icon  string `json:"icon,omitempty" bson:"icon,omitempty"`
}

// SkillCategory groups skills for the skills section of the site
type SkillCategory struct {
	ID        string      `json:"id" bson:"id"`
	Category  string      `json:"category" bson:"category"`
	Skills    []SkillItem `json:"skills" bson:"skills"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// SkillCategoryCreate is the payload accepted when creating a skill category
type SkillCategoryCreate struct {
	Category string      `json:"category" validate:"required"`
	Skills   []SkillItem `json:"skills" validate:"dive"`
}

// SkillCategoryUpdate is a partial-update payload for a skill category
type SkillCategoryUpdate struct {
	Category *string      `json:"category"`
	Skills   *[]SkillItem `json:"skills" validate:"omitempty,dive"`
}

// NewSkillCategory builds a full SkillCategory from a create payload.
func NewSkillCategory(in SkillCategoryCreate) SkillCategory {
	now := Now()
	skills := in.Skills
	if skills == nil {
		skills = []SkillItem{}
	}
	return SkillCategory{
		ID:        uuid.NewString(),
		Category:  in.Category,
		Skills:    skills,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetFields returns the $set document for the fields present in the patch.
func (u SkillCategoryUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Skills != nil {
		set["skills"] = *u.Skills
	}
	return set
}
