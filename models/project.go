package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Project represents a portfolio project as stored and served
type Project struct {
	ID               string    `json:"id" bson:"id"`
	Title            string    `json:"title" bson:"title"`
	ShortDescription string    `json:"short_description" bson:"short_description"`
	Description      string    `json:"description" bson:"description"`
	Technologies     []string  `json:"technologies" bson:"technologies"`
	Images           []string  `json:"images" bson:"images"`
	LiveLink         string    `json:"live_link,omitempty" bson:"live_link,omitempty"`
	GithubLink       string    `json:"github_link,omitempty" bson:"github_link,omitempty"`
	Featured         bool      `json:"featured" bson:"featured"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}

// ProjectCreate is the payload accepted when creating a project
type ProjectCreate struct {
	Title            string `json:"title" validate:"required"`
	ShortDescription string `json:"short_description" validate:"required"`
	Description      string `json:"description" validate:"required"`
	// required rejects an omitted list but accepts an explicit empty one
	Technologies []string `json:"technologies" validate:"required"`
	Images       []string `json:"images" validate:"required"`
	LiveLink     string   `json:"live_link"`
	GithubLink   string   `json:"github_link"`
	Featured     bool     `json:"featured"`
}

// ProjectUpdate is a partial-update payload. Nil fields are left untouched;
// a field explicitly set to its current value still counts as present.
type ProjectUpdate struct {
	Title            *string   `json:"title"`
	ShortDescription *string   `json:"short_description"`
	Description      *string   `json:"description"`
	Technologies     *[]string `json:"technologies"`
	Images           *[]string `json:"images"`
	LiveLink         *string   `json:"live_link"`
	GithubLink       *string   `json:"github_link"`
	Featured         *bool     `json:"featured"`
}

// NewProject builds a full Project from a create payload, generating the
// server-populated fields. CreatedAt and UpdatedAt start equal.
func NewProject(in ProjectCreate) Project {
	now := Now()
	return Project{
		ID:               uuid.NewString(),
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Technologies:     emptyIfNil(in.Technologies),
		Images:           emptyIfNil(in.Images),
		LiveLink:         in.LiveLink,
		GithubLink:       in.GithubLink,
		Featured:         in.Featured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// SetFields returns the $set document for the fields present in the patch.
// An empty map means no write should happen.
func (u ProjectUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.ShortDescription != nil {
		set["short_description"] = *u.ShortDescription
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Technologies != nil {
		set["technologies"] = *u.Technologies
	}
	if u.Images != nil {
		set["images"] = *u.Images
	}
	if u.LiveLink != nil {
		set["live_link"] = *u.LiveLink
	}
	if u.GithubLink != nil {
		set["github_link"] = *u.GithubLink
	}
	if u.Featured != nil {
		set["featured"] = *u.Featured
	}
	return set
}
