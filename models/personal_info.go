package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// PersonalInfoID is the fixed key of the singleton profile document.
const PersonalInfoID = "personal_info"

// SocialLinks holds the optional social profile URLs
type SocialLinks struct {
	Linkedin string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Github   string `json:"github,omitempty" bson:"github,omitempty"`
	Dribbble string `json:"dribbble,omitempty" bson:"dribbble,omitempty"`
	Twitter  string `json:"twitter,omitempty" bson:"twitter,omitempty"`
}

// PersonalInfo is the site owner's profile. At most one document ever exists,
// keyed by PersonalInfoID.
type PersonalInfo struct {
	ID        string       `json:"id" bson:"id"`
	Name      string       `json:"name" bson:"name"`
	Title     string       `json:"title" bson:"title"`
	Email     string       `json:"email" bson:"email"`
	Phone     string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Location  string       `json:"location,omitempty" bson:"location,omitempty"`
	Bio       string       `json:"bio,omitempty" bson:"bio,omitempty"`
	ResumeURL string       `json:"resume_url,omitempty" bson:"resume_url,omitempty"`
	Social    *SocialLinks `json:"social,omitempty" bson:"social,omitempty"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

// PersonalInfoCreate is the payload accepted by the upsert endpoint
type PersonalInfoCreate struct {
	Name      string       `json:"name" validate:"required"`
	Title     string       `json:"title" validate:"required"`
	Email     string       `json:"email" validate:"required"`
	Phone     string       `json:"phone"`
	Location  string       `json:"location"`
	Bio       string       `json:"bio"`
	ResumeURL string       `json:"resume_url"`
	Social    *SocialLinks `json:"social"`
}

// PersonalInfoUpdate is a partial-update payload for the profile
type PersonalInfoUpdate struct {
	Name      *string      `json:"name"`
	Title     *string      `json:"title"`
	Email     *string      `json:"email"`
	Phone     *string      `json:"phone"`
	Location  *string      `json:"location"`
	Bio       *string      `json:"bio"`
	ResumeURL *string      `json:"resume_url"`
	Social    *SocialLinks `json:"social"`
}

// NewPersonalInfo builds the singleton profile document from an upsert payload.
func NewPersonalInfo(in PersonalInfoCreate) PersonalInfo {
	return PersonalInfo{
		ID:        PersonalInfoID,
		Name:      in.Name,
		Title:     in.Title,
		Email:     in.Email,
		Phone:     in.Phone,
		Location:  in.Location,
		Bio:       in.Bio,
		ResumeURL: in.ResumeURL,
		Social:    in.Social,
		UpdatedAt: Now(),
	}
}

// DefaultPersonalInfo is the ephemeral profile served when nothing has been
// stored yet. It is never persisted.
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		ID:        PersonalInfoID,
		Name:      "Portfolio Owner",
		Title:     "Developer",
		Email:     "contact@example.com",
		UpdatedAt: Now(),
	}
}

// SetFields returns the $set document for the fields present in the patch.
func (u PersonalInfoUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.Bio != nil {
		set["bio"] = *u.Bio
	}
	if u.ResumeURL != nil {
		set["resume_url"] = *u.ResumeURL
	}
	if u.Social != nil {
		set["social"] = *u.Social
	}
	return set
}
