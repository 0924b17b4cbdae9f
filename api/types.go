package api

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler      projectHandler
	personalInfoHandler personalInfoHandler
	contactHandler      contactHandler
	skillHandler        skillHandler
}

// Handlers depend on these narrow interfaces rather than the concrete
// services so tests can stand in fakes.

type projectService interface {
	Create(ctx context.Context, in models.ProjectCreate) (models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	All(ctx context.Context) ([]models.Project, error)
	Featured(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, id string, patch models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type personalInfoService interface {
	CreateOrUpdate(ctx context.Context, in models.PersonalInfoCreate) (models.PersonalInfo, error)
	Get(ctx context.Context) (*models.PersonalInfo, error)
	Update(ctx context.Context, patch models.PersonalInfoUpdate) (*models.PersonalInfo, error)
}

type contactService interface {
	Create(ctx context.Context, in models.ContactCreate) (models.Contact, error)
	Get(ctx context.Context, id string) (*models.Contact, error)
	All(ctx context.Context) ([]models.Contact, error)
	Unread(ctx context.Context) ([]models.Contact, error)
	MarkAsRead(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type contactNotifier interface {
	Enabled() bool
	Notify(contact models.Contact) error
}

type skillService interface {
	Create(ctx context.Context, in models.SkillCategoryCreate) (models.SkillCategory, error)
	Get(ctx context.Context, id string) (*models.SkillCategory, error)
	All(ctx context.Context) ([]models.SkillCategory, error)
	Update(ctx context.Context, id string, patch models.SkillCategoryUpdate) (*models.SkillCategory, error)
	Delete(ctx context.Context, id string) (bool, error)
}
