package api

import (
	"context"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/portfolio-backend/models"
)

// newTestRouter wires fake-backed handlers through the real route table so
// tests exercise URL params and method matching.
func newTestRouter(handlers *routeHandlers) *chi.Mux {
	r := chi.NewRouter()
	setupRoutes(r, handlers)
	return r
}

type fakeProjectService struct {
	projects map[string]models.Project
	err      error
}

func newFakeProjectService() *fakeProjectService {
	return &fakeProjectService{projects: map[string]models.Project{}}
}

func (f *fakeProjectService) Create(_ context.Context, in models.ProjectCreate) (models.Project, error) {
	if f.err != nil {
		return models.Project{}, f.err
	}
	project := models.NewProject(in)
	f.projects[project.ID] = project
	return project, nil
}

func (f *fakeProjectService) Get(_ context.Context, id string) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	if project, ok := f.projects[id]; ok {
		return &project, nil
	}
	return nil, nil
}

func (f *fakeProjectService) All(_ context.Context) ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(models.Project) bool { return true }), nil
}

func (f *fakeProjectService) Featured(_ context.Context) ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(p models.Project) bool { return p.Featured }), nil
}

func (f *fakeProjectService) sorted(keep func(models.Project) bool) []models.Project {
	out := []models.Project{}
	for _, p := range f.projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeProjectService) Update(_ context.Context, id string, patch models.ProjectUpdate) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	project, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	if len(patch.SetFields()) > 0 {
		if patch.Title != nil {
			project.Title = *patch.Title
		}
		if patch.ShortDescription != nil {
			project.ShortDescription = *patch.ShortDescription
		}
		if patch.Description != nil {
			project.Description = *patch.Description
		}
		if patch.Technologies != nil {
			project.Technologies = *patch.Technologies
		}
		if patch.Images != nil {
			project.Images = *patch.Images
		}
		if patch.LiveLink != nil {
			project.LiveLink = *patch.LiveLink
		}
		if patch.GithubLink != nil {
			project.GithubLink = *patch.GithubLink
		}
		if patch.Featured != nil {
			project.Featured = *patch.Featured
		}
		project.UpdatedAt = models.Now()
		f.projects[id] = project
	}
	return &project, nil
}

func (f *fakeProjectService) Delete(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	delete(f.projects, id)
	return true, nil
}

type fakePersonalInfoService struct {
	stored *models.PersonalInfo
	err    error
}

func (f *fakePersonalInfoService) CreateOrUpdate(_ context.Context, in models.PersonalInfoCreate) (models.PersonalInfo, error) {
	if f.err != nil {
		return models.PersonalInfo{}, f.err
	}
	info := models.NewPersonalInfo(in)
	f.stored = &info
	return info, nil
}

func (f *fakePersonalInfoService) Get(_ context.Context) (*models.PersonalInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.stored == nil {
		return nil, nil
	}
	info := *f.stored
	return &info, nil
}

func (f *fakePersonalInfoService) Update(_ context.Context, patch models.PersonalInfoUpdate) (*models.PersonalInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.stored == nil {
		return nil, nil
	}
	info := *f.stored
	if len(patch.SetFields()) > 0 {
		if patch.Name != nil {
			info.Name = *patch.Name
		}
		if patch.Title != nil {
			info.Title = *patch.Title
		}
		if patch.Email != nil {
			info.Email = *patch.Email
		}
		if patch.Phone != nil {
			info.Phone = *patch.Phone
		}
		if patch.Location != nil {
			info.Location = *patch.Location
		}
		if patch.Bio != nil {
			info.Bio = *patch.Bio
		}
		if patch.ResumeURL != nil {
			info.ResumeURL = *patch.ResumeURL
		}
		if patch.Social != nil {
			info.Social = patch.Social
		}
		info.UpdatedAt = models.Now()
		f.stored = &info
	}
	return &info, nil
}

type fakeContactService struct {
	contacts map[string]models.Contact
	err      error
}

func newFakeContactService() *fakeContactService {
	return &fakeContactService{contacts: map[string]models.Contact{}}
}

func (f *fakeContactService) Create(_ context.Context, in models.ContactCreate) (models.Contact, error) {
	if f.err != nil {
		return models.Contact{}, f.err
	}
	contact := models.NewContact(in)
	f.contacts[contact.ID] = contact
	return contact, nil
}

func (f *fakeContactService) Get(_ context.Context, id string) (*models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	if contact, ok := f.contacts[id]; ok {
		return &contact, nil
	}
	return nil, nil
}

func (f *fakeContactService) All(_ context.Context) ([]models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(models.Contact) bool { return true }), nil
}

func (f *fakeContactService) Unread(_ context.Context) ([]models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(c models.Contact) bool { return !c.Read }), nil
}

func (f *fakeContactService) sorted(keep func(models.Contact) bool) []models.Contact {
	out := []models.Contact{}
	for _, c := range f.contacts {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// MarkAsRead mirrors the store's modified-count signal: marking an
// already-read contact reports no change.
func (f *fakeContactService) MarkAsRead(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	contact, ok := f.contacts[id]
	if !ok || contact.Read {
		return false, nil
	}
	contact.Read = true
	f.contacts[id] = contact
	return true, nil
}

func (f *fakeContactService) Delete(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.contacts[id]; !ok {
		return false, nil
	}
	delete(f.contacts, id)
	return true, nil
}

type fakeNotifier struct {
	enabled  bool
	notified chan models.Contact
}

func newFakeNotifier(enabled bool) *fakeNotifier {
	return &fakeNotifier{enabled: enabled, notified: make(chan models.Contact, 1)}
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) Notify(contact models.Contact) error {
	f.notified <- contact
	return nil
}

type fakeSkillService struct {
	categories map[string]models.SkillCategory
	err        error
}

func newFakeSkillService() *fakeSkillService {
	return &fakeSkillService{categories: map[string]models.SkillCategory{}}
}

func (f *fakeSkillService) Create(_ context.Context, in models.SkillCategoryCreate) (models.SkillCategory, error) {
	if f.err != nil {
		return models.SkillCategory{}, f.err
	}
	category := models.NewSkillCategory(in)
	f.categories[category.ID] = category
	return category, nil
}

func (f *fakeSkillService) Get(_ context.Context, id string) (*models.SkillCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	if category, ok := f.categories[id]; ok {
		return &category, nil
	}
	return nil, nil
}

func (f *fakeSkillService) All(_ context.Context) ([]models.SkillCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.SkillCategory{}
	for _, c := range f.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSkillService) Update(_ context.Context, id string, patch models.SkillCategoryUpdate) (*models.SkillCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	if len(patch.SetFields()) > 0 {
		if patch.Category != nil {
			category.Category = *patch.Category
		}
		if patch.Skills != nil {
			category.Skills = *patch.Skills
		}
		category.UpdatedAt = models.Now()
		f.categories[id] = category
	}
	return &category, nil
}

func (f *fakeSkillService) Delete(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.categories[id]; !ok {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}
