package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

// ProjectService wraps the projects collection with typed CRUD operations.
type ProjectService struct {
	collection *mongo.Collection
}

func NewProjectService(db *mongo.Database) *ProjectService {
	return &ProjectService{collection: collection(db, database.CollectionProjects)}
}

// Create inserts a new project and returns it as constructed. The write is
// trusted; the document is not re-read.
func (s *ProjectService) Create(ctx context.Context, in models.ProjectCreate) (models.Project, error) {
	project := models.NewProject(in)
	if _, err := s.collection.InsertOne(ctx, project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Get returns the project with the given id, or nil when no document matches.
func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// All returns every project, newest first.
func (s *ProjectService) All(ctx context.Context) ([]models.Project, error) {
	return s.find(ctx, bson.M{})
}

// Featured returns the projects with featured == true, newest first.
func (s *ProjectService) Featured(ctx context.Context) ([]models.Project, error) {
	return s.find(ctx, bson.M{"featured": true})
}

func (s *ProjectService) find(ctx context.Context, filter bson.M) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Update applies a partial update and returns the project re-read after the
// write. A zero-field patch performs no write. Returns nil when the id does
// not exist.
func (s *ProjectService) Update(ctx context.Context, id string, patch models.ProjectUpdate) (*models.Project, error) {
	existing, err := s.Get(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	set := patch.SetFields()
	if len(set) > 0 {
		set["updated_at"] = models.Now()
		if _, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

// Delete removes the project and reports whether a document was removed.
func (s *ProjectService) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
