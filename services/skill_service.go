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

// SkillService wraps the skills collection.
type SkillService struct {
	collection *mongo.Collection
}

func NewSkillService(db *mongo.Database) *SkillService {
	return &SkillService{collection: collection(db, database.CollectionSkills)}
}

// Create inserts a new skill category and returns it as constructed.
func (s *SkillService) Create(ctx context.Context, in models.SkillCategoryCreate) (models.SkillCategory, error) {
	category := models.NewSkillCategory(in)
	if _, err := s.collection.InsertOne(ctx, category); err != nil {
		return models.SkillCategory{}, err
	}
	return category, nil
}

// Get returns the skill category with the given id, or nil when absent.
func (s *SkillService) Get(ctx context.Context, id string) (*models.SkillCategory, error) {
	var category models.SkillCategory
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// All returns every skill category, newest first.
func (s *SkillService) All(ctx context.Context) ([]models.SkillCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	categories := []models.SkillCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Update applies a partial update and returns the category re-read after the
// write. Returns nil when the id does not exist.
func (s *SkillService) Update(ctx context.Context, id string, patch models.SkillCategoryUpdate) (*models.SkillCategory, error) {
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

// Delete removes the skill category and reports whether a document was removed.
func (s *SkillService) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
