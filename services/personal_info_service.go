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

// PersonalInfoService manages the singleton profile document.
type PersonalInfoService struct {
	collection *mongo.Collection
}

func NewPersonalInfoService(db *mongo.Database) *PersonalInfoService {
	return &PersonalInfoService{collection: collection(db, database.CollectionPersonalInfo)}
}

// CreateOrUpdate fully replaces the profile document, creating it when
// absent. This is a replace, not a merge.
func (s *PersonalInfoService) CreateOrUpdate(ctx context.Context, in models.PersonalInfoCreate) (models.PersonalInfo, error) {
	info := models.NewPersonalInfo(in)
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"id": models.PersonalInfoID}, info, opts); err != nil {
		return models.PersonalInfo{}, err
	}
	return info, nil
}

// Get returns the stored profile, or nil when nothing has been stored yet.
// The default-profile fallback lives at the routing layer, not here.
func (s *PersonalInfoService) Get(ctx context.Context) (*models.PersonalInfo, error) {
	var info models.PersonalInfo
	err := s.collection.FindOne(ctx, bson.M{"id": models.PersonalInfoID}).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Update applies a partial update to the stored profile and returns it
// re-read. Returns nil when no profile has been stored yet.
func (s *PersonalInfoService) Update(ctx context.Context, patch models.PersonalInfoUpdate) (*models.PersonalInfo, error) {
	existing, err := s.Get(ctx)
	if err != nil || existing == nil {
		return nil, err
	}

	set := patch.SetFields()
	if len(set) > 0 {
		set["updated_at"] = models.Now()
		if _, err := s.collection.UpdateOne(ctx, bson.M{"id": models.PersonalInfoID}, bson.M{"$set": set}); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx)
}
