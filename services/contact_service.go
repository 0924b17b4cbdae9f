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

// ContactService wraps the contacts collection.
type ContactService struct {
	collection *mongo.Collection
}

func NewContactService(db *mongo.Database) *ContactService {
	return &ContactService{collection: collection(db, database.CollectionContacts)}
}

// Create inserts a new contact submission and returns it as constructed.
func (s *ContactService) Create(ctx context.Context, in models.ContactCreate) (models.Contact, error) {
	contact := models.NewContact(in)
	if _, err := s.collection.InsertOne(ctx, contact); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

// Get returns the contact with the given id, or nil when no document matches.
func (s *ContactService) Get(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// All returns every contact submission, newest first.
func (s *ContactService) All(ctx context.Context) ([]models.Contact, error) {
	return s.find(ctx, bson.M{})
}

// Unread returns the submissions not yet marked as read, newest first.
func (s *ContactService) Unread(ctx context.Context) ([]models.Contact, error) {
	return s.find(ctx, bson.M{"read": false})
}

func (s *ContactService) find(ctx context.Context, filter bson.M) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// MarkAsRead flips read to true and reports whether a document changed,
// mirroring Delete's found/not-found signal.
func (s *ContactService) MarkAsRead(ctx context.Context, id string) (bool, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// Delete removes the contact and reports whether a document was removed.
func (s *ContactService) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
