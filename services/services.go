package services

import "go.mongodb.org/mongo-driver/mongo"

// collection resolves a named collection, tolerating a handle that was never
// connected. Construction must not crash on a missing database; operations on
// the resulting nil collection fail at request time instead, where they are
// reported as internal errors.
func collection(db *mongo.Database, name string) *mongo.Collection {
	if db == nil {
		return nil
	}
	return db.Collection(name)
}
