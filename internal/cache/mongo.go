// internal/cache/mongo.go
package cache

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qr-code-backend/internal/database"
)

type cacheDocument struct {
	Key       string     `bson:"key"`
	Value     []byte     `bson:"value"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

// MongoCache is a KeyValueCache backed by a MongoDB TTL collection, shared by
// every instance of the service. Expiry is enforced by the TTL index created
// in the database package; Get additionally filters out entries the TTL
// sweeper has not collected yet.
type MongoCache struct {
	collection *mongo.Collection
}

func NewMongoCache(db *database.MongoDB) *MongoCache {
	return &MongoCache{collection: db.GetCollection(database.RenderCacheCollection)}
}

func (c *MongoCache) Get(ctx context.Context, key string) ([]byte, error) {
	var doc cacheDocument
	err := c.collection.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	if doc.ExpiresAt != nil && time.Now().After(*doc.ExpiresAt) {
		return nil, ErrMiss
	}
	return doc.Value, nil
}

func (c *MongoCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	if ttlSeconds == 0 {
		return nil
	}
	doc := cacheDocument{Key: key, Value: value}
	if ttlSeconds > 0 {
		expiresAt := time.Now().Add(time.Duration(ttlSeconds) * time.Second)
		doc.ExpiresAt = &expiresAt
	}
	_, err := c.collection.ReplaceOne(ctx, bson.M{"key": key}, doc, options.Replace().SetUpsert(true))
	return err
}
