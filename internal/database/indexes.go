// internal/database/indexes.go
package database

import (
	"context"

	"go.uber.org/zap"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RenderCacheCollection holds cached rendered QR artifacts.
const RenderCacheCollection = "render_cache"

func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	zap.L().Info("Creating database indexes")

	cacheCollection := m.GetCollection(RenderCacheCollection)
	if err := m.createRenderCacheIndexes(ctx, cacheCollection); err != nil {
		return err
	}

	zap.L().Info("Database indexes created successfully")
	return nil
}

// createRenderCacheIndexes installs the TTL index that lets MongoDB expire
// cached renders on its own. Entries without an expires_at field never expire.
func (m *MongoDB) createRenderCacheIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return err
	}

	zap.L().Info("Render cache collection indexes created")
	return nil
}
