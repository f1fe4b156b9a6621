// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/animelar/internal/platform/constants"
	platformmongo "github.com/taibuivan/animelar/internal/platform/mongo"
)

// MongoRepository stores the document as the body of one record in the
// documents collection.
type MongoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	key        string
}

// mongoEnvelope is the persisted record shape.
type mongoEnvelope struct {
	ID   string   `bson:"_id"`
	Body Document `bson:"body"`
}

// NewMongoRepository returns a repository for the record identified by key.
func NewMongoRepository(client *mongo.Client, database, key string) *MongoRepository {
	return &MongoRepository{
		client:     client,
		collection: client.Database(database).Collection(constants.DocumentsCollection),
		key:        key,
	}
}

// Load implements [Repository].
func (r *MongoRepository) Load(ctx context.Context) (*Document, error) {
	var envelope mongoEnvelope

	err := r.collection.FindOne(ctx, bson.M{"_id": r.key}).Decode(&envelope)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("store: failed to load document %q: %w", r.key, err)
	}
	return &envelope.Body, nil
}

// Save implements [Repository].
func (r *MongoRepository) Save(ctx context.Context, doc *Document) error {
	envelope := mongoEnvelope{ID: r.key, Body: *doc}

	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": r.key},
		envelope,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("store: failed to save document %q: %w", r.key, err)
	}
	return nil
}

// Ping implements [Repository].
func (r *MongoRepository) Ping(ctx context.Context) error {
	return platformmongo.Ping(ctx, r.client)
}

// Close implements [Repository].
func (r *MongoRepository) Close() error {
	return platformmongo.Disconnect(r.client)
}
