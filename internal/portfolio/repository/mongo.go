package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
)

// mongoDocID keys the single record: the whole store is one blob, replaced
// wholesale on every save, exactly like the file backend.
const mongoDocID = "portfolio"

// MongoRepo is an optional MongoDB-backed store for deployments without a
// writable filesystem. It keeps the same whole-document semantics: one
// record, serialized JSON, last write wins.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

type mongoBlob struct {
	ID   string `bson:"_id"`
	Data string `bson:"data"`
}

func (m *MongoRepo) Load(ctx context.Context) (*portfolio.Document, error) {
	var blob mongoBlob
	err := m.col.FindOne(ctx, bson.M{"_id": mongoDocID}).Decode(&blob)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load document: %w", err)
	}
	var doc portfolio.Document
	if err := json.Unmarshal([]byte(blob.Data), &doc); err != nil {
		return nil, fmt.Errorf("parse stored document: %w", err)
	}
	return &doc, nil
}

func (m *MongoRepo) Save(ctx context.Context, doc *portfolio.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.col.ReplaceOne(ctx, bson.M{"_id": mongoDocID}, mongoBlob{ID: mongoDocID, Data: string(raw)}, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
