package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ph-news-backend/models"
)

// Store is the article persistence contract consumed by handlers and
// reporters. MongoStore is the production implementation; tests use
// in-memory stubs.
type Store interface {
	Find(ctx context.Context, q ListingQuery) ([]models.Article, error)
	Count(ctx context.Context, filter bson.D) (int64, error)
	FindByID(ctx context.Context, id string) (*models.Article, error)
	InsertMany(ctx context.Context, articles []models.Article) error
	IncrementViews(ctx context.Context, id string) error
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// MongoStore implements Store over a single articles collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{coll: client.Database(database).Collection(collection)}
}

// EnsureIndexes creates the indexes the listing and aggregation queries
// rely on. Safe to call on every startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "location.district", Value: 1}}},
		{Keys: bson.D{{Key: "metrics.isBreaking", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "metrics.views", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Find(ctx context.Context, q ListingQuery) ([]models.Article, error) {
	cur, err := s.coll.Find(ctx, q.Filter, q.FindOptions())
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Article{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return out, nil
}

func (s *MongoStore) Count(ctx context.Context, filter bson.D) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// FindByID fetches a single article. Malformed and unknown ids both map
// to ErrNotFound so the caller can render a not-found page.
func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: article %q", models.ErrNotFound, id)
	}
	var a models.Article
	err = s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: article %q", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return &a, nil
}

func (s *MongoStore) InsertMany(ctx context.Context, articles []models.Article) error {
	docs := make([]interface{}, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, a)
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert articles: %w", err)
	}
	return nil
}

// IncrementViews bumps metrics.views by one with a server-side $inc, so
// concurrent increments are all reflected without read-modify-write.
func (s *MongoStore) IncrementViews(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: article %q", models.ErrNotFound, id)
	}
	res, err := s.coll.UpdateByID(ctx, oid, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "metrics.views", Value: 1}}},
		{Key: "$currentDate", Value: bson.D{{Key: "updatedAt", Value: true}}},
	})
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: article %q", models.ErrNotFound, id)
	}
	return nil
}

func (s *MongoStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate articles: %w", err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode aggregation: %w", err)
	}
	return nil
}
