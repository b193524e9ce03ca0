package services

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ph-news-backend/models"
)

// stubStore is the in-memory Store used by the service tests.
type stubStore struct {
	mu         sync.Mutex
	increments map[string]int
	inserted   [][]models.Article

	findFn      func(q ListingQuery) ([]models.Article, error)
	countFn     func(filter bson.D) (int64, error)
	findByIDFn  func(id string) (*models.Article, error)
	aggregateFn func(pipeline mongo.Pipeline, out interface{}) error
	incErr      error
}

func newStubStore() *stubStore {
	return &stubStore{increments: map[string]int{}}
}

func (s *stubStore) Find(_ context.Context, q ListingQuery) ([]models.Article, error) {
	if s.findFn != nil {
		return s.findFn(q)
	}
	return nil, nil
}

func (s *stubStore) Count(_ context.Context, filter bson.D) (int64, error) {
	if s.countFn != nil {
		return s.countFn(filter)
	}
	return 0, nil
}

func (s *stubStore) FindByID(_ context.Context, id string) (*models.Article, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(id)
	}
	return nil, models.ErrNotFound
}

func (s *stubStore) InsertMany(_ context.Context, articles []models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserted = append(s.inserted, articles)
	return nil
}

func (s *stubStore) IncrementViews(_ context.Context, id string) error {
	if s.incErr != nil {
		return s.incErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.increments[id]++
	return nil
}

func (s *stubStore) Aggregate(_ context.Context, pipeline mongo.Pipeline, out interface{}) error {
	if s.aggregateFn != nil {
		return s.aggregateFn(pipeline, out)
	}
	return nil
}

func (s *stubStore) incrementsFor(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.increments[id]
}

// setAggOut writes canned aggregation rows into the decode target.
func setAggOut(out, rows interface{}) {
	reflect.ValueOf(out).Elem().Set(reflect.ValueOf(rows))
}
