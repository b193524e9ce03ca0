package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ph-news-backend/models"
	"ph-news-backend/services"
)

var (
	latestSort  = bson.D{{Key: "createdAt", Value: -1}}
	popularSort = bson.D{
		{Key: "metrics.views", Value: -1},
		{Key: "createdAt", Value: -1},
	}
)

func TestParseSortMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    services.SortMode
		wantErr bool
	}{
		{raw: "", want: services.SortLatest},
		{raw: "latest", want: services.SortLatest},
		{raw: "popular", want: services.SortPopular},
		{raw: "trending", wantErr: true},
		{raw: "POPULAR", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := services.ParseSortMode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryListing(t *testing.T) {
	t.Parallel()

	t.Run("latest first page", func(t *testing.T) {
		t.Parallel()
		category, q, err := services.CategoryListing("Politics", 1, services.SortLatest)
		require.NoError(t, err)
		assert.Equal(t, models.CategoryPolitics, category)
		assert.Equal(t, bson.D{{Key: "category", Value: models.CategoryPolitics}}, q.Filter)
		assert.Equal(t, latestSort, q.Sort)
		assert.Equal(t, int64(0), q.Skip)
		assert.Equal(t, int64(10), q.Limit)
	})

	t.Run("popular later page", func(t *testing.T) {
		t.Parallel()
		_, q, err := services.CategoryListing("Sports", 3, services.SortPopular)
		require.NoError(t, err)
		assert.Equal(t, popularSort, q.Sort)
		assert.Equal(t, int64(20), q.Skip)
		assert.Equal(t, int64(10), q.Limit)
	})

	t.Run("case-insensitive category input", func(t *testing.T) {
		t.Parallel()
		category, q, err := services.CategoryListing("technology", 1, services.SortLatest)
		require.NoError(t, err)
		assert.Equal(t, models.CategoryTechnology, category)
		assert.Equal(t, bson.D{{Key: "category", Value: models.CategoryTechnology}}, q.Filter)
	})

	t.Run("unknown category is not found, not empty success", func(t *testing.T) {
		t.Parallel()
		_, _, err := services.CategoryListing("weather", 1, services.SortLatest)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestDistrictListing(t *testing.T) {
	t.Parallel()

	t.Run("resolves canonical casing, no pagination", func(t *testing.T) {
		t.Parallel()
		district, q, err := services.DistrictListing("sylhet", services.SortLatest)
		require.NoError(t, err)
		assert.Equal(t, "Sylhet", district.Name)
		assert.Equal(t, "Sylhet", district.Division)
		assert.Equal(t, bson.D{{Key: "location.district", Value: "Sylhet"}}, q.Filter)
		assert.Equal(t, latestSort, q.Sort)
		assert.Zero(t, q.Skip)
		assert.Zero(t, q.Limit)
	})

	t.Run("popular sort", func(t *testing.T) {
		t.Parallel()
		_, q, err := services.DistrictListing("Dhaka", services.SortPopular)
		require.NoError(t, err)
		assert.Equal(t, popularSort, q.Sort)
	})

	t.Run("unknown district", func(t *testing.T) {
		t.Parallel()
		_, _, err := services.DistrictListing("Gotham", services.SortLatest)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestHomeListings(t *testing.T) {
	t.Parallel()

	breaking := services.BreakingListing()
	assert.Equal(t, bson.D{{Key: "metrics.isBreaking", Value: true}}, breaking.Filter)
	assert.Equal(t, latestSort, breaking.Sort)
	assert.Equal(t, int64(5), breaking.Limit)
	assert.Zero(t, breaking.Skip)

	featured := services.FeaturedListing()
	assert.Empty(t, featured.Filter)
	assert.Equal(t, popularSort, featured.Sort)
	assert.Equal(t, int64(3), featured.Limit)

	latest := services.LatestListing()
	assert.Empty(t, latest.Filter)
	assert.Equal(t, latestSort, latest.Sort)
	assert.Equal(t, int64(3), latest.Skip)
	assert.Equal(t, int64(12), latest.Limit)
}

func TestRelatedListing(t *testing.T) {
	t.Parallel()

	a := models.Article{
		ID:       primitive.NewObjectID(),
		Category: models.CategoryCrime,
	}
	q := services.RelatedListing(a)

	assert.Equal(t, bson.D{
		{Key: "category", Value: models.CategoryCrime},
		{Key: "_id", Value: bson.D{{Key: "$ne", Value: a.ID}}},
	}, q.Filter)
	assert.Equal(t, latestSort, q.Sort)
	assert.Equal(t, int64(4), q.Limit)
}

func TestFindOptions(t *testing.T) {
	t.Parallel()

	q := services.ListingQuery{
		Sort:  latestSort,
		Skip:  20,
		Limit: 10,
	}
	opts := q.FindOptions()
	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, latestSort, opts.Sort)

	unbounded := services.ListingQuery{Sort: latestSort}.FindOptions()
	assert.Nil(t, unbounded.Skip)
	assert.Nil(t, unbounded.Limit)
}
