// Package services contains the data-access layer of the portal: query
// construction, the Mongo-backed article store, aggregation reporting,
// the best-effort view counter, and the seed generator.
package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ph-news-backend/models"
	"ph-news-backend/pagination"
)

// SortMode selects the ordering of a listing.
type SortMode string

const (
	SortLatest  SortMode = "latest"
	SortPopular SortMode = "popular"
)

// Home page section sizes. The latest section skips the first 3
// documents so it does not repeat the featured grid positionally; with
// fewer than 3 articles total the skip still applies, matching the
// behavior of the rendered site.
const (
	HomeBreakingLimit = 5
	HomeFeaturedLimit = 3
	HomeLatestSkip    = 3
	HomeLatestLimit   = 12
	RelatedLimit      = 4
)

// ParseSortMode validates a raw sort parameter. Empty input defaults to
// latest; anything other than the two known modes is rejected.
func ParseSortMode(raw string) (SortMode, error) {
	switch raw {
	case "", string(SortLatest):
		return SortLatest, nil
	case string(SortPopular):
		return SortPopular, nil
	default:
		return "", fmt.Errorf("%w: unknown sort mode %q", models.ErrValidation, raw)
	}
}

// ListingQuery is a fully validated find specification: filter, sort,
// and skip/limit pagination. Limit 0 means no limit.
type ListingQuery struct {
	Filter bson.D
	Sort   bson.D
	Skip   int64
	Limit  int64
}

// FindOptions translates the query into driver options.
func (q ListingQuery) FindOptions() *options.FindOptions {
	opts := options.Find().SetSort(q.Sort)
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return opts
}

func sortDoc(mode SortMode) bson.D {
	if mode == SortPopular {
		return bson.D{
			{Key: "metrics.views", Value: -1},
			{Key: "createdAt", Value: -1},
		}
	}
	return bson.D{{Key: "createdAt", Value: -1}}
}

// CategoryListing builds the paginated listing query for a category
// page. The raw category is matched case-insensitively against the
// fixed enum; unknown input yields ErrNotFound, never an empty result.
func CategoryListing(rawCategory string, page int, mode SortMode) (models.Category, ListingQuery, error) {
	category, ok := models.ParseCategory(rawCategory)
	if !ok {
		return "", ListingQuery{}, fmt.Errorf("%w: category %q", models.ErrNotFound, rawCategory)
	}
	return category, ListingQuery{
		Filter: bson.D{{Key: "category", Value: category}},
		Sort:   sortDoc(mode),
		Skip:   pagination.Offset(page, pagination.ItemsPerPage),
		Limit:  pagination.ItemsPerPage,
	}, nil
}

// DistrictListing builds the full (unpaginated) listing query for a
// district page. The district resolves against the reference table;
// unknown input yields ErrNotFound.
func DistrictListing(rawDistrict string, mode SortMode) (models.District, ListingQuery, error) {
	district, ok := models.LookupDistrict(rawDistrict)
	if !ok {
		return models.District{}, ListingQuery{}, fmt.Errorf("%w: district %q", models.ErrNotFound, rawDistrict)
	}
	return district, ListingQuery{
		Filter: bson.D{{Key: "location.district", Value: district.Name}},
		Sort:   sortDoc(mode),
	}, nil
}

// BreakingListing selects the breaking-news ticker items: flagged
// articles only, most recent first, capped at 5.
func BreakingListing() ListingQuery {
	return ListingQuery{
		Filter: bson.D{{Key: "metrics.isBreaking", Value: true}},
		Sort:   sortDoc(SortLatest),
		Limit:  HomeBreakingLimit,
	}
}

// FeaturedListing selects the three most viewed articles for the
// featured grid.
func FeaturedListing() ListingQuery {
	return ListingQuery{
		Filter: bson.D{},
		Sort:   sortDoc(SortPopular),
		Limit:  HomeFeaturedLimit,
	}
}

// LatestListing selects the home latest-news column.
func LatestListing() ListingQuery {
	return ListingQuery{
		Filter: bson.D{},
		Sort:   sortDoc(SortLatest),
		Skip:   HomeLatestSkip,
		Limit:  HomeLatestLimit,
	}
}

// RelatedListing selects up to 4 recent articles sharing the given
// article's category, excluding the article itself. Related selection
// is a plain same-category query, not a stored relationship.
func RelatedListing(a models.Article) ListingQuery {
	return ListingQuery{
		Filter: bson.D{
			{Key: "category", Value: a.Category},
			{Key: "_id", Value: bson.D{{Key: "$ne", Value: a.ID}}},
		},
		Sort:  sortDoc(SortLatest),
		Limit: RelatedLimit,
	}
}
