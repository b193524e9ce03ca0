package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ph-news-backend/models"
)

// CategoryCount is one row of a per-category breakdown.
type CategoryCount struct {
	Category models.Category `bson:"category" json:"category"`
	Count    int64           `bson:"count" json:"count"`
}

// DistrictMarker is a map marker: a district with at least one article,
// joined with its reference coordinates.
type DistrictMarker struct {
	District string  `json:"district"`
	Division string  `json:"division"`
	Count    int64   `json:"count"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// DistrictStats is the stat block of a district page.
type DistrictStats struct {
	District      models.District `json:"district"`
	TotalArticles int64           `json:"totalArticles"`
	TotalViews    int64           `json:"totalViews"`
	BreakingCount int64           `json:"breakingCount"`
	Categories    []CategoryCount `json:"categories"`
}

// Headline is the compact article form shown in the map modal.
type Headline struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Category  models.Category    `bson:"category" json:"category"`
	Thumbnail string             `bson:"thumbnail" json:"thumbnail"`
	Views     int64              `bson:"views" json:"views"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// headlinesPerDistrict caps the modal list for each district.
const headlinesPerDistrict = 5

// Reporter computes grouped counts for navigation and statistics
// widgets. Every call is a point-in-time re-scan of the collection; no
// counters are maintained incrementally.
type Reporter struct {
	store Store
}

func NewReporter(store Store) *Reporter {
	return &Reporter{store: store}
}

func categoryCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

func districtCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location.district"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "district", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

func districtCategoryPipeline(district string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "location.district", Value: district}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
}

func districtViewsPipeline(district string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "location.district", Value: district}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$metrics.views"}}},
		}}},
	}
}

func districtHeadlinesPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location.district"},
			{Key: "news", Value: bson.D{{Key: "$push", Value: bson.D{
				{Key: "_id", Value: "$_id"},
				{Key: "title", Value: "$title"},
				{Key: "category", Value: "$category"},
				{Key: "thumbnail", Value: "$thumbnail"},
				{Key: "views", Value: "$metrics.views"},
				{Key: "createdAt", Value: "$createdAt"},
			}}}},
		}}},
	}
}

// CategoryCounts returns one row per category present in the
// collection. Categories with no articles are omitted; use
// CategoryCountsFilled when the full enum is wanted.
func (r *Reporter) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	if err := r.store.Aggregate(ctx, categoryCountPipeline(), &rows); err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	return rows, nil
}

// CategoryCountsFilled cross-joins the grouped counts with the fixed
// enum so every category appears, absent ones with count 0, in display
// order.
func (r *Reporter) CategoryCountsFilled(ctx context.Context) ([]CategoryCount, error) {
	rows, err := r.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	return FillCategoryCounts(rows), nil
}

// FillCategoryCounts merges grouped rows onto the full enum.
func FillCategoryCounts(rows []CategoryCount) []CategoryCount {
	byCategory := make(map[models.Category]int64, len(rows))
	for _, row := range rows {
		byCategory[row.Category] = row.Count
	}
	out := make([]CategoryCount, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		out = append(out, CategoryCount{Category: c, Count: byCategory[c]})
	}
	return out
}

// DistrictMarkers returns per-district article counts joined with the
// reference coordinates, used to place and size map markers. Districts
// without articles are dropped.
func (r *Reporter) DistrictMarkers(ctx context.Context) ([]DistrictMarker, error) {
	var rows []struct {
		District string `bson:"district"`
		Count    int64  `bson:"count"`
	}
	if err := r.store.Aggregate(ctx, districtCountPipeline(), &rows); err != nil {
		return nil, fmt.Errorf("district counts: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.District] = row.Count
	}
	markers := []DistrictMarker{}
	for _, d := range models.Districts() {
		if n := counts[d.Name]; n > 0 {
			markers = append(markers, DistrictMarker{
				District: d.Name,
				Division: d.Division,
				Count:    n,
				Lat:      d.Lat,
				Lng:      d.Lng,
			})
		}
	}
	return markers, nil
}

// DistrictStats computes the stat block of one district: article and
// breaking counts, summed views, and the per-category breakdown sorted
// by count descending.
func (r *Reporter) DistrictStats(ctx context.Context, district models.District) (*DistrictStats, error) {
	filter := bson.D{{Key: "location.district", Value: district.Name}}

	total, err := r.store.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("district stats: %w", err)
	}
	breaking, err := r.store.Count(ctx, bson.D{
		{Key: "location.district", Value: district.Name},
		{Key: "metrics.isBreaking", Value: true},
	})
	if err != nil {
		return nil, fmt.Errorf("district stats: %w", err)
	}

	var viewRows []struct {
		Total int64 `bson:"total"`
	}
	if err := r.store.Aggregate(ctx, districtViewsPipeline(district.Name), &viewRows); err != nil {
		return nil, fmt.Errorf("district stats: %w", err)
	}
	var views int64
	if len(viewRows) > 0 {
		views = viewRows[0].Total
	}

	var categories []CategoryCount
	if err := r.store.Aggregate(ctx, districtCategoryPipeline(district.Name), &categories); err != nil {
		return nil, fmt.Errorf("district stats: %w", err)
	}

	return &DistrictStats{
		District:      district,
		TotalArticles: total,
		TotalViews:    views,
		BreakingCount: breaking,
		Categories:    categories,
	}, nil
}

// DistrictHeadlines returns the latest headlines per district, capped
// at 5 each, keyed by canonical district name.
func (r *Reporter) DistrictHeadlines(ctx context.Context) (map[string][]Headline, error) {
	var rows []struct {
		District string     `bson:"_id"`
		News     []Headline `bson:"news"`
	}
	if err := r.store.Aggregate(ctx, districtHeadlinesPipeline(), &rows); err != nil {
		return nil, fmt.Errorf("district headlines: %w", err)
	}

	out := make(map[string][]Headline, len(rows))
	for _, row := range rows {
		news := row.News
		if len(news) > headlinesPerDistrict {
			news = news[:headlinesPerDistrict]
		}
		out[row.District] = news
	}
	return out, nil
}
