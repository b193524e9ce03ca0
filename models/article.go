// Package models holds the news article schema and the fixed reference
// data (categories, districts) the rest of the service validates against.
package models

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultThumbnail is used when an article is stored without one.
const DefaultThumbnail = "/images/news/default-thumbnail.jpg"

// MaxTitleLength mirrors the schema limit of the articles collection.
const MaxTitleLength = 200

// Location is the denormalized district/division pair on an article.
// District is the authoritative half; Division is derived from the
// district table, never trusted from input.
type Location struct {
	Division string `bson:"division" json:"division"`
	District string `bson:"district" json:"district"`
}

// Metrics carries the mutable counters of an article. Views only ever
// grows, via the store's atomic increment.
type Metrics struct {
	Views      int64 `bson:"views" json:"views"`
	IsBreaking bool  `bson:"isBreaking" json:"isBreaking"`
}

// Article is a single news document as persisted in MongoDB. The bson
// field names match the existing collection schema.
type Article struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Thumbnail string             `bson:"thumbnail" json:"thumbnail"`
	Category  Category           `bson:"category" json:"category"`
	Location  Location           `bson:"location" json:"location"`
	Metrics   Metrics            `bson:"metrics" json:"metrics"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Normalize fills defaults and derives the division from the district
// table. Call before Validate on any article headed for the store.
func (a *Article) Normalize() {
	if a.Thumbnail == "" {
		a.Thumbnail = DefaultThumbnail
	}
	if d, ok := LookupDistrict(a.Location.District); ok {
		a.Location.District = d.Name
		a.Location.Division = d.Division
	}
}

// Validate checks the article against the collection schema. Returned
// errors wrap ErrValidation.
func (a *Article) Validate() error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&a.Content, validation.Required),
		validation.Field(&a.Category, validation.Required, validation.By(validCategory)),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := a.Location.validate(); err != nil {
		return err
	}
	if a.Metrics.Views < 0 {
		return fmt.Errorf("%w: metrics.views must be non-negative", ErrValidation)
	}
	return nil
}

func (l Location) validate() error {
	d, ok := LookupDistrict(l.District)
	if !ok {
		return fmt.Errorf("%w: unknown district %q", ErrValidation, l.District)
	}
	if l.Division != d.Division {
		return fmt.Errorf("%w: district %s belongs to division %s, not %s",
			ErrValidation, d.Name, d.Division, l.Division)
	}
	return nil
}

func validCategory(value interface{}) error {
	c, _ := value.(Category)
	if !c.Valid() {
		return fmt.Errorf("unknown category %q", string(c))
	}
	return nil
}
