package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ph-news-backend/models"
)

func validArticle() models.Article {
	return models.Article{
		Title:    "New Hospital Wing Expands Healthcare Services in Dhaka",
		Content:  "Healthcare providers delivered essential medical services to communities in need.",
		Category: models.CategoryHealth,
		Location: models.Location{
			Division: "Dhaka",
			District: "Dhaka",
		},
	}
}

func TestArticleValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(a *models.Article)
		wantErr bool
	}{
		{
			name:   "valid article",
			mutate: func(a *models.Article) {},
		},
		{
			name:    "empty title",
			mutate:  func(a *models.Article) { a.Title = "" },
			wantErr: true,
		},
		{
			name:    "title over 200 characters",
			mutate:  func(a *models.Article) { a.Title = strings.Repeat("x", 201) },
			wantErr: true,
		},
		{
			name:   "title exactly 200 characters",
			mutate: func(a *models.Article) { a.Title = strings.Repeat("x", 200) },
		},
		{
			name:    "empty content",
			mutate:  func(a *models.Article) { a.Content = "" },
			wantErr: true,
		},
		{
			name:    "unknown category",
			mutate:  func(a *models.Article) { a.Category = "Weather" },
			wantErr: true,
		},
		{
			name:    "unknown district",
			mutate:  func(a *models.Article) { a.Location.District = "Atlantis" },
			wantErr: true,
		},
		{
			name: "division not matching district",
			mutate: func(a *models.Article) {
				a.Location = models.Location{Division: "Sylhet", District: "Dhaka"}
			},
			wantErr: true,
		},
		{
			name:    "negative views",
			mutate:  func(a *models.Article) { a.Metrics.Views = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := validArticle()
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestArticleNormalizeDerivesDivision(t *testing.T) {
	t.Parallel()

	a := validArticle()
	// A supplied division is never trusted: the district decides.
	a.Location = models.Location{Division: "Rangpur", District: "dhaka"}
	a.Normalize()

	assert.Equal(t, "Dhaka", a.Location.District)
	assert.Equal(t, "Dhaka", a.Location.Division)
	require.NoError(t, a.Validate())
}

func TestArticleNormalizeDefaultThumbnail(t *testing.T) {
	t.Parallel()

	a := validArticle()
	a.Thumbnail = ""
	a.Normalize()
	assert.Equal(t, models.DefaultThumbnail, a.Thumbnail)

	a.Thumbnail = "https://example.com/custom.jpg"
	a.Normalize()
	assert.Equal(t, "https://example.com/custom.jpg", a.Thumbnail)
}
