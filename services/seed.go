package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"ph-news-backend/models"
)

// DefaultSeedCount matches the sample dataset size of the portal.
const DefaultSeedCount = 80

type seedTemplate struct {
	category models.Category
	titles   []string
	content  string
}

var seedTemplates = []seedTemplate{
	{
		category: models.CategoryPolitics,
		titles: []string{
			"Parliament Session Discusses New Agricultural Policy",
			"Local Government Elections Announced for Next Month",
			"Prime Minister Inaugurates Infrastructure Project",
		},
		content: "In a significant development, political leaders gathered to address pressing matters affecting the nation. The comprehensive discussion covered various aspects of governance and public welfare, with stakeholders presenting detailed proposals for consideration.",
	},
	{
		category: models.CategorySports,
		titles: []string{
			"District Cricket Team Wins Regional Championship",
			"Local Football Academy Produces National Players",
			"Young Athletes Break Records at State Competition",
		},
		content: "The sports community celebrated remarkable achievements as talented athletes demonstrated exceptional skills. The victory marks a milestone in the region's sporting history, inspiring younger generations to pursue excellence in athletics.",
	},
	{
		category: models.CategoryEntertainment,
		titles: []string{
			"Film Festival Showcases Local Talent This Weekend",
			"Traditional Music Concert Attracts Thousands",
			"New Cultural Center Opens to Public",
		},
		content: "Cultural enthusiasts gathered for a spectacular celebration of arts and entertainment. The event featured performances from renowned artists and emerging talents, highlighting the rich cultural heritage of the region.",
	},
	{
		category: models.CategoryBusiness,
		titles: []string{
			"New Industrial Park Creates Jobs for Local Residents",
			"Technology Hub Attracts International Investment",
			"Agricultural Export Reaches Record Levels",
		},
		content: "Economic indicators show promising growth as new businesses establish operations in the area. The development is expected to boost employment opportunities and contribute significantly to regional prosperity.",
	},
	{
		category: models.CategoryTechnology,
		titles: []string{
			"Smart City Initiative Launches Digital Services",
			"Local Startup Develops Innovative Mobile App",
			"High-Speed Internet Reaches Rural Communities",
		},
		content: "Technological advancement continues to transform daily life as innovative solutions address community needs. The implementation of modern infrastructure marks a significant step toward digital inclusion.",
	},
	{
		category: models.CategoryHealth,
		titles: []string{
			"New Hospital Wing Expands Healthcare Services",
			"Free Medical Camp Serves Thousands of Patients",
			"Vaccination Drive Achieves Target Coverage",
		},
		content: "Healthcare providers delivered essential medical services to communities in need. The initiative demonstrates commitment to improving public health outcomes and ensuring access to quality care for all residents.",
	},
	{
		category: models.CategoryEducation,
		titles: []string{
			"Schools Receive Modern Computer Laboratories",
			"Scholarship Program Benefits Underprivileged Students",
			"University Launches New Research Center",
		},
		content: "Educational institutions continue to enhance learning opportunities for students across all levels. The investment in academic infrastructure aims to prepare future generations for emerging challenges and opportunities.",
	},
	{
		category: models.CategoryCrime,
		titles: []string{
			"Police Arrest Drug Trafficking Syndicate Members",
			"Cyber Crime Unit Recovers Stolen Digital Assets",
			"Community Watch Program Reduces Local Incidents",
		},
		content: "Law enforcement agencies successfully addressed security concerns through coordinated operations. The proactive measures have contributed to improved safety and security within the community.",
	},
}

// GenerateArticles produces n synthetic articles cycling through the
// category templates, each tagged with a random district (division
// derived from the table) and randomized metrics.
func GenerateArticles(n int, rnd *rand.Rand) []models.Article {
	districts := models.Districts()
	now := time.Now().UTC()

	out := make([]models.Article, 0, n)
	for i := 0; i < n; i++ {
		tmpl := seedTemplates[i%len(seedTemplates)]
		district := districts[rnd.Intn(len(districts))]
		title := tmpl.titles[rnd.Intn(len(tmpl.titles))]

		paragraphs := rnd.Intn(3) + 2
		content := strings.TrimSpace(strings.Repeat(tmpl.content+"\n\n", paragraphs))

		createdAt := now.Add(-time.Duration(rnd.Intn(30*24)) * time.Hour)

		a := models.Article{
			Title:     fmt.Sprintf("%s in %s", title, district.Name),
			Content:   content,
			Thumbnail: fmt.Sprintf("https://picsum.photos/seed/%d/800/600", i),
			Category:  tmpl.category,
			Location: models.Location{
				District: district.Name,
			},
			Metrics: models.Metrics{
				Views:      int64(rnd.Intn(5000)),
				IsBreaking: rnd.Float64() > 0.85,
			},
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		a.Normalize()
		out = append(out, a)
	}
	return out
}

// SeedIfEmpty inserts generated sample articles when the collection has
// no documents, so a fresh deployment has content to render. A
// populated collection is left untouched.
func SeedIfEmpty(ctx context.Context, store Store, log *slog.Logger) error {
	count, err := store.Count(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		log.Info("articles already present, skipping seed", "count", count)
		return nil
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	articles := GenerateArticles(DefaultSeedCount, rnd)
	for i := range articles {
		if err := articles[i].Validate(); err != nil {
			return fmt.Errorf("seed: generated article %d: %w", i, err)
		}
	}
	if err := store.InsertMany(ctx, articles); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info("seeded sample articles", "count", len(articles))
	return nil
}
