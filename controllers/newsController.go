// Package controllers exposes the portal's page data over gin handlers:
// home composite, category and district listings, article detail, and
// the map aggregates.
package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"ph-news-backend/models"
	"ph-news-backend/pagination"
	"ph-news-backend/services"
)

type Handler struct {
	store    services.Store
	reporter *services.Reporter
	views    *services.ViewCounter
	pinger   Pinger
	log      *slog.Logger
}

func NewHandler(store services.Store, reporter *services.Reporter, views *services.ViewCounter, pinger Pinger, log *slog.Logger) *Handler {
	return &Handler{store: store, reporter: reporter, views: views, pinger: pinger, log: log}
}

// respondError maps the error taxonomy onto HTTP statuses: NotFound to
// 404, validation failures to 400, anything else is treated as the
// store being unavailable.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	}
}

// Home handles GET /api/v1/news: the composite of breaking ticker,
// featured grid, latest column, and sidebar category counts.
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	breaking, err := h.store.Find(ctx, services.BreakingListing())
	if err != nil {
		h.respondError(c, err)
		return
	}
	featured, err := h.store.Find(ctx, services.FeaturedListing())
	if err != nil {
		h.respondError(c, err)
		return
	}
	latest, err := h.store.Find(ctx, services.LatestListing())
	if err != nil {
		h.respondError(c, err)
		return
	}
	categories, err := h.reporter.CategoryCountsFilled(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	total, err := h.store.Count(ctx, bson.D{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"breaking":   breaking,
		"featured":   featured,
		"latest":     latest,
		"categories": categories,
		"total":      total,
	})
}

// Category handles GET /api/v1/news/category/:category?page=&sort=.
func (h *Handler) Category(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := pagination.ParsePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sort, err := services.ParseSortMode(c.Query("sort"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	category, query, err := services.CategoryListing(c.Param("category"), page, sort)
	if err != nil {
		h.respondError(c, err)
		return
	}

	articles, err := h.store.Find(ctx, query)
	if err != nil {
		h.respondError(c, err)
		return
	}
	total, err := h.store.Count(ctx, query.Filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	categories, err := h.reporter.CategoryCountsFilled(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"sort":       sort,
		"articles":   articles,
		"pagination": pagination.NewMetadata(total, page, pagination.ItemsPerPage),
		"categories": categories,
	})
}

// Article handles GET /api/v1/news/article/:id: the detail payload plus
// related articles. The view increment is dispatched fire-and-forget
// once the primary fetch has succeeded.
func (h *Handler) Article(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	article, err := h.store.FindByID(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	related, err := h.store.Find(ctx, services.RelatedListing(*article))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.views.Record(id)

	c.JSON(http.StatusOK, gin.H{
		"article": article,
		"related": related,
	})
}

// Districts handles GET /api/v1/districts: map markers for every
// district with coverage, plus the latest headlines per district for
// the map modal.
func (h *Handler) Districts(c *gin.Context) {
	ctx := c.Request.Context()

	markers, err := h.reporter.DistrictMarkers(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	headlines, err := h.reporter.DistrictHeadlines(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"districts": markers,
		"headlines": headlines,
	})
}

// District handles GET /api/v1/districts/:district?sort=: the full
// article list for the district plus its stat block.
func (h *Handler) District(c *gin.Context) {
	ctx := c.Request.Context()

	sort, err := services.ParseSortMode(c.Query("sort"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	district, query, err := services.DistrictListing(c.Param("district"), sort)
	if err != nil {
		h.respondError(c, err)
		return
	}

	articles, err := h.store.Find(ctx, query)
	if err != nil {
		h.respondError(c, err)
		return
	}
	stats, err := h.reporter.DistrictStats(ctx, district)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"district": district,
		"sort":     sort,
		"articles": articles,
		"stats":    stats,
	})
}

// Categories handles GET /api/v1/categories: the zero-filled sidebar
// counts.
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.reporter.CategoryCountsFilled(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
