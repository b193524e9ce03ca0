package routes

import (
	"github.com/gin-gonic/gin"

	"ph-news-backend/controllers"
)

// SetupRoutes registers the page-data API and the health endpoint.
func SetupRoutes(router *gin.Engine, h *controllers.Handler) {
	router.GET("/health", h.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/news", h.Home)
		api.GET("/news/category/:category", h.Category)
		api.GET("/news/article/:id", h.Article)
		api.GET("/districts", h.Districts)
		api.GET("/districts/:district", h.District)
		api.GET("/categories", h.Categories)
	}
}
