package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Per-user award endpoints
		v1.POST("/users/:user_id/awards", handler.GrantAward)
		v1.GET("/users/:user_id/awards", handler.ListUserAwards)
		v1.GET("/users/:user_id/awards/unseen", handler.GetUnseenCount)
		v1.POST("/users/:user_id/awards/seen", handler.AcknowledgeSeen)
		v1.GET("/users/by-name/:user_name/awards/count", handler.CountAwardsByUserName)

		// Grant endpoints
		v1.GET("/awards/:grant_id", handler.GetAward)
		v1.GET("/awards/:grant_id/owner", handler.VerifyOwnership)
		v1.POST("/awards/:grant_id/revoke", handler.RevokeAward)
		v1.DELETE("/awards/:grant_id", handler.DeleteAward)

		// Catalog endpoints
		v1.GET("/catalog", handler.ListCatalog)
		v1.GET("/catalog/:award_id", handler.GetCatalogAward)
	}
}
