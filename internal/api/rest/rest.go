package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/hoofledger/hoofledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	RegisterValidation()

	router.GET("/health", handler.HealthCheck)

	records := router.Group("/cattle-records")
	{
		records.POST("", handler.CreateCattleRecord)
		records.GET("", handler.ListCattleRecords)
		records.GET("/:id", handler.GetCattleRecord)
		records.PATCH("/:id", handler.UpdateCattleRecord)
		records.DELETE("/:id", handler.DeleteCattleRecord)

		// Submits a transaction signed by the marketplace key
		records.POST("/:id/mint", middleware.Auth(authCfg), handler.MintCattleRecord)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", middleware.Auth(authCfg), handler.CreateAuction)
		auctions.GET("", handler.ListAuctions)
		auctions.GET("/cattle/:tokenId", handler.GetCattleData)
		auctions.GET("/:tokenId", handler.GetAuction)
	}
}
