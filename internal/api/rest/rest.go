package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/bulbafloor/auction-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auction reads (public)
		v1.GET("/auctions/:id", handler.GetAuction)
		v1.GET("/auctions/:id/price", handler.GetAuctionPrice)

		// Auction writes (requires authentication; the engine enforces
		// seller/owner authorization)
		v1.POST("/auctions", middleware.Auth(authCfg), handler.CreateAuction)
		v1.POST("/auctions/:id/buy", middleware.Auth(authCfg), handler.BuyAuction)
		v1.POST("/auctions/:id/cancel", middleware.Auth(authCfg), handler.CancelAuction)

		// Marketplace configuration (public read access)
		v1.GET("/admin/config", handler.GetGlobalConfig)

		// Marketplace administration (requires authentication)
		v1.PUT("/admin/fee-basis-points", middleware.Auth(authCfg), handler.SetFeeBasisPoints)
		v1.PUT("/admin/fee-recipient", middleware.Auth(authCfg), handler.SetFeeRecipient)

		// Native recovery is open: it can only move stuck value to the
		// configured fee recipient
		v1.POST("/admin/recover/native", handler.RecoverNativeTokens)

		// Token recovery (requires authentication; owner only)
		v1.POST("/admin/recover/erc20", middleware.Auth(authCfg), handler.RecoverERC20Tokens)
		v1.POST("/admin/recover/erc721", middleware.Auth(authCfg), handler.RecoverERC721Tokens)
		v1.POST("/admin/recover/erc1155", middleware.Auth(authCfg), handler.RecoverERC1155Tokens)
	}
}
