package server

import (
	handler "auction-engine/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Bidding   *handler.BiddingHandler
	Listings  *handler.ListingHandler
	Watchlist *handler.WatchlistHandler
	Events    *handler.EventsHandler
	Admin     *handler.AdminHandler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(RequestIDMiddleware)
	router.Use(RecoveryMiddleware())    // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", h.Admin.HealthHandler)

	bids := router.Group("/bids")
	{
		bids.POST("", h.Bidding.RecordBidHandler)
	}

	listings := router.Group("/listings")
	{
		listings.POST("", h.Listings.CreateListingHandler)
		listings.GET("", h.Listings.SearchListingsHandler)
		listings.GET("/:listing_id", h.Listings.GetListingHandler)
		listings.GET("/:listing_id/bids", h.Bidding.GetBidsByListingHandler)
		listings.GET("/:listing_id/winning", h.Bidding.GetWinningBidHandler)
		listings.GET("/:listing_id/events", h.Events.StreamHandler)
	}

	watchlist := router.Group("/watchlist")
	{
		watchlist.GET("/:user_id", h.Watchlist.ListHandler)
		watchlist.GET("/:user_id/:listing_id", h.Watchlist.CheckHandler)
		watchlist.POST("/:user_id/:listing_id", h.Watchlist.AddHandler)
		watchlist.DELETE("/:user_id/:listing_id", h.Watchlist.RemoveHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bids", h.Listings.GetBidderActivityHandler)
		users.GET("/:user_id/listings", h.Listings.GetSellerListingsHandler)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/sweep", h.Admin.SweepHandler)
		admin.POST("/reconcile", h.Admin.ReconcileHandler)
	}

	return router
}
