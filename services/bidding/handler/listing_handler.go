package handler

import (
	"net/http"

	"auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// ListingHandler serves listing creation and the read-side projections
type ListingHandler struct {
	listings ListingServiceInterface
	queries  QueryServiceInterface
}

func NewListingHandler(listings ListingServiceInterface, queries QueryServiceInterface) *ListingHandler {
	return &ListingHandler{listings: listings, queries: queries}
}

// CreateListingHandler handles POST /listings
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	listing, err := h.listings.CreateListing(c.Request.Context(), req.ToDraft())
	if err != nil {
		helpers.RespondError(c, "CreateListingHandler", err, map[string]any{"seller_id": req.SellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"seller_id":  listing.SellerID,
		"state":      listing.State,
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	detail, err := h.queries.Listing(c.Request.Context(), listingID)
	if err != nil {
		helpers.RespondError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, detail, "listing retrieved successfully")
}

// SearchListingsHandler handles GET /listings
func (h *ListingHandler) SearchListingsHandler(c *gin.Context) {
	var q helpers.ListingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "SearchListingsHandler", err)
		return
	}

	page, err := h.queries.Listings(c.Request.Context(), q.ToFilter())
	if err != nil {
		helpers.RespondError(c, "SearchListingsHandler", err, map[string]any{"query": c.Request.URL.RawQuery})
		return
	}

	utils.JSONResponse(c, http.StatusOK, page, "listings retrieved successfully")
	utils.Debug("SearchListingsHandler: listings retrieved", map[string]any{
		"query":    c.Request.URL.RawQuery,
		"total":    page.Total,
		"returned": len(page.Items),
	})
}

// GetSellerListingsHandler handles GET /users/:user_id/listings
func (h *ListingHandler) GetSellerListingsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	listings, err := h.queries.SellerListings(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetSellerListingsHandler", err, map[string]any{"user_id": userID})
		return
	}

	if listings == nil {
		listings = []models.ListingSummary{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
	helpers.LogSuccess("GetSellerListingsHandler", "listings retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(listings),
	})
}

// GetBidderActivityHandler handles GET /users/:user_id/bids
func (h *ListingHandler) GetBidderActivityHandler(c *gin.Context) {
	userID := c.Param("user_id")
	activity, err := h.queries.BidderActivity(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetBidderActivityHandler", err, map[string]any{"user_id": userID})
		return
	}

	if activity == nil {
		activity = []models.BidderActivity{}
	}

	utils.JSONResponse(c, http.StatusOK, activity, "bidding activity retrieved successfully")
	helpers.LogSuccess("GetBidderActivityHandler", "bidding activity retrieved successfully", map[string]any{
		"user_id":        userID,
		"listings_count": len(activity),
	})
}
