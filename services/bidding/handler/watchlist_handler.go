package handler

import (
	"net/http"

	"auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	watchlist WatchlistServiceInterface
	queries   QueryServiceInterface
}

func NewWatchlistHandler(watchlist WatchlistServiceInterface, queries QueryServiceInterface) *WatchlistHandler {
	return &WatchlistHandler{watchlist: watchlist, queries: queries}
}

// AddHandler handles POST /watchlist/:user_id/:listing_id. Adding twice is not an error.
func (h *WatchlistHandler) AddHandler(c *gin.Context) {
	userID, listingID := c.Param("user_id"), c.Param("listing_id")
	added, err := h.watchlist.Add(c.Request.Context(), userID, listingID)
	if err != nil {
		helpers.RespondError(c, "WatchlistAddHandler", err, map[string]any{"user_id": userID, "listing_id": listingID})
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	utils.JSONResponse(c, status, helpers.WatchResponse{
		UserID: userID, ListingID: listingID, Watching: true, Changed: added,
	}, "listing watched")
}

// RemoveHandler handles DELETE /watchlist/:user_id/:listing_id
func (h *WatchlistHandler) RemoveHandler(c *gin.Context) {
	userID, listingID := c.Param("user_id"), c.Param("listing_id")
	removed, err := h.watchlist.Remove(c.Request.Context(), userID, listingID)
	if err != nil {
		helpers.RespondError(c, "WatchlistRemoveHandler", err, map[string]any{"user_id": userID, "listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.WatchResponse{
		UserID: userID, ListingID: listingID, Watching: false, Changed: removed,
	}, "listing unwatched")
}

// CheckHandler handles GET /watchlist/:user_id/:listing_id
func (h *WatchlistHandler) CheckHandler(c *gin.Context) {
	userID, listingID := c.Param("user_id"), c.Param("listing_id")
	watching, err := h.watchlist.Contains(c.Request.Context(), userID, listingID)
	if err != nil {
		helpers.RespondError(c, "WatchlistCheckHandler", err, map[string]any{"user_id": userID, "listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.WatchResponse{
		UserID: userID, ListingID: listingID, Watching: watching,
	}, "watch status retrieved")
}

// ListHandler handles GET /watchlist/:user_id
func (h *WatchlistHandler) ListHandler(c *gin.Context) {
	userID := c.Param("user_id")
	summaries, err := h.queries.Watchlist(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "WatchlistListHandler", err, map[string]any{"user_id": userID})
		return
	}

	if summaries == nil {
		summaries = []models.ListingSummary{}
	}
	utils.JSONResponse(c, http.StatusOK, summaries, "watchlist retrieved successfully")
}
