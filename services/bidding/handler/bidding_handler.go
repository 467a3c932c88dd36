package handler

import (
	"errors"
	"net/http"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// RecordBidHandler handles POST /bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}

	result, err := h.service.PlaceBid(c.Request.Context(), req.ToBidRequest())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if status >= http.StatusInternalServerError && !errors.Is(err, biddingerrors.ErrContention) {
			helpers.RespondError(c, "RecordBidHandler", err, map[string]any{
				"listing_id": req.ListingID,
				"bidder_id":  req.BidderID,
			})
			return
		}

		rejection := helpers.BidRejection{Reason: biddingerrors.Reason(err)}
		if result.Listing.ListingID != "" {
			current := result.Listing.CurrentBid
			rejection.CurrentBid = &current
		}
		utils.JSONErrorWithData(c, status, err, message, rejection)
		utils.Info("RecordBidHandler: bid rejected", map[string]any{
			"listing_id": req.ListingID,
			"bidder_id":  req.BidderID,
			"amount":     req.Amount,
			"reason":     rejection.Reason,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(result), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     result.Bid.BidID,
		"listing_id": result.Bid.ListingID,
		"bidder_id":  result.Bid.BidderID,
		"amount":     result.Bid.Amount,
		"sequence":   result.Bid.Sequence,
	})
}

// GetBidsByListingHandler handles GET /listings/:listing_id/bids
func (h *BiddingHandler) GetBidsByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bids, err := h.service.BidHistory(c.Request.Context(), listingID)
	if err != nil {
		helpers.RespondError(c, "GetBidsByListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	if bids == nil {
		bids = []models.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByListingHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /listings/:listing_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bid, err := h.service.WinningBid(c.Request.Context(), listingID)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"listing_id": listingID})
			return
		}
		helpers.RespondError(c, "GetWinningBidHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"bidder_id":  bid.BidderID,
		"amount":     bid.Amount,
	})
}
