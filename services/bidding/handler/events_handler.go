package handler

import (
	"io"
	"time"

	"auction-engine/internal/events"
	"auction-engine/internal/query"
	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

const defaultKeepAlive = 15 * time.Second

// EventSubscriber hands out live event subscriptions per listing
type EventSubscriber interface {
	Subscribe(listingID string) (*events.Subscription, error)
}

// EventsHandler streams listing changes as Server-Sent Events
type EventsHandler struct {
	subscriber EventSubscriber
	queries    QueryServiceInterface
	keepAlive  time.Duration
}

func NewEventsHandler(subscriber EventSubscriber, queries QueryServiceInterface) *EventsHandler {
	return &EventsHandler{subscriber: subscriber, queries: queries, keepAlive: defaultKeepAlive}
}

// StreamHandler handles GET /listings/:listing_id/events. The first event is a
// "snapshot" of the listing summary; after that every change is forwarded
// until the client disconnects.
func (h *EventsHandler) StreamHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	ctx := c.Request.Context()

	detail, err := h.queries.Listing(ctx, listingID)
	if err != nil {
		helpers.RespondError(c, "StreamHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	sub, err := h.subscriber.Subscribe(listingID)
	if err != nil {
		helpers.RespondError(c, "StreamHandler", err, map[string]any{"listing_id": listingID})
		return
	}
	defer sub.Close()

	utils.Debug("StreamHandler: client subscribed", map[string]any{"listing_id": listingID})

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("snapshot", query.Summarize(detail.Listing, time.Now()))
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Type), ev)
			return true
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
			return true
		}
	})

	utils.Debug("StreamHandler: client disconnected", map[string]any{"listing_id": listingID})
}
