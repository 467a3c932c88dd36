package integrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"auction-engine/internal/app"
	"auction-engine/internal/clock"
	"auction-engine/internal/config"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetLogOutput(io.Discard)
}

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testEnv is a fully wired engine over an in-memory store and a manual clock
type testEnv struct {
	router *gin.Engine
	clock  *clock.Fake
	repo   *repository.MemoryRepo
	app    *app.App
}

// SetupTestEnv initializes the router with in-memory repository for integration testing,
// seeded with listings.
func SetupTestEnv(t *testing.T, listings ...model.Listing) *testEnv {
	t.Helper()

	repo := repository.NewMemoryRepo()
	for _, l := range listings {
		repo.AddListing(l)
	}

	fake := clock.NewFake(start)
	a, err := app.New(config.Config{
		Bidding:   config.BiddingConfig{MaxAttempts: 10, Backoff: 100 * time.Microsecond},
		Lifecycle: config.LifecycleConfig{SweepInterval: time.Hour, Workers: 2},
	}, app.WithRepository(repo), app.WithClock(fake))
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return &testEnv{router: a.Router(), clock: fake, repo: repo, app: a}
}

// Listing builds an active listing that ends a day after start
func Listing(id, seller string, startingPrice int64, reserve *int64) model.Listing {
	return model.Listing{
		ListingID:     id,
		Title:         "title " + id,
		Description:   "description " + id,
		Category:      "electronics",
		Condition:     "good",
		StartingPrice: startingPrice,
		ReservePrice:  reserve,
		Currency:      "USD",
		SellerID:      seller,
		CreatedAt:     start,
		StartAt:       start,
		EndAt:         start.Add(24 * time.Hour),
		State:         model.StateActive,
		CurrentBid:    startingPrice,
		Version:       1,
		UpdatedAt:     start,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response.
// Successful creates (201) are unwrapped to their data payload.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

func ptr[T any](v T) *T { return &v }
