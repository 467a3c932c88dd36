package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newListingRouter(listings ListingServiceInterface, queries QueryServiceInterface) *gin.Engine {
	h := NewListingHandler(listings, queries)
	router := gin.New()
	router.POST("/listings", h.CreateListingHandler)
	router.GET("/listings", h.SearchListingsHandler)
	router.GET("/listings/:listing_id", h.GetListingHandler)
	router.GET("/users/:user_id/listings", h.GetSellerListingsHandler)
	router.GET("/users/:user_id/bids", h.GetBidderActivityHandler)
	return router
}

func TestCreateListingHandler(t *testing.T) {
	t.Parallel()

	validation := biddingerrors.NewValidationError()
	validation.Add("title", "is required")
	validation.Add("category", "unknown category")

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockListingServiceInterface)
		expectedStatus int
		expectedMsg    string
		validate       func(t *testing.T, resp map[string]any)
	}{
		{
			name: "success",
			body: `{"title":"Lamp","category":"home","condition":"good","starting_price":1500,"seller_id":"s1","duration_days":3}`,
			mockSetup: func(m *MockListingServiceInterface) {
				m.EXPECT().CreateListing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, draft models.ListingDraft) (models.Listing, error) {
						return models.Listing{
							ListingID:     "l1",
							Title:         draft.Title,
							StartingPrice: draft.StartingPrice,
							CurrentBid:    draft.StartingPrice,
							SellerID:      draft.SellerID,
							State:         models.StateActive,
							Version:       1,
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "listing created successfully",
			validate: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				require.Equal(t, "l1", data["listing_id"])
				require.Equal(t, float64(1500), data["current_bid"])
				require.Equal(t, "active", data["state"])
			},
		},
		{
			name:           "missing_seller",
			body:           `{"title":"Lamp","starting_price":1500}`,
			mockSetup:      func(*MockListingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "validation_fields_returned",
			body: `{"title":"","category":"spaceships","starting_price":1500,"seller_id":"s1","duration_days":3}`,
			mockSetup: func(m *MockListingServiceInterface) {
				m.EXPECT().CreateListing(gomock.Any(), gomock.Any()).Return(models.Listing{}, validation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid listing details",
			validate: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				require.Equal(t, "is required", data["title"])
				require.Equal(t, "unknown category", data["category"])
			},
		},
		{
			name: "storage_failure",
			body: `{"title":"Lamp","category":"home","condition":"good","starting_price":1500,"seller_id":"s1","duration_days":3}`,
			mockSetup: func(m *MockListingServiceInterface) {
				m.EXPECT().CreateListing(gomock.Any(), gomock.Any()).Return(models.Listing{}, biddingerrors.ErrStorageFailure)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    "storage unavailable",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			listings := NewMockListingServiceInterface(ctrl)
			tc.mockSetup(listings)
			router := newListingRouter(listings, NewMockQueryServiceInterface(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			resp := decodeBody(t, w)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if tc.validate != nil {
				tc.validate(t, resp)
			}
		})
	}
}

func TestSearchListingsHandler(t *testing.T) {
	t.Parallel()

	minPrice, maxPrice := int64(1000), int64(5000)

	tests := []struct {
		name           string
		url            string
		mockSetup      func(m *MockQueryServiceInterface)
		expectedStatus int
	}{
		{
			name: "filters_forwarded",
			url:  "/listings?category=art&condition=good&min_price=1000&max_price=5000&q=vase&seller_id=s1&state=active,scheduled&sort=PRICE-ASC&limit=5&offset=10",
			mockSetup: func(m *MockQueryServiceInterface) {
				m.EXPECT().Listings(gomock.Any(), query.Filter{
					Category:  "art",
					Condition: "good",
					MinPrice:  &minPrice,
					MaxPrice:  &maxPrice,
					Search:    "vase",
					SellerID:  "s1",
					States:    []models.ListingState{models.StateActive, models.StateScheduled},
					Sort:      query.SortPriceAsc,
					Limit:     5,
					Offset:    10,
				}).Return(query.Page{Items: []models.ListingSummary{{ListingID: "l1"}}, Total: 11, Limit: 5, Offset: 10}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "repeated_state_params",
			url:  "/listings?state=ended_sold&state=ended_unsold",
			mockSetup: func(m *MockQueryServiceInterface) {
				m.EXPECT().Listings(gomock.Any(), query.Filter{
					States: []models.ListingState{models.StateEndedSold, models.StateEndedUnsold},
				}).Return(query.Page{Items: []models.ListingSummary{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non_numeric_price",
			url:            "/listings?min_price=cheap",
			mockSetup:      func(*MockQueryServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative_offset",
			url:            "/listings?offset=-1",
			mockSetup:      func(*MockQueryServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_sort",
			url:  "/listings?sort=random",
			mockSetup: func(m *MockQueryServiceInterface) {
				m.EXPECT().Listings(gomock.Any(), gomock.Any()).Return(query.Page{}, biddingerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			queries := NewMockQueryServiceInterface(ctrl)
			tc.mockSetup(queries)
			router := newListingRouter(NewMockListingServiceInterface(ctrl), queries)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestGetListingHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queries := NewMockQueryServiceInterface(ctrl)
	router := newListingRouter(NewMockListingServiceInterface(ctrl), queries)

	queries.EXPECT().Listing(gomock.Any(), "l1").Return(models.ListingDetail{
		Listing:    models.Listing{ListingID: "l1", CurrentBid: 900},
		Bids:       []models.Bid{{ListingID: "l1", Amount: 900, Sequence: 1}},
		ReserveMet: true,
	}, nil)
	queries.EXPECT().Listing(gomock.Any(), "missing").Return(models.ListingDetail{}, biddingerrors.ErrListingNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listings/l1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.ListingDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "l1", resp.Data.Listing.ListingID)
	require.Len(t, resp.Data.Bids, 1)
	require.True(t, resp.Data.ReserveMet)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listings/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandlers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	queries := NewMockQueryServiceInterface(ctrl)
	router := newListingRouter(NewMockListingServiceInterface(ctrl), queries)

	queries.EXPECT().SellerListings(gomock.Any(), "s1").Return([]models.ListingSummary{{ListingID: "l1"}, {ListingID: "l2"}}, nil)
	queries.EXPECT().SellerListings(gomock.Any(), "nobody").Return(nil, nil)
	queries.EXPECT().BidderActivity(gomock.Any(), "u1").Return([]models.BidderActivity{
		{Listing: models.ListingSummary{ListingID: "l1"}, TopBid: 500, BidCount: 2, Status: models.BidderLeading},
	}, nil)
	queries.EXPECT().BidderActivity(gomock.Any(), "broken").Return(nil, errors.New("database failure"))

	tests := []struct {
		url            string
		expectedStatus int
		expectedCount  int
	}{
		{url: "/users/s1/listings", expectedStatus: http.StatusOK, expectedCount: 2},
		{url: "/users/nobody/listings", expectedStatus: http.StatusOK, expectedCount: 0},
		{url: "/users/u1/bids", expectedStatus: http.StatusOK, expectedCount: 1},
		{url: "/users/broken/bids", expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))
		require.Equal(t, tc.expectedStatus, w.Code, tc.url)
		if w.Code == http.StatusOK {
			resp := decodeBody(t, w)
			require.Len(t, resp["data"].([]any), tc.expectedCount, tc.url)
		}
	}
}
