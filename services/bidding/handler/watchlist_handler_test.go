package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestWatchlistHandlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		url            string
		mockSetup      func(w *MockWatchlistServiceInterface, q *MockQueryServiceInterface)
		expectedStatus int
		validate       func(t *testing.T, data any)
	}{
		{
			name:   "add_new",
			method: http.MethodPost,
			url:    "/watchlist/u1/l1",
			mockSetup: func(w *MockWatchlistServiceInterface, _ *MockQueryServiceInterface) {
				w.EXPECT().Add(gomock.Any(), "u1", "l1").Return(true, nil)
			},
			expectedStatus: http.StatusCreated,
			validate: func(t *testing.T, data any) {
				m := data.(map[string]any)
				require.Equal(t, true, m["watching"])
				require.Equal(t, true, m["changed"])
			},
		},
		{
			name:   "add_again_is_idempotent",
			method: http.MethodPost,
			url:    "/watchlist/u1/l1",
			mockSetup: func(w *MockWatchlistServiceInterface, _ *MockQueryServiceInterface) {
				w.EXPECT().Add(gomock.Any(), "u1", "l1").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, data any) {
				require.Equal(t, false, data.(map[string]any)["changed"])
			},
		},
		{
			name:   "add_unknown_listing",
			method: http.MethodPost,
			url:    "/watchlist/u1/missing",
			mockSetup: func(w *MockWatchlistServiceInterface, _ *MockQueryServiceInterface) {
				w.EXPECT().Add(gomock.Any(), "u1", "missing").Return(false, biddingerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			url:    "/watchlist/u1/l1",
			mockSetup: func(w *MockWatchlistServiceInterface, _ *MockQueryServiceInterface) {
				w.EXPECT().Remove(gomock.Any(), "u1", "l1").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, data any) {
				m := data.(map[string]any)
				require.Equal(t, false, m["watching"])
				require.Equal(t, true, m["changed"])
			},
		},
		{
			name:   "check",
			method: http.MethodGet,
			url:    "/watchlist/u1/l1",
			mockSetup: func(w *MockWatchlistServiceInterface, _ *MockQueryServiceInterface) {
				w.EXPECT().Contains(gomock.Any(), "u1", "l1").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, data any) {
				require.Equal(t, true, data.(map[string]any)["watching"])
			},
		},
		{
			name:   "list",
			method: http.MethodGet,
			url:    "/watchlist/u1",
			mockSetup: func(_ *MockWatchlistServiceInterface, q *MockQueryServiceInterface) {
				q.EXPECT().Watchlist(gomock.Any(), "u1").Return([]models.ListingSummary{{ListingID: "l1"}, {ListingID: "l2"}}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, data any) {
				require.Len(t, data.([]any), 2)
			},
		},
		{
			name:   "list_empty",
			method: http.MethodGet,
			url:    "/watchlist/nobody",
			mockSetup: func(_ *MockWatchlistServiceInterface, q *MockQueryServiceInterface) {
				q.EXPECT().Watchlist(gomock.Any(), "nobody").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, data any) {
				require.Empty(t, data.([]any))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			watch := NewMockWatchlistServiceInterface(ctrl)
			queries := NewMockQueryServiceInterface(ctrl)
			tc.mockSetup(watch, queries)

			h := NewWatchlistHandler(watch, queries)
			router := gin.New()
			router.POST("/watchlist/:user_id/:listing_id", h.AddHandler)
			router.DELETE("/watchlist/:user_id/:listing_id", h.RemoveHandler)
			router.GET("/watchlist/:user_id/:listing_id", h.CheckHandler)
			router.GET("/watchlist/:user_id", h.ListHandler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.url, nil))

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.validate != nil {
				tc.validate(t, decodeBody(t, w)["data"])
			}
		})
	}
}
