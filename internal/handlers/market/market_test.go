package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/dto"
	"github.com/nightfable/nightfable/internal/pg"
	"github.com/nightfable/nightfable/internal/service/marketservice"
	"github.com/nightfable/nightfable/pkg/auth"
	"github.com/nightfable/nightfable/pkg/utils"
)

func NewMock(t *testing.T) (*MarketHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func purchaseRequest(storyID string) *http.Request {
	req := httptest.NewRequest("POST", "/api/store/"+storyID+"/purchase", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, "buyer-1"))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", storyID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListStoreHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Store listed", func(t *testing.T) {
		service.EXPECT().ListStore(gomock.Any()).Return([]domain.Story{
			{ID: "story-1", Title: "The Sleepy Comet", Visibility: domain.VisibilityPublic, Status: domain.StatusReady},
		}, nil)

		req := httptest.NewRequest("GET", "/api/store", nil)
		rr := httptest.NewRecorder()

		handler.ListStore(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.StoryResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "story-1", resp[0].ID)
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().ListStore(gomock.Any()).Return(nil, errors.New("database error"))

		req := httptest.NewRequest("GET", "/api/store", nil)
		rr := httptest.NewRecorder()

		handler.ListStore(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedKind string
	}{
		{
			name: "Successful purchase",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), "buyer-1", "story-1").Return(int64(3), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Story not found",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), "buyer-1", "story-1").
					Return(int64(0), marketservice.ErrStoryNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedKind: "NOT_FOUND",
		},
		{
			name: "Story not public",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), "buyer-1", "story-1").
					Return(int64(0), marketservice.ErrNotPublic)
			},
			expectedCode: http.StatusBadRequest,
			expectedKind: "NOT_PUBLIC",
		},
		{
			name: "Own story",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), "buyer-1", "story-1").
					Return(int64(0), marketservice.ErrCannotBuyOwnStory)
			},
			expectedCode: http.StatusBadRequest,
			expectedKind: "CANT_BUY_OWN",
		},
		{
			name: "Already purchased",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), "buyer-1", "story-1").
					Return(int64(0), marketservice.ErrAlreadyPurchased)
			},
			expectedCode: http.StatusConflict,
			expectedKind: "ALREADY_PURCHASED",
		},
		{
			name: "Not enough credits",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), "buyer-1", "story-1").
					Return(int64(0), marketservice.ErrInsufficientCredits)
			},
			expectedCode: http.StatusPaymentRequired,
			expectedKind: "INSUFFICIENT_CREDITS",
		},
		{
			name: "Concurrent purchase conflict",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), "buyer-1", "story-1").
					Return(int64(0), pg.ErrTxConflict)
			},
			expectedCode: http.StatusConflict,
			expectedKind: "TX_CONFLICT",
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), "buyer-1", "story-1").
					Return(int64(0), errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedKind: "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Purchase(rr, purchaseRequest("story-1"))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedKind != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedKind, resp.Code)
			} else {
				var resp dto.PurchaseResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, int64(3), resp.RemainingCredits)
			}
		})
	}
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, "user-1"))
}

func TestGetPurchasesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Purchase history returned", func(t *testing.T) {
		service.EXPECT().ListPurchases(gomock.Any(), "user-1").Return([]domain.Purchase{
			{BuyerID: "user-1", StoryID: "story-1", AuthorID: "author-1", Price: 5, Title: "The Sleepy Comet"},
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetPurchases(rr, authedRequest("GET", "/api/user/purchases"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.PurchaseHistoryDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "story-1", resp[0].StoryID)
		assert.Equal(t, int64(5), resp[0].Price)
	})

	t.Run("No purchases yet", func(t *testing.T) {
		service.EXPECT().ListPurchases(gomock.Any(), "user-1").Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.GetPurchases(rr, authedRequest("GET", "/api/user/purchases"))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().ListPurchases(gomock.Any(), "user-1").
			Return(nil, errors.New("database error"))

		rr := httptest.NewRecorder()
		handler.GetPurchases(rr, authedRequest("GET", "/api/user/purchases"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetSalesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Sales history returned", func(t *testing.T) {
		service.EXPECT().ListSales(gomock.Any(), "user-1").Return([]domain.Sale{
			{ID: 1, AuthorID: "user-1", StoryID: "story-1", BuyerID: "buyer-1", Price: 5, Title: "The Sleepy Comet"},
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetSales(rr, authedRequest("GET", "/api/user/sales"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.SaleHistoryDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "story-1", resp[0].StoryID)
	})

	t.Run("No sales yet", func(t *testing.T) {
		service.EXPECT().ListSales(gomock.Any(), "user-1").Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.GetSales(rr, authedRequest("GET", "/api/user/sales"))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().ListSales(gomock.Any(), "user-1").
			Return(nil, errors.New("database error"))

		rr := httptest.NewRecorder()
		handler.GetSales(rr, authedRequest("GET", "/api/user/sales"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
