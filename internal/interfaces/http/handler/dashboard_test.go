package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizroot/backend/internal/application/dealtree"
	"github.com/bizroot/backend/internal/application/deals"
	"github.com/bizroot/backend/internal/domain/deal"
	"github.com/bizroot/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDashboardRouter(t *testing.T, service DealQuerier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	renderer, err := dealtree.NewRenderer()
	require.NoError(t, err)

	h := NewDashboardHandler(service, renderer)
	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	h.RegisterWebRoutes(r)
	return r
}

func treeFixture() []deals.FlattenedDeal {
	return []deals.FlattenedDeal{
		{
			ID:               uuid.NewString(),
			Amount:           decimal.NewFromInt(1200),
			Status:           "fully_paid",
			WonDate:          time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			ProductName:      "Audit Package",
			ClientFullName:   "Northwind Traders",
			OrganizationName: "Acme Corp",
			Installments: deal.Installments{
				{
					ScheduledDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
					Amount:        decimal.NewFromInt(1200),
					Status:        deal.InstallmentStatusPaid,
				},
			},
		},
	}
}

func TestDashboardHandler_Tree(t *testing.T) {
	t.Run("returns the built tree view", func(t *testing.T) {
		service := new(MockDealQuerier)
		orgID := uuid.NewString()
		service.On("QueryDeals", mock.Anything, deals.QueryRequest{
			OrganizationID: orgID,
			StartDate:      "2024-01-01",
			EndDate:        "2024-06-30",
		}).Return(treeFixture(), nil)

		r := newDashboardRouter(t, service)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/deals/tree?organizationId="+orgID+"&startDate=2024-01-01&endDate=2024-06-30", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Empty bool `json:"empty"`
				Deals []struct {
					Key        string `json:"key"`
					Title      string `json:"title"`
					ClientName string `json:"clientName"`
				} `json:"deals"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.False(t, resp.Data.Empty)
		require.Len(t, resp.Data.Deals, 1)
		assert.Equal(t, "deal-0", resp.Data.Deals[0].Key)
		assert.Equal(t, "Northwind Traders", resp.Data.Deals[0].ClientName)
		service.AssertExpectations(t)
	})

	t.Run("missing query parameters yield 400", func(t *testing.T) {
		service := new(MockDealQuerier)
		r := newDashboardRouter(t, service)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/deals/tree", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "QueryDeals")
	})

	t.Run("empty result yields empty tree", func(t *testing.T) {
		service := new(MockDealQuerier)
		orgID := uuid.NewString()
		service.On("QueryDeals", mock.Anything, mock.Anything).
			Return([]deals.FlattenedDeal{}, nil)

		r := newDashboardRouter(t, service)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/deals/tree?organizationId="+orgID+"&startDate=2024-01-01&endDate=2024-06-30", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Empty bool `json:"empty"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Empty)
	})
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	t.Run("renders HTML page", func(t *testing.T) {
		service := new(MockDealQuerier)
		orgID := uuid.NewString()
		service.On("QueryDeals", mock.Anything, mock.Anything).
			Return(treeFixture(), nil)

		r := newDashboardRouter(t, service)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/dashboard?organizationId="+orgID+"&startDate=2024-01-01&endDate=2024-06-30", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Northwind Traders")
		assert.Contains(t, w.Body.String(), `data-key="deal-0"`)
	})

	t.Run("empty result renders empty state", func(t *testing.T) {
		service := new(MockDealQuerier)
		orgID := uuid.NewString()
		service.On("QueryDeals", mock.Anything, mock.Anything).
			Return([]deals.FlattenedDeal{}, nil)

		r := newDashboardRouter(t, service)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/dashboard?organizationId="+orgID+"&startDate=2024-01-01&endDate=2024-06-30", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No deals to display")
	})
}
