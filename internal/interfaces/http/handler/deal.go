package handler

import (
	"context"
	"errors"

	"github.com/bizroot/backend/internal/application/deals"
	"github.com/bizroot/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DealQuerier is the application-service surface the handler depends on
type DealQuerier interface {
	QueryDeals(ctx context.Context, req deals.QueryRequest) ([]deals.FlattenedDeal, error)
}

// DealHandler handles deal query API endpoints
type DealHandler struct {
	BaseHandler
	service DealQuerier
}

// NewDealHandler creates a new DealHandler
func NewDealHandler(service DealQuerier) *DealHandler {
	return &DealHandler{service: service}
}

// QueryDealsRequest is the request body for POST /deals
type QueryDealsRequest struct {
	OrganizationID string `json:"organizationId" binding:"required,uuid"`
	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate" binding:"required"`
	DealType       string `json:"dealType"`
}

// QueryDeals returns the flattened deal list matching the filter request
func (h *DealHandler) QueryDeals(c *gin.Context) {
	var req QueryDealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			middleware.HandleValidationError(c, err)
			return
		}
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.QueryDeals(c.Request.Context(), deals.QueryRequest{
		OrganizationID: req.OrganizationID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DealType:       req.DealType,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RegisterRoutes registers the deal routes
func (h *DealHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/deals")
	{
		group.POST("", h.QueryDeals)
	}
}
