package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/bizroot/backend/internal/application/dealtree"
	"github.com/bizroot/backend/internal/application/deals"
	"github.com/bizroot/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DashboardHandler serves the deal hierarchy, both as a JSON tree and as the
// rendered dashboard page.
type DashboardHandler struct {
	BaseHandler
	service  DealQuerier
	renderer *dealtree.Renderer
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service DealQuerier, renderer *dealtree.Renderer) *DashboardHandler {
	return &DashboardHandler{service: service, renderer: renderer}
}

// TreeRequest carries the filter parameters for the tree endpoints
type TreeRequest struct {
	OrganizationID string `form:"organizationId" binding:"required,uuid"`
	StartDate      string `form:"startDate" binding:"required"`
	EndDate        string `form:"endDate" binding:"required"`
	DealType       string `form:"dealType"`
}

func (h *DashboardHandler) queryTree(c *gin.Context) (*dealtree.TreeView, bool) {
	var req TreeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			middleware.HandleValidationError(c, err)
			return nil, false
		}
		h.BadRequest(c, "Invalid query parameters")
		return nil, false
	}

	flattened, err := h.service.QueryDeals(c.Request.Context(), deals.QueryRequest{
		OrganizationID: req.OrganizationID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DealType:       req.DealType,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return nil, false
	}

	return dealtree.Build(flattened, dealtree.NewTreeState()), true
}

// Tree returns the collapsible deal hierarchy as JSON
func (h *DashboardHandler) Tree(c *gin.Context) {
	view, ok := h.queryTree(c)
	if !ok {
		return
	}
	h.Success(c, view)
}

// Dashboard renders the deal hierarchy as an HTML page
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	view, ok := h.queryTree(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view); err != nil {
		h.InternalError(c, "Failed to render dashboard")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// RegisterRoutes registers the tree route under the API group
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/deals")
	{
		group.GET("/tree", h.Tree)
	}
}

// RegisterWebRoutes registers the HTML dashboard outside the API group
func (h *DashboardHandler) RegisterWebRoutes(engine *gin.Engine) {
	engine.GET("/dashboard", h.Dashboard)
}
