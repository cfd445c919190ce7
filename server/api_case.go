package caseserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ordersapp "github.com/medsupply/inventory-case-api/internal/domains/orders/application"
	ordersports "github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
)

// CaseAPI wires HTTP transport with the orders case-resolution service.
type CaseAPI struct {
	service ordersports.Service
}

// NewCaseAPI creates a CaseAPI backed by the provided service.
func NewCaseAPI(service ordersports.Service) CaseAPI {
	return CaseAPI{service: service}
}

// CaseRequest is the solve-case request body.
type CaseRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// Post /solve_case
// Resolves a delivery-delay case for one order
func (api *CaseAPI) SolveCase(c *gin.Context) {
	var payload CaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	resolution, err := api.service.ResolveCase(c.Request.Context(), payload.ItemID)
	if err != nil {
		respondCaseServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolution.Message)
}

func respondCaseServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ordersports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, ordersapp.ErrMalformedRecord),
		errors.Is(err, ordersapp.ErrAdjudication):
		respondError(c, http.StatusInternalServerError, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
