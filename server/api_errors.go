package caseserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/medsupply/inventory-case-api/internal/shared/errors"
)

// respondError maps a status plus error into an RFC 7807 response.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	apierrors.Respond(c, problem)
}
