package caseserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiHandleFunctions bundles the handler groups registered on the router.
type ApiHandleFunctions struct {
	CaseAPI CaseAPI
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(handlers ApiHandleFunctions) *gin.Engine {
	router := gin.Default()
	router.POST("/solve_case", handlers.CaseAPI.SolveCase)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}
