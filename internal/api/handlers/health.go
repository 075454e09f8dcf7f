package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amiyamandal-dev/podgrid/pkg/logger"
)

// HealthChecker reports whether the favorites database is usable
type HealthChecker interface {
	HealthCheck() error
}

// DocumentCounter reports the size of the favorites search index
type DocumentCounter interface {
	Count() (uint64, error)
}

// HealthHandler handles health check requests
type HealthHandler struct {
	db          HealthChecker
	searchIndex DocumentCounter
	logger      *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db HealthChecker, searchIndex DocumentCounter, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:          db,
		searchIndex: searchIndex,
		logger:      log.WithComponent("health-handler"),
	}
}

// Health returns basic health status
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Readiness checks the favorites database and search index
func (h *HealthHandler) Readiness(c *gin.Context) {
	dbErr := h.db.HealthCheck()
	searchCount, searchErr := h.searchIndex.Count()

	if dbErr != nil {
		h.logger.Warn("Database health check failed", "error", dbErr)
	}
	if searchErr != nil {
		h.logger.Warn("Search index health check failed", "error", searchErr)
	}

	checks := gin.H{
		"database": gin.H{
			"healthy": dbErr == nil,
		},
		"search": gin.H{
			"healthy":        searchErr == nil,
			"document_count": searchCount,
		},
	}

	status, code := "ready", http.StatusOK
	if dbErr != nil || searchErr != nil {
		status, code = "not ready", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"checks": checks,
	})
}

// Liveness checks if the service is alive
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
