package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const usageWindowDays = 30

// UsageMiddleware counts each matched route once per request
func (h *Handler) UsageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if h.Usage == nil || route == "" {
			return
		}
		if err := h.Usage.Record(c.Request.Method, route); err != nil {
			h.logger(c).Warn("failed to record usage", zap.String("route", route), zap.Error(err))
		}
	}
}

// GetUsage returns request counts for the last 30 days
func (h *Handler) GetUsage(c *gin.Context) {
	if h.Usage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Usage tracking is disabled"})
		return
	}

	usage, err := h.Usage.Recent(usageWindowDays)
	if err != nil {
		h.logger(c).Error("could not fetch usage", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}

	// Calculate totals
	var totalRequests int64
	byRoute := make(map[string]int64)
	for _, u := range usage {
		totalRequests += int64(u.RequestCount)
		byRoute[u.Method+" "+u.Route] += int64(u.RequestCount)
	}

	c.JSON(http.StatusOK, gin.H{
		"usage": usage,
		"totals": gin.H{
			"requests": totalRequests,
			"routes":   byRoute,
		},
	})
}
