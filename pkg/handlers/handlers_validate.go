package handlers

import (
	"net/http"

	"github.com/arnavshah/team-scheduler/pkg/models"
	"github.com/arnavshah/team-scheduler/pkg/scheduler"
	"github.com/gin-gonic/gin"
)

// ValidateSchedule checks a week without storing it
func (h *Handler) ValidateSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	week, err := scheduler.ParseWeek("schedule", req.Schedule)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	hours, total, _ := scheduler.WeekHours(week)
	c.JSON(http.StatusOK, gin.H{
		"valid":      true,
		"hours":      hours,
		"totalHours": total,
	})
}
