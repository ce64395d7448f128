package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/arnavshah/team-scheduler/pkg/models"
	"github.com/arnavshah/team-scheduler/pkg/scheduler"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetSchedule returns a user's committed week with its total
func (h *Handler) GetSchedule(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, week, err := h.Store.GetSchedule(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ScheduleResponse{
		UserID:     user.ID,
		UserName:   user.Name,
		Schedule:   week,
		TotalHours: scheduler.TotalHours(week),
	})
}

// UpdateSchedule replaces a user's committed week
func (h *Handler) UpdateSchedule(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, h.unknownUserFirst(id, err))
		return
	}

	user, week, total, err := h.Store.SetSchedule(id, req.Schedule)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger(c).Info("schedule updated", zap.Int("user_id", id), zap.Float64("total_hours", total))
	c.JSON(http.StatusOK, models.ScheduleResponse{
		UserID:     user.ID,
		UserName:   user.Name,
		Schedule:   week,
		TotalHours: total,
	})
}

// GetPermanentAvailability returns a user's recurring availability
func (h *Handler) GetPermanentAvailability(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, week, err := h.Store.GetPermanentAvailability(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PermanentAvailabilityResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		Availability: week,
		TotalHours:   scheduler.TotalHours(week),
	})
}

// UpdatePermanentAvailability replaces a user's recurring availability
func (h *Handler) UpdatePermanentAvailability(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req models.PermanentAvailabilityRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, h.unknownUserFirst(id, err))
		return
	}

	user, week, total, err := h.Store.SetPermanentAvailability(id, req.Availability)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger(c).Info("permanent availability updated", zap.Int("user_id", id))
	c.JSON(http.StatusOK, models.PermanentAvailabilityResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		Availability: week,
		TotalHours:   total,
	})
}

// GetTemporaryAvailability returns a user's date overrides
func (h *Handler) GetTemporaryAvailability(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, overrides, err := h.Store.GetTemporaryAvailability(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TemporaryAvailabilityResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		Availability: overrides,
	})
}

// UpdateTemporaryAvailability sets the override for one date
func (h *Handler) UpdateTemporaryAvailability(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req models.TemporaryAvailabilityRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, h.unknownUserFirst(id, err))
		return
	}

	user, overrides, err := h.Store.SetTemporaryAvailability(id, req.Date, req.Availability)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger(c).Info("temporary availability set", zap.Int("user_id", id), zap.String("date", req.Date))
	c.JSON(http.StatusOK, models.TemporaryAvailabilityResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		Availability: overrides,
	})
}

// DeleteTemporaryAvailability removes the override for one date
func (h *Handler) DeleteTemporaryAvailability(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	date := strings.TrimSpace(c.Param("date"))
	if _, err := h.Store.RemoveTemporaryAvailability(id, date); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Temporary availability removed",
		"userId":  id,
		"date":    date,
	})
}

// GetAvailability resolves effective availability for a date range. from
// defaults to today and to defaults to six days after from.
func (h *Handler) GetAvailability(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, permanent, err := h.Store.GetPermanentAvailability(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	_, temporary, err := h.Store.GetTemporaryAvailability(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	from := time.Now().UTC()
	if v := c.Query("from"); v != "" {
		if from, err = scheduler.ParseDate("from", v); err != nil {
			h.respondError(c, err)
			return
		}
	}
	to := from.AddDate(0, 0, 6)
	if v := c.Query("to"); v != "" {
		if to, err = scheduler.ParseDate("to", v); err != nil {
			h.respondError(c, err)
			return
		}
	}

	days, err := scheduler.ResolveAvailability(permanent, temporary, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AvailabilityResponse{
		UserID:   user.ID,
		UserName: user.Name,
		From:     from.Format(scheduler.DateLayout),
		To:       to.Format(scheduler.DateLayout),
		Days:     days,
	})
}

// unknownUserFirst reports a missing user ahead of a body error
func (h *Handler) unknownUserFirst(id int, bodyErr error) error {
	if _, err := h.Store.GetUser(id); err != nil {
		return err
	}
	return bodyErr
}
