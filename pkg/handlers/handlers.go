package handlers

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/arnavshah/team-scheduler/internal/logging"
	"github.com/arnavshah/team-scheduler/pkg/database"
	"github.com/arnavshah/team-scheduler/pkg/models"
	"github.com/arnavshah/team-scheduler/pkg/scheduler"
	"github.com/arnavshah/team-scheduler/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:embed static/*
var staticEmbed embed.FS

// Handler contains dependencies for the route handlers
type Handler struct {
	Store     *store.Store
	Scheduler *scheduler.Scheduler
	// Usage is optional; nil disables request counting
	Usage  *database.Ledger
	Logger *zap.Logger
}

// ListUsers returns the directory in insertion order
func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListUsers())
}

// CreateUser adds a user with empty schedule and availability
func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.Store.AddUser(req.Name, req.Email, req.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger(c).Info("user created", zap.Int("user_id", user.ID), zap.String("name", user.Name))
	c.JSON(http.StatusCreated, user)
}

// DeleteUser removes a user and everything recorded for it
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteUser(id); err != nil {
		h.respondError(c, err)
		return
	}

	h.logger(c).Info("user deleted", zap.Int("user_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// WeeklySummary recomputes per-user and grand-total hours
func (h *Handler) WeeklySummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Scheduler.WeeklySummary(h.Store.Snapshot()))
}

// TimeSlots returns the picker grid
func (h *Handler) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, scheduler.TimeSlots())
}

// Health reports liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"users":     h.Store.Count(),
	})
}

// NotFound answers unknown routes
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api") {
		c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
}

// ClientView serves the team schedule page from embedded files
func (h *Handler) ClientView(c *gin.Context) {
	data, err := staticEmbed.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "static/index.html not found in embedded FS"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// GetStaticFS returns the embedded filesystem for static assets
func (h *Handler) GetStaticFS() http.FileSystem {
	sub, err := fs.Sub(staticEmbed, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// userID parses the :id parameter. Ids that are not integers cannot name a
// user, so they are answered like unknown ids.
func (h *Handler) userID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondError(c, &models.NotFoundError{Resource: "User", ID: c.Param("id")})
		return 0, false
	}
	return id, true
}

// respondError maps domain errors onto status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	var (
		vErr *models.ValidationError
		nErr *models.NotFoundError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.As(err, &nErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nErr.Error()})
	default:
		_ = c.Error(err)
		h.logger(c).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "Something went wrong!",
		})
	}
}

func (h *Handler) logger(c *gin.Context) *zap.Logger {
	return logging.FromContext(c, h.Logger)
}

// bindJSON decodes the body and turns binding failures into validation errors
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return models.NewValidationError(strings.ToLower(fe.Field()), "is %s", fe.Tag())
	}
	return models.NewValidationError("", "Invalid request body: %v", err)
}
