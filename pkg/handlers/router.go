package handlers

import (
	"github.com/arnavshah/team-scheduler/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires middleware and every route onto a fresh engine
func NewRouter(h *Handler) *gin.Engine {
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(logging.Middleware(h.Logger), logging.Recovery(h.Logger))
	r.Use(cors.Default())
	r.Use(h.UsageMiddleware())

	// Client view - serve static files from embedded FS
	r.GET("/", h.ClientView)
	r.StaticFS("/static", h.GetStaticFS())

	api := r.Group("/api")
	{
		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		api.GET("/users/:id/schedule", h.GetSchedule)
		api.PUT("/users/:id/schedule", h.UpdateSchedule)

		api.GET("/users/:id/permanent-availability", h.GetPermanentAvailability)
		api.PUT("/users/:id/permanent-availability", h.UpdatePermanentAvailability)

		api.GET("/users/:id/temporary-availability", h.GetTemporaryAvailability)
		api.PUT("/users/:id/temporary-availability", h.UpdateTemporaryAvailability)
		api.DELETE("/users/:id/temporary-availability/:date", h.DeleteTemporaryAvailability)

		api.GET("/users/:id/availability", h.GetAvailability)

		api.GET("/weekly-summary", h.WeeklySummary)
		api.GET("/time-slots", h.TimeSlots)
		api.POST("/validate", h.ValidateSchedule)
		api.GET("/usage", h.GetUsage)
		api.GET("/health", h.Health)
	}

	r.NoRoute(h.NotFound)

	return r
}
