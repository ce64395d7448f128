package handler

import (
	"net/http"

	"github.com/arnavshah/team-scheduler/internal/app"
	"github.com/arnavshah/team-scheduler/internal/config"
	"github.com/arnavshah/team-scheduler/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var r http.Handler

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_, _ = config.LoadEnvFile(".env", "../.env")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("could not build app", zap.Error(err))
	}
	r = a.Router
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
