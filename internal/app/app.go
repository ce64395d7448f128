package app

import (
	"fmt"

	"github.com/arnavshah/team-scheduler/internal/config"
	"github.com/arnavshah/team-scheduler/pkg/database"
	"github.com/arnavshah/team-scheduler/pkg/handlers"
	"github.com/arnavshah/team-scheduler/pkg/scheduler"
	"github.com/arnavshah/team-scheduler/pkg/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the assembled service: seeded store, optional usage ledger and router
type App struct {
	Router *gin.Engine
	Store  *store.Store
	db     *gorm.DB
}

// New builds the service from configuration
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	roster := store.DefaultRoster()
	if cfg.SeedFile != "" {
		loaded, err := config.LoadRoster(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		roster = loaded
		logger.Info("loaded seed roster", zap.String("path", cfg.SeedFile), zap.Int("users", len(roster)))
	}

	st := store.New()
	if err := st.Seed(roster); err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	h := &handlers.Handler{
		Store:     st,
		Scheduler: scheduler.NewScheduler(logger),
		Logger:    logger,
	}

	a := &App{Store: st}
	if cfg.UsageTracking {
		db, err := database.InitDB(database.Options{
			DatabaseURL: cfg.DatabaseURL,
			DataPath:    cfg.DataPath,
		})
		if err != nil {
			return nil, err
		}
		a.db = db
		h.Usage = database.NewLedger(db)
	}

	a.Router = handlers.NewRouter(h)
	return a, nil
}

// Close releases the usage ledger
func (a *App) Close() error {
	return database.Close(a.db)
}
