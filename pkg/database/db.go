package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// MemoryDSN keeps the ledger in a SQLite database shared by all pool
// connections and discarded with the process
const MemoryDSN = "file::memory:?cache=shared"

// APIUsage represents the api_usage table: one counter per route and day
type APIUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Method       string `gorm:"uniqueIndex:idx_route_date;not null" json:"method"`
	Route        string `gorm:"uniqueIndex:idx_route_date;not null" json:"route"`
	Date         string `gorm:"uniqueIndex:idx_route_date;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
}

// Options selects the ledger backend
type Options struct {
	// DatabaseURL selects Postgres when set
	DatabaseURL string
	// DataPath is the SQLite path used otherwise; empty means MemoryDSN
	DataPath string
}

// InitDB opens the usage ledger and migrates the schema
func InitDB(opts Options) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if opts.DatabaseURL != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  opts.DatabaseURL,
			PreferSimpleProtocol: true,
		}), cfg)
	} else {
		path := opts.DataPath
		if path == "" {
			path = MemoryDSN
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&APIUsage{}); err != nil {
		return nil, fmt.Errorf("failed to migrate usage schema: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ledger records and reports request counts
type Ledger struct {
	DB  *gorm.DB
	Now func() time.Time
}

// NewLedger wraps an opened database
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db, Now: time.Now}
}

// Record increments today's counter for method and route with a single
// upsert (supported by both Postgres and SQLite)
func (l *Ledger) Record(method, route string) error {
	today := l.Now().UTC().Format("2006-01-02")
	return l.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "method"}, {Name: "route"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
		}),
	}).Create(&APIUsage{
		Method:       method,
		Route:        route,
		Date:         today,
		RequestCount: 1,
	}).Error
}

// Recent returns usage rows for the last days days, newest first
func (l *Ledger) Recent(days int) ([]APIUsage, error) {
	since := l.Now().UTC().AddDate(0, 0, -(days - 1)).Format("2006-01-02")
	var usage []APIUsage
	err := l.DB.Where("date >= ?", since).
		Order("date desc").Order("method").Order("route").
		Find(&usage).Error
	return usage, err
}
