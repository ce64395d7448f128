package scheduler

import (
	"time"

	"github.com/arnavshah/team-scheduler/pkg/models"
	"go.uber.org/zap"
)

// Snapshot is a consistent copy of the directory and committed schedules
type Snapshot struct {
	Users     []models.User
	Schedules map[int]models.WeekMap
}

// Scheduler derives reports from store snapshots
type Scheduler struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{logger: logger, now: time.Now}
}

// WithClock replaces the clock used for generatedAt
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// WeeklySummary projects per-user and grand-total hours from the snapshot,
// in directory order. Temporary overrides are not applied.
func (s *Scheduler) WeeklySummary(snap Snapshot) models.WeeklySummary {
	entries := make([]models.WeeklySummaryEntry, 0, len(snap.Users))
	var grandTotal float64

	for _, u := range snap.Users {
		week, ok := snap.Schedules[u.ID]
		if !ok {
			week = models.EmptyWeek()
		}

		hours, total, invalid := WeekHours(week)
		if invalid > 0 {
			s.logger.Warn("schedule contains slots with non-positive duration; counted as 0",
				zap.Int("user_id", u.ID),
				zap.Int("invalid_slots", invalid))
		}

		entries = append(entries, models.WeeklySummaryEntry{
			UserID:     u.ID,
			UserName:   u.Name,
			UserRole:   u.Role,
			TotalHours: total,
			Hours:      hours,
			Schedule:   week,
		})
		grandTotal += total
	}

	return models.WeeklySummary{
		Users:       entries,
		GrandTotal:  grandTotal,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}
}
