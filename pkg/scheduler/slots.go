package scheduler

import (
	"time"

	"github.com/arnavshah/team-scheduler/pkg/models"
)

const (
	slotsFrom = 6 * time.Hour
	slotsTo   = 22 * time.Hour
	slotStep  = 30 * time.Minute
)

// TimeSlots returns the display grid from 06:00 to 22:00 inclusive in
// 30-minute steps
func TimeSlots() []models.DisplaySlot {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	var slots []models.DisplaySlot
	for offset := slotsFrom; offset <= slotsTo; offset += slotStep {
		t := base.Add(offset)
		slots = append(slots, models.DisplaySlot{
			Value: t.Format("15:04"),
			Label: t.Format("3:04 PM"),
		})
	}
	return slots
}
