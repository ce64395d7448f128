package scheduler

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/arnavshah/team-scheduler/pkg/models"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock converts an "HH:MM" clock time into minutes since midnight
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// SlotHours calculates the duration of a slot in hours. Unparseable clock
// times count as zero.
func SlotHours(slot models.TimeSlot) float64 {
	start, err := ParseClock(slot.Start)
	if err != nil {
		return 0
	}
	end, err := ParseClock(slot.End)
	if err != nil {
		return 0
	}
	return float64(end-start) / 60
}

// SumHours totals a slot list. Slots that are unparseable or end at or before
// their start contribute nothing and are counted in invalid.
func SumHours(slots []models.TimeSlot) (total float64, invalid int) {
	for _, slot := range slots {
		if checkSlot(slot) != nil {
			invalid++
			continue
		}
		total += SlotHours(slot)
	}
	return total, invalid
}

// WeekHours computes per-day hours and the week total
func WeekHours(week models.WeekMap) (models.DailyHours, float64, int) {
	hours := make(models.DailyHours, len(models.Weekdays))
	var total float64
	var invalid int
	for _, d := range models.Weekdays {
		h, bad := SumHours(week[d])
		hours[d] = h
		total += h
		invalid += bad
	}
	return hours, total, invalid
}

// TotalHours is the week total without the per-day breakdown
func TotalHours(week models.WeekMap) float64 {
	_, total, _ := WeekHours(week)
	return total
}
