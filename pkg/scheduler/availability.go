package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/arnavshah/team-scheduler/pkg/models"
	"github.com/teambition/rrule-go"
)

// MaxAvailabilityDays bounds the range accepted by ResolveAvailability
const MaxAvailabilityDays = 62

// ResolveAvailability expands [from, to] day by day. Each date takes the
// temporary override for its own weekday when one exists, otherwise the
// permanent pattern for that weekday.
func ResolveAvailability(permanent models.WeekMap, temporary map[string]models.WeekMap, from, to time.Time) ([]models.DayAvailability, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, models.NewValidationError("to", "must not be before from")
	}
	if int(to.Sub(from).Hours()/24)+1 > MaxAvailabilityDays {
		return nil, models.NewValidationError("to", "range must not exceed %d days", MaxAvailabilityDays)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: from,
		Until:   to,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: building daily rule: %v", models.ErrInternal, err)
	}

	dates := rule.All()
	days := make([]models.DayAvailability, 0, len(dates))
	for _, date := range dates {
		weekday := WeekdayOf(date)
		key := date.Format(DateLayout)

		slots := permanent[weekday]
		source := models.SourcePermanent
		if override, ok := temporary[key]; ok {
			if daySlots, ok := override[weekday]; ok {
				slots = daySlots
				source = models.SourceTemporary
			}
		}

		hours, _ := SumHours(slots)
		days = append(days, models.DayAvailability{
			Date:    key,
			Weekday: weekday,
			Source:  source,
			Slots:   append([]models.TimeSlot{}, slots...),
			Hours:   hours,
		})
	}
	return days, nil
}

// WeekdayOf maps a calendar date to its weekday key
func WeekdayOf(t time.Time) models.Weekday {
	return models.Weekday(strings.ToLower(t.Weekday().String()))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
