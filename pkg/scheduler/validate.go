package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arnavshah/team-scheduler/pkg/models"
)

// DateLayout is the ISO calendar date format used for override keys
const DateLayout = "2006-01-02"

// checkSlot validates a single slot's format and ordering
func checkSlot(slot models.TimeSlot) error {
	start, err := ParseClock(slot.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := ParseClock(slot.End)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	if start >= end {
		return errors.New("start must be before end")
	}
	return nil
}

// ValidateSlots checks every slot of one day. field names the day in the
// returned ValidationError.
func ValidateSlots(field string, slots []models.TimeSlot) error {
	for i, slot := range slots {
		if err := checkSlot(slot); err != nil {
			return models.NewValidationError(field, "invalid time slot %d (%s-%s): %v", i, slot.Start, slot.End, err)
		}
	}
	return nil
}

// ParseWeek validates a full week from the wire: all seven days present,
// each a list, no unknown keys, every slot well-formed.
func ParseWeek(field string, in models.WeekInput) (models.WeekMap, error) {
	if in == nil {
		return nil, models.NewValidationError(field, "object is required")
	}
	if err := rejectUnknownDays(field, in); err != nil {
		return nil, err
	}

	week := make(models.WeekMap, len(models.Weekdays))
	for _, d := range models.Weekdays {
		slots, ok := in[string(d)]
		if !ok || slots == nil {
			return nil, models.NewValidationError(string(d), "a list of time slots is required")
		}
		if err := ValidateSlots(string(d), *slots); err != nil {
			return nil, err
		}
		week[d] = append([]models.TimeSlot{}, *slots...)
	}
	return week, nil
}

// ParsePartialWeek validates a temporary override: at least one known day,
// each a list of well-formed slots.
func ParsePartialWeek(field string, in models.WeekInput) (models.WeekMap, error) {
	if len(in) == 0 {
		return nil, models.NewValidationError(field, "is required")
	}
	if err := rejectUnknownDays(field, in); err != nil {
		return nil, err
	}

	week := make(models.WeekMap, len(in))
	for _, d := range models.Weekdays {
		slots, ok := in[string(d)]
		if !ok {
			continue
		}
		if slots == nil {
			return nil, models.NewValidationError(string(d), "a list of time slots is required")
		}
		if err := ValidateSlots(string(d), *slots); err != nil {
			return nil, err
		}
		week[d] = append([]models.TimeSlot{}, *slots...)
	}
	return week, nil
}

// ValidateWeek checks an already-typed full week, as loaded from a seed file
func ValidateWeek(week models.WeekMap) error {
	for d := range week {
		if !models.IsWeekday(string(d)) {
			return models.NewValidationError(string(d), "unknown day %q", d)
		}
	}
	for _, d := range models.Weekdays {
		if err := ValidateSlots(string(d), week[d]); err != nil {
			return err
		}
	}
	return nil
}

// ParseDate parses an ISO YYYY-MM-DD date
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, models.NewValidationError(field, "is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, models.NewValidationError(field, "invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func rejectUnknownDays(field string, in models.WeekInput) error {
	var unknown []string
	for key := range in {
		if !models.IsWeekday(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return models.NewValidationError(field, "unknown day(s): %s", strings.Join(unknown, ", "))
}
