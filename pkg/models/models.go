package models

import (
	"bytes"
	"encoding/json"
)

// DefaultRole is assigned to users created without a role
const DefaultRole = "Team Member"

// Weekday is one of the seven lower-case weekday keys used in week maps
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists the week in calendar order, monday first
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsWeekday reports whether s is one of the seven weekday keys
func IsWeekday(s string) bool {
	for _, d := range Weekdays {
		if string(d) == s {
			return true
		}
	}
	return false
}

// User represents a team member
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TimeSlot is a clock range within a single day, "HH:MM" 24-hour
type TimeSlot struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// WeekMap maps weekdays to slot lists. A full week carries all seven keys,
// a partial week (temporary override) only the overridden days.
type WeekMap map[Weekday][]TimeSlot

// EmptyWeek returns a week with all seven days mapped to empty lists
func EmptyWeek() WeekMap {
	w := make(WeekMap, len(Weekdays))
	for _, d := range Weekdays {
		w[d] = []TimeSlot{}
	}
	return w
}

// Clone returns a deep copy of the week
func (w WeekMap) Clone() WeekMap {
	if w == nil {
		return nil
	}
	out := make(WeekMap, len(w))
	for d, slots := range w {
		out[d] = append([]TimeSlot{}, slots...)
	}
	return out
}

// MarshalJSON writes the days in calendar order, empty days as []
func (w WeekMap) MarshalJSON() ([]byte, error) {
	return marshalWeek(w, func(slots []TimeSlot) any {
		if slots == nil {
			return []TimeSlot{}
		}
		return slots
	})
}

// DailyHours maps weekdays to the hours worked on that day
type DailyHours map[Weekday]float64

// MarshalJSON writes the days in calendar order
func (h DailyHours) MarshalJSON() ([]byte, error) {
	return marshalWeek(h, func(v float64) any { return v })
}

func marshalWeek[V any](m map[Weekday]V, value func(V) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, d := range Weekdays {
		v, ok := m[d]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, _ := json.Marshal(string(d))
		buf.Write(key)
		buf.WriteByte(':')
		b, err := json.Marshal(value(v))
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WeekInput is a week as received on the wire. Pointers let validation tell
// a missing or null day apart from an empty list.
type WeekInput map[string]*[]TimeSlot

// CreateUserRequest is the body of POST /api/users
type CreateUserRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// ScheduleRequest is the body of PUT /api/users/:id/schedule
type ScheduleRequest struct {
	Schedule WeekInput `json:"schedule" binding:"required"`
}

// PermanentAvailabilityRequest is the body of PUT /api/users/:id/permanent-availability
type PermanentAvailabilityRequest struct {
	Availability WeekInput `json:"availability" binding:"required"`
}

// TemporaryAvailabilityRequest is the body of PUT /api/users/:id/temporary-availability
type TemporaryAvailabilityRequest struct {
	Date         string    `json:"date" binding:"required"`
	Availability WeekInput `json:"availability" binding:"required"`
}

// ScheduleResponse carries a user's full week and its total
type ScheduleResponse struct {
	UserID     int     `json:"userId"`
	UserName   string  `json:"userName"`
	Schedule   WeekMap `json:"schedule"`
	TotalHours float64 `json:"totalHours"`
}

// PermanentAvailabilityResponse carries a user's recurring availability
type PermanentAvailabilityResponse struct {
	UserID       int     `json:"userId"`
	UserName     string  `json:"userName"`
	Availability WeekMap `json:"availability"`
	TotalHours   float64 `json:"totalHours"`
}

// TemporaryAvailabilityResponse carries a user's date overrides
type TemporaryAvailabilityResponse struct {
	UserID       int                `json:"userId"`
	UserName     string             `json:"userName"`
	Availability map[string]WeekMap `json:"availability"`
}

// WeeklySummaryEntry is the derived hours report for one user
type WeeklySummaryEntry struct {
	UserID     int        `json:"userId"`
	UserName   string     `json:"userName"`
	UserRole   string     `json:"userRole"`
	TotalHours float64    `json:"totalHours"`
	Hours      DailyHours `json:"hours"`
	Schedule   WeekMap    `json:"schedule"`
}

// WeeklySummary is the report returned by GET /api/weekly-summary
type WeeklySummary struct {
	Users       []WeeklySummaryEntry `json:"users"`
	GrandTotal  float64              `json:"grandTotal"`
	GeneratedAt string               `json:"generatedAt"`
}

// Availability sources
const (
	SourcePermanent = "permanent"
	SourceTemporary = "temporary"
)

// DayAvailability is the effective availability on one calendar date
type DayAvailability struct {
	Date    string     `json:"date"`
	Weekday Weekday    `json:"weekday"`
	Source  string     `json:"source"`
	Slots   []TimeSlot `json:"slots"`
	Hours   float64    `json:"hours"`
}

// AvailabilityResponse is returned by GET /api/users/:id/availability
type AvailabilityResponse struct {
	UserID   int               `json:"userId"`
	UserName string            `json:"userName"`
	From     string            `json:"from"`
	To       string            `json:"to"`
	Days     []DayAvailability `json:"days"`
}

// DisplaySlot is one entry of the time-slot picker
type DisplaySlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
