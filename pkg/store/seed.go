package store

import (
	"fmt"
	"strings"

	"github.com/arnavshah/team-scheduler/pkg/models"
	"github.com/arnavshah/team-scheduler/pkg/scheduler"
)

// SeedUser is one roster entry loaded at startup
type SeedUser struct {
	ID           int            `yaml:"id" validate:"gte=0"`
	Name         string         `yaml:"name" validate:"required"`
	Email        string         `yaml:"email" validate:"omitempty,email"`
	Role         string         `yaml:"role"`
	Schedule     models.WeekMap `yaml:"schedule"`
	Availability models.WeekMap `yaml:"availability"`
}

// Seed loads a roster into the store. Entries without an id take the next
// free one; days missing from a week are stored as empty lists.
func (s *Store) Seed(roster []SeedUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]bool, len(s.users))
	for _, u := range s.users {
		seen[u.ID] = true
	}

	// validate the whole roster before inserting anything
	nextID := s.nextID
	ids := make([]int, len(roster))
	for i, entry := range roster {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return fmt.Errorf("roster entry %d: %w", i, models.NewValidationError("name", "is required"))
		}
		if err := scheduler.ValidateWeek(entry.Schedule); err != nil {
			return fmt.Errorf("roster entry %d (%s) schedule: %w", i, name, err)
		}
		if err := scheduler.ValidateWeek(entry.Availability); err != nil {
			return fmt.Errorf("roster entry %d (%s) availability: %w", i, name, err)
		}

		id := entry.ID
		if id == 0 {
			id = nextID
		}
		if seen[id] {
			return fmt.Errorf("roster entry %d: duplicate user id %d", i, id)
		}
		seen[id] = true
		if id >= nextID {
			nextID = id + 1
		}
		ids[i] = id
	}

	for i, entry := range roster {
		role := strings.TrimSpace(entry.Role)
		if role == "" {
			role = models.DefaultRole
		}
		s.insertLocked(models.User{
			ID:    ids[i],
			Name:  strings.TrimSpace(entry.Name),
			Email: strings.TrimSpace(entry.Email),
			Role:  role,
		})
		s.schedules[ids[i]] = fillWeek(entry.Schedule)
		s.permanent[ids[i]] = fillWeek(entry.Availability)
	}
	return nil
}

// DefaultRoster is the three-member team the server starts with
func DefaultRoster() []SeedUser {
	return []SeedUser{
		{
			ID:   1,
			Name: "John Doe",
			Schedule: models.WeekMap{
				models.Monday:    {{Start: "09:00", End: "17:00"}},
				models.Tuesday:   {{Start: "09:00", End: "12:00"}, {Start: "12:30", End: "17:00"}},
				models.Wednesday: {{Start: "09:00", End: "17:00"}},
				models.Thursday:  {{Start: "10:00", End: "16:00"}},
				models.Friday:    {{Start: "09:00", End: "17:00"}},
			},
		},
		{
			ID:   2,
			Name: "Jane Smith",
			Schedule: models.WeekMap{
				models.Monday:    {{Start: "08:00", End: "16:00"}},
				models.Tuesday:   {{Start: "08:00", End: "16:00"}},
				models.Wednesday: {{Start: "08:00", End: "12:00"}},
				models.Thursday:  {{Start: "08:00", End: "16:00"}},
				models.Friday:    {{Start: "08:00", End: "16:00"}},
				models.Saturday:  {{Start: "10:00", End: "14:00"}},
			},
		},
		{
			ID:   3,
			Name: "Mike Johnson",
			Schedule: models.WeekMap{
				models.Monday:    {{Start: "12:00", End: "18:00"}},
				models.Tuesday:   {{Start: "09:00", End: "17:00"}},
				models.Wednesday: {{Start: "09:00", End: "17:00"}},
				models.Thursday:  {{Start: "09:00", End: "17:00"}},
				models.Friday:    {{Start: "09:00", End: "16:00"}},
				models.Sunday:    {{Start: "10:00", End: "13:00"}},
			},
		},
	}
}

func fillWeek(in models.WeekMap) models.WeekMap {
	out := models.EmptyWeek()
	for d, slots := range in {
		out[d] = append([]models.TimeSlot{}, slots...)
	}
	return out
}
