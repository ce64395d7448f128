package store

import (
	"strconv"
	"strings"
	"sync"

	"github.com/arnavshah/team-scheduler/pkg/models"
	"github.com/arnavshah/team-scheduler/pkg/scheduler"
)

// Store holds the user directory and the three per-user week stores in
// process memory. All mutations take the write lock; reads return copies.
type Store struct {
	mu        sync.RWMutex
	users     []models.User
	nextID    int
	schedules map[int]models.WeekMap
	permanent map[int]models.WeekMap
	temporary map[int]map[string]models.WeekMap
}

// New returns an empty store whose first user gets id 1
func New() *Store {
	return &Store{
		nextID:    1,
		schedules: make(map[int]models.WeekMap),
		permanent: make(map[int]models.WeekMap),
		temporary: make(map[int]map[string]models.WeekMap),
	}
}

// ListUsers returns users in insertion order
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User{}, s.users...)
}

// GetUser looks up a user by id
func (s *Store) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, notFound(id)
	}
	return s.users[i], nil
}

// AddUser creates a user with the next id and empty week stores. email and
// role are optional; role defaults to models.DefaultRole.
func (s *Store) AddUser(name string, email, role *string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, models.NewValidationError("name", "is required")
	}

	u := models.User{Name: name, Role: models.DefaultRole}
	if email != nil {
		u.Email = strings.TrimSpace(*email)
	}
	if role != nil {
		if r := strings.TrimSpace(*role); r != "" {
			u.Role = r
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	s.insertLocked(u)
	return u, nil
}

// DeleteUser removes the user and every record keyed by it
func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	delete(s.schedules, id)
	delete(s.permanent, id)
	delete(s.temporary, id)
	return nil
}

// GetSchedule returns the user's committed week
func (s *Store) GetSchedule(id int) (models.User, models.WeekMap, error) {
	return s.getWeek(s.schedules, id)
}

// SetSchedule replaces the user's committed week and returns its total hours
func (s *Store) SetSchedule(id int, in models.WeekInput) (models.User, models.WeekMap, float64, error) {
	return s.setWeek(s.schedules, id, "schedule", in)
}

// GetPermanentAvailability returns the user's recurring availability
func (s *Store) GetPermanentAvailability(id int) (models.User, models.WeekMap, error) {
	return s.getWeek(s.permanent, id)
}

// SetPermanentAvailability replaces the user's recurring availability
func (s *Store) SetPermanentAvailability(id int, in models.WeekInput) (models.User, models.WeekMap, float64, error) {
	return s.setWeek(s.permanent, id, "availability", in)
}

// GetTemporaryAvailability returns the user's date overrides
func (s *Store) GetTemporaryAvailability(id int) (models.User, map[string]models.WeekMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, nil, notFound(id)
	}
	return s.users[i], cloneOverrides(s.temporary[id]), nil
}

// SetTemporaryAvailability sets the override for date, replacing any earlier
// entry for that date. Other dates are untouched.
func (s *Store) SetTemporaryAvailability(id int, date string, in models.WeekInput) (models.User, map[string]models.WeekMap, error) {
	// an unknown user wins over a malformed body
	if _, err := s.GetUser(id); err != nil {
		return models.User{}, nil, err
	}
	day, err := scheduler.ParseDate("date", date)
	if err != nil {
		return models.User{}, nil, err
	}
	partial, err := scheduler.ParsePartialWeek("availability", in)
	if err != nil {
		return models.User{}, nil, err
	}
	key := day.Format(scheduler.DateLayout)

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, nil, notFound(id)
	}
	overrides := s.temporary[id]
	if overrides == nil {
		overrides = make(map[string]models.WeekMap)
		s.temporary[id] = overrides
	}
	overrides[key] = partial
	return s.users[i], cloneOverrides(overrides), nil
}

// RemoveTemporaryAvailability drops the override for date. Removing a date
// that has no override is not an error.
func (s *Store) RemoveTemporaryAvailability(id int, date string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, notFound(id)
	}
	delete(s.temporary[id], strings.TrimSpace(date))
	return s.users[i], nil
}

// Snapshot copies the directory and schedules for the summary projection
func (s *Store) Snapshot() scheduler.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := scheduler.Snapshot{
		Users:     append([]models.User{}, s.users...),
		Schedules: make(map[int]models.WeekMap, len(s.schedules)),
	}
	for id, week := range s.schedules {
		snap.Schedules[id] = week.Clone()
	}
	return snap
}

// Count returns the number of users
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *Store) getWeek(weeks map[int]models.WeekMap, id int) (models.User, models.WeekMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, nil, notFound(id)
	}
	week, ok := weeks[id]
	if !ok {
		return s.users[i], models.EmptyWeek(), nil
	}
	return s.users[i], week.Clone(), nil
}

func (s *Store) setWeek(weeks map[int]models.WeekMap, id int, field string, in models.WeekInput) (models.User, models.WeekMap, float64, error) {
	if _, err := s.GetUser(id); err != nil {
		return models.User{}, nil, 0, err
	}
	week, err := scheduler.ParseWeek(field, in)
	if err != nil {
		return models.User{}, nil, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, nil, 0, notFound(id)
	}
	weeks[id] = week
	return s.users[i], week.Clone(), scheduler.TotalHours(week), nil
}

// insertLocked appends u and initializes its week stores. Caller holds mu.
func (s *Store) insertLocked(u models.User) {
	s.users = append(s.users, u)
	s.schedules[u.ID] = models.EmptyWeek()
	s.permanent[u.ID] = models.EmptyWeek()
	s.temporary[u.ID] = make(map[string]models.WeekMap)
	if u.ID >= s.nextID {
		s.nextID = u.ID + 1
	}
}

func (s *Store) indexOf(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int) error {
	return &models.NotFoundError{Resource: "User", ID: strconv.Itoa(id)}
}

func cloneOverrides(in map[string]models.WeekMap) map[string]models.WeekMap {
	out := make(map[string]models.WeekMap, len(in))
	for date, week := range in {
		out[date] = week.Clone()
	}
	return out
}
