package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekMapJSON_CalendarOrder(t *testing.T) {
	w := EmptyWeek()
	w[Wednesday] = []TimeSlot{{Start: "09:00", End: "10:00"}}
	w[Sunday] = nil

	b, err := json.Marshal(w)

	require.NoError(t, err)
	assert.Equal(t,
		`{"monday":[],"tuesday":[],"wednesday":[{"start":"09:00","end":"10:00"}],"thursday":[],"friday":[],"saturday":[],"sunday":[]}`,
		string(b))
}

func TestWeekMapJSON_Partial(t *testing.T) {
	b, err := json.Marshal(WeekMap{Friday: {}, Monday: {{Start: "08:00", End: "09:00"}}})

	require.NoError(t, err)
	assert.Equal(t, `{"monday":[{"start":"08:00","end":"09:00"}],"friday":[]}`, string(b))
}

func TestDailyHoursJSON(t *testing.T) {
	b, err := json.Marshal(DailyHours{Tuesday: 7.5, Monday: 8})

	require.NoError(t, err)
	assert.Equal(t, `{"monday":8,"tuesday":7.5}`, string(b))
}

func TestWeekInputDistinguishesNull(t *testing.T) {
	var in WeekInput
	require.NoError(t, json.Unmarshal([]byte(`{"monday":[],"tuesday":null}`), &in))

	require.Contains(t, in, "monday")
	require.NotNil(t, in["monday"])
	assert.Empty(t, *in["monday"])
	require.Contains(t, in, "tuesday")
	assert.Nil(t, in["tuesday"])
	assert.NotContains(t, in, "wednesday")
}

func TestClone(t *testing.T) {
	w := WeekMap{Monday: {{Start: "09:00", End: "10:00"}}}
	c := w.Clone()
	c[Monday][0].End = "11:00"

	assert.Equal(t, "10:00", w[Monday][0].End)
	assert.Nil(t, WeekMap(nil).Clone())
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday("monday"))
	assert.False(t, IsWeekday("Monday"))
	assert.False(t, IsWeekday("weekend"))
}

func TestErrors(t *testing.T) {
	v := NewValidationError("monday", "invalid slot %d", 2)
	wrapped := fmt.Errorf("saving: %w", v)

	assert.Equal(t, "monday: invalid slot 2", v.Error())
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(wrapped))

	n := &NotFoundError{Resource: "User", ID: "9"}
	assert.Equal(t, "User not found", n.Error())
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", n)))

	assert.Equal(t, "is required", (&ValidationError{Message: "is required"}).Error())

	internal := fmt.Errorf("%w: building daily rule", ErrInternal)
	assert.ErrorIs(t, internal, ErrInternal)
	assert.False(t, IsValidation(internal))
}
