package scheduler

import (
	"testing"
	"time"

	"github.com/arnavshah/team-scheduler/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestResolveAvailability(t *testing.T) {
	permanent := models.EmptyWeek()
	permanent[models.Monday] = []models.TimeSlot{{Start: "09:00", End: "17:00"}}
	permanent[models.Tuesday] = []models.TimeSlot{{Start: "09:00", End: "13:00"}}

	temporary := map[string]models.WeekMap{
		// 2025-03-11 is a Tuesday
		"2025-03-11": {models.Tuesday: {{Start: "14:00", End: "16:00"}}},
		// override keyed for a different weekday than the date's own is ignored
		"2025-03-12": {models.Monday: {{Start: "06:00", End: "22:00"}}},
	}

	days, err := ResolveAvailability(permanent, temporary, date(t, "2025-03-10"), date(t, "2025-03-16"))
	require.NoError(t, err)
	require.Len(t, days, 7)

	assert.Equal(t, "2025-03-10", days[0].Date)
	assert.Equal(t, models.Monday, days[0].Weekday)
	assert.Equal(t, models.SourcePermanent, days[0].Source)
	assert.Equal(t, 8.0, days[0].Hours)

	assert.Equal(t, models.Tuesday, days[1].Weekday)
	assert.Equal(t, models.SourceTemporary, days[1].Source)
	assert.Equal(t, []models.TimeSlot{{Start: "14:00", End: "16:00"}}, days[1].Slots)
	assert.Equal(t, 2.0, days[1].Hours)

	assert.Equal(t, models.Wednesday, days[2].Weekday)
	assert.Equal(t, models.SourcePermanent, days[2].Source)
	assert.Equal(t, 0.0, days[2].Hours)
	assert.NotNil(t, days[2].Slots)

	assert.Equal(t, "2025-03-16", days[6].Date)
	assert.Equal(t, models.Sunday, days[6].Weekday)
}

func TestResolveAvailability_SingleDay(t *testing.T) {
	days, err := ResolveAvailability(models.EmptyWeek(), nil, date(t, "2025-03-14"), date(t, "2025-03-14"))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, models.Friday, days[0].Weekday)
}

func TestResolveAvailability_InvalidRange(t *testing.T) {
	_, err := ResolveAvailability(models.EmptyWeek(), nil, date(t, "2025-03-14"), date(t, "2025-03-13"))
	assert.True(t, models.IsValidation(err))

	_, err = ResolveAvailability(models.EmptyWeek(), nil, date(t, "2025-01-01"), date(t, "2025-06-01"))
	assert.True(t, models.IsValidation(err))
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, models.Saturday, WeekdayOf(date(t, "2025-03-15")))
	assert.Equal(t, models.Sunday, WeekdayOf(date(t, "2025-03-16")))
}
