package calendar

import (
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDaysLength(t *testing.T) {
	years := []int{1900, 1999, 2000, 2023, 2024, 2026, 2100, 2400, 1, 0, -1, -4, 10000, 12345}

	for _, year := range years {
		t.Run(fmt.Sprint(year), func(t *testing.T) {
			want := 365
			if IsLeapYear(year) {
				want = 366
			}

			days := GenerateDays(year)
			require.Len(t, days, want)
			assert.Equal(t, civil.Date{Year: year, Month: time.January, Day: 1}, days[0].Date)
			assert.Equal(t, civil.Date{Year: year, Month: time.December, Day: 31}, days[len(days)-1].Date)

			for i := 1; i < len(days); i++ {
				require.Equal(t, days[i-1].Date.AddDays(1), days[i].Date, "gap after %s", days[i-1].Date)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2026))
	assert.False(t, IsLeapYear(2100))
}

func TestGenerateDaysLabels(t *testing.T) {
	days := GenerateDays(2026)

	first := days[0]
	assert.Equal(t, 1, first.DayOfMonth)
	assert.Equal(t, "THU", first.DayOfWeek)
	assert.Equal(t, "JAN", first.MonthName)
	assert.True(t, first.FirstOfMonth)

	// 2026-03-10
	march10 := days[31+28+9]
	assert.Equal(t, civil.Date{Year: 2026, Month: time.March, Day: 10}, march10.Date)
	assert.Equal(t, "TUE", march10.DayOfWeek)
	assert.Equal(t, "MAR", march10.MonthName)
	assert.False(t, march10.FirstOfMonth)

	firsts := 0
	for _, d := range days {
		if d.FirstOfMonth {
			firsts++
			assert.Equal(t, 1, d.DayOfMonth)
		}
	}
	assert.Equal(t, 12, firsts)
}

func TestEachDayMatchesStepping(t *testing.T) {
	for _, year := range []int{1, 1582, 2024, 2026} {
		first := civil.Date{Year: year, Month: time.January, Day: 1}
		last := civil.Date{Year: year, Month: time.December, Day: 31}
		assert.Equal(t, stepDays(first, last), eachDay(year), "year %d", year)
	}
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(civil.Date{Year: 2026, Month: time.January, Day: 3}))
	assert.True(t, IsWeekend(civil.Date{Year: 2026, Month: time.January, Day: 4}))
	assert.False(t, IsWeekend(civil.Date{Year: 2026, Month: time.January, Day: 5}))
}
