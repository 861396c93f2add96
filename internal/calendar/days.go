package calendar

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/teambition/rrule-go"
)

// rrule-go stops iterating past year 9999 and treats a zero Dtstart
// (0001-01-01) as "now", so those years are stepped by hand.
const (
	minRuleYear = 2
	maxRuleYear = 9999
)

// GenerateDays returns every day of year from January 1 to December 31 in order.
func GenerateDays(year int) []model.DayData {
	dates := eachDay(year)

	days := make([]model.DayData, len(dates))
	for i, d := range dates {
		days[i] = dayData(d)
	}

	return days
}

func dayData(d civil.Date) model.DayData {
	t := d.In(time.UTC)
	return model.DayData{
		Date:         d,
		DayOfMonth:   d.Day,
		DayOfWeek:    strings.ToUpper(t.Format("Mon")),
		FirstOfMonth: d.Day == 1,
		MonthName:    strings.ToUpper(t.Format("Jan")),
	}
}

func eachDay(year int) []civil.Date {
	first := civil.Date{Year: year, Month: time.January, Day: 1}
	last := civil.Date{Year: year, Month: time.December, Day: 31}

	if year < minRuleYear || year > maxRuleYear {
		return stepDays(first, last)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: first.In(time.UTC),
		Until:   last.In(time.UTC),
	})
	if err != nil {
		panic(fmt.Sprintf("daily rule for %d: %v", year, err))
	}

	times := rule.All()
	res := make([]civil.Date, len(times))
	for i, t := range times {
		res[i] = civil.DateOf(t)
	}

	return res
}

func stepDays(first, last civil.Date) []civil.Date {
	res := make([]civil.Date, 0, 366)
	for d := first; !d.After(last); d = d.AddDays(1) {
		res = append(res, d)
	}

	return res
}

// IsLeapYear reports whether year has a February 29 in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d civil.Date) bool {
	wd := d.In(time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
