package model

import "cloud.google.com/go/civil"

type DayData struct {
	Date         civil.Date
	DayOfMonth   int
	DayOfWeek    string // "MON"
	FirstOfMonth bool
	MonthName    string // "JAN"
}
