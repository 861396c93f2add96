package model

import "cloud.google.com/go/civil"

type Holiday struct {
	Date        civil.Date
	Name        string
	CutiBersama bool // joint leave day next to a national holiday
}
