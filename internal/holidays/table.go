package holidays

import (
	"cloud.google.com/go/civil"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// Table is the holiday list of one year in declaration order. A date may
// appear more than once.
type Table []model.Holiday

// Lookup returns the first holiday on date.
func (t Table) Lookup(date civil.Date) (*model.Holiday, bool) {
	for i := range t {
		if t[i].Date == date {
			h := t[i]
			return &h, true
		}
	}

	return nil, false
}
