package events

import "github.com/SergeyKozhin/yearly-calendar/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var columns = []string{
	"id",
	"position",
	"title",
	"type",
	"color",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
}

var baseQuery = database.PSQL.
	Select(columns...).
	From(database.EventsTable)
