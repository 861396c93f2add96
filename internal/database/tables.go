package database

import sq "github.com/Masterminds/squirrel"

// PSQL строит запросы с плейсхолдерами postgres.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	EventsTable = "events"
)
