package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/yearly-calendar/internal/database"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
)

// insertBatch caps the rows per insert statement below the postgres
// parameter limit.
const insertBatch = 1000

func (*Repository) DeleteAllEvents(ctx context.Context, q database.Queryable) error {
	qb := database.PSQL.
		Delete(database.EventsTable)

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// CreateEvents inserts events keeping their slice order in the position column.
func (*Repository) CreateEvents(ctx context.Context, q database.Queryable, events []*model.Event) error {
	for start := 0; start < len(events); start += insertBatch {
		end := start + insertBatch
		if end > len(events) {
			end = len(events)
		}

		qb := database.PSQL.
			Insert(database.EventsTable).
			Columns(columns...)

		for i := start; i < end; i++ {
			qb = qb.Values(mapToValues(i, events[i])...)
		}

		if _, err := q.Exec(ctx, qb); err != nil {
			return fmt.Errorf("SQL request: %w", err)
		}
	}

	return nil
}
