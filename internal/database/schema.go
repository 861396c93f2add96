package database

import (
	"context"
	"fmt"
)

const schema = `
create table if not exists events (
	id         text primary key,
	position   integer not null,
	title      text not null,
	type       text not null,
	color      text not null,
	start_date date not null,
	end_date   date not null,
	start_time text not null default '',
	end_time   text not null default '',
	check (end_date >= start_date)
);

create index if not exists events_position_idx on events (position);
`

// EnsureSchema создает таблицы, если их еще нет.
func EnsureSchema(ctx context.Context, q Queryable) error {
	if _, err := q.ExecRaw(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
