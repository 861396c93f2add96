package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/yearly-calendar/internal/database"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/jackc/pgx/v4"
	"go.uber.org/zap"
)

// Store persists the event list in postgres. Save rewrites the table in
// one transaction.
type Store struct {
	db     database.PGX
	repo   *Repository
	logger *zap.SugaredLogger
}

func NewStore(db database.PGX, repo *Repository, logger *zap.SugaredLogger) *Store {
	return &Store{
		db:     db,
		repo:   repo,
		logger: logger,
	}
}

func (s *Store) Load(ctx context.Context) ([]*model.Event, error) {
	events, err := s.repo.GetEvents(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	return events, nil
}

func (s *Store) Save(ctx context.Context, events []*model.Event) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.logger.Errorw("Failed rolling back transaction", "err", rbErr)
		}
	}()

	if err := s.repo.DeleteAllEvents(ctx, tx); err != nil {
		return fmt.Errorf("eventsRepository.DeleteAllEvents: %w", err)
	}

	if err := s.repo.CreateEvents(ctx, tx, events); err != nil {
		return fmt.Errorf("eventsRepository.CreateEvents: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
