package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/yearly-calendar/internal/interchange"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

// EventStore keeps the whole list as one JSON value under a single key.
type EventStore struct {
	pool   connPool
	key    string
	codec  *interchange.Codec
	logger *zap.SugaredLogger
}

type connPool interface {
	GetContext(ctx context.Context) (redis.Conn, error)
}

func NewEventStore(pool connPool, key string, codec *interchange.Codec, logger *zap.SugaredLogger) *EventStore {
	return &EventStore{
		pool:   pool,
		key:    key,
		codec:  codec,
		logger: logger,
	}
}

// Load returns nil when the key is not set.
func (s *EventStore) Load(ctx context.Context) ([]*model.Event, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get redis connection: %w", err)
	}
	defer s.closeConn(conn)

	data, err := redis.Bytes(conn.Do("GET", s.key))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET %s: %w", s.key, err)
	}

	events, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}

	return events, nil
}

func (s *EventStore) Save(ctx context.Context, events []*model.Event) error {
	data, err := s.codec.Encode(events)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get redis connection: %w", err)
	}
	defer s.closeConn(conn)

	if _, err := conn.Do("SET", s.key, data); err != nil {
		return fmt.Errorf("redis SET %s: %w", s.key, err)
	}

	return nil
}

func (s *EventStore) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		s.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
