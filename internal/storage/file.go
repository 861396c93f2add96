// Package storage holds the local event stores: a JSON file and an
// in-process list.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SergeyKozhin/yearly-calendar/internal/interchange"
	"github.com/SergeyKozhin/yearly-calendar/internal/model"
	"go.uber.org/zap"
)

const (
	tmpSuffix       = ".tmp"
	backupSuffix    = ".backup"
	filePermissions = 0o644
	dirPermissions  = 0o755
)

// FileStore keeps the list as a JSON array in a single file. Writes go to
// a temporary file first and the previous version is kept next to it.
type FileStore struct {
	logger *zap.SugaredLogger
	path   string
	codec  *interchange.Codec
}

func NewFileStore(logger *zap.SugaredLogger, path string, codec *interchange.Codec) *FileStore {
	return &FileStore{
		logger: logger,
		path:   path,
		codec:  codec,
	}
}

// Load returns nil when the file does not exist yet.
func (s *FileStore) Load(_ context.Context) ([]*model.Event, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	events, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	return events, nil
}

func (s *FileStore) Save(_ context.Context, events []*model.Event) error {
	data, err := s.codec.Encode(events)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPermissions); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmpFile := s.path + tmpSuffix
	if err := os.WriteFile(tmpFile, data, filePermissions); err != nil {
		return fmt.Errorf("write %s: %w", tmpFile, err)
	}

	if _, err := os.Stat(s.path); err == nil {
		if err := os.Rename(s.path, s.path+backupSuffix); err != nil {
			s.logger.Warnw("Failed to keep previous events file", "path", s.path, "err", err)
		}
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}
