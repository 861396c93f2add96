// Package backup writes periodic JSON snapshots of the event list.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

const snapshotTimeout = 30 * time.Second

type Scheduler struct {
	logger   *zap.SugaredLogger
	exporter exporter
	dir      string
	now      func() time.Time
	cron     *cron.Cron
}

type exporter interface {
	ExportEvents(ctx context.Context, now time.Time) (string, []byte, error)
}

func NewScheduler(logger *zap.SugaredLogger, exporter exporter, dir string, loc *time.Location) *Scheduler {
	cl := cronLogger{logger}

	return &Scheduler{
		logger:   logger,
		exporter: exporter,
		dir:      dir,
		now:      time.Now,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}
}

// Start schedules snapshots by a standard five-field cron spec.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("parse backup schedule %q: %w", spec, err)
	}

	s.cron.Start()
	closer.Bind(s.Stop)

	s.logger.Infow("Scheduled backups", "schedule", spec, "dir", s.dir)
	return nil
}

// Stop waits for a running snapshot to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	path, err := s.Snapshot(ctx)
	if err != nil {
		s.logger.Errorw("Backup failed", "err", err)
		return
	}

	s.logger.Infow("Backup written", "path", path)
}

// Snapshot writes the current list into the backup directory and returns
// the file path.
func (s *Scheduler) Snapshot(ctx context.Context) (string, error) {
	name, data, err := s.exporter.ExportEvents(ctx, s.now())
	if err != nil {
		return "", fmt.Errorf("export events: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("rename %s: %w", tmp, err)
	}

	return path, nil
}

// cronLogger routes scheduler messages into zap.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "err", err)...)
}
