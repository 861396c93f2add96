package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeExporter struct {
	err error
}

func (f *fakeExporter) ExportEvents(_ context.Context, now time.Time) (string, []byte, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return "calendar_events_" + now.Format("20060102_1504") + ".json", []byte(`[]`), nil
}

func newTestScheduler(t *testing.T, exp exporter) (*Scheduler, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "backups")
	s := NewScheduler(zap.NewNop().Sugar(), exp, dir, time.UTC)
	s.now = func() time.Time { return time.Date(2026, time.October, 16, 3, 0, 0, 0, time.UTC) }

	return s, dir
}

func TestSnapshot(t *testing.T) {
	s, dir := newTestScheduler(t, &fakeExporter{})

	path, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "calendar_events_20261016_0300.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestSnapshotExportError(t *testing.T) {
	errBoom := errors.New("boom")
	s, dir := newTestScheduler(t, &fakeExporter{err: errBoom})

	_, err := s.Snapshot(context.Background())
	assert.ErrorIs(t, err, errBoom)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s, _ := newTestScheduler(t, &fakeExporter{})

	assert.Error(t, s.Start("every day at noon"))
}
