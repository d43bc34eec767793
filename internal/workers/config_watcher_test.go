package workers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-topologic/internal/logger"
	"github.com/MKhiriev/go-topologic/internal/store"
)

type recordingInvalidator struct {
	mu     sync.Mutex
	tables []string
	calls  chan string
}

func newRecordingInvalidator() *recordingInvalidator {
	return &recordingInvalidator{calls: make(chan string, 16)}
}

func (r *recordingInvalidator) Invalidate(table string) {
	r.mu.Lock()
	r.tables = append(r.tables, table)
	r.mu.Unlock()
	r.calls <- table
}

func (r *recordingInvalidator) invalidated() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.tables...)
}

func waitInvalidation(t *testing.T, r *recordingInvalidator) string {
	t.Helper()
	select {
	case table := <-r.calls:
		return table
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for invalidation")
		return ""
	}
}

func writeConfig(t *testing.T, root, table, content string) string {
	t.Helper()
	dir := filepath.Join(root, table)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, store.ModelConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── debounce ──────────────────────────────────────────────────────────────────

func TestConfigWatcher_HandleEvent_DebouncesBursts(t *testing.T) {
	root := t.TempDir()
	inv := newRecordingInvalidator()
	clock := clockwork.NewFakeClock()
	w := NewConfigWatcher(root, inv, 500*time.Millisecond, clock, logger.Nop())

	path := filepath.Join(root, "philo_db", store.ModelConfigFile)
	w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Create})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(499 * time.Millisecond)
	assert.Empty(t, inv.invalidated())

	clock.Advance(time.Millisecond)
	assert.Equal(t, "philo_db", waitInvalidation(t, inv))
	assert.Equal(t, []string{"philo_db"}, inv.invalidated())
}

func TestConfigWatcher_HandleEvent_TablesAreIndependent(t *testing.T) {
	root := t.TempDir()
	inv := newRecordingInvalidator()
	clock := clockwork.NewFakeClock()
	w := NewConfigWatcher(root, inv, time.Second, clock, logger.Nop())

	w.handleEvent(fsnotify.Event{Name: filepath.Join(root, "a_db", store.ModelConfigFile), Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(root, "b_db", store.ModelConfigFile), Op: fsnotify.Remove})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 2))

	clock.Advance(time.Second)
	got := []string{waitInvalidation(t, inv), waitInvalidation(t, inv)}
	assert.ElementsMatch(t, []string{"a_db", "b_db"}, got)
}

func TestConfigWatcher_HandleEvent_IgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	inv := newRecordingInvalidator()
	clock := clockwork.NewFakeClock()
	w := NewConfigWatcher(root, inv, time.Millisecond, clock, logger.Nop())

	events := []fsnotify.Event{
		{Name: filepath.Join(root, "philo_db", store.AppConfigFile), Op: fsnotify.Write},
		{Name: filepath.Join(root, "philo_db", "dist", store.ModelConfigFile), Op: fsnotify.Write},
		{Name: filepath.Join(root, "philo_db", store.ModelConfigFile), Op: fsnotify.Chmod},
		{Name: filepath.Join(root, store.ModelConfigFile), Op: fsnotify.Write},
	}
	for _, e := range events {
		w.handleEvent(e)
	}

	clock.Advance(time.Hour)
	assert.Empty(t, inv.invalidated())

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Empty(t, w.timers)
}

// ── real file system ──────────────────────────────────────────────────────────

func TestConfigWatcher_Run_InvalidatesOnWrite(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "philo_db", "[DATA]\nnum_docs = 1\n")
	inv := newRecordingInvalidator()
	w := NewConfigWatcher(root, inv, 20*time.Millisecond, nil, logger.Nop())

	require.NoError(t, w.start())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.loop(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	require.NoError(t, os.WriteFile(path, []byte("[DATA]\nnum_docs = 2\n"), 0o600))

	assert.Equal(t, "philo_db", waitInvalidation(t, inv))
}

func TestConfigWatcher_Run_WatchesNewModelDirectories(t *testing.T) {
	root := t.TempDir()
	inv := newRecordingInvalidator()
	w := NewConfigWatcher(root, inv, 20*time.Millisecond, nil, logger.Nop())

	require.NoError(t, w.start())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.loop(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	dir := filepath.Join(root, "new_db")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.Eventually(t, func() bool {
		for _, watched := range w.watcher.WatchList() {
			if watched == dir {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, store.ModelConfigFile), []byte("a = b\n"), 0o600))

	assert.Equal(t, "new_db", waitInvalidation(t, inv))
}

func TestConfigWatcher_Run_MissingRoot(t *testing.T) {
	var buf bytes.Buffer
	root := filepath.Join(t.TempDir(), "absent")
	w := NewConfigWatcher(root, newRecordingInvalidator(), time.Millisecond, nil, &logger.Logger{Logger: zerolog.New(&buf)})

	err := w.Run(context.Background())

	require.Error(t, err)
	// the failure is logged right away, not only when the caller collects it
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "config_watcher.failed")
	assert.Contains(t, buf.String(), root)
}

func TestConfigWatcher_Run_StopsOnCancel(t *testing.T) {
	root := t.TempDir()
	w := NewConfigWatcher(root, newRecordingInvalidator(), time.Millisecond, nil, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
