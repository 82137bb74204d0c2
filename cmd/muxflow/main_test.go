package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/mux-flow/internal/config"
	"github.com/nguyentantai21042004/mux-flow/internal/lock"
	"github.com/nguyentantai21042004/mux-flow/internal/logger"
	"github.com/nguyentantai21042004/mux-flow/internal/media"
	"github.com/nguyentantai21042004/mux-flow/internal/scanner"
	"github.com/nguyentantai21042004/mux-flow/pkg/executor"
)

type stubFFmpeg struct {
	calls    int
	failOn   int
	code     int
	notFound bool
}

func (s *stubFFmpeg) Run(ctx context.Context, dir string, name string, args ...string) error {
	s.calls++
	if s.calls == s.failOn {
		return &executor.ExitError{Name: name, Code: s.code}
	}
	return os.WriteFile(args[len(args)-1], []byte("out"), 0o644)
}

func (s *stubFFmpeg) LookPath(name string) (string, error) {
	if s.notFound {
		return "", fmt.Errorf("lookup %s: not found", name)
	}
	return "/usr/bin/" + name, nil
}

func testConfig(t *testing.T, source string) *config.Config {
	t.Helper()
	cfg := &config.Config{Paths: config.PathsConfig{Source: source}}
	require.NoError(t, cfg.Validate())
	return cfg
}

func quietLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "debug")
}

func seed(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("rename failed")))
	assert.Equal(t, 1, exitCode(fmt.Errorf("plan: %w", scanner.ErrCountMismatch)))
	assert.Equal(t, 5, exitCode(&reportedError{err: fmt.Errorf("mux a.mp4: %w", &executor.ExitError{Code: 5})}))
	assert.Equal(t, 1, exitCode(&executor.ExitError{Code: -1}))
}

func TestExecuteVersionAndUnknown(t *testing.T) {
	assert.Equal(t, 0, execute([]string{"version"}))
	assert.Equal(t, 1, execute([]string{"no-such-command"}))
}

func TestRunOnceMuxesInPlace(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "movie.mp4", "movie.vtt")
	var out bytes.Buffer

	err := runOnce(context.Background(), testConfig(t, dir), &stubFFmpeg{}, quietLogger(), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"movie.mp4"}, listDir(t, dir))
	assert.Contains(t, out.String(), "1/1 pair(s) muxed")
	assert.Contains(t, out.String(), "movie.vtt")
}

func TestRunOnceCountMismatch(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "a.mp4", "b.mp4", "a.vtt")

	err := runOnce(context.Background(), testConfig(t, dir), &stubFFmpeg{}, quietLogger(), io.Discard)
	require.Error(t, err)

	var reported *reportedError
	assert.True(t, errors.As(err, &reported))
	assert.ErrorIs(t, err, scanner.ErrCountMismatch)
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, []string{"a.mp4", "a.vtt", "b.mp4"}, listDir(t, dir))
}

func TestRunOnceToolFailurePropagatesCode(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "movie.mp4", "movie.vtt")

	err := runOnce(context.Background(), testConfig(t, dir), &stubFFmpeg{failOn: 2, code: 7}, quietLogger(), io.Discard)
	require.Error(t, err)
	assert.Equal(t, 7, exitCode(err))
}

func TestRunOnceMissingFFmpeg(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "movie.mp4", "movie.vtt")

	err := runOnce(context.Background(), testConfig(t, dir), &stubFFmpeg{notFound: true}, quietLogger(), io.Discard)
	require.Error(t, err)
	assert.Equal(t, []string{"movie.mp4", "movie.vtt"}, listDir(t, dir))
}

func TestRunOnceLocked(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "movie.mp4", "movie.vtt")

	held := lock.New(dir)
	require.NoError(t, held.Acquire())
	defer held.Release()

	stub := &stubFFmpeg{}
	err := runOnce(context.Background(), testConfig(t, dir), stub, quietLogger(), io.Discard)
	assert.ErrorIs(t, err, lock.ErrLocked)
	assert.Zero(t, stub.calls)
}

func TestRunOnceDryRunSkipsLockAndTool(t *testing.T) {
	dir := t.TempDir()
	seed(t, dir, "movie.mp4", "movie.vtt")

	held := lock.New(dir)
	require.NoError(t, held.Acquire())
	defer held.Release()

	cfg := testConfig(t, dir)
	cfg.DryRun = true
	stub := &stubFFmpeg{notFound: true}
	var out bytes.Buffer

	require.NoError(t, runOnce(context.Background(), cfg, stub, quietLogger(), &out))
	assert.Zero(t, stub.calls)
	assert.Contains(t, out.String(), "dry run: 1 pair(s) planned")
	assert.Equal(t, []string{"movie.mp4", "movie.vtt"}, listDir(t, dir))
}

func TestWatchDirProcessesPairs(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	seed(t, src, "movie.mp4", "movie.vtt")

	cfg := testConfig(t, src)
	cfg.Paths.Output = out
	cfg.Watch.Settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan media.Report, 4)
	done := make(chan error, 1)
	go func() {
		done <- watchDir(ctx, cfg, &stubFFmpeg{}, quietLogger(), func(r media.Report) { reports <- r })
	}()

	select {
	case r := <-reports:
		assert.Equal(t, 1, r.Completed())
	case <-time.After(5 * time.Second):
		t.Fatal("no report from watch mode")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, listDir(t, src))
	assert.Equal(t, []string{"movie.mp4"}, listDir(t, out))

	next := lock.New(src)
	require.NoError(t, next.Acquire(), "watch mode must release the lock on shutdown")
	assert.NoError(t, next.Release())
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	chdir(t, t.TempDir())

	c := &commandContext{dir: "media", language: "fr", logLevel: "debug"}
	cfg, err := c.loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "media", cfg.Paths.Source)
	assert.Equal(t, "media", cfg.Paths.Output)
	assert.Equal(t, "fra", cfg.FFmpeg.Language)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigRequiresSource(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := (&commandContext{}).loadConfig()
	assert.Error(t, err)
}

func TestRenderReport(t *testing.T) {
	pair := media.Pair{
		Ordinal:  0,
		Video:    &media.VideoAsset{Original: "movie.mp4"},
		Subtitle: &media.SubtitleAsset{Original: "movie.vtt"},
		Output:   "movie.mp4",
	}
	report := media.Report{
		Dir:      "/media",
		Outcomes: []media.Outcome{{Pair: pair, State: media.Deleted, Duration: 1500 * time.Millisecond}},
	}

	rendered := renderReport(report)
	assert.Contains(t, rendered, "1/1 pair(s) muxed in /media")
	assert.Contains(t, rendered, "movie.vtt")
	assert.Contains(t, rendered, "deleted")
	assert.Contains(t, rendered, "1.5s")
}

func TestRenderTable(t *testing.T) {
	rendered := renderTable(
		[]string{"Setting", "Value"},
		[][]string{{"language", "eng"}, {"subtitle codec", "mov_text"}},
	)
	assert.Contains(t, rendered, "Setting")
	assert.Contains(t, rendered, "subtitle codec")
	assert.Contains(t, rendered, "mov_text")
}
