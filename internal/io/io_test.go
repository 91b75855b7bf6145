package io

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertwitch/recursion/internal/queue"
	"github.com/desertwitch/recursion/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

var errTestPermission = errors.New("permission denied")

// failingOS is an [schema.OS] that fails opening one specific path.
type failingOS struct {
	schema.OS
	failPath string
}

func (f *failingOS) Open(name string) (*os.File, error) {
	if name == f.failPath {
		return nil, errTestPermission
	}

	return f.OS.Open(name)
}

func writeTestFile(t *testing.T, path string, content string, perm os.FileMode) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	require.NoError(t, os.Chmod(path, perm))
}

func newTestSortable(t *testing.T, src string, dst string, ext string) *schema.Sortable {
	t.Helper()

	var stat unix.Stat_t
	require.NoError(t, unix.Stat(src, &stat))

	bucket := filepath.Join(dst, ext)

	return &schema.Sortable{
		SourcePath: src,
		Name:       filepath.Base(src),
		Extension:  ext,
		BucketPath: bucket,
		DestPath:   filepath.Join(bucket, filepath.Base(src)),
		Metadata: &schema.Metadata{
			Perms:      uint32(stat.Mode) & 0o7777, //nolint:unconvert
			AccessedAt: stat.Atim,
			ModifiedAt: stat.Mtim,
			Size:       uint64(stat.Size), //nolint:gosec
		},
	}
}

func newTestQueue(items ...*schema.Sortable) *queue.GenericQueue[*schema.Sortable] {
	q := queue.NewGenericQueue[*schema.Sortable]()
	q.Enqueue(items...)

	return q
}

func TestProcessQueue_Success(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "a.JPG"), "jpeg-data", 0o640)
	writeTestFile(t, filepath.Join(src, "sub", "b.txt"), "text-data", 0o600)

	mtime := time.Date(2020, 5, 17, 10, 30, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(src, "a.JPG"), mtime, mtime))

	a := newTestSortable(t, filepath.Join(src, "a.JPG"), dst, "jpg")
	b := newTestSortable(t, filepath.Join(src, "sub", "b.txt"), dst, "txt")

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	report, err := handler.ProcessQueue(t.Context(), newTestQueue(a, b))
	require.NoError(t, err)

	assert.Equal(t, []*schema.Sortable{a, b}, report.Copied)
	assert.Empty(t, report.Existing)
	assert.Empty(t, report.Failed)
	assert.Equal(t, uint64(len("jpeg-data")+len("text-data")), report.BytesCopied)

	data, err := os.ReadFile(filepath.Join(dst, "jpg", "a.JPG"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-data", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "txt", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "text-data", string(data))

	info, err := os.Stat(filepath.Join(dst, "jpg", "a.JPG"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm(), "permissions should be preserved")
	assert.True(t, mtime.Equal(info.ModTime()), "modification time should be preserved")

	info, err = os.Stat(filepath.Join(dst, "txt", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	_, err = os.Stat(filepath.Join(dst, "jpg", "a.JPG"+DefaultTempSuffix))
	require.ErrorIs(t, err, os.ErrNotExist, "no intermediate file should remain")
}

func TestProcessQueue_Success_Idempotent(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "a.txt"), "a", 0o644)
	writeTestFile(t, filepath.Join(src, "b.md"), "b", 0o644)

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	first, err := handler.ProcessQueue(t.Context(), newTestQueue(
		newTestSortable(t, filepath.Join(src, "a.txt"), dst, "txt"),
		newTestSortable(t, filepath.Join(src, "b.md"), dst, "md"),
	))
	require.NoError(t, err)
	assert.Len(t, first.Copied, 2)

	second, err := handler.ProcessQueue(t.Context(), newTestQueue(
		newTestSortable(t, filepath.Join(src, "a.txt"), dst, "txt"),
		newTestSortable(t, filepath.Join(src, "b.md"), dst, "md"),
	))
	require.NoError(t, err)
	assert.Empty(t, second.Copied, "a second run should not copy anything")
	assert.Len(t, second.Existing, 2)
	assert.Zero(t, second.BytesCopied)
}

func TestProcessQueue_Success_ExistingTargetKept(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "b.txt"), "new", 0o644)
	writeTestFile(t, filepath.Join(dst, "txt", "b.txt"), "old", 0o644)

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	report, err := handler.ProcessQueue(t.Context(), newTestQueue(
		newTestSortable(t, filepath.Join(src, "b.txt"), dst, "txt"),
	))
	require.NoError(t, err)
	assert.Len(t, report.Existing, 1)

	data, err := os.ReadFile(filepath.Join(dst, "txt", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "existing targets must never be overwritten")
}

func TestProcessQueue_Success_NameCollision(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "one", "x.txt"), "first", 0o644)
	writeTestFile(t, filepath.Join(src, "two", "x.txt"), "second", 0o644)

	first := newTestSortable(t, filepath.Join(src, "one", "x.txt"), dst, "txt")
	second := newTestSortable(t, filepath.Join(src, "two", "x.txt"), dst, "txt")

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	report, err := handler.ProcessQueue(t.Context(), newTestQueue(first, second))
	require.NoError(t, err)
	assert.Equal(t, []*schema.Sortable{first}, report.Copied)
	assert.Equal(t, []*schema.Sortable{second}, report.Existing)

	data, err := os.ReadFile(filepath.Join(dst, "txt", "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestProcessQueue_Success_FailureContinues(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "a.txt"), "a", 0o644)
	writeTestFile(t, filepath.Join(src, "b.txt"), "b", 0o644)

	a := newTestSortable(t, filepath.Join(src, "a.txt"), dst, "txt")
	b := newTestSortable(t, filepath.Join(src, "b.txt"), dst, "txt")

	handler := NewHandler(&failingOS{failPath: a.SourcePath}, &schema.Unix{}, ".tmp")

	report, err := handler.ProcessQueue(t.Context(), newTestQueue(a, b))
	require.NoError(t, err)
	assert.Equal(t, []*schema.Sortable{a}, report.Failed)
	assert.Equal(t, []*schema.Sortable{b}, report.Copied)

	entries, err := os.ReadDir(filepath.Join(dst, "txt"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "neither the failed copy nor an intermediate file should exist")
	assert.Equal(t, "b.txt", entries[0].Name())
}

func TestProcessQueue_Fail_BucketNotDir(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "a.txt"), "a", 0o644)
	writeTestFile(t, filepath.Join(dst, "txt"), "not a directory", 0o644)

	a := newTestSortable(t, filepath.Join(src, "a.txt"), dst, "txt")

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	report, err := handler.ProcessQueue(t.Context(), newTestQueue(a))
	require.NoError(t, err)
	assert.Equal(t, []*schema.Sortable{a}, report.Failed)
}

func TestProcessQueue_Fail_ContextCanceled(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "a.txt"), "a", 0o644)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	report, err := handler.ProcessQueue(ctx, newTestQueue(
		newTestSortable(t, filepath.Join(src, "a.txt"), dst, "txt"),
	))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Empty(t, report.Copied)

	_, err = os.Stat(filepath.Join(dst, "txt"))
	require.ErrorIs(t, err, os.ErrNotExist, "no bucket should be created after cancellation")
}

func TestCopyFile_Fail_NilMetadata(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	err := handler.copyFile(t.Context(), &schema.Sortable{SourcePath: "/nonexistent/a.txt"})
	require.ErrorIs(t, err, ErrNilMetadata)
}

func TestCopyFile_Success_StaleIntermediateReplaced(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "a.txt"), "a", 0o644)
	writeTestFile(t, filepath.Join(dst, "txt", "a.txt"+DefaultTempSuffix), "stale", 0o644)

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	err := handler.copyFile(t.Context(), newTestSortable(t, filepath.Join(src, "a.txt"), dst, "txt"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, "txt", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	_, err = os.Lstat(filepath.Join(dst, "txt", "a.txt"+DefaultTempSuffix))
	require.ErrorIs(t, err, os.ErrNotExist, "the stale intermediate file should be gone")
}

func TestCopyFile_Fail_IntermediateIsDirectory(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "a.txt"), "a", 0o644)
	require.NoError(t, os.MkdirAll(filepath.Join(dst, "txt", "a.txt"+DefaultTempSuffix), 0o755))

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	err := handler.copyFile(t.Context(), newTestSortable(t, filepath.Join(src, "a.txt"), dst, "txt"))
	require.ErrorIs(t, err, os.ErrExist)

	info, err := os.Stat(filepath.Join(dst, "txt", "a.txt"+DefaultTempSuffix))
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "a directory at the intermediate path must not be removed")
}

func TestContextReader_Fail_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	cr := &contextReader{ctx: ctx, reader: os.Stdin}

	n, err := cr.Read(make([]byte, 8))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestReport_Summary(t *testing.T) {
	t.Parallel()

	report := &Report{
		Copied:      []*schema.Sortable{{}, {}},
		Existing:    []*schema.Sortable{{}},
		BytesCopied: 2048,
	}

	assert.Equal(t, "Copied 2 files (2.0 kB), skipped 1 existing, 0 failed", report.Summary())
}

func TestProcessQueue_Success_RerunAfterInterruptedCopy(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := t.TempDir()

	writeTestFile(t, filepath.Join(src, "a.txt"), "a", 0o644)
	writeTestFile(t, filepath.Join(dst, "txt", "a.txt"+DefaultTempSuffix), "partial", 0o644)

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, "")

	report, err := handler.ProcessQueue(t.Context(), newTestQueue(
		newTestSortable(t, filepath.Join(src, "a.txt"), dst, "txt"),
	))
	require.NoError(t, err)
	assert.Len(t, report.Copied, 1)
	assert.Empty(t, report.Failed)

	data, err := os.ReadFile(filepath.Join(dst, "txt", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}
