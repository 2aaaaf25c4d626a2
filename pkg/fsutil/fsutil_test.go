package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/surgedit/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and snapshot", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		content := []byte("Hello world!\nGoodbye.\n")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, snap, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
		if snap.Path != path {
			t.Errorf("snap.Path = %q, want %q", snap.Path, path)
		}
		if snap.Size != int64(len(content)) {
			t.Errorf("snap.Size = %d, want %d", snap.Size, len(content))
		}
	})

	t.Run("missing file is ErrNotFound", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory is ErrIsDirectory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})
}

func TestModified(t *testing.T) {
	t.Parallel()

	t.Run("untouched file is not modified", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(path, []byte("stable"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, snap, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		modified, err := fsutil.Modified(context.Background(), snap)
		if err != nil {
			t.Fatalf("Modified() error = %v", err)
		}
		if modified {
			t.Error("Modified() = true for untouched file")
		}
	})

	t.Run("rewritten content is detected even at same size", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(path, []byte("aaaa"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, snap, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		// Same size, same forced mtime, different bytes.
		if err := os.WriteFile(path, []byte("bbbb"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		if err := os.Chtimes(path, snap.ModTime, snap.ModTime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		modified, err := fsutil.Modified(context.Background(), snap)
		if err != nil {
			t.Fatalf("Modified() error = %v", err)
		}
		if !modified {
			t.Error("Modified() = false for rewritten content")
		}
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, snap, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := fsutil.Modified(context.Background(), snap)
		if err != nil {
			t.Fatalf("Modified() error = %v", err)
		}
		if !modified {
			t.Error("Modified() = false for deleted file")
		}
	})

	t.Run("nil snapshot is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.Modified(context.Background(), nil)
		if !errors.Is(err, fsutil.ErrNilSnapshot) {
			t.Errorf("error = %v, want ErrNilSnapshot", err)
		}
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content with mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("written"), 0600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "written" {
			t.Errorf("content = %q, want %q", got, "written")
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode().Perm() != 0600 {
			t.Errorf("mode = %v, want 0600", stat.Mode().Perm())
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want 1", len(entries))
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fsutil.WriteAtomic(ctx, filepath.Join(t.TempDir(), "out.txt"), []byte("x"), 0)
		if err == nil {
			t.Error("WriteAtomic() with cancelled context succeeded")
		}
	})
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("creates timestamped sibling", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		content := []byte("original content")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		before := time.Now()
		record, err := fsutil.CreateBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}

		if record.OriginalPath != path {
			t.Errorf("OriginalPath = %q, want %q", record.OriginalPath, path)
		}

		wantPrefix := path + ".backup-"
		if len(record.BackupPath) <= len(wantPrefix) || record.BackupPath[:len(wantPrefix)] != wantPrefix {
			t.Errorf("BackupPath = %q, want prefix %q", record.BackupPath, wantPrefix)
		}

		if record.CreatedAt.Before(before.Truncate(time.Millisecond)) {
			t.Errorf("CreatedAt = %v, want >= %v", record.CreatedAt, before)
		}

		got, err := os.ReadFile(record.BackupPath)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("backup content = %q, want %q", got, content)
		}
	})

	t.Run("repeated backups never overwrite", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		first, err := fsutil.CreateBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("first CreateBackup() error = %v", err)
		}

		if err := os.WriteFile(path, []byte("v2"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}

		second, err := fsutil.CreateBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("second CreateBackup() error = %v", err)
		}

		if first.BackupPath == second.BackupPath {
			t.Fatalf("both backups landed on %q", first.BackupPath)
		}

		got, err := os.ReadFile(first.BackupPath)
		if err != nil {
			t.Fatalf("read first backup: %v", err)
		}
		if string(got) != "v1" {
			t.Errorf("first backup content = %q, want %q", got, "v1")
		}
	})

	t.Run("missing original fails", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CreateBackup(context.Background(), filepath.Join(t.TempDir(), "missing"))
		if err == nil {
			t.Error("CreateBackup() on missing file succeeded")
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()

	t.Run("restores most recent backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")

		// Two generations of backups with distinct timestamps.
		if err := os.WriteFile(path+".backup-1000", []byte("older"), 0644); err != nil {
			t.Fatalf("setup old backup: %v", err)
		}
		if err := os.WriteFile(path+".backup-2000", []byte("newer"), 0644); err != nil {
			t.Fatalf("setup new backup: %v", err)
		}
		if err := os.WriteFile(path, []byte("broken"), 0644); err != nil {
			t.Fatalf("setup file: %v", err)
		}

		used, err := fsutil.RestoreBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("RestoreBackup() error = %v", err)
		}
		if used != path+".backup-2000" {
			t.Errorf("restored from %q, want %q", used, path+".backup-2000")
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read restored: %v", err)
		}
		if string(got) != "newer" {
			t.Errorf("restored content = %q, want %q", got, "newer")
		}
	})

	t.Run("no backup returns empty path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		used, err := fsutil.RestoreBackup(context.Background(), path)
		if err != nil {
			t.Fatalf("RestoreBackup() error = %v", err)
		}
		if used != "" {
			t.Errorf("used = %q, want empty", used)
		}
	})

	t.Run("non-backup siblings are ignored", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path+".backup-notanumber", []byte("junk"), 0644); err != nil {
			t.Fatalf("setup junk: %v", err)
		}

		latest, err := fsutil.LatestBackup(path)
		if err != nil {
			t.Fatalf("LatestBackup() error = %v", err)
		}
		if latest != "" {
			t.Errorf("latest = %q, want empty", latest)
		}
	})
}
