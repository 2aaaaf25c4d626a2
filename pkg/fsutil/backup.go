package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// backupInfix joins the original path and the epoch-millisecond timestamp
// in a backup sibling's name.
const backupInfix = ".backup-"

// BackupRecord describes a snapshot taken before a destructive write.
// The record's lifetime ends with the operation; the backup file itself
// belongs to the user, who owns cleanup.
type BackupRecord struct {
	// OriginalPath is the file that was backed up.
	OriginalPath string

	// BackupPath is the timestamped sibling holding the old content.
	BackupPath string

	// CreatedAt is when the backup was taken.
	CreatedAt time.Time
}

// BackupPath returns the timestamped sibling path for path at t.
func BackupPath(path string, t time.Time) string {
	return path + backupInfix + strconv.FormatInt(t.UnixMilli(), 10)
}

// IsBackupPath reports whether path looks like a backup sibling created
// by CreateBackup.
func IsBackupPath(path string) bool {
	idx := strings.LastIndex(path, backupInfix)
	if idx < 0 {
		return false
	}
	_, ok := parseBackupStamp(path[idx+len(backupInfix):])
	return ok
}

// CreateBackup copies the current on-disk content of path to a timestamped
// sibling. It must run strictly before the destructive write. Backups are
// append-only: an existing backup is never overwritten, so a
// sub-millisecond timestamp collision gets a numeric disambiguator instead
// of clobbering the earlier copy.
func CreateBackup(ctx context.Context, path string) (*BackupRecord, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read original for backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat original for backup: %w", err)
	}

	now := time.Now()
	backupPath := BackupPath(path, now)
	for n := 1; ; n++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = BackupPath(path, now) + "-" + strconv.Itoa(n)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return nil, fmt.Errorf("write backup: %w", err)
	}

	return &BackupRecord{
		OriginalPath: path,
		BackupPath:   backupPath,
		CreatedAt:    now,
	}, nil
}

// LatestBackup returns the newest backup sibling for path, or an empty
// string if none exists. Newest means the largest embedded timestamp;
// disambiguated collisions order after their base timestamp.
func LatestBackup(path string) (string, error) {
	dir := filepath.Dir(path)
	prefix := filepath.Base(path) + backupInfix

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("list backups: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if _, ok := parseBackupStamp(name[len(prefix):]); ok {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return "", nil
	}

	sort.Slice(names, func(i, j int) bool {
		si, _ := parseBackupStamp(names[i][len(prefix):])
		sj, _ := parseBackupStamp(names[j][len(prefix):])
		if si != sj {
			return si < sj
		}
		return names[i] < names[j]
	})

	return filepath.Join(dir, names[len(names)-1]), nil
}

// RestoreBackup restores path from its most recent backup and returns the
// backup path used. Returns an empty string if no backup exists.
func RestoreBackup(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("restore backup: %w", ctx.Err())
	default:
	}

	backupPath, err := LatestBackup(path)
	if err != nil {
		return "", err
	}
	if backupPath == "" {
		return "", nil
	}

	content, err := os.ReadFile(backupPath)
	if err != nil {
		return "", fmt.Errorf("read backup: %w", err)
	}

	stat, err := os.Stat(backupPath)
	if err != nil {
		return "", fmt.Errorf("stat backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, stat.Mode()); err != nil {
		return "", fmt.Errorf("restore from backup: %w", err)
	}

	return backupPath, nil
}

// parseBackupStamp extracts the epoch-millisecond timestamp from a backup
// name suffix, tolerating a "-N" collision disambiguator.
func parseBackupStamp(suffix string) (int64, bool) {
	if idx := strings.IndexByte(suffix, '-'); idx >= 0 {
		suffix = suffix[:idx]
	}
	stamp, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return stamp, true
}
