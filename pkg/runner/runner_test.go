package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/surgedit/pkg/editor"
)

func TestRunReplacesAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkFile(t, dir, "one.txt", "foo and foo\n")
	mkFile(t, dir, "two.txt", "just foo\n")
	mkFile(t, dir, "three.txt", "nothing here\n")

	r := New(editor.New(nil, nil))
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		OldPattern: "foo",
		NewPattern: "bar",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.FilesDiscovered != 3 {
		t.Errorf("FilesDiscovered = %d, want 3", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesWithoutMatch != 1 {
		t.Errorf("FilesWithoutMatch = %d, want 1", result.Stats.FilesWithoutMatch)
	}
	if result.Stats.TotalReplacements != 3 {
		t.Errorf("TotalReplacements = %d, want 3", result.Stats.TotalReplacements)
	}
	if result.Stats.FilesModified != 2 {
		t.Errorf("FilesModified = %d, want 2", result.Stats.FilesModified)
	}
	if result.HasFailures() {
		t.Error("HasFailures = true, want false")
	}

	data, err := os.ReadFile(filepath.Join(dir, "one.txt"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "bar and bar\n" {
		t.Errorf("one.txt = %q, want both occurrences replaced", data)
	}
}

func TestRunDeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		mkFile(t, dir, name, "foo\n")
	}

	r := New(editor.New(nil, nil))
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		OldPattern: "foo",
		NewPattern: "bar",
		Jobs:       3,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(result.Files) != len(want) {
		t.Fatalf("got %d outcomes, want %d", len(result.Files), len(want))
	}
	for i, fo := range result.Files {
		if filepath.Base(fo.Path) != want[i] {
			t.Errorf("Files[%d] = %s, want %s", i, filepath.Base(fo.Path), want[i])
		}
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkFile(t, dir, "doc.txt", "old text\n")

	r := New(editor.New(nil, nil))
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		OldPattern: "old",
		NewPattern: "new",
		DryRun:     true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Stats.FilesModified != 0 {
		t.Errorf("FilesModified = %d, want 0", result.Stats.FilesModified)
	}
	if !result.HasChanges() {
		t.Error("HasChanges = false, want true in dry-run with matches")
	}
	if result.Files[0].Outcome == nil || result.Files[0].Outcome.Preview == nil {
		t.Fatal("dry-run outcome missing preview")
	}

	data, err := os.ReadFile(filepath.Join(dir, "doc.txt"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "old text\n" {
		t.Errorf("file changed in dry-run: %q", data)
	}
}

func TestRunBackups(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkFile(t, dir, "doc.txt", "old\n")

	r := New(editor.New(nil, nil))
	result, err := r.Run(context.Background(), Options{
		Paths:        []string{dir},
		WorkingDir:   dir,
		OldPattern:   "old",
		NewPattern:   "new",
		CreateBackup: true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stats.BackupsCreated != 1 {
		t.Errorf("BackupsCreated = %d, want 1", result.Stats.BackupsCreated)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := New(editor.New(nil, nil))
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		OldPattern: "x",
		NewPattern: "y",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Stats.FilesDiscovered != 0 || len(result.Files) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mkFile(t, dir, "doc.txt", "foo\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(editor.New(nil, nil))
	_, err := r.Run(ctx, Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		OldPattern: "foo",
		NewPattern: "bar",
	})
	if err == nil {
		t.Fatal("Run succeeded with cancelled context")
	}
}
