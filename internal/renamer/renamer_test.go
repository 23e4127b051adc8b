package renamer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"moviemanager/internal/media"
	"moviemanager/internal/renamer"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRenameMovesEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Metropolis.mkv"), "film")

	r := renamer.New(nil)
	if err := r.Rename(dir, "Metropolis.mkv", "Metropolis (1927).mkv"); err != nil {
		t.Fatalf("Rename returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Metropolis.mkv")); !os.IsNotExist(err) {
		t.Fatalf("expected source to be gone, got %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Metropolis (1927).mkv"))
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(data) != "film" {
		t.Fatalf("unexpected destination content %q", data)
	}
}

func TestRenameRefusesExistingDestination(t *testing.T) {
	for _, tc := range []struct {
		name   string
		create func(t *testing.T, path string)
	}{
		{"identical file", func(t *testing.T, path string) { writeFile(t, path, "film") }},
		{"different file", func(t *testing.T, path string) { writeFile(t, path, "other") }},
		{"empty file", func(t *testing.T, path string) { writeFile(t, path, "") }},
		{"directory", func(t *testing.T, path string) {
			if err := os.Mkdir(path, 0o755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "Alien"), "film")
			dst := filepath.Join(dir, "Alien (1979)")
			tc.create(t, dst)

			err := renamer.New(nil).Rename(dir, "Alien", "Alien (1979)")
			if !errors.Is(err, renamer.ErrExists) {
				t.Fatalf("expected ErrExists, got %v", err)
			}
			var existsErr *renamer.ExistsError
			if !errors.As(err, &existsErr) || existsErr.Path != dst {
				t.Fatalf("expected ExistsError for %s, got %v", dst, err)
			}
			if _, err := os.Stat(filepath.Join(dir, "Alien")); err != nil {
				t.Fatalf("expected source to remain: %v", err)
			}
		})
	}
}

func TestRenameRejectsPathSeparators(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Heat"), "film")
	if err := renamer.New(nil).Rename(dir, "Heat", "../Heat (1995)"); err == nil {
		t.Fatal("expected error for destination outside directory")
	}
}

func TestRenameMissingSource(t *testing.T) {
	err := renamer.New(nil).Rename(t.TempDir(), "missing", "Missing (2000)")
	if err == nil || errors.Is(err, renamer.ErrExists) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestNewName(t *testing.T) {
	name, err := renamer.NewName(media.Candidate{Title: "Face/Off", Year: 1997}, ".mkv")
	if err != nil {
		t.Fatalf("NewName returned error: %v", err)
	}
	if name != "Face-Off (1997).mkv" {
		t.Fatalf("unexpected name %q", name)
	}

	name, err = renamer.NewName(media.Candidate{Title: "Metropolis", Year: 1927}, "")
	if err != nil || name != "Metropolis (1927)" {
		t.Fatalf("unexpected directory name %q (%v)", name, err)
	}

	if _, err := renamer.NewName(media.Candidate{Title: "Untitled"}, ".mkv"); err == nil {
		t.Fatal("expected error for candidate without year")
	}
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := renamer.CheckDirectory(dir); err != nil {
		t.Fatalf("CheckDirectory returned error: %v", err)
	}
	if err := renamer.CheckDirectory(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
	file := filepath.Join(dir, "file")
	writeFile(t, file, "x")
	if err := renamer.CheckDirectory(file); err == nil {
		t.Fatal("expected error for non-directory")
	}
}
