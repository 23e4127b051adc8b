package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"moviemanager/internal/logging"
	"moviemanager/internal/media"
	"moviemanager/internal/textutil"
)

// ErrExists reports that the destination of a rename is already taken.
var ErrExists = errors.New("destination already exists")

// ExistsError carries the path that blocked a rename.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Path)
}

// Is lets errors.Is match ErrExists.
func (e *ExistsError) Is(target error) bool {
	return target == ErrExists
}

// Renamer performs no-overwrite renames inside a directory.
type Renamer struct {
	logger *slog.Logger
}

// New returns a Renamer logging through logger.
func New(logger *slog.Logger) *Renamer {
	return &Renamer{logger: logging.NewComponentLogger(logger, "renamer")}
}

// Rename moves dir/oldName to dir/newName. It fails with *ExistsError when
// dir/newName exists, whatever its content or type.
func (r *Renamer) Rename(dir, oldName, newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	if oldName == newName {
		return &ExistsError{Path: filepath.Join(dir, newName)}
	}
	src := filepath.Join(dir, oldName)
	dst := filepath.Join(dir, newName)

	r.logger.Debug(fmt.Sprintf("moving %q to %q", oldName, newName),
		logging.String("source", src),
		logging.String("destination", dst),
	)

	if err := renameNoReplace(src, dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &ExistsError{Path: dst}
		}
		return fmt.Errorf("rename %s: %w", src, err)
	}
	return nil
}

// NewName builds the canonical "Title (Year)" name for candidate, keeping ext.
func NewName(candidate media.Candidate, ext string) (string, error) {
	if !candidate.HasYear() {
		return "", fmt.Errorf("candidate %q has no year", candidate.Title)
	}
	title := textutil.SanitizeFileName(candidate.Title)
	if title == "" {
		return "", fmt.Errorf("candidate title %q is empty after sanitizing", candidate.Title)
	}
	return media.Candidate{Title: title, Year: candidate.Year}.DisplayName() + ext, nil
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		return fmt.Errorf("invalid destination name %q", name)
	}
	return nil
}

// fallbackRename checks for the destination before renaming. It is not
// atomic: a path created between the two calls is replaced.
func fallbackRename(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fs.ErrExist
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat destination: %w", err)
	}
	return os.Rename(src, dst)
}
