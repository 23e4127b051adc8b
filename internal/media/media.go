// Package media defines the candidate records returned by title lookups and
// the kind filter used to restrict them.
package media

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the category of a database record.
type Kind string

const (
	KindMovie        Kind = "movie"
	KindTVSeries     Kind = "tv series"
	KindTVMiniSeries Kind = "tv mini series"
	KindVideoGame    Kind = "video game"
	KindVideoMovie   Kind = "video movie"
	KindTVMovie      Kind = "tv movie"
	KindEpisode      Kind = "episode"
)

// ErrUnknownKind is returned by ParseKind for values outside Kinds.
var ErrUnknownKind = errors.New("unknown media kind")

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindMovie,
		KindTVSeries,
		KindTVMiniSeries,
		KindVideoGame,
		KindVideoMovie,
		KindTVMovie,
		KindEpisode,
	}
}

// ParseKind resolves a user-supplied kind, ignoring case and surrounding space.
func ParseKind(value string) (Kind, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(value)), " ")
	for _, kind := range Kinds() {
		if string(kind) == normalized {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownKind, value, KindList())
}

// KindList renders the valid kinds as a comma separated string.
func KindList() string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}

func (k Kind) String() string { return string(k) }

// Candidate is a single lookup result. Year is zero when the database has no
// release year for the record.
type Candidate struct {
	ID    string
	Title string
	Year  int
	Kind  Kind
}

// HasYear reports whether the candidate carries a release year.
func (c Candidate) HasYear() bool {
	return c.Year > 0
}

// DisplayName renders the canonical "Title (Year)" form. Candidates without
// a year render as the bare title.
func (c Candidate) DisplayName() string {
	title := strings.TrimSpace(c.Title)
	if !c.HasYear() {
		return title
	}
	return title + " (" + strconv.Itoa(c.Year) + ")"
}
