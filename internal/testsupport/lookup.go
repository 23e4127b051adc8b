package testsupport

import (
	"context"
	"sync"

	"moviemanager/internal/media"
)

// FakeFinder returns canned candidates per query and records every call.
type FakeFinder struct {
	mu      sync.Mutex
	Results map[string][]media.Candidate
	Err     error
	Queries []string
}

// Find implements organizer.Finder. Candidates are filtered to kind the way
// lookup.Client does.
func (f *FakeFinder) Find(_ context.Context, title string, kind media.Kind) ([]media.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Queries = append(f.Queries, title)
	if f.Err != nil {
		return nil, f.Err
	}
	var out []media.Candidate
	for _, c := range f.Results[title] {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

// Calls returns the recorded queries.
func (f *FakeFinder) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Queries...)
}

// FakeChooser returns a fixed index or error and records subjects.
type FakeChooser struct {
	Index    int
	Err      error
	Subjects []string
}

// Select implements organizer.Chooser.
func (c *FakeChooser) Select(_ context.Context, subject string, candidates []media.Candidate) (media.Candidate, error) {
	c.Subjects = append(c.Subjects, subject)
	if c.Err != nil {
		return media.Candidate{}, c.Err
	}
	return candidates[c.Index], nil
}
