package organizer

import "moviemanager/internal/media"

// Outcome is what happened to a single directory entry.
type Outcome int

const (
	OutcomeRenamed Outcome = iota
	OutcomeIgnored
	OutcomeUnmatched
	OutcomeAlreadyNamed
	OutcomeNotFound
	OutcomeSkipped
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRenamed:
		return "renamed"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeUnmatched:
		return "unmatched"
	case OutcomeAlreadyNamed:
		return "already named"
	case OutcomeNotFound:
		return "not found"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "failed"
	}
}

// Rename records one completed rename.
type Rename struct {
	From      string
	To        string
	Candidate media.Candidate
}

// Summary tallies a run.
type Summary struct {
	Scanned      int
	Renamed      int
	Ignored      int
	Unmatched    int
	AlreadyNamed int
	NotFound     int
	Skipped      int
	Cancelled    int
	Failed       int
	Renames      []Rename
}

func (s *Summary) count(outcome Outcome) {
	switch outcome {
	case OutcomeRenamed:
		s.Renamed++
	case OutcomeIgnored:
		s.Ignored++
	case OutcomeUnmatched:
		s.Unmatched++
	case OutcomeAlreadyNamed:
		s.AlreadyNamed++
	case OutcomeNotFound:
		s.NotFound++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeCancelled:
		s.Cancelled++
	case OutcomeFailed:
		s.Failed++
	}
}

// OutcomeCount pairs an outcome with its tally.
type OutcomeCount struct {
	Outcome Outcome
	Count   int
}

// Counts returns every outcome with its tally, in display order.
func (s Summary) Counts() []OutcomeCount {
	return []OutcomeCount{
		{OutcomeRenamed, s.Renamed},
		{OutcomeAlreadyNamed, s.AlreadyNamed},
		{OutcomeNotFound, s.NotFound},
		{OutcomeCancelled, s.Cancelled},
		{OutcomeSkipped, s.Skipped},
		{OutcomeUnmatched, s.Unmatched},
		{OutcomeIgnored, s.Ignored},
		{OutcomeFailed, s.Failed},
	}
}
