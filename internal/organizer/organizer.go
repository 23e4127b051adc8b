package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"moviemanager/internal/logging"
	"moviemanager/internal/media"
	"moviemanager/internal/naming"
	"moviemanager/internal/prompt"
	"moviemanager/internal/renamer"
)

// Finder looks up candidates of a kind for a title.
type Finder interface {
	Find(ctx context.Context, title string, kind media.Kind) ([]media.Candidate, error)
}

// Chooser picks one of several candidates for subject. It returns
// prompt.ErrCancelled when the operator skips the entry and ctx.Err() when
// the run is interrupted.
type Chooser interface {
	Select(ctx context.Context, subject string, candidates []media.Candidate) (media.Candidate, error)
}

// Mover renames an entry inside a directory without overwriting.
type Mover interface {
	Rename(dir, oldName, newName string) error
}

// Options controls a run.
type Options struct {
	Kind   media.Kind
	Ignore naming.IgnoreSet
}

// Organizer renames directory entries to their canonical names.
type Organizer struct {
	finder  Finder
	chooser Chooser
	mover   Mover
	opts    Options
	logger  *slog.Logger
}

// NewOrganizer constructs an Organizer using the default renamer.
func NewOrganizer(finder Finder, chooser Chooser, opts Options, logger *slog.Logger) (*Organizer, error) {
	return NewOrganizerWithDependencies(finder, chooser, renamer.New(logger), opts, logger)
}

// NewOrganizerWithDependencies allows injecting collaborators (used in tests).
func NewOrganizerWithDependencies(finder Finder, chooser Chooser, mover Mover, opts Options, logger *slog.Logger) (*Organizer, error) {
	if finder == nil || chooser == nil || mover == nil {
		return nil, errors.New("organizer requires finder, chooser, and mover")
	}
	if opts.Kind == "" {
		opts.Kind = media.KindMovie
	}
	return &Organizer{
		finder:  finder,
		chooser: chooser,
		mover:   mover,
		opts:    opts,
		logger:  logging.NewComponentLogger(logger, "organizer"),
	}, nil
}

// Run processes every entry of dir in listing order. The returned Summary is
// valid even when err is non-nil and covers the entries handled so far.
func (o *Organizer) Run(ctx context.Context, dir string) (Summary, error) {
	var summary Summary

	entries, err := os.ReadDir(dir)
	if err != nil {
		return summary, fmt.Errorf("list %s: %w", dir, err)
	}

	o.logger.Info("scanning directory",
		logging.String("directory", dir),
		logging.String(logging.FieldKind, string(o.opts.Kind)),
		logging.Int("entries", len(entries)),
	)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Scanned++
		outcome, err := o.process(ctx, dir, entry, &summary)
		summary.count(outcome)
		if err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (o *Organizer) process(ctx context.Context, dir string, entry os.DirEntry, summary *Summary) (Outcome, error) {
	name := entry.Name()
	logger := o.logger.With(logging.String(logging.FieldEntry, name))

	if o.opts.Ignore.Contains(name) {
		return OutcomeIgnored, nil
	}

	parse := naming.Parse
	if entry.IsDir() {
		parse = naming.ParseDir
	}
	match, ok := parse(name)
	if !ok {
		logger.Debug("no title found in name")
		return OutcomeUnmatched, nil
	}
	if match.HasYear() {
		logger.Debug("media already correctly formatted")
		return OutcomeAlreadyNamed, nil
	}

	query := match.SearchKey()
	candidates, err := o.finder.Find(ctx, query, o.opts.Kind)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("lookup %q: %w", name, err)
	}

	var chosen media.Candidate
	switch len(candidates) {
	case 0:
		logger.Info("no options found", logging.String(logging.FieldQuery, query))
		return OutcomeNotFound, nil
	case 1:
		chosen = candidates[0]
	default:
		chosen, err = o.chooser.Select(ctx, name, candidates)
		if errors.Is(err, prompt.ErrCancelled) {
			logging.WarnWithContext(logger, "ambiguous title skipped", "selection_cancelled",
				logging.Int("candidates", len(candidates)),
				logging.String(logging.FieldErrorHint, "rerun and pick a listed number"),
			)
			return OutcomeCancelled, nil
		}
		if err != nil {
			return OutcomeFailed, fmt.Errorf("select %q: %w", name, err)
		}
	}

	if !chosen.HasYear() {
		logger.Debug("candidate has no year; nothing to rename to", logging.String("title", chosen.Title))
		return OutcomeSkipped, nil
	}

	newName, err := renamer.NewName(chosen, match.Ext)
	if err != nil {
		logging.WarnWithContext(logger, "candidate title unusable as a file name", "unusable_title",
			logging.String("title", chosen.Title),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "rename this entry by hand"),
		)
		return OutcomeSkipped, nil
	}
	if err := o.mover.Rename(dir, name, newName); err != nil {
		return OutcomeFailed, fmt.Errorf("rename %q: %w", name, err)
	}

	logger.Info("renamed entry", logging.String("to", newName))
	summary.Renames = append(summary.Renames, Rename{From: name, To: newName, Candidate: chosen})
	return OutcomeRenamed, nil
}
