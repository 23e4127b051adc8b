package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"moviemanager/internal/config"
	"moviemanager/internal/logging"
	"moviemanager/internal/lookup"
	"moviemanager/internal/lookup/imdb"
	"moviemanager/internal/lookup/tmdb"
	"moviemanager/internal/media"
	"moviemanager/internal/naming"
	"moviemanager/internal/organizer"
	"moviemanager/internal/prompt"
	"moviemanager/internal/renamer"
	"moviemanager/internal/runlock"
)

func runOrganize(cmd *cobra.Command, cfg *config.Config, target string, kind media.Kind) error {
	dir, err := config.ExpandPath(target)
	if err != nil {
		return err
	}
	if err := renamer.CheckDirectory(dir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := shouldColorize(out)

	baseLogger, err := logging.NewFromConfig(cfg, out, color)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	lock, err := runlock.Acquire(cfg.Paths.LockDir, dir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logging.WarnWithContext(logger, "failed to release run lock", "lock_release_failed",
				logging.String("lock_path", lock.Path()),
				logging.Error(err),
				logging.String(logging.FieldImpact, "next run may report the directory as busy until this process exits"),
			)
		}
	}()

	searcher, err := newSearcher(cfg, kind, logger)
	if err != nil {
		return err
	}
	finder, err := lookup.New(searcher, logger)
	if err != nil {
		return err
	}

	style := table.StyleDefault
	if color {
		style = table.StyleRounded
	}
	chooser := prompt.New(cmd.InOrStdin(), out, cfg.Prompt.MaxAttempts, prompt.WithStyle(style))

	org, err := organizer.NewOrganizer(finder, chooser, organizer.Options{
		Kind:   kind,
		Ignore: naming.NewIgnoreSet(cfg.Rename.IgnoreFiles...),
	}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A second interrupt terminates the process the default way.
	context.AfterFunc(ctx, stop)

	start := time.Now()
	summary, runErr := org.Run(ctx, dir)
	if summary.Scanned > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderSummary(summary))
	}
	if runErr != nil {
		if ctx.Err() != nil {
			return context.Canceled
		}
		logging.ErrorWithContext(logger, "run aborted", "run_aborted",
			logging.Error(runErr),
			logging.String(logging.FieldErrorHint, "resolve the problem and rerun; completed renames are kept"),
		)
		return runErr
	}
	logger.Info("run complete",
		logging.Int("renamed", summary.Renamed),
		logging.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func newSearcher(cfg *config.Config, kind media.Kind, logger *slog.Logger) (lookup.Searcher, error) {
	switch cfg.Lookup.Provider {
	case config.ProviderTMDB:
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language, tmdb.WithTimeout(cfg.LookupTimeout()))
		if err != nil {
			return nil, fmt.Errorf("tmdb client: %w", err)
		}
		if !tmdb.Supports(kind) {
			logging.WarnWithContext(logger, "tmdb has no dedicated search for this kind", "tmdb_kind_unsupported",
				logging.String(logging.FieldKind, string(kind)),
				logging.String(logging.FieldImpact, "multi search results rarely match; most entries will be left unchanged"),
				logging.String(logging.FieldErrorHint, "use provider = \"imdb\" for this kind"),
			)
		}
		return tmdb.NewSearcher(client, kind)
	default:
		client, err := imdb.New(cfg.IMDb.BaseURL, imdb.WithTimeout(cfg.LookupTimeout()))
		if err != nil {
			return nil, fmt.Errorf("imdb client: %w", err)
		}
		return client, nil
	}
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
