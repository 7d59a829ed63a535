package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/glabrego/keepass-cli/internal/audit"
	"github.com/glabrego/keepass-cli/internal/render/entry"
	"github.com/glabrego/keepass-cli/internal/tui"
	"github.com/glabrego/keepass-cli/internal/tui/state"
	tuitheme "github.com/glabrego/keepass-cli/internal/tui/theme"
	"github.com/glabrego/keepass-cli/internal/vault"
)

// Prompter shows one menu and returns the user's choice.
type Prompter interface {
	Select(ctx context.Context, prompt tui.Prompt) (tui.Choice, error)
}

// Recorder stores which entries were printed.
type Recorder interface {
	RecordView(ctx context.Context, v audit.View) error
}

// Options carries the output and collaborators of a Service.
type Options struct {
	Out      io.Writer
	Theme    tuitheme.Theme
	Logger   *zap.SugaredLogger
	Recorder Recorder
	Session  string
	Database string
}

// Service prints entries from an unlocked tree, by search or by browsing.
type Service struct {
	prompter Prompter
	out      io.Writer
	theme    tuitheme.Theme
	logger   *zap.SugaredLogger
	recorder Recorder
	session  string
	database string
	now      func() time.Time
}

// NewService fills in a no-op logger and a discarding writer when unset.
func NewService(prompter Prompter, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Service{
		prompter: prompter,
		out:      out,
		theme:    opts.Theme,
		logger:   logger,
		recorder: opts.Recorder,
		session:  opts.Session,
		database: opts.Database,
		now:      time.Now,
	}
}

// RunSearch prints every entry under the root whose Title equals title,
// each followed by a blank line. Entries without a Title never match.
func (s *Service) RunSearch(ctx context.Context, t *vault.Tree, title string) error {
	hits := vault.SearchByTitle(t, t.Root(), title)
	s.logger.Debugw("search finished", "title", title, "hits", len(hits))

	if len(hits) == 0 {
		_, err := fmt.Fprintln(s.out, "No entries found")
		return err
	}

	if _, err := fmt.Fprintf(s.out, "Found %d result(s) for title name \"%s\"\n", len(hits), title); err != nil {
		return err
	}
	for _, id := range hits {
		if err := entry.Write(s.out, t, id, s.theme); err != nil {
			return fmt.Errorf("print entry: %w", err)
		}
		if _, err := fmt.Fprintln(s.out); err != nil {
			return err
		}
		s.record(ctx, audit.ModeSearch, strings.Join(vault.Path(t, id), state.PathSeparator), title)
	}
	return nil
}

func (s *Service) record(ctx context.Context, mode audit.Mode, path, title string) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.RecordView(ctx, audit.View{
		Session:  s.session,
		Mode:     mode,
		Database: s.database,
		Path:     path,
		Title:    title,
		ViewedAt: s.now(),
	})
	if err != nil {
		s.logger.Warnw("audit record failed", "title", title, "error", err)
	}
}
