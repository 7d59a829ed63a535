package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the user hits ctrl+c inside a prompt.
var ErrInterrupted = errors.New("interrupted")

// Prompter runs one bubbletea program per menu, inline (no alt screen).
type Prompter struct {
	in       io.Reader
	out      io.Writer
	pageSize int
}

func NewPrompter(in io.Reader, out io.Writer, pageSize int) *Prompter {
	return &Prompter{in: in, out: out, pageSize: pageSize}
}

func (p *Prompter) Select(ctx context.Context, prompt Prompt) (Choice, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	final, err := tea.NewProgram(NewModel(prompt, p.pageSize), opts...).Run()
	if err != nil {
		return Choice{}, fmt.Errorf("run prompt: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Choice{}, fmt.Errorf("run prompt: unexpected model %T", final)
	}
	if m.Interrupted() {
		return Choice{}, ErrInterrupted
	}
	return m.Choice(), nil
}
