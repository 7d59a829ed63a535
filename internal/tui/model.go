package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/keepass-cli/internal/tui/state"
	tuitheme "github.com/glabrego/keepass-cli/internal/tui/theme"
	"github.com/glabrego/keepass-cli/internal/tui/view"
)

// Prompt describes one menu: the breadcrumb header and the rows under it.
type Prompt struct {
	Breadcrumb string
	Hint       string
	Labels     []string
	Default    int
}

// Choice is the outcome of a prompt. Selected is false when the user
// backed out with ESC.
type Choice struct {
	Index    int
	Selected bool
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "tab")),
		Top:    key.NewBinding(key.WithKeys("home", "g")),
		Bottom: key.NewBinding(key.WithKeys("end", "G")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "q")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

type Model struct {
	prompt      Prompt
	theme       tuitheme.Theme
	keys        keyMap
	cursor      int
	pageSize    int
	width       int
	done        bool
	interrupted bool
	choice      Choice
}

func NewModel(prompt Prompt, pageSize int) Model {
	return Model{
		prompt:   prompt,
		theme:    tuitheme.Default(),
		keys:     defaultKeyMap(),
		cursor:   state.ClampCursor(prompt.Default, len(prompt.Labels)),
		pageSize: pageSize,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		n := len(m.prompt.Labels)
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			m.interrupted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.done = true
			m.choice = Choice{}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if n == 0 {
				return m, nil
			}
			m.done = true
			m.choice = Choice{Index: m.cursor, Selected: true}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
			}
		case key.Matches(msg, m.keys.Down):
			if n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
		case key.Matches(msg, m.keys.Bottom):
			m.cursor = state.ClampCursor(n-1, n)
		}
		return m, nil
	}
	return m, nil
}

// View renders nothing once a choice is made so the prompt is wiped from
// the terminal before the caller prints anything.
func (m Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(view.Header(m.prompt.Breadcrumb, m.prompt.Hint, m.theme))
	b.WriteString("\n")
	start, end := state.CenteredWindow(len(m.prompt.Labels), m.cursor, m.pageSize)
	b.WriteString(view.RenderListBody(view.ListRenderInput{
		Labels: m.prompt.Labels,
		Start:  start,
		End:    end,
		Cursor: m.cursor,
		Width:  m.width,
	}, m.theme))
	return b.String()
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Choice() Choice {
	return m.choice
}

func (m Model) Interrupted() bool {
	return m.interrupted
}
