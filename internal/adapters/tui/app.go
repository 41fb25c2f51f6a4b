// Package tui is the full-screen front-end. It speaks the same command
// grammar as the line terminal, typed into a single input field.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/hanoi/internal/command"
	"svw.info/hanoi/internal/usecase"
)

type model struct {
	game   *usecase.Game
	theme  Theme
	input  textinput.Model
	status string
	width  int
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(game *usecase.Game) error {
	p := tea.NewProgram(newModel(game), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(game *usecase.Game) model {
	ti := textinput.New()
	ti.Placeholder = "from,to"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	return model{
		game:  game,
		theme: DefaultTheme(),
		input: ti,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			return m.dispatch(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch applies one parsed input line to the session. Everything the
// grammar does not recognize falls through silently, like the line terminal.
func (m model) dispatch(line string) (tea.Model, tea.Cmd) {
	m.status = ""
	res := command.Parse(line)
	switch res.Kind {
	case command.Quit:
		return m, tea.Quit
	case command.Move:
		if _, err := m.game.Move(res.From, res.To); err != nil {
			m.status = err.Error()
		}
	case command.Undo:
		if _, err := m.game.Undo(); err != nil {
			m.status = err.Error()
		}
	case command.Hint:
		hm, found, err := m.game.Hint(context.Background())
		switch {
		case err != nil:
			m.status = err.Error()
		case found:
			m.status = fmt.Sprintf("hint: %s,%s", hm.From, hm.To)
		default:
			m.status = "hint: nothing to do"
		}
	}
	return m, nil
}

func (m model) View() string {
	header := m.theme.Title.Render("The Tower of Hanoi")
	board := m.theme.Card.Render(viewBoard(m.theme, m.game.Board))
	status := ""
	if m.status != "" {
		status = m.theme.Status.Render(m.status)
	}
	help := m.theme.Help.Render("from,to move • /undo • /hint • /quit or ctrl+c")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		board,
		status,
		m.input.View(),
		help,
	)
}
