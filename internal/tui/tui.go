// Package tui provides a Bubble Tea terminal user interface for the
// album collection manager.
package tui

import (
	"context"
	"strings"

	"github.com/TerminTURK/AlbumCollectionManager/internal/command"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateBusy
)

// LogEntry is one line of the session log. Echo marks a line the user
// typed.
type LogEntry struct {
	Message string
	Level   command.Level
	Echo    bool
}

// ResultMsg is sent when a command finishes.
type ResultMsg struct {
	Result command.Result
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state      State
	textInput  textinput.Model
	spinner    spinner.Model
	dispatcher *command.Dispatcher
	logs       []LogEntry
	history    int

	// Cancels a running command, such as a long import.
	ctx    context.Context
	cancel context.CancelFunc

	width int
}

// NewModel creates a new TUI model. history bounds the number of log
// lines kept on screen.
func NewModel(d *command.Dispatcher, history int) Model {
	ti := textinput.New()
	ti.Placeholder = "A,title,artist,m/d/yyyy,genre,m/d/yyyy"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		state:      StateInput,
		textInput:  ti,
		spinner:    sp,
		dispatcher: d,
		history:    max(history, 1),
		ctx:        ctx,
		cancel:     cancel,
	}
	started := command.Started()
	m.appendLog(LogEntry{Message: started.Text, Level: started.Level})
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textInput.Width = max(msg.Width-4, 20)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateBusy {
				m.cancel()
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.textInput.Value())
			if m.state != StateInput || line == "" {
				return m, nil
			}
			m.appendLog(LogEntry{Message: line, Echo: true})
			m.textInput.SetValue("")
			m.state = StateBusy
			return m, tea.Batch(m.execute(line), m.spinner.Tick)
		}

	case spinner.TickMsg:
		if m.state != StateBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ResultMsg:
		for _, message := range msg.Result.Messages {
			m.appendLog(LogEntry{Message: message.Text, Level: message.Level})
		}
		if msg.Result.Quit {
			m.cancel()
			return m, tea.Quit
		}
		if m.ctx.Err() != nil {
			m.ctx, m.cancel = context.WithCancel(context.Background())
		}
		m.state = StateInput
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// execute runs one command line off the UI goroutine. Only one runs at
// a time: Update ignores enter while the model is busy.
func (m Model) execute(line string) tea.Cmd {
	ctx, d := m.ctx, m.dispatcher
	return func() tea.Msg {
		return ResultMsg{Result: d.Handle(ctx, line)}
	}
}

func (m *Model) appendLog(e LogEntry) {
	m.logs = append(m.logs, e)
	if len(m.logs) > m.history {
		m.logs = m.logs[len(m.logs)-m.history:]
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Album Collection Manager"))
	b.WriteString("\n")
	b.WriteString(m.renderLogs())
	b.WriteString("\n")

	switch m.state {
	case StateInput:
		b.WriteString(subtitleStyle.Render("Command:"))
		b.WriteString("\n")
		b.WriteString(m.textInput.View())
	case StateBusy:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Working..."))
	}

	// Footer
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	// Long lines wrap at the terminal width once it is known.
	fit := func(s lipgloss.Style) lipgloss.Style {
		if m.width > 0 {
			return s.Width(m.width)
		}
		return s
	}

	for _, log := range m.logs {
		if log.Echo {
			b.WriteString(fit(dimStyle).Render("› " + log.Message))
			b.WriteString("\n")
			continue
		}

		var style lipgloss.Style
		switch log.Level {
		case command.LevelError:
			style = errorStyle
		case command.LevelWarning:
			style = warningStyle
		case command.LevelSuccess:
			style = successStyle
		default:
			style = infoStyle
		}
		b.WriteString(fit(style).Render(log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	if m.state == StateBusy {
		return "esc: cancel"
	}
	return "enter: run • A D R PD PG PR I Q • esc: quit"
}

// Run starts the TUI application.
func Run(d *command.Dispatcher, history int) error {
	p := tea.NewProgram(NewModel(d, history), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
