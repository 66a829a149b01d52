package backend

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voidpointergroup/complate/internal/config"
)

// UI is the full-screen interactive backend. Each question runs its own
// alt-screen program; quitting any of them cancels the whole render.
type UI struct{}

type uiStyles struct {
	Title  lipgloss.Style
	Cursor lipgloss.Style
	Item   lipgloss.Style
	Muted  lipgloss.Style
}

func defaultUIStyles() uiStyles {
	return uiStyles{
		Title:  lipgloss.NewStyle().Bold(true),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Item:   lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// SelectTemplate runs a full-screen picker over the candidates.
func (u *UI) SelectTemplate(candidates []string) (string, error) {
	final, err := runProgram(newPickerModel("Select a template", candidates))
	if err != nil {
		return "", err
	}
	return final.choice, nil
}

// Query runs a full-screen input for the variable. Submitting an empty
// line means "no answer".
func (u *UI) Query(v config.VariableSpec) (string, bool, error) {
	final, err := runProgram(newInputModel(v.PromptText()))
	if err != nil {
		return "", false, err
	}
	if final.value == "" {
		return "", false, nil
	}
	return final.value, true, nil
}

// Confirm runs a full-screen yes/no question, defaulting to no.
func (u *UI) Confirm(message string) (bool, error) {
	final, err := runProgram(newConfirmModel(message))
	if err != nil {
		return false, err
	}
	return final.confirmed, nil
}

type uiResult struct {
	choice    string
	value     string
	confirmed bool
}

type uiModel interface {
	tea.Model
	result() (uiResult, bool)
}

func runProgram(m uiModel) (uiResult, error) {
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return uiResult{}, fmt.Errorf("backend ui: %w", err)
	}
	done, ok := final.(uiModel)
	if !ok {
		return uiResult{}, fmt.Errorf("backend ui: unexpected model %T", final)
	}
	res, submitted := done.result()
	if !submitted {
		return uiResult{}, ErrCancelled
	}
	return res, nil
}

// pickerModel is a cursor-driven list over template names.
type pickerModel struct {
	title     string
	items     []string
	cursor    int
	styles    uiStyles
	submitted bool
	cancelled bool
}

func newPickerModel(title string, items []string) *pickerModel {
	return &pickerModel{
		title:  title,
		items:  items,
		styles: defaultUIStyles(),
	}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *pickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n\n")
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> " + item))
		} else {
			b.WriteString(m.styles.Item.Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("enter select | esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m *pickerModel) result() (uiResult, bool) {
	if !m.submitted || m.cancelled {
		return uiResult{}, false
	}
	return uiResult{choice: m.items[m.cursor]}, true
}

// inputModel collects one free-text value.
type inputModel struct {
	title     string
	input     textinput.Model
	styles    uiStyles
	submitted bool
	cancelled bool
}

func newInputModel(title string) *inputModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Focus()
	return &inputModel{
		title:  title,
		input:  input,
		styles: defaultUIStyles(),
	}
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter submit | empty line skips | esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m *inputModel) result() (uiResult, bool) {
	if !m.submitted || m.cancelled {
		return uiResult{}, false
	}
	return uiResult{value: m.input.Value()}, true
}

// confirmModel asks a yes/no question.
type confirmModel struct {
	message   string
	styles    uiStyles
	answer    bool
	submitted bool
	cancelled bool
}

func newConfirmModel(message string) *confirmModel {
	return &confirmModel{
		message: message,
		styles:  defaultUIStyles(),
	}
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.answer = true
			m.submitted = true
			return m, tea.Quit
		case "n", "N", "enter":
			m.answer = false
			m.submitted = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.message))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("y yes | n no | esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m *confirmModel) result() (uiResult, bool) {
	if !m.submitted || m.cancelled {
		return uiResult{}, false
	}
	return uiResult{confirmed: m.answer}, true
}
