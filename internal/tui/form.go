package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/guilhermegouw/cadastro/internal/debug"
	"github.com/guilhermegouw/cadastro/internal/models"
	"github.com/guilhermegouw/cadastro/internal/prompt"
	"github.com/guilhermegouw/cadastro/internal/report"
	"github.com/guilhermegouw/cadastro/internal/tui/components/logo"
	"github.com/guilhermegouw/cadastro/internal/tui/styles"
)

var placeholders = []string{
	"Nathan Almeida",
	"nathan@email.com",
	"529.982.247-25",
	"30/09/2000",
}

// Model is the data-entry form. It collects the four fields, validates them
// on submit and shows the result in place.
type Model struct {
	validator *models.Validator
	copyFn    func(string) error
	fields    []prompt.Field
	inputs    []textinput.Model
	user      *models.User
	errs      models.ValidationErrors
	status    string
	focus     int
	width     int
	submitted bool
	quitting  bool
}

// New creates a form that validates with v. copyFn receives the canonical
// CPF when the user asks to copy it; nil disables copying.
func New(v *models.Validator, copyFn func(string) error) *Model {
	fields := prompt.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i := range fields {
		in := textinput.New()
		in.Prompt = "> "
		in.Placeholder = placeholders[i]
		in.CharLimit = 0 // no limit, same as the line prompt
		inputs[i] = in
	}
	inputs[0].Focus()

	return &Model{
		validator: v,
		copyFn:    copyFn,
		fields:    fields,
		inputs:    inputs,
		width:     60,
	}
}

// Init initializes the form.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		debug.Event("tui", "KeyMsg", fmt.Sprintf("key=%q submitted=%t", msg.String(), m.submitted))
		if m.submitted {
			return m.updateResult(msg)
		}
		if cmd, handled := m.handleFormKey(msg); handled {
			return m, cmd
		}
	}

	if m.submitted {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case keyCtrlC, keyEsc:
		m.quitting = true
		return tea.Quit, true
	case keyEnter:
		if m.focus == len(m.inputs)-1 {
			m.submit()
			return nil, true
		}
		return m.setFocus(m.focus + 1), true
	case keyTab, keyDown:
		return m.setFocus(m.focus + 1), true
	case keyShiftTab, keyUp:
		return m.setFocus(m.focus - 1), true
	}
	return nil, false
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC, keyEsc, keyQuit, keyEnter:
		m.quitting = true
		return m, tea.Quit
	case keyRestart:
		m.reset()
		return m, textinput.Blink
	case keyCopy:
		m.copyCPF()
	}
	return m, nil
}

// setFocus moves focus to field i, wrapping around.
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	i = (i%n + n) % n

	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *Model) submit() {
	input := m.Input()
	m.user, m.errs = m.validator.Validate(input)
	m.submitted = true
	m.status = ""
	m.inputs[m.focus].Blur()

	if m.errs != nil {
		debug.Event("tui", "Submit", fmt.Sprintf("valid=false codes=%v", m.errs.Kinds()))
		return
	}
	debug.Event("tui", "Submit", fmt.Sprintf("valid=true id=%s", m.user.ID))
}

func (m *Model) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.user = nil
	m.errs = nil
	m.status = ""
	m.submitted = false
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *Model) copyCPF() {
	if m.user == nil {
		return
	}
	if m.copyFn == nil {
		m.status = "Clipboard unavailable."
		return
	}
	if err := m.copyFn(m.user.CPF); err != nil {
		debug.Error("tui", err, "copying cpf")
		m.status = "Could not copy CPF: " + err.Error()
		return
	}
	m.status = "CPF copied to clipboard."
}

func (m *Model) setWidth(width int) {
	m.width = width
	for i := range m.inputs {
		m.inputs[i].SetWidth(max(width-6, 10))
	}
}

// Input returns the current field values.
func (m *Model) Input() models.Input {
	var in models.Input
	for i, f := range m.fields {
		f.Set(&in, m.inputs[i].Value())
	}
	return in
}

// Result returns the validation outcome. Both are nil until the form is
// submitted.
func (m *Model) Result() (*models.User, models.ValidationErrors) {
	return m.user, m.errs
}

// Submitted reports whether the form was submitted.
func (m *Model) Submitted() bool {
	return m.submitted
}

// View renders the form.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.quitting {
		return view
	}

	view.Content = m.render()
	return view
}

func (m *Model) render() string {
	t := styles.CurrentTheme()

	title := t.S().Title.Render("User Registration")
	if m.width == 0 || m.width >= logo.Width() {
		title = logo.RenderWithTagline("User registration")
	}

	var body string
	if m.submitted {
		body = m.renderResult(t)
	} else {
		body = m.renderFields(t)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		m.helpText(t),
	)
}

func (m *Model) renderFields(t *styles.Theme) string {
	fields := make([]string, 0, len(m.fields))
	for i, f := range m.fields {
		labelStyle := t.S().Text
		if i == m.focus {
			labelStyle = t.S().Success.Bold(true)
		}
		fields = append(fields, labelStyle.Render(f.Label+":")+"\n"+m.inputs[i].View())
	}
	return strings.Join(fields, "\n\n")
}

func (m *Model) renderResult(t *styles.Theme) string {
	content := strings.TrimRight(report.RenderText(m.user, m.errs, t), "\n")
	box := t.S().Box
	if m.errs != nil {
		box = box.BorderForeground(t.Error)
	} else {
		box = box.BorderForeground(t.Success)
	}

	out := box.Render(content)
	if m.status != "" {
		out += "\n" + t.S().Muted.Render(m.status)
	}
	return out
}

func (m *Model) helpText(t *styles.Theme) string {
	if !m.submitted {
		return t.S().Muted.Render("Enter to continue • Shift+Tab to go back • Esc to quit")
	}
	if m.user != nil && m.copyFn != nil {
		return t.S().Muted.Render("c to copy CPF • r to start over • q to quit")
	}
	return t.S().Muted.Render("r to start over • q to quit")
}
