// Package tui is the terminal contact form. It drives the same form holder,
// submission client and status presenter as the web site, with the dark
// preference kept in a local buntdb file.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/theimpacts/impacts/internal/form"
	"github.com/theimpacts/impacts/internal/preference"
	"github.com/theimpacts/impacts/internal/status"
)

// Submitter sends a contact submission. *submit.Client implements it.
type Submitter interface {
	SubmitContact(ctx context.Context, sub form.ContactSubmission) error
}

type slot int

const (
	slotName slot = iota
	slotEmail
	slotPhone
	slotService
	slotBudget
	slotMessage
	slotSubmit
	slotCount
)

var slotFields = map[slot]form.Field{
	slotName:    form.FieldName,
	slotEmail:   form.FieldEmail,
	slotPhone:   form.FieldPhone,
	slotService: form.FieldService,
	slotBudget:  form.FieldBudget,
	slotMessage: form.FieldMessage,
}

var slotLabels = map[slot]string{
	slotName:    "Full Name *",
	slotEmail:   "Email *",
	slotPhone:   "Phone",
	slotService: "Service *",
	slotBudget:  "Budget Range",
	slotMessage: "Message *",
}

// statusChangedMsg signals a presenter transition; the view re-reads the state.
type statusChangedMsg struct{}

type submitDoneMsg struct{ err error }

// Model is the bubbletea model for the contact form.
type Model struct {
	ctx       context.Context
	client    Submitter
	form      *form.Holder
	presenter *status.Presenter
	theme     *preference.Theme
	skin      *skin
	changes   chan struct{}

	inputs  map[slot]*textinput.Model
	message *textarea.Model
	choices map[slot]int
	focus   slot

	warning string
}

// Option configures a Model.
type Option func(*config)

type config struct {
	ctx   context.Context
	clock status.Clock
}

// WithContext sets the context submissions run under.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithClock overrides the presenter's clock.
func WithClock(clock status.Clock) Option {
	return func(c *config) { c.clock = clock }
}

// New builds the contact form model. The stored dark preference is loaded and
// applied immediately.
func New(client Submitter, prefs *preference.Store, opts ...Option) Model {
	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	var popts []status.Option
	if cfg.clock != nil {
		popts = append(popts, status.WithClock(cfg.clock))
	}

	m := Model{
		ctx:       cfg.ctx,
		client:    client,
		form:      form.NewContact(),
		presenter: status.NewPresenter(status.KindContact, popts...),
		skin:      &skin{},
		changes:   make(chan struct{}, 1),
		inputs:    map[slot]*textinput.Model{},
		choices:   map[slot]int{slotService: 0, slotBudget: 0},
	}
	m.theme = preference.NewTheme(prefs, preference.ApplyFunc(m.skin.apply))
	m.theme.Init()

	changes := m.changes
	m.presenter.OnChange(func(status.State) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	for s, placeholder := range map[slot]string{
		slotName:  "John Doe",
		slotEmail: "john@example.com",
		slotPhone: "+1 (234) 567-890",
	} {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.CharLimit = 100
		if s == slotPhone {
			ti.CharLimit = 20
		}
		m.inputs[s] = &ti
	}
	ta := textarea.New()
	ta.Placeholder = "Tell us about your project and goals..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(4)
	ta.SetWidth(60)
	m.message = &ta

	m.inputs[slotName].Focus()
	return m
}

// Close stops the presenter's pending expiry.
func (m Model) Close() { m.presenter.Close() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changes))
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return statusChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w := msg.Width - 8; w > 20 && w < 72 {
			m.message.SetWidth(w)
		}
		return m, nil

	case statusChangedMsg:
		return m, waitForChange(m.changes)

	case submitDoneMsg:
		if m.presenter.Finish(msg.err) == status.Success {
			m.reset()
			cmd := m.setFocus(slotName)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.presenter.Close()
			return m, tea.Quit
		case "ctrl+t":
			m.warning = ""
			if _, err := m.theme.Toggle(); err != nil {
				m.warning = "Theme preference could not be saved."
			}
			return m, nil
		case "tab":
			cmd := m.setFocus((m.focus + 1) % slotCount)
			return m, cmd
		case "shift+tab":
			cmd := m.setFocus((m.focus + slotCount - 1) % slotCount)
			return m, cmd
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus != slotMessage {
				return m.submit()
			}
		case "left", "right":
			if m.focus == slotService || m.focus == slotBudget {
				m.cycle(msg.String() == "right")
				return m, nil
			}
		}
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus == slotMessage:
		*m.message, cmd = m.message.Update(msg)
		_ = m.form.Set(form.FieldMessage, m.message.Value())
	case m.inputs[m.focus] != nil:
		in := m.inputs[m.focus]
		*in, cmd = in.Update(msg)
		_ = m.form.Set(slotFields[m.focus], in.Value())
	}
	return m, cmd
}

// submit starts a submission unless one is already in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.presenter.Begin() {
		return m, nil
	}
	ctx, client, sub := m.ctx, m.client, m.form.ContactSubmission()
	return m, func() tea.Msg {
		return submitDoneMsg{err: client.SubmitContact(ctx, sub)}
	}
}

func (m *Model) setFocus(s slot) tea.Cmd {
	for _, in := range m.inputs {
		in.Blur()
	}
	m.message.Blur()
	m.focus = s
	if s == slotMessage {
		return m.message.Focus()
	}
	if in := m.inputs[s]; in != nil {
		return in.Focus()
	}
	return nil
}

func (m *Model) cycle(forward bool) {
	opts := m.options(m.focus)
	n := len(opts) + 1 // index 0 is "not selected"
	i := m.choices[m.focus]
	if forward {
		i = (i + 1) % n
	} else {
		i = (i + n - 1) % n
	}
	m.choices[m.focus] = i
	value := ""
	if i > 0 {
		value = opts[i-1].Value
	}
	_ = m.form.Set(slotFields[m.focus], value)
}

func (m *Model) options(s slot) []form.Option {
	if s == slotBudget {
		return form.Budgets
	}
	return form.Services
}

func (m *Model) reset() {
	m.form.Reset()
	for _, in := range m.inputs {
		in.SetValue("")
	}
	m.message.Reset()
	for s := range m.choices {
		m.choices[s] = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	st := m.skin.styles
	var b strings.Builder

	b.WriteString(st.Title.Render("Get In Touch"))
	b.WriteString("\n")

	for s := slotName; s < slotSubmit; s++ {
		label := st.Label
		marker := "  "
		if s == m.focus {
			label = st.Focused
			marker = "> "
		}
		b.WriteString(marker + label.Render(slotLabels[s]) + "\n")
		switch {
		case s == slotMessage:
			b.WriteString(m.message.View())
		case m.inputs[s] != nil:
			b.WriteString("  " + m.inputs[s].View())
		default:
			b.WriteString("  " + m.choiceView(s))
		}
		b.WriteString("\n\n")
	}

	button := "Send Message"
	if m.presenter.State() == status.Submitting {
		button = "Sending..."
	}
	if m.focus == slotSubmit {
		button = "> " + button
	}
	b.WriteString(st.Button.Render(button))
	b.WriteString("\n\n")

	if line := m.statusLine(); line != "" {
		b.WriteString(line + "\n")
	}
	if m.warning != "" {
		b.WriteString(st.Warning.Render(m.warning) + "\n")
	}
	b.WriteString(st.Muted.Render("tab next • ←/→ choose • enter send • ctrl+t theme • esc quit"))

	return st.Box.Render(b.String())
}

func (m Model) choiceView(s slot) string {
	st := m.skin.styles
	i := m.choices[s]
	if i == 0 {
		if s == slotBudget {
			return st.Muted.Render("‹ Select your budget range ›")
		}
		return st.Muted.Render("‹ Select a service ›")
	}
	return st.Value.Render("‹ " + m.options(s)[i-1].Label + " ›")
}

func (m Model) statusLine() string {
	st := m.skin.styles
	state := m.presenter.State()
	msg := status.Message(status.KindContact, state)
	switch state {
	case status.Success:
		return st.Success.Render(msg)
	case status.ValidationError, status.Conflict, status.GenericError:
		return st.Error.Render(msg)
	}
	return ""
}
