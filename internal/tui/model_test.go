package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theimpacts/impacts/internal/form"
	"github.com/theimpacts/impacts/internal/preference"
	"github.com/theimpacts/impacts/internal/status"
	"github.com/theimpacts/impacts/internal/submit"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []form.ContactSubmission
	err   error
}

func (f *fakeSubmitter) SubmitContact(_ context.Context, sub form.ContactSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, sub)
	return f.err
}

// stepClock holds scheduled callbacks until fire is called.
type stepClock struct {
	mu      sync.Mutex
	pending []func()
}

type stepTimer struct{ stopped *bool }

func (t stepTimer) Stop() bool { *t.stopped = true; return true }

func (c *stepClock) Now() time.Time { return time.Time{} }

func (c *stepClock) AfterFunc(_ time.Duration, f func()) status.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	stopped := new(bool)
	c.pending = append(c.pending, func() {
		if !*stopped {
			f()
		}
	})
	return stepTimer{stopped: stopped}
}

func (c *stepClock) fire() {
	c.mu.Lock()
	fns := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

func newTestModel(t *testing.T, client Submitter) (Model, *preference.BuntBackend, *stepClock) {
	t.Helper()
	backend, err := preference.OpenBunt(":memory:")
	if err != nil {
		t.Fatalf("open bunt: %v", err)
	}
	t.Cleanup(func() { backend.Close() })
	clock := &stepClock{}
	m := New(client, preference.NewStore(backend), WithClock(clock))
	t.Cleanup(m.Close)
	return m, backend, clock
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func key(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: k})
}

func fillValid(t *testing.T, m Model) Model {
	t.Helper()
	m = typeText(t, m, "Ada Lovelace")
	m, _ = key(t, m, tea.KeyTab)
	m = typeText(t, m, "ada@example.com")
	m, _ = key(t, m, tea.KeyTab)
	m, _ = key(t, m, tea.KeyTab) // skip phone
	m, _ = key(t, m, tea.KeyRight)
	m, _ = key(t, m, tea.KeyTab)
	m, _ = key(t, m, tea.KeyTab) // skip budget
	m = typeText(t, m, "We need a new ad funnel.")
	return m
}

func TestModel_TypingUpdatesForm(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeSubmitter{})
	m = typeText(t, m, "Ada")
	if got := m.form.Get(form.FieldName); got != "Ada" {
		t.Errorf("name = %q, want Ada", got)
	}

	m, _ = key(t, m, tea.KeyTab)
	m = typeText(t, m, "ada@example.com")
	if got := m.form.Get(form.FieldEmail); got != "ada@example.com" {
		t.Errorf("email = %q", got)
	}
	if got := m.form.Get(form.FieldName); got != "Ada" {
		t.Errorf("name changed to %q", got)
	}
}

func TestModel_ChoiceCycles(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeSubmitter{})
	for range 3 {
		m, _ = key(t, m, tea.KeyTab)
	}
	if m.focus != slotService {
		t.Fatalf("focus = %d, want service", m.focus)
	}

	m, _ = key(t, m, tea.KeyRight)
	if got := m.form.Get(form.FieldService); got != "seo" {
		t.Errorf("service = %q, want seo", got)
	}
	m, _ = key(t, m, tea.KeyLeft)
	if got := m.form.Get(form.FieldService); got != "" {
		t.Errorf("service = %q, want empty", got)
	}
	m, _ = key(t, m, tea.KeyLeft)
	if got := m.form.Get(form.FieldService); got != "all" {
		t.Errorf("service = %q, want all (wrapped)", got)
	}
}

func TestModel_SubmitSuccessResetsAndExpires(t *testing.T) {
	client := &fakeSubmitter{}
	m, _, clock := newTestModel(t, client)
	m = fillValid(t, m)

	m, _ = key(t, m, tea.KeyShiftTab) // leave the textarea so enter submits
	m, cmd := key(t, m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if got := m.presenter.State(); got != status.Submitting {
		t.Fatalf("state = %v, want submitting", got)
	}
	if !strings.Contains(m.View(), "Sending...") {
		t.Error("view should show the busy label")
	}

	// A second submit while in flight is ignored.
	m, again := key(t, m, tea.KeyEnter)
	if again != nil {
		t.Error("expected no command for a submit while in flight")
	}

	m, _ = send(t, m, cmd())
	if len(client.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(client.calls))
	}
	if got := client.calls[0]; got.Service != "seo" || got.Message != "We need a new ad funnel." {
		t.Errorf("submitted %+v", got)
	}
	if got := m.presenter.State(); got != status.Success {
		t.Fatalf("state = %v, want success", got)
	}
	if !m.form.IsEmpty() {
		t.Errorf("form should be reset, got %v", m.form.Values())
	}
	if !strings.Contains(m.View(), "Thank you! We'll be in touch soon.") {
		t.Error("view missing success message")
	}

	clock.fire()
	if got := m.presenter.State(); got != status.Idle {
		t.Errorf("state after expiry = %v, want idle", got)
	}
	if strings.Contains(m.View(), "Thank you!") {
		t.Error("message should be gone after expiry")
	}
}

func TestModel_ValidationKeepsValues(t *testing.T) {
	// The real client rejects a missing field before any request is made.
	m, _, _ := newTestModel(t, submit.New("http://127.0.0.1:0"))
	m = typeText(t, m, "Ada")

	m, cmd := key(t, m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	m, _ = send(t, m, cmd())

	if got := m.presenter.State(); got != status.ValidationError {
		t.Fatalf("state = %v, want validation_error", got)
	}
	if got := m.form.Get(form.FieldName); got != "Ada" {
		t.Errorf("name = %q, want retained", got)
	}
	if !strings.Contains(m.View(), "Please fill in your name, email, service and message.") {
		t.Error("view missing validation message")
	}
}

func TestModel_FailureKeepsValues(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeSubmitter{err: submit.ErrGeneric})
	m = fillValid(t, m)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = send(t, m, cmd())

	if got := m.presenter.State(); got != status.GenericError {
		t.Fatalf("state = %v, want error", got)
	}
	if got := m.form.Get(form.FieldEmail); got != "ada@example.com" {
		t.Errorf("email = %q, want retained", got)
	}
}

func TestModel_ToggleThemePersists(t *testing.T) {
	m, backend, _ := newTestModel(t, &fakeSubmitter{})
	if m.skin.styles.Dark {
		t.Fatal("expected light theme by default")
	}

	m, _ = key(t, m, tea.KeyCtrlT)
	if !m.skin.styles.Dark {
		t.Error("expected dark styles after toggle")
	}
	if !preference.NewStore(backend).Load() {
		t.Error("expected dark preference persisted")
	}

	// A fresh model over the same store starts dark.
	again := New(&fakeSubmitter{}, preference.NewStore(backend))
	defer again.Close()
	if !again.skin.styles.Dark {
		t.Error("stored preference not applied on start")
	}
}

func TestModel_QuitClosesPresenter(t *testing.T) {
	m, _, _ := newTestModel(t, &fakeSubmitter{})
	m, cmd := key(t, m, tea.KeyEsc)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.presenter.Begin() {
		t.Error("presenter should refuse work after quit")
	}
}
