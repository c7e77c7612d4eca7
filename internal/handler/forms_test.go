package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/theimpacts/impacts/internal/form"
	"github.com/theimpacts/impacts/internal/submit"
)

// fakeSubmitter records calls and returns err. When block is set, calls
// signal started and wait for block to close.
type fakeSubmitter struct {
	mu       sync.Mutex
	contacts []form.ContactSubmission
	emails   []string
	err      error
	started  chan struct{}
	block    chan struct{}
}

func (f *fakeSubmitter) wait() {
	if f.block == nil {
		return
	}
	f.started <- struct{}{}
	<-f.block
}

func (f *fakeSubmitter) SubmitContact(_ context.Context, sub form.ContactSubmission) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	if missing := sub.MissingRequired(); len(missing) > 0 {
		return submit.ErrValidation
	}
	f.contacts = append(f.contacts, sub)
	return f.err
}

func (f *fakeSubmitter) SubmitNewsletter(_ context.Context, email string) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, email)
	return f.err
}

func (f *fakeSubmitter) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contacts), len(f.emails)
}

// browser replays session cookies across requests.
type browser struct {
	mu      sync.Mutex
	h       http.Handler
	cookies []*http.Cookie
}

func (b *browser) do(method, path string, values url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if values != nil {
		body = strings.NewReader(values.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if values != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	b.mu.Lock()
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}
	b.mu.Unlock()

	rec := httptest.NewRecorder()
	b.h.ServeHTTP(rec, req)

	if cs := rec.Result().Cookies(); len(cs) > 0 {
		b.mu.Lock()
		b.cookies = cs
		b.mu.Unlock()
	}
	return rec
}

type formsTestEnv struct {
	forms  *FormsHandler
	sub    *fakeSubmitter
	now    time.Time
	client *browser
}

func newFormsTestEnv(t *testing.T) *formsTestEnv {
	t.Helper()
	sm := scs.New()
	sub := &fakeSubmitter{}
	env := &formsTestEnv{sub: sub, now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	env.forms = NewFormsHandler(sm, sub, nil)
	env.forms.now = func() time.Time { return env.now }

	mux := http.NewServeMux()
	mux.HandleFunc("POST /contact", env.forms.Contact)
	mux.HandleFunc("GET /contact/status", env.forms.ContactStatus)
	mux.HandleFunc("POST /newsletter", env.forms.Newsletter)
	mux.HandleFunc("GET /newsletter/status", env.forms.NewsletterStatus)
	env.client = &browser{h: sm.LoadAndSave(mux)}
	return env
}

func validContactForm() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"service": {"seo"},
		"message": {"We would like a full SEO audit."},
	}
}

func TestContact_SuccessResetsForm(t *testing.T) {
	env := newFormsTestEnv(t)

	rec := env.client.do("POST", "/contact", validContactForm(), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Thank you! We&#39;ll be in touch soon.") {
		t.Errorf("missing success message in %s", body)
	}
	if strings.Contains(body, `value="Ada Lovelace"`) {
		t.Error("form should be reset after success")
	}
	if !strings.Contains(body, `hx-trigger="load delay:5000ms"`) {
		t.Errorf("expected 5s status refresh, got %s", body)
	}
	if n, _ := env.sub.calls(); n != 1 {
		t.Errorf("contact calls = %d, want 1", n)
	}
}

func TestContact_ValidationRetainsValues(t *testing.T) {
	env := newFormsTestEnv(t)

	values := validContactForm()
	values.Set("message", "")
	values.Set("phone", "555-0100")
	rec := env.client.do("POST", "/contact", values, true)

	body := rec.Body.String()
	if !strings.Contains(body, "Please fill in your name, email, service and message.") {
		t.Errorf("missing validation message in %s", body)
	}
	if !strings.Contains(body, `value="Ada Lovelace"`) || !strings.Contains(body, `value="555-0100"`) {
		t.Error("entered values should be retained after a failed submit")
	}
	if !strings.Contains(body, `<option value="seo" selected>`) {
		t.Error("selected service should be retained")
	}
}

func TestContact_StatusExpires(t *testing.T) {
	env := newFormsTestEnv(t)
	env.sub.err = submit.ErrGeneric

	env.client.do("POST", "/contact", validContactForm(), true)

	env.now = env.now.Add(4999 * time.Millisecond)
	rec := env.client.do("GET", "/contact/status", nil, true)
	if !strings.Contains(rec.Body.String(), "Something went wrong. Please try again.") {
		t.Errorf("message should still be visible: %s", rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "load delay:1ms") {
		t.Errorf("expected remaining delay of 1ms: %s", rec.Body)
	}

	env.now = env.now.Add(time.Millisecond)
	rec = env.client.do("GET", "/contact/status", nil, true)
	body := rec.Body.String()
	if strings.Contains(body, "Something went wrong") {
		t.Errorf("message should have expired: %s", body)
	}
	if strings.Contains(body, "hx-get") {
		t.Errorf("expired status should not poll again: %s", body)
	}
	if !strings.Contains(body, "status-idle") {
		t.Errorf("expected idle status: %s", body)
	}
}

func TestContact_NewSubmitSupersedesOutcome(t *testing.T) {
	env := newFormsTestEnv(t)
	env.sub.err = submit.ErrGeneric
	env.client.do("POST", "/contact", validContactForm(), true)

	env.now = env.now.Add(3 * time.Second)
	env.sub.err = nil
	env.client.do("POST", "/contact", validContactForm(), true)

	// The first outcome would have expired here; the second is still live.
	env.now = env.now.Add(4 * time.Second)
	rec := env.client.do("GET", "/contact/status", nil, true)
	if !strings.Contains(rec.Body.String(), "be in touch soon") {
		t.Errorf("expected second outcome to be visible: %s", rec.Body)
	}
}

func TestContact_NonHTMXRedirects(t *testing.T) {
	env := newFormsTestEnv(t)
	rec := env.client.do("POST", "/contact", validContactForm(), false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/#contact" {
		t.Errorf("Location = %q", loc)
	}
}

func TestContact_IgnoredWhileSubmitting(t *testing.T) {
	env := newFormsTestEnv(t)

	// Establish a session first.
	values := validContactForm()
	values.Set("name", "")
	env.client.do("POST", "/contact", values, true)
	if len(env.client.cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	env.sub.started = make(chan struct{}, 1)
	env.sub.block = make(chan struct{})

	done := make(chan *httptest.ResponseRecorder)
	go func() { done <- env.client.do("POST", "/contact", validContactForm(), true) }()
	<-env.sub.started

	second := env.client.do("POST", "/contact", validContactForm(), true)
	if second.Code != http.StatusNoContent {
		t.Errorf("second submit status = %d, want 204", second.Code)
	}

	close(env.sub.block)
	first := <-done
	if first.Code != http.StatusOK {
		t.Errorf("first submit status = %d", first.Code)
	}
	if n, _ := env.sub.calls(); n != 1 {
		t.Errorf("contact calls = %d, want 1", n)
	}
}

func TestNewsletter_Outcomes(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		err       error
		want      string
		wantCalls int
	}{
		{"empty email skips api", "", nil, "Please enter your email address.", 0},
		{"success", "reader@example.com", nil, "Thanks for subscribing!", 1},
		{"conflict", "reader@example.com", submit.ErrConflict, "Already subscribed!", 1},
		{"generic", "reader@example.com", submit.ErrGeneric, "Something went wrong. Try again.", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFormsTestEnv(t)
			env.sub.err = tt.err

			rec := env.client.do("POST", "/newsletter", url.Values{"email": {tt.email}}, true)
			body := rec.Body.String()
			if !strings.Contains(body, tt.want) {
				t.Errorf("body missing %q: %s", tt.want, body)
			}
			if !strings.Contains(body, "load delay:4000ms") {
				t.Errorf("expected 4s newsletter refresh: %s", body)
			}
			if _, n := env.sub.calls(); n != tt.wantCalls {
				t.Errorf("newsletter calls = %d, want %d", n, tt.wantCalls)
			}
		})
	}
}

func TestNewsletter_ConflictKeepsEmail(t *testing.T) {
	env := newFormsTestEnv(t)
	env.sub.err = submit.ErrConflict

	rec := env.client.do("POST", "/newsletter", url.Values{"email": {"reader@example.com"}}, true)
	if !strings.Contains(rec.Body.String(), `value="reader@example.com"`) {
		t.Errorf("email should be kept after conflict: %s", rec.Body)
	}
}
