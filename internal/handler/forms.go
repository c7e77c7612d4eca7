package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/alexedwards/scs/v2"
	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/auth"
	"github.com/theimpacts/impacts/internal/form"
	"github.com/theimpacts/impacts/internal/metrics"
	"github.com/theimpacts/impacts/internal/status"
	"github.com/theimpacts/impacts/internal/submit"
)

// Submitter sends form submissions to the backend API. *submit.Client
// implements it.
type Submitter interface {
	SubmitContact(ctx context.Context, sub form.ContactSubmission) error
	SubmitNewsletter(ctx context.Context, email string) error
}

// statusView is what the status partial needs to render one form's outcome.
type statusView struct {
	Kind    string
	State   string
	Message string
	// DelayMS is how long the message stays up; 0 means nothing to show.
	DelayMS int64
}

func newStatusView(rec status.Record, now time.Time) statusView {
	return statusView{
		Kind:    string(rec.Kind),
		State:   rec.At(now).String(),
		Message: rec.Message(now),
		DelayMS: rec.Remaining(now).Milliseconds(),
	}
}

type contactFormView struct {
	Values   map[string]string
	Status   statusView
	Services []form.Option
	Budgets  []form.Option
}

type newsletterFormView struct {
	Email  string
	Status statusView
}

// formSpec ties a status kind to its session keys.
type formSpec struct {
	kind      status.Kind
	formKey   string
	statusKey string
	newHolder func() *form.Holder
}

var (
	contactSpec = formSpec{
		kind:      status.KindContact,
		formKey:   auth.SessionContactFormKey,
		statusKey: auth.SessionContactStatusKey,
		newHolder: form.NewContact,
	}
	newsletterSpec = formSpec{
		kind:      status.KindNewsletter,
		formKey:   auth.SessionNewsletterFormKey,
		statusKey: auth.SessionNewsletterStatusKey,
		newHolder: form.NewNewsletter,
	}
)

// FormsHandler runs the contact and newsletter submissions for the site.
// Form values and the last outcome live in the visitor's session; the outcome
// carries an absolute expiry so a later status poll renders it as gone.
type FormsHandler struct {
	sessions *scs.SessionManager
	client   Submitter
	log      *zap.Logger
	now      func() time.Time

	// inflight holds session-token/kind pairs with a submission under way.
	// A second submit for the same pair is ignored.
	inflight sync.Map
}

// NewFormsHandler creates a new FormsHandler.
func NewFormsHandler(sm *scs.SessionManager, client Submitter, log *zap.Logger) *FormsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FormsHandler{sessions: sm, client: client, log: log, now: time.Now}
}

// Contact handles POST /contact.
func (h *FormsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, contactSpec, func(ctx context.Context, f *form.Holder) error {
		return h.client.SubmitContact(ctx, f.ContactSubmission())
	})
}

// Newsletter handles POST /newsletter. An empty email is rejected without
// calling the API.
func (h *FormsHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, newsletterSpec, func(ctx context.Context, f *form.Holder) error {
		sub := f.NewsletterSubscription()
		if sub.Email == "" {
			return submit.ErrValidation
		}
		return h.client.SubmitNewsletter(ctx, sub.Email)
	})
}

// ContactStatus handles GET /contact/status.
func (h *FormsHandler) ContactStatus(w http.ResponseWriter, r *http.Request) {
	h.status(w, r, contactSpec)
}

// NewsletterStatus handles GET /newsletter/status.
func (h *FormsHandler) NewsletterStatus(w http.ResponseWriter, r *http.Request) {
	h.status(w, r, newsletterSpec)
}

func (h *FormsHandler) submit(w http.ResponseWriter, r *http.Request, spec formSpec, send func(context.Context, *form.Holder) error) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	holder := h.loadForm(ctx, spec)
	for _, f := range holder.Fields() {
		if _, ok := r.PostForm[string(f)]; ok {
			_ = holder.Set(f, r.PostForm.Get(string(f)))
		}
	}

	release, ok := h.begin(ctx, spec.kind)
	if !ok {
		metrics.IgnoredSubmitsTotal.WithLabelValues(string(spec.kind)).Inc()
		h.log.Debug("ignored submit while in flight", zap.String("form", string(spec.kind)))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	start := h.now()
	err := send(ctx, holder)
	release()
	metrics.SubmitDuration.WithLabelValues(string(spec.kind)).Observe(time.Since(start).Seconds())

	rec := status.NewRecord(spec.kind, err, h.now())
	if rec.State == status.Success {
		holder.Reset()
	}
	h.saveForm(ctx, spec, holder)
	h.sessions.Put(ctx, spec.statusKey, rec.Encode())

	if !isHTMX(r) {
		http.Redirect(w, r, "/#"+string(spec.kind), http.StatusSeeOther)
		return
	}
	h.renderForm(w, spec, holder, rec)
}

func (h *FormsHandler) status(w http.ResponseWriter, r *http.Request, spec formSpec) {
	rec := status.DecodeRecord(spec.kind, h.sessions.GetString(r.Context(), spec.statusKey))
	renderFragment(w, "status", newStatusView(rec, h.now()))
}

// begin claims the in-flight slot for this session and form. A request
// without a session token cannot race another request on the same session.
func (h *FormsHandler) begin(ctx context.Context, kind status.Kind) (release func(), ok bool) {
	token := h.sessions.Token(ctx)
	if token == "" {
		return func() {}, true
	}
	key := token + "|" + string(kind)
	if _, busy := h.inflight.LoadOrStore(key, struct{}{}); busy {
		return nil, false
	}
	return func() { h.inflight.Delete(key) }, true
}

func (h *FormsHandler) loadForm(ctx context.Context, spec formSpec) *form.Holder {
	holder := spec.newHolder()
	raw := h.sessions.GetString(ctx, spec.formKey)
	if raw == "" {
		return holder
	}
	var values map[string]string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		h.log.Debug("discarding unreadable form state", zap.String("form", string(spec.kind)))
		return holder
	}
	holder.Load(values)
	return holder
}

func (h *FormsHandler) saveForm(ctx context.Context, spec formSpec, holder *form.Holder) {
	if holder.IsEmpty() {
		h.sessions.Remove(ctx, spec.formKey)
		return
	}
	b, err := json.Marshal(holder.Values())
	if err != nil {
		h.log.Error("encode form state", zap.Error(err))
		return
	}
	h.sessions.Put(ctx, spec.formKey, string(b))
}

// views returns the current contact and newsletter form views for a full
// page render.
func (h *FormsHandler) views(ctx context.Context) (contactFormView, newsletterFormView) {
	now := h.now()
	contact := h.loadForm(ctx, contactSpec)
	news := h.loadForm(ctx, newsletterSpec)
	crec := status.DecodeRecord(status.KindContact, h.sessions.GetString(ctx, contactSpec.statusKey))
	nrec := status.DecodeRecord(status.KindNewsletter, h.sessions.GetString(ctx, newsletterSpec.statusKey))
	return contactView(contact, crec, now), newsletterFormView{
		Email:  news.Get(form.FieldEmail),
		Status: newStatusView(nrec, now),
	}
}

func (h *FormsHandler) renderForm(w http.ResponseWriter, spec formSpec, holder *form.Holder, rec status.Record) {
	now := h.now()
	if spec.kind == status.KindNewsletter {
		renderFragment(w, "newsletter_form", newsletterFormView{
			Email:  holder.Get(form.FieldEmail),
			Status: newStatusView(rec, now),
		})
		return
	}
	renderFragment(w, "contact_form", contactView(holder, rec, now))
}

func contactView(holder *form.Holder, rec status.Record, now time.Time) contactFormView {
	return contactFormView{
		Values:   holder.Values(),
		Status:   newStatusView(rec, now),
		Services: form.Services,
		Budgets:  form.Budgets,
	}
}
