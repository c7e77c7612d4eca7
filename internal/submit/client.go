// Package submit sends contact and newsletter submissions to the agency API.
package submit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/form"
	"github.com/theimpacts/impacts/internal/metrics"
)

var (
	// ErrValidation is returned when a required field is empty. No request is sent.
	ErrValidation = errors.New("required field missing")

	// ErrConflict is returned when the API reports the resource already exists.
	ErrConflict = errors.New("already exists")

	// ErrGeneric covers transport failures and any unclassified API response.
	ErrGeneric = errors.New("submission failed")
)

const defaultTimeout = 15 * time.Second

// contactPayload is the wire body of POST /contact. Empty optional values are
// sent as null rather than "".
type contactPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Service *string `json:"service"`
	Budget  *string `json:"budget"`
	Message string  `json:"message"`
}

type newsletterPayload struct {
	Email string `json:"email"`
}

// Client issues exactly one request per call. It never retries.
type Client struct {
	http *resty.Client
	log  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.http.BaseURL
		c.http = resty.NewWithClient(hc).SetBaseURL(base)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithLogger sets the logger used for advisory error logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the API rooted at baseURL, e.g. "https://example.com/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.SetRetryCount(0)
	if c.http.GetClient().Timeout == 0 {
		c.http.SetTimeout(defaultTimeout)
	}
	c.http.SetHeader("Accept", "application/json")
	return c
}

// SubmitContact validates the required fields and posts the submission.
func (c *Client) SubmitContact(ctx context.Context, sub form.ContactSubmission) error {
	if missing := sub.MissingRequired(); len(missing) > 0 {
		metrics.SubmissionsTotal.WithLabelValues("contact", "validation_error").Inc()
		return fmt.Errorf("%w: %v", ErrValidation, missing)
	}

	body := contactPayload{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   nullable(sub.Phone),
		Service: nullable(sub.Service),
		Budget:  nullable(sub.Budget),
		Message: sub.Message,
	}
	err := c.post(ctx, "/contact", body, nil)
	metrics.SubmissionsTotal.WithLabelValues("contact", outcomeLabel(err)).Inc()
	return err
}

// SubmitNewsletter posts a newsletter signup. The caller is expected to have
// checked that email is non-empty. A 409 response maps to ErrConflict.
func (c *Client) SubmitNewsletter(ctx context.Context, email string) error {
	err := c.post(ctx, "/newsletter", newsletterPayload{Email: email}, map[int]error{
		http.StatusConflict: ErrConflict,
	})
	metrics.SubmissionsTotal.WithLabelValues("newsletter", outcomeLabel(err)).Inc()
	return err
}

// post sends body as JSON. Non-2xx statuses map through classify, falling
// back to ErrGeneric.
func (c *Client) post(ctx context.Context, path string, body any, classify map[int]error) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		c.log.Warn("submission request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrGeneric, err)
	}
	if resp.IsSuccess() {
		return nil
	}
	if mapped, ok := classify[resp.StatusCode()]; ok {
		return mapped
	}
	c.log.Warn("submission rejected",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.ByteString("body", truncate(resp.Body(), 512)))
	return fmt.Errorf("%w: api returned %d", ErrGeneric, resp.StatusCode())
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
