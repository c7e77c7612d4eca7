package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impacts_submissions_total",
		Help: "Form submissions by form and outcome, as seen by the submission client.",
	}, []string{"form", "outcome"})

	SubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "impacts_submit_duration_seconds",
		Help:    "Time from form post to rendered outcome on the site.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"form"})

	IgnoredSubmitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impacts_ignored_submits_total",
		Help: "Submit triggers dropped because a submission was already in flight.",
	}, []string{"form"})

	ContactsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "impacts_contacts_created_total",
		Help: "Contact inquiries persisted by the API.",
	})

	APIValidationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impacts_api_validation_errors_total",
		Help: "API requests rejected with 422.",
	}, []string{"route"})

	SubscribersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "impacts_newsletter_subscribers",
		Help: "Current number of newsletter subscribers.",
	})

	ThemeTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impacts_theme_toggles_total",
		Help: "Theme preference changes by resulting theme.",
	}, []string{"theme"})
)
