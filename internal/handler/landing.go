package handler

import (
	"net/http"
	"net/url"

	"github.com/theimpacts/impacts/internal/content"
)

type portfolioView struct {
	Category   string
	Categories []content.Link
	Projects   []content.Project
}

type pricingView struct {
	Billing content.Billing
	Yearly  bool
	Badge   string
	Plans   []planView
}

type planView struct {
	content.Plan
	PriceLabel string
}

type landingPage struct {
	BasePage
	Portfolio  portfolioView
	Pricing    pricingView
	Contact    contactFormView
	Newsletter newsletterFormView
}

// LandingHandler serves the public landing page and its HTMX sections.
type LandingHandler struct {
	pages pages
	forms *FormsHandler
}

// NewLandingHandler creates a new LandingHandler.
func NewLandingHandler(p pages, forms *FormsHandler) *LandingHandler {
	return &LandingHandler{pages: p, forms: forms}
}

// Index serves GET /. The portfolio filter and billing period can be
// preselected with ?category= and ?billing= for clients without JavaScript.
func (h *LandingHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	contact, newsletter := h.forms.views(r.Context())
	render(w, "landing.html", landingPage{
		BasePage:   h.pages.base(w, r, ""),
		Portfolio:  h.portfolio(q.Get("category")),
		Pricing:    h.pricing(q.Get("billing")),
		Contact:    contact,
		Newsletter: newsletter,
	})
}

// Portfolio serves GET /portfolio?category=.
func (h *LandingHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	v := h.portfolio(r.URL.Query().Get("category"))
	if !isHTMX(r) {
		http.Redirect(w, r, "/?category="+url.QueryEscape(v.Category)+"#portfolio", http.StatusSeeOther)
		return
	}
	renderFragment(w, "portfolio", v)
}

// Pricing serves GET /pricing?billing=.
func (h *LandingHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	v := h.pricing(r.URL.Query().Get("billing"))
	if !isHTMX(r) {
		http.Redirect(w, r, "/?billing="+string(v.Billing)+"#pricing", http.StatusSeeOther)
		return
	}
	renderFragment(w, "pricing", v)
}

func (h *LandingHandler) portfolio(category string) portfolioView {
	category = content.NormalizeCategory(category)
	return portfolioView{
		Category:   category,
		Categories: content.PortfolioCategories,
		Projects:   h.pages.site.PortfolioFor(category),
	}
}

func (h *LandingHandler) pricing(billing string) pricingView {
	b := content.ParseBilling(billing)
	v := pricingView{
		Billing: b,
		Yearly:  b == content.Yearly,
		Badge:   h.pages.site.Pricing.YearlyBadge,
	}
	for _, p := range h.pages.site.Pricing.Plans {
		v.Plans = append(v.Plans, planView{Plan: p, PriceLabel: p.PriceLabel(b)})
	}
	return v
}
