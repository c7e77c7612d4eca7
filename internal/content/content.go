// Package content holds the fixed marketing copy rendered by the site.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

//go:embed legal.yaml
var legalYAML []byte

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Blurb   string `yaml:"blurb"`
}

type Hero struct {
	Title        string `yaml:"title"`
	Highlight    string `yaml:"highlight"`
	Lead         string `yaml:"lead"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
	SocialProof  string `yaml:"social_proof"`
}

type ContactInfo struct {
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
}

type Service struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

type Stat struct {
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Label  string `yaml:"label"`
}

type Metric struct {
	Name   string `yaml:"name"`
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

// Project is a portfolio case study. Category is one of the service IDs.
type Project struct {
	Title       string `yaml:"title"`
	Client      string `yaml:"client"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Metric      Metric `yaml:"metric"`
	Image       string `yaml:"image"`
}

type Plan struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Monthly     int      `yaml:"monthly"`
	Yearly      int      `yaml:"yearly"`
	CTA         string   `yaml:"cta"`
	Highlighted bool     `yaml:"highlighted"`
	Features    []string `yaml:"features"`
}

// Price returns the per-month USD price under billing b.
func (p Plan) Price(b Billing) int {
	if b == Yearly {
		return p.Yearly
	}
	return p.Monthly
}

// PriceLabel formats Price as "$2,499".
func (p Plan) PriceLabel(b Billing) string {
	return "$" + humanize.Comma(int64(p.Price(b)))
}

type Pricing struct {
	YearlyBadge string `yaml:"yearly_badge"`
	Plans       []Plan `yaml:"plans"`
}

type Testimonial struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Company  string `yaml:"company"`
	Rating   int    `yaml:"rating"`
	Avatar   string `yaml:"avatar"`
	Quote    string `yaml:"quote"`
}

type FooterColumn struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

// Site is the landing page content.
type Site struct {
	Brand        Brand          `yaml:"brand"`
	Hero         Hero           `yaml:"hero"`
	Contact      ContactInfo    `yaml:"contact"`
	Services     []Service      `yaml:"services"`
	Stats        []Stat         `yaml:"stats"`
	Portfolio    []Project      `yaml:"portfolio"`
	Pricing      Pricing        `yaml:"pricing"`
	Testimonials []Testimonial  `yaml:"testimonials"`
	Nav          []Link         `yaml:"nav"`
	Footer       []FooterColumn `yaml:"footer"`
	Social       []Link         `yaml:"social"`
}

// PortfolioCategoryAll selects every project.
const PortfolioCategoryAll = "all"

// PortfolioCategories lists the portfolio filter tabs in display order.
var PortfolioCategories = []Link{
	{Label: "All", Href: PortfolioCategoryAll},
	{Label: "SEO", Href: "seo"},
	{Label: "Meta Ads", Href: "meta"},
	{Label: "Social", Href: "social"},
}

// NormalizeCategory maps unknown or empty filters to PortfolioCategoryAll.
func NormalizeCategory(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	for _, cat := range PortfolioCategories {
		if cat.Href == c {
			return c
		}
	}
	return PortfolioCategoryAll
}

// PortfolioFor returns the projects in category, in content order.
func (s *Site) PortfolioFor(category string) []Project {
	category = NormalizeCategory(category)
	if category == PortfolioCategoryAll {
		return s.Portfolio
	}
	var out []Project
	for _, p := range s.Portfolio {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Billing selects monthly or yearly pricing.
type Billing string

const (
	Monthly Billing = "monthly"
	Yearly  Billing = "yearly"
)

// ParseBilling defaults to Monthly for anything but "yearly".
func ParseBilling(s string) Billing {
	if strings.EqualFold(strings.TrimSpace(s), string(Yearly)) {
		return Yearly
	}
	return Monthly
}

type Group struct {
	Subtitle string   `yaml:"subtitle"`
	Items    []string `yaml:"items"`
}

type Section struct {
	Title      string   `yaml:"title"`
	Groups     []Group  `yaml:"groups"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Document is a legal page.
type Document struct {
	Title    string    `yaml:"title"`
	Intro    string    `yaml:"intro"`
	Sections []Section `yaml:"sections"`
}

// Legal holds the privacy policy and terms of service.
type Legal struct {
	Privacy Document `yaml:"privacy"`
	Terms   Document `yaml:"terms"`
}

// Parse decodes site content, rejecting unknown keys.
func Parse(data []byte) (*Site, error) {
	var s Site
	if err := decodeStrict(data, &s); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	if len(s.Services) == 0 || len(s.Pricing.Plans) == 0 {
		return nil, fmt.Errorf("parse site content: services and pricing plans are required")
	}
	return &s, nil
}

// ParseLegal decodes the legal documents.
func ParseLegal(data []byte) (*Legal, error) {
	var l Legal
	if err := decodeStrict(data, &l); err != nil {
		return nil, fmt.Errorf("parse legal content: %w", err)
	}
	return &l, nil
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

var (
	loadOnce sync.Once
	site     *Site
	legal    *Legal
	loadErr  error
)

// Load returns the embedded content, parsed once.
func Load() (*Site, *Legal, error) {
	loadOnce.Do(func() {
		site, loadErr = Parse(siteYAML)
		if loadErr != nil {
			return
		}
		legal, loadErr = ParseLegal(legalYAML)
	})
	return site, legal, loadErr
}
