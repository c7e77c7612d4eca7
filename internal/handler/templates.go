package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/content"
	"github.com/theimpacts/impacts/internal/preference"
	"github.com/theimpacts/impacts/web"
)

// BasePage carries layout-level data available to every template.
type BasePage struct {
	Dark  bool
	Site  *content.Site
	Title string
	Year  int
}

// pageCache maps a page file name (e.g. "landing.html") to a compiled template
// set containing base.html + partials + that one page file.
// Each page gets its own set so {{define "content"}} blocks don't collide.
var (
	pageCache    map[string]*template.Template
	fragmentTmpl *template.Template
)

func init() {
	partials, err := fs.Glob(web.TemplateFS, "templates/partials/*.html")
	if err != nil {
		panic("glob partials: " + err.Error())
	}

	// Standalone set for HTMX fragment rendering (partials only).
	fragmentTmpl = template.Must(template.New("").ParseFS(web.TemplateFS, partials...))

	pageCache = make(map[string]*template.Template)
	err = fs.WalkDir(web.TemplateFS, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}

		files := make([]string, 0, 2+len(partials))
		files = append(files, "templates/base.html")
		files = append(files, partials...)
		files = append(files, p)

		t, err := template.New("").ParseFS(web.TemplateFS, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		pageCache[filepath.Base(p)] = t
		return nil
	})
	if err != nil {
		panic("build page cache: " + err.Error())
	}
}

// pages builds per-request layout data. The dark flag comes from the
// request's Theme, applied into the page.
type pages struct {
	site          *content.Site
	secureCookies bool
}

func (p pages) base(w http.ResponseWriter, r *http.Request, title string) BasePage {
	page := BasePage{
		Site:  p.site,
		Title: title,
		Year:  time.Now().Year(),
	}
	requestTheme(w, r, p.secureCookies, nil, preference.ApplyFunc(func(dark bool) {
		page.Dark = dark
	})).Init()
	return page
}

// requestTheme returns the Theme owning the dark preference for one request,
// backed by the visitor's cookie.
func requestTheme(w http.ResponseWriter, r *http.Request, secure bool, log *zap.Logger, apply preference.Applier) *preference.Theme {
	opts := []preference.StoreOption{}
	if log != nil {
		opts = append(opts, preference.WithLogger(log))
	}
	store := preference.NewStore(preference.NewCookieBackend(w, r, secure), opts...)
	return preference.NewTheme(store, apply)
}

// isHTMX returns true when the request was sent by HTMX.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// render executes a full-page template (base layout + named page).
func render(w http.ResponseWriter, tmpl string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t, ok := pageCache[tmpl]
	if !ok {
		http.Error(w, "template not found: "+tmpl, http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// renderFragment executes a named template from the partials set.
// Use for HTMX swaps (contact_form, newsletter_form, status, portfolio, pricing).
func renderFragment(w http.ResponseWriter, tmpl string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fragmentTmpl.ExecuteTemplate(w, tmpl, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
	}
}
