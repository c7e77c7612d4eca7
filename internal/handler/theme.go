package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/metrics"
	"github.com/theimpacts/impacts/internal/preference"
)

// ThemeHandler handles the dark-mode toggle.
type ThemeHandler struct {
	secureCookies bool
	log           *zap.Logger
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(secureCookies bool, log *zap.Logger) *ThemeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ThemeHandler{secureCookies: secureCookies, log: log}
}

// Toggle handles POST /theme. The preference is persisted in a cookie and
// applied client-side through an HX-Trigger themeChanged event.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	theme := requestTheme(w, r, h.secureCookies, h.log, preference.ApplyFunc(func(dark bool) {
		trigger, _ := json.Marshal(map[string]any{
			"themeChanged": map[string]bool{"dark": dark},
		})
		w.Header().Set("HX-Trigger", string(trigger))
	}))

	dark, err := theme.Toggle()
	if err != nil {
		h.log.Warn("persist theme preference", zap.Error(err))
	}
	metrics.ThemeTogglesTotal.WithLabelValues(themeLabel(dark)).Inc()

	if !isHTMX(r) {
		http.Redirect(w, r, sameHostReferer(r), http.StatusSeeOther)
		return
	}
	renderFragment(w, "theme_toggle", dark)
}

// sameHostReferer returns the path and query of the Referer when it points at
// this host, and "/" otherwise.
func sameHostReferer(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || u.Host != r.Host || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

func themeLabel(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
