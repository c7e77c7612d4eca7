package tui

import "github.com/charmbracelet/lipgloss"

// Brand palette, light and dark variants.
var (
	lightText    = lipgloss.Color("#0f172a")
	lightMuted   = lipgloss.Color("#64748b")
	lightPrimary = lipgloss.Color("#4f46e5")
	lightBorder  = lipgloss.Color("#cbd5e1")

	darkText    = lipgloss.Color("#f1f5f9")
	darkMuted   = lipgloss.Color("#94a3b8")
	darkPrimary = lipgloss.Color("#a5b4fc")
	darkBorder  = lipgloss.Color("#334155")

	successColor = lipgloss.Color("#16a34a")
	errorColor   = lipgloss.Color("#dc2626")
	warnColor    = lipgloss.Color("#d97706")
)

type styles struct {
	Dark bool

	Box     lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Button  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

func newStyles(dark bool) styles {
	text, muted, primary, border := lightText, lightMuted, lightPrimary, lightBorder
	if dark {
		text, muted, primary, border = darkText, darkMuted, darkPrimary, darkBorder
	}
	return styles{
		Dark: dark,
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		Title:   lipgloss.NewStyle().Foreground(primary).Bold(true).MarginBottom(1),
		Label:   lipgloss.NewStyle().Foreground(muted),
		Focused: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Value:   lipgloss.NewStyle().Foreground(text),
		Muted:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary).
			Padding(0, 2),
		Success: lipgloss.NewStyle().Foreground(successColor).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(warnColor),
	}
}

// skin is shared by every copy of the model so the theme applier can restyle
// the view.
type skin struct {
	styles styles
}

func (s *skin) apply(dark bool) { s.styles = newStyles(dark) }
