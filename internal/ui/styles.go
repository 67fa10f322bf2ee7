package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// palette holds the ANSI colors of one theme
type palette struct {
	err, warning, suggestion, info, success string
	header, muted, highlight, accent        string
}

var palettes = map[string]palette{
	"light": {
		err: "1", warning: "3", suggestion: "6", info: "4", success: "2",
		header: "0", muted: "8", highlight: "5", accent: "4",
	},
	"dark": {
		err: "9", warning: "11", suggestion: "14", info: "12", success: "10",
		header: "15", muted: "8", highlight: "13", accent: "12",
	},
}

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Suggestion lipgloss.Style
	Info       lipgloss.Style
	Success    lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	Rule      lipgloss.Style
	Separator lipgloss.Style
	Category  lipgloss.Style

	// Highlight marks offending spans inside an excerpt
	Highlight lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError      string
	IconWarning    string
	IconSuggestion string
	IconInfo       string
	IconSuccess    string
}

// NewStyles creates a new Styles instance for the named theme ("light" when unknown).
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool, theme string) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		p, ok := palettes[theme]
		if !ok {
			p = palettes["light"]
		}

		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(p.err))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(p.warning))
		s.Suggestion = lipgloss.NewStyle().Foreground(lipgloss.Color(p.suggestion))
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color(p.info))
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(p.success))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.header))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))
		s.Rule = lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))
		s.Category = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent))
		s.Highlight = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(p.highlight))

		// Unicode icons
		s.IconError = "✗"
		s.IconWarning = "⚠"
		s.IconSuggestion = "\U0001f4a1"
		s.IconInfo = "ℹ"
		s.IconSuccess = "✓"
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Error = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Suggestion = lipgloss.NewStyle()
		s.Info = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.Rule = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()
		s.Category = lipgloss.NewStyle()
		s.Highlight = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconSuggestion = "HINT:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Themes returns the names of the available palettes
func Themes() []string {
	return []string{"light", "dark"}
}
