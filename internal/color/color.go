package color

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	Success = lipgloss.AdaptiveColor{Light: "#05A167", Dark: "#05D176"}
	Error   = lipgloss.AdaptiveColor{Light: "#E06A56", Dark: "#F97171"}
	Warning = lipgloss.AdaptiveColor{Light: "#E0A956", Dark: "#F9C171"}
	Info    = lipgloss.AdaptiveColor{Light: "#5A9FE0", Dark: "#71B7F9"}
	Subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	Link    = lipgloss.AdaptiveColor{Light: "#05A167", Dark: "#4EC9B0"}
)

// Styles
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	TitleStyle    = lipgloss.NewStyle().Bold(true)
	LinkStyle     = lipgloss.NewStyle().Foreground(Link)
	SnippetStyle  = lipgloss.NewStyle().Foreground(Subtle)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	MarkerStyle   = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	FooterStyle   = lipgloss.NewStyle().Foreground(Subtle)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	SubtleStyle  = lipgloss.NewStyle().Foreground(Subtle)
)

// Initialize forces the background lipgloss assumes when choosing between
// the light and dark variant of each color.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
