package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	primary   string
	secondary string
	warning   string
	error     string
	dim       string
	text      string
	barBg     string
	barFg     string
	tabBg     string
}

var (
	lightPalette = palette{
		primary:   "#2563EB", // Blue
		secondary: "#059669", // Green
		warning:   "#D97706", // Amber
		error:     "#DC2626", // Red
		dim:       "#6B7280", // Gray
		text:      "#1F2937",
		barBg:     "#E5E7EB",
		barFg:     "#374151",
		tabBg:     "#D1D5DB",
	}
	darkPalette = palette{
		primary:   "#818CF8", // Indigo
		secondary: "#34D399", // Green
		warning:   "#FBBF24", // Amber
		error:     "#F87171", // Red
		dim:       "#9CA3AF", // Gray
		text:      "#F3F4F6",
		barBg:     "#1F2937",
		barFg:     "#9CA3AF",
		tabBg:     "#374151",
	}
)

// Styles holds every style the views render with for one theme.
type Styles struct {
	Theme Theme

	Box         lipgloss.Style
	Title       lipgloss.Style
	Text        lipgloss.Style
	Selected    lipgloss.Style
	Dim         lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
	StatusBar   lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Circle      lipgloss.Style
	Mantra      lipgloss.Style

	// Pre-rendered step icons.
	StepDone    string
	StepCurrent string
	StepPending string
}

// NewStyles builds the styles for t.
func NewStyles(t Theme) Styles {
	p := lightPalette
	if t == ThemeDark {
		p = darkPalette
	}

	s := Styles{
		Theme: t,
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)).
			Bold(true),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.dim)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.error)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)),
		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(p.barBg)).
			Foreground(lipgloss.Color(p.barFg)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().
			Background(lipgloss.Color(p.tabBg)).
			Foreground(lipgloss.Color(p.barFg)).
			Padding(0, 2),
		Circle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)),
		Mantra: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)).
			Italic(true),
	}
	s.StepDone = s.Success.Render("✓")
	s.StepCurrent = s.Warning.Render("▸")
	s.StepPending = s.Dim.Render("○")
	return s
}
