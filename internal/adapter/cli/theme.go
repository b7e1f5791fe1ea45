package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	colorRose    = "#E11D48"
	colorRoseDim = "#FDA4AF"
	colorGray    = "#6B7280"
	colorGreen   = "#16A34A"
	colorAmber   = "#D97706"
	colorWhite   = "#FFFFFF"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorWhite)).
			Background(lipgloss.Color(colorRose)).
			Padding(0, 2)
	stepStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorRose))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAmber))
)

// listingTheme is the huh theme for every wizard form.
func listingTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(lipgloss.Color(colorRose))
	t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(colorRose)).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(lipgloss.Color(colorGray))
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(lipgloss.Color(colorRose))
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color(colorRoseDim))
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(lipgloss.Color(colorGray))
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(lipgloss.Color(colorAmber))
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color(colorWhite)).
		Background(lipgloss.Color(colorRose))

	t.Blurred.Base = t.Blurred.Base.BorderForeground(lipgloss.Color(colorGray))
	t.Blurred.Title = t.Blurred.Title.Foreground(lipgloss.Color(colorGray))

	return t
}

// progressBar renders a fixed-width completion bar, e.g. "██████░░░░ 60%".
func progressBar(pct, width int) string {
	pct = max(0, min(100, pct))
	if width <= 0 {
		width = 20
	}
	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d%%", bar, pct)
}
