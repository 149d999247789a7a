package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/luyao/tripdeck/internal/domain/attractions"
	"github.com/luyao/tripdeck/internal/domain/flights"
)

const (
	colorDown    = lipgloss.Color("#28a745")
	colorUp      = lipgloss.Color("#dc3545")
	colorStable  = lipgloss.Color("#ffc107")
	colorNeutral = lipgloss.Color("#17a2b8")
	colorAccent  = lipgloss.Color("#667eea")
	colorMuted   = lipgloss.Color("#6c757d")
	colorPrice   = lipgloss.Color("#e74c3c")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(colorUp)
	emptyStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	priceStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrice)
	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(colorAccent).Padding(0, 1)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(colorAccent).Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#e0e0e0")).
			Padding(0, 1)
)

// trendColor maps a price-advice trend to its display color: falling
// prices green, rising red, stable amber, no history blue.
func trendColor(trend flights.Trend) lipgloss.Color {
	switch trend {
	case flights.TrendDown:
		return colorDown
	case flights.TrendUp:
		return colorUp
	case flights.TrendStable:
		return colorStable
	default:
		return colorNeutral
	}
}

// timelineBorder picks the left-border color for a history point. Best
// prices stand out in green.
func timelineBorder(best bool) lipgloss.Color {
	if best {
		return colorDown
	}
	return colorAccent
}

// openStatusLabel maps the tri-state opening classification to its
// label and color.
func openStatusLabel(status attractions.OpenStatus) (string, lipgloss.Color) {
	switch status {
	case attractions.OpenNow:
		return "營業中", colorDown
	case attractions.Closed:
		return "已休息", colorUp
	default:
		return "營業狀態未知", colorMuted
	}
}

// directionColor colors the timezone relationship phrase: green when
// the target zone runs ahead, red otherwise.
func directionColor(faster bool) lipgloss.Color {
	if faster {
		return colorDown
	}
	return colorUp
}

func adviceCardStyle(trend flights.Trend) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(trendColor(trend)).
		Padding(0, 1)
}

func timelineItemStyle(best bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(timelineBorder(best)).
		PaddingLeft(1)
}
