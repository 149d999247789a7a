package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luyao/tripdeck/internal/domain/timediff"
)

func viewTimeDiff(outcome *timediff.Outcome) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏙 %s → 🌐 %s", clean(outcome.From), clean(outcome.To)))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("時差：%s%s", outcome.Sign(), clean(outcome.DiffStr))))
	b.WriteString("\n")

	speed := "慢"
	if outcome.Faster() {
		speed = "快"
	}
	phrase := fmt.Sprintf("目標時區 %s 比起始時區 %s %s %v 小時",
		clean(outcome.To), clean(outcome.From),
		lipgloss.NewStyle().Bold(true).Foreground(directionColor(outcome.Faster())).Render(speed),
		outcome.AbsHours())
	b.WriteString("（" + phrase + "）")
	return b.String()
}
