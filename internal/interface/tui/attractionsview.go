package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luyao/tripdeck/internal/domain/attractions"
)

func viewAttractionsResult(result *attractions.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("在「%s」附近找到 %d 個景點 (半徑: %d 公尺)",
		clean(result.Location), len(result.Cards), result.Radius)))
	b.WriteString("\n")

	if len(result.Cards) == 0 {
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render(fmt.Sprintf("在「%s」附近沒有找到符合條件的景點", clean(result.Location))))
		b.WriteString("\n請嘗試：\n")
		b.WriteString("  - 調整搜尋關鍵字\n")
		b.WriteString("  - 擴大搜尋半徑\n")
		b.WriteString("  - 確認地點名稱是否正確")
		return b.String()
	}

	for _, card := range result.Cards {
		card := card
		b.WriteString("\n")
		b.WriteString(safeCard("無法顯示景點資訊", func() string {
			return viewAttractionCard(card)
		}))
	}
	return b.String()
}

func viewAttractionCard(card attractions.Card) string {
	var lines []string

	header := titleStyle.Render(clean(card.Name)) + "  " + badgeStyle.Render(clean(card.Category))
	lines = append(lines, header)

	rating := "無評分"
	if card.Rating > 0 {
		rating = fmt.Sprintf("%.1f", card.Rating)
	}
	info := "⭐ " + rating
	if card.ReviewCount > 0 {
		info += fmt.Sprintf(" (%d 則評論)", card.ReviewCount)
	}

	distance := "未知"
	if card.Distance > 0 {
		distance = fmt.Sprintf("%.0f 公尺", card.Distance)
	}
	info += "  📍 " + distance

	price := "未知"
	if card.Price > 0 {
		price = strings.Repeat("$", card.Price)
	}
	info += "  💲 " + price
	lines = append(lines, info)

	label, color := openStatusLabel(card.Status)
	lines = append(lines, lipgloss.NewStyle().Foreground(color).Render(label))

	if card.Address != "" && card.Address != "地址未知" {
		lines = append(lines, clean(card.Address))
	}
	if card.Phone != "" {
		lines = append(lines, "☎ "+clean(card.Phone))
	}
	if card.Website != "" {
		lines = append(lines, "🔗 "+clean(card.Website))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}
