package tui

import (
	"fmt"
	"strings"

	"github.com/luyao/tripdeck/internal/domain/pricetrack"
	"github.com/luyao/tripdeck/internal/format"
)

func viewTrackingResult(analysis *pricetrack.Analysis) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📊 價格分析摘要"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("最低價格 $%s  平均價格 $%s  最高價格 $%s  最佳出發 %s",
		format.Price(analysis.MinPrice),
		format.Price(analysis.AvgPrice),
		format.Price(analysis.MaxPrice),
		format.Date(format.ParseTimestamp(analysis.BestDate))))
	b.WriteString("\n")
	b.WriteString("💡 " + clean(analysis.Recommendation))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("🕘 價格時間軸"))
	if len(analysis.Points) == 0 {
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("沒有價格數據"))
	}
	for _, point := range analysis.Points {
		b.WriteString("\n")
		b.WriteString(timelineItemStyle(point.Best).Render(fmt.Sprintf("%s  第 %d 週  $%s",
			format.Date(format.ParseTimestamp(point.Date)),
			point.Week,
			format.Price(point.Price))))
	}

	b.WriteString("\n\n")
	b.WriteString("✅ 分析完成！")
	b.WriteString("\n")
	b.WriteString(analysis.ClosingLine())
	return b.String()
}
