package tui

import (
	"fmt"
	"strings"

	"github.com/luyao/tripdeck/internal/domain/currency"
	"github.com/luyao/tripdeck/internal/format"
)

func viewConversion(c *currency.Conversion) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s = %s %s",
		format.Price(c.OriginalAmount), c.FromCurrency,
		priceStyle.Render(format.Price(c.ConvertedAmount)), c.ToCurrency))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("1 %s = %.6f %s", c.FromCurrency, c.ExchangeRate, c.ToCurrency))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("1 %s = %.6f %s", c.ToCurrency, c.ReverseRate, c.FromCurrency))
	if ts := format.ParseTimestamp(c.LastUpdated); !ts.IsZero() {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("更新於 " + format.DateTime(ts)))
	}
	return b.String()
}
