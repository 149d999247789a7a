package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/luyao/tripdeck/internal/domain/flights"
	"github.com/luyao/tripdeck/internal/format"
)

func viewSearchResult(result *flights.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("找到 %d 個航班", result.Count)))
	b.WriteString("\n")

	if result.Empty() {
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("沒有找到符合條件的航班"))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("請嘗試調整搜尋條件"))
		return b.String()
	}

	if result.Advice != nil {
		b.WriteString("\n")
		b.WriteString(viewPriceAdvice(result.Advice))
		b.WriteString("\n")
	}
	if result.Weather != nil {
		b.WriteString("\n")
		b.WriteString(viewWeather(result.Weather))
		b.WriteString("\n")
	}
	if result.Exchange != nil {
		b.WriteString("\n")
		b.WriteString(viewExchange(result.Exchange))
		b.WriteString("\n")
	}

	for _, offer := range result.Offers {
		offer := offer
		b.WriteString("\n")
		b.WriteString(safeCard("無法顯示航班資訊", func() string {
			return viewFlightCard(offer)
		}))
	}
	return b.String()
}

func viewFlightCard(offer flights.Offer) string {
	from := offer.FromCode
	if from == "" {
		from = "未知"
	}
	to := offer.ToCode
	if to == "" {
		to = "未知"
	}
	airline := offer.Airline
	if airline == "" {
		airline = "未知航空公司"
	}

	route := fmt.Sprintf("%s → %s", from, to)
	duration := format.Duration(offer.Duration)
	if offer.RedEye {
		duration += " " + badgeStyle.Render("🌙 紅眼航班")
	}

	details := fmt.Sprintf("%s  %s - %s  %d 次停靠",
		clean(airline), clockOrUnknown(offer.Departure), clockOrUnknown(offer.Arrival), offer.Stops)
	if offer.FlightNumber != "" {
		details += "  " + clean(offer.FlightNumber)
	}

	currency := offer.Currency
	if currency == "" {
		currency = "TWD"
	}
	price := fmt.Sprintf("%s %s", priceStyle.Render(format.Price(offer.Price)), labelStyle.Render(currency))

	return cardStyle.Render(strings.Join([]string{
		titleStyle.Render(route) + "  " + duration,
		details,
		price,
	}, "\n"))
}

func clockOrUnknown(t time.Time) string {
	if t.IsZero() {
		return "未知"
	}
	return format.ClockTime(t)
}

func viewPriceAdvice(advice *flights.AdviceView) string {
	var b strings.Builder
	b.WriteString("💡 " + clean(advice.Advice))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("目前最低 $%s", format.Price(advice.CurrentLowest)))

	if advice.HasHistory() {
		b.WriteString(fmt.Sprintf("  歷史平均 $%s", format.Price(advice.HistoryAvg)))
		b.WriteString(fmt.Sprintf("  價差 %.1f%%", advice.DiffPercent))
	} else {
		b.WriteString("  歷史平均 尚無資料  價差 --")
	}
	if advice.HistoryLow > 0 {
		b.WriteString(fmt.Sprintf("  歷史最低 $%s", format.Price(advice.HistoryLow)))
	} else {
		b.WriteString("  歷史最低 --")
	}

	return adviceCardStyle(advice.Trend).Render(b.String())
}

func viewWeather(weather *flights.WeatherView) string {
	var sections []string
	if weather.Origin != nil {
		sections = append(sections, viewWeatherSide("🛫", weather.Origin))
	}
	if weather.Destination != nil {
		sections = append(sections, viewWeatherSide("🛬", weather.Destination))
	}
	if weather.TravelAdvice != "" {
		sections = append(sections, clean(weather.TravelAdvice))
	}
	if len(weather.Packing) > 0 {
		var tags []string
		for _, item := range weather.Packing {
			tags = append(tags, fmt.Sprintf("%s %s", item.Icon, item.Name))
		}
		sections = append(sections,
			titleStyle.Render("🧳 智慧打包建議 (依據當地天氣)")+"\n"+strings.Join(tags, "  "))
	}
	return strings.Join(sections, "\n")
}

func viewWeatherSide(icon string, w *flights.WeatherSummary) string {
	return fmt.Sprintf("%s %s 天氣  %d°C  %s  濕度 %d%%  風速 %.1f  降雨機率 %d%%",
		icon, clean(w.City), int(roundTemp(w.AvgTemp)), clean(w.Condition),
		w.Humidity, w.WindSpeed, w.ChanceOfRain)
}

func roundTemp(t float64) float64 {
	if t >= 0 {
		return float64(int(t + 0.5))
	}
	return float64(int(t - 0.5))
}

func viewExchange(exchange *flights.ExchangeBundle) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("💱 匯率資訊"))
	b.WriteString(fmt.Sprintf("  基準貨幣 %s", exchange.BaseCurrency))
	if ts := format.ParseTimestamp(exchange.LastUpdated); !ts.IsZero() {
		b.WriteString("  更新於 " + format.DateTime(ts))
	}
	for _, rate := range exchange.Rates {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %.4f  %s",
			rate.Code, rate.Value, labelStyle.Render(currencyName(rate.Code))))
	}
	return b.String()
}
