package flights

import (
	"strings"
	"time"
)

// RedEye reports whether a departure falls in the overnight window
// [00:00, 06:00). The zero time (absent or malformed departure) is never
// a red-eye.
func RedEye(departure time.Time) bool {
	if departure.IsZero() {
		return false
	}
	return isRedEyeHour(departure.Hour())
}

func isRedEyeHour(hour int) bool {
	return hour >= 0 && hour < 6
}

// PackingItem is one suggested thing to bring.
type PackingItem struct {
	Icon string
	Name string
}

// PackingList derives packing suggestions from the destination weather.
// Identity and charging items are always included; the temperature and
// rain rules are independent and additive.
func PackingList(w *WeatherSummary) []PackingItem {
	items := []PackingItem{
		{Icon: "🛂", Name: "護照/證件"},
		{Icon: "🔌", Name: "充電器/網卡"},
	}
	if w == nil {
		return items
	}

	switch temp := w.AvgTemp; {
	case temp < 10:
		items = append(items,
			PackingItem{Icon: "❄️", Name: "厚外套/圍巾"},
			PackingItem{Icon: "🧤", Name: "暖暖包"},
		)
	case temp < 20:
		items = append(items, PackingItem{Icon: "👕", Name: "薄外套/長袖"})
	case temp > 28:
		items = append(items,
			PackingItem{Icon: "🕶️", Name: "防曬乳/墨鏡"},
			PackingItem{Icon: "🪭", Name: "手持風扇"},
		)
	}

	if strings.Contains(strings.ToLower(w.Condition), "rain") || w.ChanceOfRain > 40 {
		items = append(items,
			PackingItem{Icon: "☂️", Name: "摺疊傘"},
			PackingItem{Icon: "👟", Name: "防水鞋"},
		)
	}

	return items
}
