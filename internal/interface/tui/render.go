package tui

import "github.com/luyao/tripdeck/internal/format"

// currencyNames localizes the known currency codes. Unknown codes fall
// back to the code itself.
var currencyNames = map[string]string{
	"USD": "美元",
	"EUR": "歐元",
	"JPY": "日圓",
	"GBP": "英鎊",
	"CNY": "人民幣",
	"KRW": "韓元",
	"HKD": "港幣",
	"SGD": "新加坡元",
	"TWD": "新台幣",
}

func currencyName(code string) string {
	if name, ok := currencyNames[code]; ok {
		return name
	}
	return code
}

// safeCard isolates one card's rendering. A panic in a single
// malformed record yields a placeholder instead of taking down the
// whole batch.
func safeCard(placeholder string, render func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = errorStyle.Render(placeholder)
		}
	}()
	return render()
}

// clean strips payload text before it reaches the terminal.
func clean(s string) string {
	return format.Sanitize(s)
}
