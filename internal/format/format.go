// Package format holds the pure presentation formatters shared by every
// view: locale-aware prices, ISO-8601 durations, zh-TW dates and payload
// text sanitization.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.TraditionalChinese)

// Price renders a rounded amount with zh-TW digit grouping ("12,000").
// Zero and negative-zero amounts render as "0".
func Price(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return "0"
	}
	return printer.Sprintf("%d", int64(math.Round(v)))
}

var durationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// Duration renders an ISO-8601 duration such as "PT2H30M" as "2小時30分鐘".
// A zero or absent component is omitted; "0分鐘" appears only when both are
// missing. Empty input renders the unknown-duration placeholder and an
// unparseable string passes through verbatim.
func Duration(iso string) string {
	if iso == "" {
		return "未知時長"
	}

	m := durationRe.FindStringSubmatch(iso)
	if m == nil {
		return iso
	}

	hours := 0
	if m[1] != "" {
		hours, _ = strconv.Atoi(m[1])
	}
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%d小時", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%d分鐘", minutes)
	}
	if b.Len() == 0 {
		return "0分鐘"
	}
	return b.String()
}

// Date renders a calendar date the zh-TW way: "2025/3/1".
func Date(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// DateTime renders a timestamp the zh-TW way: "2025/3/1 14:05:09".
func DateTime(t time.Time) string {
	return Date(t) + " " + t.Format("15:04:05")
}

// ClockTime renders the local wall-clock portion of a timestamp ("08:30").
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}

// ParseTimestamp accepts the timestamp shapes the backend emits: RFC 3339
// or a bare YYYY-MM-DD date. The zero time signals an absent value.
func ParseTimestamp(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", trimmed); err == nil {
		return ts
	}
	return time.Time{}
}

// Sanitize strips control characters from payload-supplied text before it
// reaches the terminal.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
