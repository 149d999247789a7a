package attractions

import "encoding/json"

// normalize resolves every alternate-field chain in one place so the
// fallback order stays a single testable table.
func normalize(p Place) Card {
	return Card{
		Name:        firstNonEmpty(p.Name, "未知名稱"),
		Category:    firstNonEmpty(p.Category, p.PrimaryCategory, "未分類"),
		Rating:      p.Rating,
		Distance:    p.Distance,
		Price:       p.Price,
		Status:      openStatus(p.IsOpenNow),
		Address:     firstNonEmpty(p.Address, p.Location.FormattedAddress, "地址未知"),
		Phone:       firstNonEmpty(p.Phone, p.Contact.Phone),
		Website:     firstNonEmpty(p.Website, p.Contact.Website),
		ReviewCount: firstPositive(p.ReviewCount, p.Stats.ReviewCount),
	}
}

// openStatus only trusts an actual JSON boolean. Strings, numbers,
// null, and an absent field all stay unknown.
func openStatus(raw json.RawMessage) OpenStatus {
	var open bool
	if err := json.Unmarshal(raw, &open); err != nil {
		return OpenUnknown
	}
	if open {
		return OpenNow
	}
	return Closed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
