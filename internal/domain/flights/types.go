package flights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Criteria carries one flight search request.
type Criteria struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Currency      string
}

// Payload is the search endpoint's data envelope.
type Payload struct {
	Flights  []Flight        `json:"flights"`
	Weather  *WeatherBundle  `json:"weather,omitempty"`
	Exchange *ExchangeBundle `json:"exchange,omitempty"`
	Advice   *PriceAdvice    `json:"price_advice,omitempty"`
	Meta     *Meta           `json:"meta,omitempty"`
}

// Meta carries server-side result bookkeeping.
type Meta struct {
	Count int `json:"count"`
}

// Flight is one offer as the backend serializes it. Timestamps stay raw
// strings here; absence and malformed values both surface as the zero time
// after parsing.
type Flight struct {
	ID           string  `json:"id"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Airline      string  `json:"airline"`
	FlightNumber string  `json:"flight_number"`
	From         Airport `json:"from"`
	To           Airport `json:"to"`
	Departure    string  `json:"departure"`
	Arrival      string  `json:"arrival"`
	Duration     string  `json:"duration"`
	Stops        int     `json:"stops"`
}

// Airport identifies one endpoint of a route.
type Airport struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

// WeatherBundle groups the optional per-side weather summaries.
type WeatherBundle struct {
	OriginWeather      *WeatherSummary `json:"origin_weather,omitempty"`
	DestinationWeather *WeatherSummary `json:"destination_weather,omitempty"`
	TravelAdvice       string          `json:"travel_advice,omitempty"`
}

// WeatherSummary is one city's forecast for the travel date.
type WeatherSummary struct {
	City         string  `json:"city"`
	Date         string  `json:"date"`
	AvgTemp      float64 `json:"avg_temp"`
	Condition    string  `json:"condition"`
	Icon         string  `json:"icon"`
	Humidity     int     `json:"humidity"`
	WindSpeed    float64 `json:"wind_speed"`
	ChanceOfRain int     `json:"chance_of_rain"`
}

// ExchangeBundle carries base-relative rates. Rate order follows the
// response body, so the JSON object is decoded manually.
type ExchangeBundle struct {
	BaseCurrency string   `json:"base_currency"`
	Rates        RateList `json:"rates"`
	LastUpdated  string   `json:"last_updated"`
}

// Rate is one currency's base-relative conversion factor.
type Rate struct {
	Code  string
	Value float64
}

// RateList preserves the response order of the rates object.
type RateList []Rate

func (rl *RateList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("rates: expected object, got %v", tok)
	}

	out := RateList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		code, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("rates: non-string key %v", keyTok)
		}
		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("rates: rate for %s: %w", code, err)
		}
		out = append(out, Rate{Code: code, Value: value})
	}
	*rl = out
	return nil
}

func (rl RateList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range rl {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Code)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PriceAdvice compares the current lowest price against route history.
type PriceAdvice struct {
	CurrentLowest float64 `json:"current_lowest"`
	HistoryAvg    float64 `json:"history_avg"`
	HistoryLow    float64 `json:"history_low"`
	DiffPercent   float64 `json:"diff_percent"`
	Trend         string  `json:"trend"`
	Advice        string  `json:"advice"`
}

// Trend classifies the current price against route history.
type Trend string

const (
	TrendDown   Trend = "down"
	TrendUp     Trend = "up"
	TrendStable Trend = "stable"
	TrendNone   Trend = "none"
)

// ParseTrend maps the wire value onto a known classification; anything
// unrecognized (including a new-record marker) collapses to TrendNone.
func ParseTrend(raw string) Trend {
	switch Trend(raw) {
	case TrendDown, TrendUp, TrendStable:
		return Trend(raw)
	default:
		return TrendNone
	}
}

// Result is the classified search outcome handed to the renderer.
type Result struct {
	Count    int
	Offers   []Offer
	Weather  *WeatherView
	Exchange *ExchangeBundle
	Advice   *AdviceView
}

// Empty reports the zero-results success state, distinct from errors.
func (r *Result) Empty() bool {
	return len(r.Offers) == 0
}

// Offer is one flight with derived presentation attributes resolved.
type Offer struct {
	FromCode     string
	ToCode       string
	Airline      string
	FlightNumber string
	Departure    time.Time
	Arrival      time.Time
	Duration     string
	Stops        int
	Price        float64
	Currency     string
	RedEye       bool
}

// WeatherView is the weather bundle plus the derived packing list.
type WeatherView struct {
	Origin       *WeatherSummary
	Destination  *WeatherSummary
	TravelAdvice string
	Packing      []PackingItem
}

// AdviceView is the price advice with the trend resolved.
type AdviceView struct {
	Advice        string
	CurrentLowest float64
	HistoryAvg    float64
	HistoryLow    float64
	DiffPercent   float64
	Trend         Trend
}

// HasHistory reports whether historical figures exist; without them the
// renderer shows placeholders instead of a computed percentage.
func (a *AdviceView) HasHistory() bool {
	return a.HistoryAvg > 0
}
