package pricetrack

// Query selects a route and how many weeks of history to analyze.
type Query struct {
	Origin      string
	Destination string
	Weeks       int
}

// HistoryPoint is one observed weekly price as the backend reports it.
type HistoryPoint struct {
	Week  int     `json:"week"`
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Report is the wire shape of the tracking endpoint's data field.
type Report struct {
	MinPrice       float64        `json:"min_price"`
	AvgPrice       float64        `json:"avg_price"`
	MaxPrice       float64        `json:"max_price"`
	BestDate       string         `json:"best_date"`
	Recommendation string         `json:"recommendation"`
	DataPoints     []HistoryPoint `json:"data_points"`
	TrackWeeks     int            `json:"track_weeks"`
}

// TimelinePoint is a history point with the best-price marker resolved.
type TimelinePoint struct {
	Week  int
	Date  string
	Price float64
	Best  bool
}

// Analysis is the classified tracking outcome handed to the renderer.
type Analysis struct {
	MinPrice       float64
	AvgPrice       float64
	MaxPrice       float64
	BestDate       string
	Recommendation string
	Points         []TimelinePoint
	TrackWeeks     int
}
