package attractions

import "encoding/json"

// Params drives one geocode-then-search run.
type Params struct {
	Location string
	Radius   int
	Query    string
	Category string
}

// GeocodeResult is the highest-ranked match for a free-text location.
type GeocodeResult struct {
	Lat         float64
	Lng         float64
	DisplayName string
}

// Place is the attraction record as the backend reports it. Several
// fields arrive under alternate names depending on the upstream data
// source, so the nested shapes are kept for the fallback chains in
// normalize.
type Place struct {
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	PrimaryCategory string          `json:"primary_category"`
	Rating          float64         `json:"rating"`
	Distance        float64         `json:"distance"`
	Price           int             `json:"price"`
	IsOpenNow       json.RawMessage `json:"is_open_now"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	Website         string          `json:"website"`
	ReviewCount     int             `json:"review_count"`

	Location struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"location"`
	Contact struct {
		Phone   string `json:"phone"`
		Website string `json:"website"`
	} `json:"contact"`
	Stats struct {
		ReviewCount int `json:"review_count"`
	} `json:"stats"`
}

// Meta describes the search window the backend answered for.
type Meta struct {
	Radius   int    `json:"radius"`
	Location string `json:"location"`
}

// Payload is the attraction endpoint's decoded response.
type Payload struct {
	Places []Place
	Meta   *Meta
}

// OpenStatus is the tri-state opening-hours classification.
type OpenStatus int

const (
	OpenUnknown OpenStatus = iota
	OpenNow
	Closed
)

// Card is one attraction with every fallback chain resolved.
type Card struct {
	Name        string
	Category    string
	Rating      float64
	Distance    float64
	Price       int
	Status      OpenStatus
	Address     string
	Phone       string
	Website     string
	ReviewCount int
}

// Result is the classified pipeline outcome.
type Result struct {
	Location string
	Radius   int
	Cards    []Card
}
