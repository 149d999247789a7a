package tui

import (
	"github.com/luyao/tripdeck/internal/domain/airports"
	"github.com/luyao/tripdeck/internal/domain/attractions"
	"github.com/luyao/tripdeck/internal/domain/currency"
	"github.com/luyao/tripdeck/internal/domain/flights"
	"github.com/luyao/tripdeck/internal/domain/pricetrack"
	"github.com/luyao/tripdeck/internal/domain/timediff"
)

// Every response message carries the sequence number of the request
// that produced it. The model drops any message whose sequence is not
// the latest issued for that region, so a slow early response can
// never overwrite a newer one.

type searchDoneMsg struct {
	seq    int
	result *flights.Result
	err    error
}

type trackingDoneMsg struct {
	seq      int
	analysis *pricetrack.Analysis
	err      error
}

type conversionDoneMsg struct {
	seq        int
	conversion *currency.Conversion
	hidden     bool
	err        error
}

type timeDiffDoneMsg struct {
	seq     int
	outcome *timediff.Outcome
	err     error
}

type attractionsDoneMsg struct {
	seq    int
	result *attractions.Result
	err    error
}

type suggestionsMsg struct {
	field string
	seq   int
	items []airports.Airport
}
