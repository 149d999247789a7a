package pricetrack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/luyao/tripdeck/internal/format"
	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

const fallbackRecommendation = "建議根據價格趨勢選擇出發時間"

// Service exposes the historical-price analysis.
type Service interface {
	Analyze(ctx context.Context, query Query) (*Analysis, error)
}

// API is the backend price-tracking endpoint.
type API interface {
	TrackPrices(ctx context.Context, query Query) (*Report, error)
}

// Config bounds the tracked window.
type Config struct {
	DefaultWeeks int
	MaxWeeks     int
}

type service struct {
	cfg    Config
	api    API
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the price tracking domain.
func NewService(cfg Config, api API, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		api:    api,
		logger: logger.With("component", "pricetrack.service"),
		now:    time.Now,
	}
}

func (s *service) Analyze(ctx context.Context, query Query) (*Analysis, error) {
	if query.Origin == "" || query.Destination == "" {
		return nil, apperrors.Wrap(apperrors.CodeValidation, "缺少必要參數: origin, destination", nil)
	}
	query.Weeks = s.clampWeeks(query.Weeks)

	report, err := s.api.TrackPrices(ctx, query)
	if err != nil {
		return nil, err
	}

	analysis := classify(report)
	s.logger.Info("price history analyzed",
		"route", query.Origin+"-"+query.Destination,
		"weeks", analysis.TrackWeeks,
		"points", len(analysis.Points))
	return analysis, nil
}

func (s *service) clampWeeks(weeks int) int {
	if weeks <= 0 {
		return s.cfg.DefaultWeeks
	}
	if weeks > s.cfg.MaxWeeks {
		return s.cfg.MaxWeeks
	}
	return weeks
}

// classify resolves the best-price markers against the dataset minimum.
// Every point priced at the minimum is marked, not only the first one.
func classify(report *Report) *Analysis {
	analysis := &Analysis{
		MinPrice:       report.MinPrice,
		AvgPrice:       report.AvgPrice,
		MaxPrice:       report.MaxPrice,
		BestDate:       report.BestDate,
		Recommendation: report.Recommendation,
		TrackWeeks:     report.TrackWeeks,
	}
	if analysis.Recommendation == "" {
		analysis.Recommendation = fallbackRecommendation
	}

	if len(report.DataPoints) == 0 {
		return analysis
	}

	min := report.DataPoints[0].Price
	for _, point := range report.DataPoints[1:] {
		if point.Price < min {
			min = point.Price
		}
	}
	for _, point := range report.DataPoints {
		analysis.Points = append(analysis.Points, TimelinePoint{
			Week:  point.Week,
			Date:  point.Date,
			Price: point.Price,
			Best:  point.Price == min,
		})
	}
	return analysis
}

// ClosingLine phrases the analysis summary shown under the timeline.
func (a *Analysis) ClosingLine() string {
	return fmt.Sprintf("已分析 %d 週的價格數據，建議您在 %s 附近出發可獲得最優價格。",
		a.TrackWeeks, format.Date(format.ParseTimestamp(a.BestDate)))
}
