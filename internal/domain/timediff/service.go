package timediff

import (
	"context"
	"log/slog"
	"math"

	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

// Request names the two zones to compare, in Region/City form.
type Request struct {
	From string
	To   string
}

// Outcome is the backend's answer plus the directional presentation
// attributes. The sign convention follows the backend: a non-negative
// difference renders with "+" and the target zone is phrased as faster.
type Outcome struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Diff    float64 `json:"diff"`
	DiffStr string  `json:"diffStr"`
}

// Sign is the prefix shown before the difference. Zero counts as
// non-negative and keeps the "+". Negative differences already carry
// their minus inside DiffStr, so no prefix is added.
func (o *Outcome) Sign() string {
	if o.Diff >= 0 {
		return "+"
	}
	return ""
}

// Faster reports whether the target zone runs ahead of the origin.
func (o *Outcome) Faster() bool {
	return o.Diff > 0
}

// AbsHours is the unsigned difference used in the relationship phrase.
func (o *Outcome) AbsHours() float64 {
	return math.Abs(o.Diff)
}

// Service exposes the timezone difference lookup.
type Service interface {
	Diff(ctx context.Context, req Request) (*Outcome, error)
}

// API is the backend timediff endpoint.
type API interface {
	TimeDiff(ctx context.Context, req Request) (*Outcome, error)
}

type service struct {
	api    API
	logger *slog.Logger
}

// NewService wires up the timezone diff domain.
func NewService(api API, logger *slog.Logger) Service {
	return &service{
		api:    api,
		logger: logger.With("component", "timediff.service"),
	}
}

func (s *service) Diff(ctx context.Context, req Request) (*Outcome, error) {
	if req.From == "" || req.To == "" {
		return nil, apperrors.Wrap(apperrors.CodeValidation, "請填寫完整的起始和目標時區。", nil)
	}

	outcome, err := s.api.TimeDiff(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("timezone diff resolved",
		"from", outcome.From,
		"to", outcome.To,
		"diff", outcome.Diff)
	return outcome, nil
}
