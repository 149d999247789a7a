package currency

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

// ErrAmountMissing signals a non-positive or absent amount. The caller
// hides the result panel instead of showing an error, and no network
// call is made.
var ErrAmountMissing = errors.New("currency: amount missing")

// Request carries one conversion's inputs.
type Request struct {
	Amount float64
	From   string
	To     string
}

// Conversion is the backend result plus the derived reverse rate.
type Conversion struct {
	OriginalAmount  float64 `json:"original_amount"`
	FromCurrency    string  `json:"from_currency"`
	ConvertedAmount float64 `json:"converted_amount"`
	ToCurrency      string  `json:"to_currency"`
	ExchangeRate    float64 `json:"exchange_rate"`
	LastUpdated     string  `json:"last_updated"`

	ReverseRate float64 `json:"-"`
}

// Service exposes the conversion calculator.
type Service interface {
	Convert(ctx context.Context, req Request) (*Conversion, error)
}

// API is the backend conversion endpoint.
type API interface {
	ConvertCurrency(ctx context.Context, req Request) (*Conversion, error)
}

type service struct {
	api    API
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the currency calculator domain.
func NewService(api API, logger *slog.Logger) Service {
	return &service{
		api:    api,
		logger: logger.With("component", "currency.service"),
		now:    time.Now,
	}
}

func (s *service) Convert(ctx context.Context, req Request) (*Conversion, error) {
	if req.Amount <= 0 {
		return nil, ErrAmountMissing
	}
	if req.From == req.To {
		return nil, apperrors.Wrap(apperrors.CodeValidation, "請選擇不同的貨幣進行轉換", nil)
	}

	conversion, err := s.api.ConvertCurrency(ctx, req)
	if err != nil {
		return nil, err
	}
	if conversion.ExchangeRate != 0 {
		conversion.ReverseRate = 1 / conversion.ExchangeRate
	}

	s.logger.Info("currency converted",
		"from", conversion.FromCurrency,
		"to", conversion.ToCurrency,
		"rate", conversion.ExchangeRate)
	return conversion, nil
}
