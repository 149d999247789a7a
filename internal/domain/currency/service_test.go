package currency

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

type stubAPI struct {
	conversion *Conversion
	err        error
	calls      int
}

func (s *stubAPI) ConvertCurrency(ctx context.Context, req Request) (*Conversion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.conversion, nil
}

func TestConvertMissingAmountSkipsNetwork(t *testing.T) {
	api := &stubAPI{}
	svc := NewService(api, slog.Default())

	for _, amount := range []float64{0, -50} {
		_, err := svc.Convert(context.Background(), Request{Amount: amount, From: "TWD", To: "JPY"})
		require.ErrorIs(t, err, ErrAmountMissing)
	}
	require.Zero(t, api.calls)
}

func TestConvertSameCurrencySkipsNetwork(t *testing.T) {
	api := &stubAPI{}
	svc := NewService(api, slog.Default())

	_, err := svc.Convert(context.Background(), Request{Amount: 100, From: "TWD", To: "TWD"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	require.Equal(t, "請選擇不同的貨幣進行轉換", apperrors.UserMessage(err))
	require.Zero(t, api.calls)
}

func TestConvertDerivesReverseRate(t *testing.T) {
	api := &stubAPI{conversion: &Conversion{
		OriginalAmount:  1000,
		FromCurrency:    "TWD",
		ConvertedAmount: 4663.2,
		ToCurrency:      "JPY",
		ExchangeRate:    4.6632,
		LastUpdated:     "2025-03-01T08:00:00Z",
	}}
	svc := NewService(api, slog.Default())

	conversion, err := svc.Convert(context.Background(), Request{Amount: 1000, From: "TWD", To: "JPY"})
	require.NoError(t, err)
	require.InDelta(t, 1/4.6632, conversion.ReverseRate, 1e-12)
	require.Equal(t, 1, api.calls)
}

func TestConvertPassesAPIErrorsThrough(t *testing.T) {
	wantErr := apperrors.Wrap(apperrors.CodeApplication, "轉換失敗", nil)
	svc := NewService(&stubAPI{err: wantErr}, slog.Default())

	_, err := svc.Convert(context.Background(), Request{Amount: 100, From: "TWD", To: "JPY"})
	require.ErrorIs(t, err, wantErr)
}
