package tui

import (
	"context"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/luyao/tripdeck/internal/domain/airports"
	"github.com/luyao/tripdeck/internal/domain/currency"
	"github.com/luyao/tripdeck/internal/domain/flights"
)

type stubFlights struct {
	result *flights.Result
	last   flights.Criteria
}

func (s *stubFlights) Search(ctx context.Context, criteria flights.Criteria) (*flights.Result, error) {
	s.last = criteria
	return s.result, nil
}

type stubCurrency struct {
	calls int
	last  currency.Request
}

func (s *stubCurrency) Convert(ctx context.Context, req currency.Request) (*currency.Conversion, error) {
	s.calls++
	s.last = req
	return &currency.Conversion{
		OriginalAmount:  req.Amount,
		FromCurrency:    req.From,
		ConvertedAmount: req.Amount * 2,
		ToCurrency:      req.To,
		ExchangeRate:    2,
	}, nil
}

type stubAirports struct{ items []airports.Airport }

func (s *stubAirports) Suggest(ctx context.Context, query string) ([]airports.Airport, error) {
	return s.items, nil
}

func newTestModel() Model {
	return NewModel(Services{
		Flights:  &stubFlights{result: &flights.Result{Count: 1}},
		Airports: &stubAirports{},
	}, slog.Default())
}

func TestStaleSearchResponseIsDropped(t *testing.T) {
	m := newTestModel()
	m.search.seq = 5

	updated, _ := m.Update(searchDoneMsg{seq: 4, result: &flights.Result{Count: 9}})
	m = updated.(Model)
	require.Empty(t, m.search.body, "older sequence must not render")

	updated, _ = m.Update(searchDoneMsg{seq: 5, result: &flights.Result{Count: 1}})
	m = updated.(Model)
	require.Contains(t, m.search.body, "找到 1 個航班")
}

func TestTabSwitchSweepsEveryRegion(t *testing.T) {
	m := newTestModel()
	m.search.body = "previous results"
	m.tracking.errMsg = "previous error"
	m.calc.loading = true
	searchSeq := m.search.seq

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(Model)

	require.Equal(t, tabTracking, m.active)
	require.Empty(t, m.search.body)
	require.Empty(t, m.tracking.errMsg)
	require.False(t, m.calc.loading)
	require.Greater(t, m.search.seq, searchSeq, "sweep invalidates in-flight requests")
}

func TestTabSwitchWrapsAround(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = updated.(Model)
	require.Equal(t, tabAttractions, m.active)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(Model)
	require.Equal(t, tabSearch, m.active)
}

func TestRegionStartBumpsSequence(t *testing.T) {
	var r region
	r.body = "old"
	r.errMsg = "old error"

	seq := r.start()
	require.Equal(t, 1, seq)
	require.True(t, r.loading)
	require.Empty(t, r.body)
	require.Empty(t, r.errMsg)
}

func TestAmountEditsRecompute(t *testing.T) {
	svc := &stubCurrency{}
	m := NewModel(Services{Currency: svc, Airports: &stubAirports{}}, slog.Default())
	m.active = tabCurrency
	m.focusActive()

	var last tea.Msg
	for _, r := range "100" {
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
		require.NotNil(t, cmd, "editing the amount must trigger a conversion")
		last = cmd()
	}

	require.Equal(t, 3, svc.calls)
	require.Equal(t, 100.0, svc.last.Amount)
	require.Equal(t, "TWD", svc.last.From)
	require.Equal(t, "JPY", svc.last.To)

	updated, _ := m.Update(last)
	m = updated.(Model)
	require.Contains(t, m.calc.body, "100")
}

func TestAmountClearedStopsRecomputing(t *testing.T) {
	svc := &stubCurrency{}
	m := NewModel(Services{Currency: svc, Airports: &stubAirports{}}, slog.Default())
	m.active = tabCurrency
	m.focusActive()
	m.amount.SetValue("5")
	m.calc.body = "previous conversion"

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(Model)

	require.Nil(t, cmd)
	require.Zero(t, svc.calls)
	require.False(t, m.calc.loading)
	require.Empty(t, m.calc.body)
}

func TestEmptyAmountSubmitClearsWithoutLoading(t *testing.T) {
	svc := &stubCurrency{}
	m := NewModel(Services{Currency: svc, Airports: &stubAirports{}}, slog.Default())
	m.active = tabCurrency
	m.calc.body = "previous conversion"

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.Nil(t, cmd)
	require.Zero(t, svc.calls)
	require.False(t, m.calc.loading)
	require.Empty(t, m.calc.body)
}

func TestSearchSubmitForwardsPassengerCount(t *testing.T) {
	svc := &stubFlights{result: &flights.Result{}}
	m := NewModel(Services{Flights: svc, Airports: &stubAirports{}}, slog.Default())
	m.adults.SetValue("2")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	require.Equal(t, 2, svc.last.Adults)
}

func TestAutocompleteStaleSuggestionsDropped(t *testing.T) {
	ac := newAutocomplete("origin", "", func(ctx context.Context, q string) ([]airports.Airport, error) {
		return nil, nil
	})
	ac.seq = 3

	ac.Apply(suggestionsMsg{field: "origin", seq: 2, items: []airports.Airport{{Code: "TPE"}}})
	require.False(t, ac.visible)
	require.Empty(t, ac.items)

	ac.Apply(suggestionsMsg{field: "other", seq: 3, items: []airports.Airport{{Code: "TPE"}}})
	require.Empty(t, ac.items, "messages for other fields are ignored")

	ac.Apply(suggestionsMsg{field: "origin", seq: 3, items: []airports.Airport{{Code: "TPE"}}})
	require.True(t, ac.visible)
	require.Len(t, ac.items, 1)
}

func TestAutocompleteSelectWritesCode(t *testing.T) {
	ac := newAutocomplete("origin", "", func(ctx context.Context, q string) ([]airports.Airport, error) {
		return nil, nil
	})
	ac.items = []airports.Airport{
		{Code: "TPE", Name: "台灣桃園國際機場", City: "台北"},
		{Code: "TSA", Name: "台北松山機場", City: "台北"},
	}
	ac.visible = true
	ac.cursor = 1

	ac.Select()
	require.Equal(t, "TSA", ac.Value())
	require.False(t, ac.visible)
}

func TestAutocompleteFocusReshowsSuggestions(t *testing.T) {
	ac := newAutocomplete("origin", "", func(ctx context.Context, q string) ([]airports.Airport, error) {
		return nil, nil
	})
	ac.items = []airports.Airport{{Code: "TPE"}}
	ac.visible = false

	ac.Focus()
	require.True(t, ac.visible)

	ac.Blur()
	require.False(t, ac.visible)
}
