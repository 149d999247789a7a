package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luyao/tripdeck/internal/domain/airports"
	"github.com/luyao/tripdeck/internal/domain/attractions"
	"github.com/luyao/tripdeck/internal/domain/currency"
	"github.com/luyao/tripdeck/internal/domain/flights"
	"github.com/luyao/tripdeck/internal/domain/pricetrack"
	"github.com/luyao/tripdeck/internal/domain/timediff"
	apperrors "github.com/luyao/tripdeck/pkg/errors"
)

// Services groups every domain service the UI drives.
type Services struct {
	Flights     flights.Service
	Tracking    pricetrack.Service
	Currency    currency.Service
	TimeDiff    timediff.Service
	Attractions attractions.Service
	Airports    airports.Service
}

type tab int

const (
	tabSearch tab = iota
	tabTracking
	tabCurrency
	tabTimeDiff
	tabAttractions
	tabCount
)

var tabTitles = [...]string{"航班搜尋", "價格追蹤", "貨幣計算", "時差查詢", "景點搜尋"}

// region is one tab's transient output: its loading flag, error text,
// rendered result, and the request sequence that owns them.
type region struct {
	loading bool
	errMsg  string
	body    string
	seq     int
}

// reset clears the visible output and invalidates in-flight responses.
func (r *region) reset() {
	r.loading = false
	r.errMsg = ""
	r.body = ""
	r.seq++
}

func (r *region) start() int {
	r.reset()
	r.loading = true
	return r.seq
}

// Model is the root Bubble Tea model. All state is tab-local; the only
// cross-tab mutation is the reset sweep on a tab switch.
type Model struct {
	services Services
	logger   *slog.Logger
	spinner  spinner.Model
	active   tab
	width    int

	// search tab
	searchOrigin      autocomplete
	searchDestination autocomplete
	departureDate     textinput.Model
	returnDate        textinput.Model
	adults            textinput.Model
	searchFocus       int
	search            region

	// tracking tab
	trackingOrigin      autocomplete
	trackingDestination autocomplete
	weeks               textinput.Model
	trackingFocus       int
	tracking            region

	// currency tab
	amount        textinput.Model
	fromCurrency  textinput.Model
	toCurrency    textinput.Model
	currencyFocus int
	calc          region

	// timediff tab
	zoneFrom      textinput.Model
	zoneTo        textinput.Model
	timeDiffFocus int
	timeDiff      region

	// attractions tab
	location         textinput.Model
	radius           textinput.Model
	attractionQuery  textinput.Model
	category         textinput.Model
	attractionsFocus int
	attractions      region
}

// NewModel builds the root model with every form seeded.
func NewModel(services Services, logger *slog.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	suggest := func(ctx context.Context, query string) ([]airports.Airport, error) {
		return services.Airports.Suggest(ctx, query)
	}

	m := Model{
		services: services,
		logger:   logger.With("component", "tui.app"),
		spinner:  sp,

		searchOrigin:      newAutocomplete("searchOrigin", "出發地 (如 TPE)", suggest),
		searchDestination: newAutocomplete("searchDestination", "目的地 (如 NRT)", suggest),
		departureDate:     newInput("出發日期 YYYY-MM-DD", 12),
		returnDate:        newInput("回程日期 (選填)", 12),
		adults:            newInput("人數 (預設 1)", 3),

		trackingOrigin:      newAutocomplete("trackingOrigin", "出發地 (如 TPE)", suggest),
		trackingDestination: newAutocomplete("trackingDestination", "目的地 (如 NRT)", suggest),
		weeks:               newInput("追蹤週數 (預設 12)", 4),

		amount:       newInput("金額", 12),
		fromCurrency: newInput("TWD", 5),
		toCurrency:   newInput("JPY", 5),

		zoneFrom: newInput("Asia/Taipei", 32),
		zoneTo:   newInput("Asia/Tokyo", 32),

		location:        newInput("地點名稱 (如 東京車站)", 32),
		radius:          newInput("半徑公尺 (預設 1000)", 6),
		attractionQuery: newInput("關鍵字 (選填)", 24),
		category:        newInput("分類 (選填)", 16),
	}

	// next week is a sensible first departure date
	m.departureDate.SetValue(time.Now().AddDate(0, 0, 7).Format("2006-01-02"))
	m.fromCurrency.SetValue("TWD")
	m.toCurrency.SetValue("JPY")

	m.focusActive()
	return m
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = width
	return ti
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case suggestionsMsg:
		m.searchOrigin.Apply(msg)
		m.searchDestination.Apply(msg)
		m.trackingOrigin.Apply(msg)
		m.trackingDestination.Apply(msg)
		return m, nil

	case searchDoneMsg:
		if msg.seq != m.search.seq {
			return m, nil
		}
		m.search.loading = false
		if msg.err != nil {
			m.search.errMsg = apperrors.UserMessage(msg.err)
			return m, nil
		}
		m.search.body = viewSearchResult(msg.result)
		return m, nil

	case trackingDoneMsg:
		if msg.seq != m.tracking.seq {
			return m, nil
		}
		m.tracking.loading = false
		if msg.err != nil {
			m.tracking.errMsg = apperrors.UserMessage(msg.err)
			return m, nil
		}
		m.tracking.body = viewTrackingResult(msg.analysis)
		return m, nil

	case conversionDoneMsg:
		if msg.seq != m.calc.seq {
			return m, nil
		}
		m.calc.loading = false
		if msg.hidden {
			m.calc.body = ""
			return m, nil
		}
		if msg.err != nil {
			m.calc.errMsg = apperrors.UserMessage(msg.err)
			return m, nil
		}
		m.calc.body = viewConversion(msg.conversion)
		return m, nil

	case timeDiffDoneMsg:
		if msg.seq != m.timeDiff.seq {
			return m, nil
		}
		m.timeDiff.loading = false
		if msg.err != nil {
			m.timeDiff.errMsg = apperrors.UserMessage(msg.err)
			return m, nil
		}
		m.timeDiff.body = viewTimeDiff(msg.outcome)
		return m, nil

	case attractionsDoneMsg:
		if msg.seq != m.attractions.seq {
			return m, nil
		}
		m.attractions.loading = false
		if msg.err != nil {
			m.attractions.errMsg = apperrors.UserMessage(msg.err)
			return m, nil
		}
		m.attractions.body = viewAttractionsResult(msg.result)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if msg.String() == "q" && m.typing() {
			break
		}
		return m, tea.Quit
	case "ctrl+n":
		m.switchTab((m.active + 1) % tabCount)
		return m, m.focusActive()
	case "ctrl+p":
		m.switchTab((m.active + tabCount - 1) % tabCount)
		return m, m.focusActive()
	case "tab":
		m.cycleFocus(1)
		return m, m.focusActive()
	case "shift+tab":
		m.cycleFocus(-1)
		return m, m.focusActive()
	case "ctrl+s":
		if m.active == tabCurrency {
			return m.swapCurrencies()
		}
	case "enter":
		if !m.suggestionOpen() {
			return m.submit()
		}
	}

	return m.updateActiveField(msg)
}

func (m *Model) typing() bool {
	switch m.active {
	case tabSearch:
		return m.searchOrigin.input.Focused() || m.searchDestination.input.Focused() ||
			m.departureDate.Focused() || m.returnDate.Focused() || m.adults.Focused()
	case tabTracking:
		return m.trackingOrigin.input.Focused() || m.trackingDestination.input.Focused() ||
			m.weeks.Focused()
	case tabCurrency:
		return m.amount.Focused() || m.fromCurrency.Focused() || m.toCurrency.Focused()
	case tabTimeDiff:
		return m.zoneFrom.Focused() || m.zoneTo.Focused()
	default:
		return m.location.Focused() || m.radius.Focused() ||
			m.attractionQuery.Focused() || m.category.Focused()
	}
}

func (m *Model) suggestionOpen() bool {
	switch m.active {
	case tabSearch:
		return m.searchOrigin.visible || m.searchDestination.visible
	case tabTracking:
		return m.trackingOrigin.visible || m.trackingDestination.visible
	}
	return false
}

// switchTab activates a tab and sweeps every tab's transient output,
// matching the reset-everything transition the UI promises.
func (m *Model) switchTab(next tab) {
	m.active = next
	m.search.reset()
	m.tracking.reset()
	m.calc.reset()
	m.timeDiff.reset()
	m.attractions.reset()
	m.searchOrigin.Blur()
	m.searchDestination.Blur()
	m.trackingOrigin.Blur()
	m.trackingDestination.Blur()
}

func (m *Model) fieldCount() int {
	switch m.active {
	case tabSearch:
		return 5
	case tabTracking:
		return 3
	case tabCurrency:
		return 3
	case tabTimeDiff:
		return 2
	default:
		return 4
	}
}

func (m *Model) focusIndex() *int {
	switch m.active {
	case tabSearch:
		return &m.searchFocus
	case tabTracking:
		return &m.trackingFocus
	case tabCurrency:
		return &m.currencyFocus
	case tabTimeDiff:
		return &m.timeDiffFocus
	default:
		return &m.attractionsFocus
	}
}

func (m *Model) cycleFocus(delta int) {
	idx := m.focusIndex()
	n := m.fieldCount()
	*idx = (*idx + delta + n) % n
}

// focusActive blurs every field and focuses the one the active tab's
// focus index points at.
func (m *Model) focusActive() tea.Cmd {
	m.searchOrigin.Blur()
	m.searchDestination.Blur()
	m.departureDate.Blur()
	m.returnDate.Blur()
	m.adults.Blur()
	m.trackingOrigin.Blur()
	m.trackingDestination.Blur()
	m.weeks.Blur()
	m.amount.Blur()
	m.fromCurrency.Blur()
	m.toCurrency.Blur()
	m.zoneFrom.Blur()
	m.zoneTo.Blur()
	m.location.Blur()
	m.radius.Blur()
	m.attractionQuery.Blur()
	m.category.Blur()

	switch m.active {
	case tabSearch:
		switch m.searchFocus {
		case 0:
			return m.searchOrigin.Focus()
		case 1:
			return m.searchDestination.Focus()
		case 2:
			return m.departureDate.Focus()
		case 3:
			return m.returnDate.Focus()
		default:
			return m.adults.Focus()
		}
	case tabTracking:
		switch m.trackingFocus {
		case 0:
			return m.trackingOrigin.Focus()
		case 1:
			return m.trackingDestination.Focus()
		default:
			return m.weeks.Focus()
		}
	case tabCurrency:
		switch m.currencyFocus {
		case 0:
			return m.amount.Focus()
		case 1:
			return m.fromCurrency.Focus()
		default:
			return m.toCurrency.Focus()
		}
	case tabTimeDiff:
		if m.timeDiffFocus == 0 {
			return m.zoneFrom.Focus()
		}
		return m.zoneTo.Focus()
	default:
		switch m.attractionsFocus {
		case 0:
			return m.location.Focus()
		case 1:
			return m.radius.Focus()
		case 2:
			return m.attractionQuery.Focus()
		default:
			return m.category.Focus()
		}
	}
}

func (m Model) updateActiveField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case tabSearch:
		switch m.searchFocus {
		case 0:
			cmd = m.searchOrigin.Update(msg)
		case 1:
			cmd = m.searchDestination.Update(msg)
		case 2:
			m.departureDate, cmd = m.departureDate.Update(msg)
		case 3:
			m.returnDate, cmd = m.returnDate.Update(msg)
		default:
			m.adults, cmd = m.adults.Update(msg)
		}
	case tabTracking:
		switch m.trackingFocus {
		case 0:
			cmd = m.trackingOrigin.Update(msg)
		case 1:
			cmd = m.trackingDestination.Update(msg)
		default:
			m.weeks, cmd = m.weeks.Update(msg)
		}
	case tabCurrency:
		switch m.currencyFocus {
		case 0:
			before := m.amount.Value()
			m.amount, cmd = m.amount.Update(msg)
			// every amount edit recomputes; the sequence token drops
			// replies from superseded edits
			if m.amount.Value() != before {
				return m.submitConversion()
			}
		case 1:
			m.fromCurrency, cmd = m.fromCurrency.Update(msg)
		default:
			m.toCurrency, cmd = m.toCurrency.Update(msg)
		}
	case tabTimeDiff:
		if m.timeDiffFocus == 0 {
			m.zoneFrom, cmd = m.zoneFrom.Update(msg)
		} else {
			m.zoneTo, cmd = m.zoneTo.Update(msg)
		}
	default:
		switch m.attractionsFocus {
		case 0:
			m.location, cmd = m.location.Update(msg)
		case 1:
			m.radius, cmd = m.radius.Update(msg)
		case 2:
			m.attractionQuery, cmd = m.attractionQuery.Update(msg)
		default:
			m.category, cmd = m.category.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	switch m.active {
	case tabSearch:
		return m.submitSearch()
	case tabTracking:
		return m.submitTracking()
	case tabCurrency:
		return m.submitConversion()
	case tabTimeDiff:
		return m.submitTimeDiff()
	default:
		return m.submitAttractions()
	}
}

func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	criteria := flights.Criteria{
		Origin:        m.searchOrigin.Value(),
		Destination:   m.searchDestination.Value(),
		DepartureDate: strings.TrimSpace(m.departureDate.Value()),
		ReturnDate:    strings.TrimSpace(m.returnDate.Value()),
	}
	if adults, err := strconv.Atoi(strings.TrimSpace(m.adults.Value())); err == nil {
		criteria.Adults = adults
	}
	seq := m.search.start()
	svc := m.services.Flights
	return m, func() tea.Msg {
		result, err := svc.Search(context.Background(), criteria)
		return searchDoneMsg{seq: seq, result: result, err: err}
	}
}

func (m Model) submitTracking() (tea.Model, tea.Cmd) {
	query := pricetrack.Query{
		Origin:      m.trackingOrigin.Value(),
		Destination: m.trackingDestination.Value(),
	}
	if weeks, err := strconv.Atoi(strings.TrimSpace(m.weeks.Value())); err == nil {
		query.Weeks = weeks
	}
	seq := m.tracking.start()
	svc := m.services.Tracking
	return m, func() tea.Msg {
		analysis, err := svc.Analyze(context.Background(), query)
		return trackingDoneMsg{seq: seq, analysis: analysis, err: err}
	}
}

func (m Model) submitConversion() (tea.Model, tea.Cmd) {
	req := currency.Request{
		From: strings.ToUpper(strings.TrimSpace(m.fromCurrency.Value())),
		To:   strings.ToUpper(strings.TrimSpace(m.toCurrency.Value())),
	}
	if amount, err := strconv.ParseFloat(strings.TrimSpace(m.amount.Value()), 64); err == nil {
		req.Amount = amount
	}
	// no amount means no conversion: clear the region without a
	// loading round-trip
	if req.Amount <= 0 {
		m.calc.reset()
		return m, nil
	}
	seq := m.calc.start()
	svc := m.services.Currency
	return m, func() tea.Msg {
		conversion, err := svc.Convert(context.Background(), req)
		if err == currency.ErrAmountMissing {
			return conversionDoneMsg{seq: seq, hidden: true}
		}
		return conversionDoneMsg{seq: seq, conversion: conversion, err: err}
	}
}

// swapCurrencies exchanges the two selections and recomputes.
func (m Model) swapCurrencies() (tea.Model, tea.Cmd) {
	from := m.fromCurrency.Value()
	m.fromCurrency.SetValue(m.toCurrency.Value())
	m.toCurrency.SetValue(from)
	return m.submitConversion()
}

func (m Model) submitTimeDiff() (tea.Model, tea.Cmd) {
	req := timediff.Request{
		From: strings.TrimSpace(m.zoneFrom.Value()),
		To:   strings.TrimSpace(m.zoneTo.Value()),
	}
	seq := m.timeDiff.start()
	svc := m.services.TimeDiff
	return m, func() tea.Msg {
		outcome, err := svc.Diff(context.Background(), req)
		return timeDiffDoneMsg{seq: seq, outcome: outcome, err: err}
	}
}

func (m Model) submitAttractions() (tea.Model, tea.Cmd) {
	params := attractions.Params{
		Location: strings.TrimSpace(m.location.Value()),
		Query:    strings.TrimSpace(m.attractionQuery.Value()),
		Category: strings.TrimSpace(m.category.Value()),
	}
	if radius, err := strconv.Atoi(strings.TrimSpace(m.radius.Value())); err == nil {
		params.Radius = radius
	}
	seq := m.attractions.start()
	svc := m.services.Attractions
	return m, func() tea.Msg {
		result, err := svc.Search(context.Background(), params)
		return attractionsDoneMsg{seq: seq, result: result, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewTabBar())
	b.WriteString("\n\n")
	b.WriteString(m.viewForm())
	b.WriteString("\n\n")
	b.WriteString(m.viewRegion())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("enter 送出  tab 切換欄位  ctrl+n/ctrl+p 切換分頁  ctrl+c 離開"))
	return b.String()
}

func (m Model) viewTabBar() string {
	var tabs []string
	for i, title := range tabTitles {
		if tab(i) == m.active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewForm() string {
	switch m.active {
	case tabSearch:
		return strings.Join([]string{
			labelStyle.Render("出發地") + "  " + m.searchOrigin.View(),
			labelStyle.Render("目的地") + "  " + m.searchDestination.View(),
			labelStyle.Render("出發日期") + "  " + m.departureDate.View(),
			labelStyle.Render("回程日期") + "  " + m.returnDate.View(),
			labelStyle.Render("人數") + "  " + m.adults.View(),
		}, "\n")
	case tabTracking:
		return strings.Join([]string{
			labelStyle.Render("出發地") + "  " + m.trackingOrigin.View(),
			labelStyle.Render("目的地") + "  " + m.trackingDestination.View(),
			labelStyle.Render("追蹤週數") + "  " + m.weeks.View(),
		}, "\n")
	case tabCurrency:
		return strings.Join([]string{
			labelStyle.Render("金額") + "  " + m.amount.View(),
			labelStyle.Render("從") + "  " + m.fromCurrency.View() +
				"  " + labelStyle.Render("到") + "  " + m.toCurrency.View() +
				"  " + labelStyle.Render("(ctrl+s 交換)"),
		}, "\n")
	case tabTimeDiff:
		return strings.Join([]string{
			labelStyle.Render("起始時區") + "  " + m.zoneFrom.View(),
			labelStyle.Render("目標時區") + "  " + m.zoneTo.View(),
		}, "\n")
	default:
		return strings.Join([]string{
			labelStyle.Render("地點") + "  " + m.location.View(),
			labelStyle.Render("半徑") + "  " + m.radius.View(),
			labelStyle.Render("關鍵字") + "  " + m.attractionQuery.View(),
			labelStyle.Render("分類") + "  " + m.category.View(),
		}, "\n")
	}
}

func (m Model) activeRegion() region {
	switch m.active {
	case tabSearch:
		return m.search
	case tabTracking:
		return m.tracking
	case tabCurrency:
		return m.calc
	case tabTimeDiff:
		return m.timeDiff
	default:
		return m.attractions
	}
}

func (m Model) viewRegion() string {
	r := m.activeRegion()
	if r.loading {
		return m.spinner.View() + " 查詢中..."
	}
	if r.errMsg != "" {
		return errorStyle.Render("⚠ " + r.errMsg)
	}
	return r.body
}
