package tests

import (
	"fmt"
	"testing"
	"time"

	"overcooked-pos/pos-svc/internal/domain"
	"overcooked-pos/pos-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportNow = time.Date(2024, 3, 15, 20, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(name, category string, qty int, price string) domain.OrderLineItem {
	p := d(price)
	return domain.OrderLineItem{
		ID:       name,
		Name:     name,
		Category: category,
		Quantity: qty,
		Price:    p,
		Total:    p.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func paid(id string, at time.Time, lines ...domain.OrderLineItem) domain.OrderHistoryEntry {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total)
	}
	return domain.OrderHistoryEntry{ID: id, TableID: "t1", Items: lines, Total: total, PaidAt: at}
}

func reportSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Inventory: []domain.InventoryItem{
			{ID: "a", Name: "Sushi", Quantity: 0, MinStock: 5, Price: d("2")},
			{ID: "b", Name: "Beer", Quantity: 3, MinStock: 5, Price: d("10")},
			{ID: "c", Name: "Water", Quantity: 10, MinStock: 5, Price: d("1.50")},
		},
		OrderHistory: []domain.OrderHistoryEntry{
			paid("h2", time.Date(2024, 3, 15, 20, 5, 0, 0, time.UTC),
				line("Pizza", "Food", 1, "15.00"), line("Beer", "Drinks", 2, "5.50")),
			paid("h1", time.Date(2024, 3, 15, 19, 10, 0, 0, time.UTC),
				line("Hamburger", "Food", 2, "12.50"), line("Cola", "Drinks", 2, "3.50")),
			paid("h3", time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC),
				line("Hamburger", "Food", 4, "12.50")),
			paid("h4", time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
				line("Sushi", "Food", 1, "18.00")),
		},
		Reservations: []domain.Reservation{
			{ID: "r1", Status: domain.ReservationCompleted, NumberOfPeople: 2},
			{ID: "r2", Status: domain.ReservationCompleted, NumberOfPeople: 4},
			{ID: "r3", Status: domain.ReservationCancelled, NumberOfPeople: 3},
			{ID: "r4", Status: domain.ReservationPending, NumberOfPeople: 3},
		},
	}
}

func TestBuildReport_Periods(t *testing.T) {
	tests := []struct {
		period      domain.Period
		wantOrders  int
		wantRevenue string
		wantAverage string
		wantTop     string
	}{
		{period: domain.PeriodToday, wantOrders: 2, wantRevenue: "58", wantAverage: "29", wantTop: "Hamburger"},
		{period: domain.PeriodWeek, wantOrders: 3, wantRevenue: "108", wantAverage: "36", wantTop: "Hamburger"},
		{period: domain.PeriodMonth, wantOrders: 3, wantRevenue: "108", wantAverage: "36", wantTop: "Hamburger"},
		{period: domain.PeriodAll, wantOrders: 4, wantRevenue: "126", wantAverage: "31.5", wantTop: "Hamburger"},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.period), func(t *testing.T) {
			report := service.BuildReport(reportSnapshot(), testCase.period, reportNow)

			assert.Equal(t, testCase.wantOrders, report.Orders)
			assert.True(t, report.Revenue.Equal(d(testCase.wantRevenue)), "revenue %s", report.Revenue)
			assert.True(t, report.AverageTicket.Equal(d(testCase.wantAverage)), "average %s", report.AverageTicket)
			require.NotEmpty(t, report.TopProducts)
			assert.Equal(t, testCase.wantTop, report.TopProducts[0].Name)
		})
	}
}

func TestBuildReport_Breakdowns(t *testing.T) {
	report := service.BuildReport(reportSnapshot(), domain.PeriodToday, reportNow)

	require.Len(t, report.TopProducts, 4)
	names := []string{}
	for _, p := range report.TopProducts {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Hamburger", "Pizza", "Beer", "Cola"}, names)

	require.Len(t, report.Categories, 2)
	assert.Equal(t, "Food", report.Categories[0].Category)
	assert.Equal(t, 3, report.Categories[0].Quantity)
	assert.True(t, report.Categories[0].Revenue.Equal(d("40")))
	assert.Equal(t, 4, report.Categories[1].Quantity)

	require.Len(t, report.Hours, 2)
	assert.Equal(t, 19, report.Hours[0].Hour)
	assert.True(t, report.Hours[0].Revenue.Equal(d("32")))
	assert.Equal(t, 20, report.Hours[1].Hour)
	assert.Equal(t, 1, report.Hours[1].Orders)

	assert.Len(t, report.LowStock, 2)
	require.Len(t, report.OutOfStock, 1)
	assert.Equal(t, "a", report.OutOfStock[0].ID)
	assert.True(t, report.InventoryValue.Equal(d("45")))

	stats := report.Reservations
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[domain.ReservationCompleted])
	assert.True(t, stats.ConversionRate.Equal(d("50")), "conversion %s", stats.ConversionRate)
	assert.True(t, stats.AvgPartySize.Equal(d("3")))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), report.From)
}

func TestBuildReport_TopProductsCapped(t *testing.T) {
	var lines []domain.OrderLineItem
	for i := 1; i <= 12; i++ {
		lines = append(lines, line(fmt.Sprintf("item-%02d", i), "Food", 1, fmt.Sprintf("%d", i)))
	}
	snap := domain.Snapshot{OrderHistory: []domain.OrderHistoryEntry{paid("h1", reportNow, lines...)}}

	report := service.BuildReport(snap, domain.PeriodAll, reportNow)

	require.Len(t, report.TopProducts, 10)
	assert.Equal(t, "item-12", report.TopProducts[0].Name)
	assert.Equal(t, "item-03", report.TopProducts[9].Name)
}

func TestBuildReport_Empty(t *testing.T) {
	report := service.BuildReport(domain.Snapshot{}, domain.PeriodAll, reportNow)

	assert.Zero(t, report.Orders)
	assert.True(t, report.AverageTicket.IsZero())
	assert.Empty(t, report.TopProducts)
	assert.True(t, report.Reservations.ConversionRate.IsZero())
	assert.True(t, report.From.IsZero())
}

func TestReportService_Period(t *testing.T) {
	svc := service.NewReportService(newStore(), func() time.Time { return reportNow })

	report, err := svc.Report("")
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodToday, report.Period)

	_, err = svc.Report("decade")
	assert.ErrorIs(t, err, service.ErrInvalidPeriod)
}
