package service

import (
	"sort"
	"time"

	"overcooked-pos/pos-svc/internal/domain"
	"overcooked-pos/pos-svc/internal/store"

	"github.com/shopspring/decimal"
)

const topProductsLimit = 10

type ReportService struct {
	store *store.Store
	now   func() time.Time
}

func NewReportService(s *store.Store, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{store: s, now: now}
}

func (s *ReportService) Report(period domain.Period) (domain.Report, error) {
	if period == "" {
		period = domain.PeriodToday
	}
	if !period.Valid() {
		return domain.Report{}, ErrInvalidPeriod
	}
	return BuildReport(s.store.Snapshot(), period, s.now()), nil
}

// PeriodStart returns the earliest PaidAt included in period. The zero time
// means no lower bound.
func PeriodStart(period domain.Period, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case domain.PeriodToday:
		return today
	case domain.PeriodWeek:
		return today.AddDate(0, 0, -7)
	case domain.PeriodMonth:
		return today.AddDate(0, 0, -30)
	}
	return time.Time{}
}

// BuildReport folds a snapshot into the sales, stock and reservation figures
// shown on the reports screen.
func BuildReport(snap domain.Snapshot, period domain.Period, now time.Time) domain.Report {
	from := PeriodStart(period, now)
	report := domain.Report{
		Period:         period,
		From:           from,
		GeneratedAt:    now,
		Revenue:        decimal.Zero,
		AverageTicket:  decimal.Zero,
		InventoryValue: decimal.Zero,
		TopProducts:    []domain.ProductSales{},
		Categories:     []domain.CategorySales{},
		Hours:          []domain.HourSales{},
		LowStock:       []domain.InventoryItem{},
		OutOfStock:     []domain.InventoryItem{},
	}

	products := map[string]*domain.ProductSales{}
	categories := map[string]*domain.CategorySales{}
	hours := map[int]*domain.HourSales{}

	for _, entry := range snap.OrderHistory {
		if !from.IsZero() && entry.PaidAt.Before(from) {
			continue
		}
		report.Orders++
		report.Revenue = report.Revenue.Add(entry.Total)

		hour := entry.PaidAt.In(now.Location()).Hour()
		h, ok := hours[hour]
		if !ok {
			h = &domain.HourSales{Hour: hour, Revenue: decimal.Zero}
			hours[hour] = h
		}
		h.Orders++
		h.Revenue = h.Revenue.Add(entry.Total)

		for _, line := range entry.Items {
			p, ok := products[line.Name]
			if !ok {
				p = &domain.ProductSales{Name: line.Name, Category: line.Category, Revenue: decimal.Zero}
				products[line.Name] = p
			}
			p.Quantity += line.Quantity
			p.Revenue = p.Revenue.Add(line.Total)

			c, ok := categories[line.Category]
			if !ok {
				c = &domain.CategorySales{Category: line.Category, Revenue: decimal.Zero}
				categories[line.Category] = c
			}
			c.Quantity += line.Quantity
			c.Revenue = c.Revenue.Add(line.Total)
		}
	}

	if report.Orders > 0 {
		report.AverageTicket = report.Revenue.Div(decimal.NewFromInt(int64(report.Orders))).Round(2)
	}

	for _, p := range products {
		report.TopProducts = append(report.TopProducts, *p)
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		a, b := report.TopProducts[i], report.TopProducts[j]
		if !a.Revenue.Equal(b.Revenue) {
			return a.Revenue.GreaterThan(b.Revenue)
		}
		return a.Name < b.Name
	})
	if len(report.TopProducts) > topProductsLimit {
		report.TopProducts = report.TopProducts[:topProductsLimit]
	}

	for _, c := range categories {
		report.Categories = append(report.Categories, *c)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		a, b := report.Categories[i], report.Categories[j]
		if !a.Revenue.Equal(b.Revenue) {
			return a.Revenue.GreaterThan(b.Revenue)
		}
		return a.Category < b.Category
	})

	for _, h := range hours {
		report.Hours = append(report.Hours, *h)
	}
	sort.Slice(report.Hours, func(i, j int) bool { return report.Hours[i].Hour < report.Hours[j].Hour })

	for _, item := range snap.Inventory {
		if item.LowStock() {
			report.LowStock = append(report.LowStock, item)
		}
		if item.Quantity == 0 {
			report.OutOfStock = append(report.OutOfStock, item)
		}
		report.InventoryValue = report.InventoryValue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	report.Reservations = reservationStats(snap.Reservations)
	return report
}

func reservationStats(reservations []domain.Reservation) domain.ReservationStats {
	stats := domain.ReservationStats{
		Total:          len(reservations),
		ByStatus:       map[domain.ReservationStatus]int{},
		ConversionRate: decimal.Zero,
		AvgPartySize:   decimal.Zero,
	}
	if stats.Total == 0 {
		return stats
	}

	people := 0
	for _, res := range reservations {
		stats.ByStatus[res.Status]++
		people += res.NumberOfPeople
	}
	total := decimal.NewFromInt(int64(stats.Total))
	stats.ConversionRate = decimal.NewFromInt(int64(stats.ByStatus[domain.ReservationCompleted])).
		Mul(decimal.NewFromInt(100)).
		Div(total).
		Round(1)
	stats.AvgPartySize = decimal.NewFromInt(int64(people)).Div(total).Round(1)
	return stats
}
