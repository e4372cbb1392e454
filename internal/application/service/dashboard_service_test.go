package service

import (
	"context"
	"testing"
	"time"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 28, 19, 30, 0, 0, time.UTC)
}

func dashboardInvoice(created time.Time, totalCents int64, items ...entity.InvoiceItem) entity.Invoice {
	return entity.Invoice{
		Total:     totalCents,
		CreatedAt: created,
		Items:     items,
	}
}

func TestDashboardTodayCountsCalendarDay(t *testing.T) {
	now := fixedNow()
	invoiceRepo := &fakeInvoiceRepo{invoices: []entity.Invoice{
		dashboardInvoice(now.Add(-2*time.Hour), 50000),
		dashboardInvoice(now.Add(-1*time.Hour), 0),
		dashboardInvoice(now.AddDate(0, 0, -1), 100000),
	}}

	svc := NewDashboardService(invoiceRepo, &fakeMenuItemRepo{})
	svc.now = fixedNow

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TodayOrders)
	assert.InDelta(t, 500.0, stats.TodayRevenue, 0.001)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.InDelta(t, 1500.0, stats.TotalRevenue, 0.001)
}

func TestDashboardPopularItemAcrossAllInvoices(t *testing.T) {
	now := fixedNow()
	old := now.AddDate(0, -2, 0)
	invoiceRepo := &fakeInvoiceRepo{invoices: []entity.Invoice{
		dashboardInvoice(old, 10000,
			entity.InvoiceItem{Name: "Fried Rice", Quantity: 5}),
		dashboardInvoice(now, 10000,
			entity.InvoiceItem{Name: "Momos", Quantity: 2}),
	}}

	svc := NewDashboardService(invoiceRepo, &fakeMenuItemRepo{})
	svc.now = fixedNow

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	// Old orders count too: 5 fried rice beat 2 momos
	assert.Equal(t, "Fried Rice", stats.PopularItem)
}

func TestDashboardPopularItemTieKeepsFirstEncountered(t *testing.T) {
	now := fixedNow()
	invoiceRepo := &fakeInvoiceRepo{invoices: []entity.Invoice{
		dashboardInvoice(now, 10000,
			entity.InvoiceItem{Name: "Momos", Quantity: 3},
			entity.InvoiceItem{Name: "Fried Rice", Quantity: 3}),
	}}

	svc := NewDashboardService(invoiceRepo, &fakeMenuItemRepo{})
	svc.now = fixedNow

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Momos", stats.PopularItem)
}

func TestDashboardFallbacksWithoutOrders(t *testing.T) {
	svc := NewDashboardService(&fakeInvoiceRepo{}, &fakeMenuItemRepo{})
	svc.now = fixedNow

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "No data", stats.PopularItem)
	assert.Equal(t, int64(0), stats.TodayOrders)

	// With menu items but no orders the first menu item stands in
	menuRepo := &fakeMenuItemRepo{}
	require.NoError(t, menuRepo.Create(context.Background(), &entity.MenuItem{Name: "Spring Roll", Price: 6000}))
	require.NoError(t, menuRepo.Create(context.Background(), &entity.MenuItem{Name: "Momos", Price: 8000}))

	svc = NewDashboardService(&fakeInvoiceRepo{}, menuRepo)
	svc.now = fixedNow

	stats, err = svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Spring Roll", stats.PopularItem)
	assert.Equal(t, int64(2), stats.MenuItems)
}

func TestDashboardRevenueChartCoversSevenDays(t *testing.T) {
	now := fixedNow()
	invoiceRepo := &fakeInvoiceRepo{invoices: []entity.Invoice{
		dashboardInvoice(now, 20000),
		dashboardInvoice(now.AddDate(0, 0, -3), 10000),
		dashboardInvoice(now.AddDate(0, 0, -10), 99900), // outside the window
	}}

	svc := NewDashboardService(invoiceRepo, &fakeMenuItemRepo{})
	svc.now = fixedNow

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.RevenueChart, 7)

	assert.Equal(t, "2026-08-22", stats.RevenueChart[0].Date)
	assert.Equal(t, "2026-08-28", stats.RevenueChart[6].Date)
	assert.InDelta(t, 200.0, stats.RevenueChart[6].Revenue, 0.001)
	assert.InDelta(t, 100.0, stats.RevenueChart[3].Revenue, 0.001)
	assert.Equal(t, int64(0), stats.RevenueChart[1].Orders)
}

func TestDashboardTopItems(t *testing.T) {
	now := fixedNow()
	invoiceRepo := &fakeInvoiceRepo{invoices: []entity.Invoice{
		dashboardInvoice(now, 10000,
			entity.InvoiceItem{Name: "Momos", Quantity: 4},
			entity.InvoiceItem{Name: "Fried Rice", Quantity: 1}),
		dashboardInvoice(now, 10000,
			entity.InvoiceItem{Name: "Fried Rice", Quantity: 2}),
	}}

	svc := NewDashboardService(invoiceRepo, &fakeMenuItemRepo{})
	svc.now = fixedNow

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.TopItems, 2)
	assert.Equal(t, PopularItemRow{Name: "Momos", Quantity: 4}, stats.TopItems[0])
	assert.Equal(t, PopularItemRow{Name: "Fried Rice", Quantity: 3}, stats.TopItems[1])
}
