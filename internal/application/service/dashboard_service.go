package service

import (
	"context"
	"time"

	"github.com/chingz/pos-api/internal/domain/repository"
)

// DashboardService aggregates invoice history into the owner's overview
type DashboardService struct {
	invoiceRepo  repository.InvoiceRepository
	menuItemRepo repository.MenuItemRepository
	now          func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	menuItemRepo repository.MenuItemRepository,
) *DashboardService {
	return &DashboardService{
		invoiceRepo:  invoiceRepo,
		menuItemRepo: menuItemRepo,
		now:          time.Now,
	}
}

// DashboardStats is the owner's at-a-glance overview
type DashboardStats struct {
	TodayOrders  int64            `json:"today_orders"`
	TodayRevenue float64          `json:"today_revenue"`
	TotalOrders  int64            `json:"total_orders"`
	TotalRevenue float64          `json:"total_revenue"`
	MenuItems    int64            `json:"menu_items"`
	PopularItem  string           `json:"popular_item"`
	RevenueChart []RevenuePoint   `json:"revenue_chart"`
	TopItems     []PopularItemRow `json:"top_items"`
}

// RevenuePoint is one day in the revenue chart
type RevenuePoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// PopularItemRow is one row of the most-ordered items table
type PopularItemRow struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// GetStats builds the dashboard from the full invoice history. "Today" is
// the server's calendar day. The popular item counts ordered quantities
// across all invoices; ties keep the item that reached the count first.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	invoices, err := s.invoiceRepo.ListAllWithItems(ctx)
	if err != nil {
		return nil, err
	}

	menuCount, err := s.menuItemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")
	weekAgo := now.AddDate(0, 0, -6)

	stats := &DashboardStats{
		MenuItems:    menuCount,
		PopularItem:  "No data",
		RevenueChart: make([]RevenuePoint, 0, 7),
		TopItems:     []PopularItemRow{},
	}

	// Pre-seed the last 7 days so the chart has no gaps
	dayIndex := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		date := weekAgo.AddDate(0, 0, i).Format("2006-01-02")
		dayIndex[date] = i
		stats.RevenueChart = append(stats.RevenueChart, RevenuePoint{Date: date})
	}

	type itemCount struct {
		name  string
		qty   int64
		order int // first-seen position, breaks ties
	}
	counts := make(map[string]*itemCount)
	seen := 0

	var totalRevenue int64
	var todayRevenue int64

	for _, inv := range invoices {
		stats.TotalOrders++
		totalRevenue += inv.Total

		day := inv.CreatedAt.Format("2006-01-02")
		if day == today {
			stats.TodayOrders++
			todayRevenue += inv.Total
		}
		if idx, ok := dayIndex[day]; ok {
			stats.RevenueChart[idx].Orders++
			stats.RevenueChart[idx].Revenue += inv.TotalDecimal()
		}

		for _, item := range inv.Items {
			c, ok := counts[item.Name]
			if !ok {
				c = &itemCount{name: item.Name, order: seen}
				counts[item.Name] = c
				seen++
			}
			c.qty += int64(item.Quantity)
		}
	}

	stats.TotalRevenue = float64(totalRevenue) / 100
	stats.TodayRevenue = float64(todayRevenue) / 100

	var best *itemCount
	for _, c := range counts {
		if best == nil || c.qty > best.qty || (c.qty == best.qty && c.order < best.order) {
			best = c
		}
	}
	if best != nil {
		stats.PopularItem = best.name
	} else if menuCount > 0 {
		// No orders yet: fall back to the first menu item
		items, err := s.menuItemRepo.List(ctx, nil)
		if err == nil && len(items) > 0 {
			stats.PopularItem = items[0].Name
		}
	}

	// Top five items by quantity, same tie rule
	for i := 0; i < 5; i++ {
		var next *itemCount
		for _, c := range counts {
			if c.qty == 0 {
				continue
			}
			if next == nil || c.qty > next.qty || (c.qty == next.qty && c.order < next.order) {
				next = c
			}
		}
		if next == nil {
			break
		}
		stats.TopItems = append(stats.TopItems, PopularItemRow{Name: next.name, Quantity: next.qty})
		next.qty = 0
	}

	return stats, nil
}
