package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	orderrepo "github.com/tair/supplychain-dashboard/internal/order/repository"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
	productrepo "github.com/tair/supplychain-dashboard/internal/product/repository"
	supplierdomain "github.com/tair/supplychain-dashboard/internal/supplier/domain"
	supplierrepo "github.com/tair/supplychain-dashboard/internal/supplier/repository"
)

var reportNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return reportNow.AddDate(0, 0, offset)
}

type fixtures struct {
	suppliers *supplierrepo.MemorySupplierRepository
	products  *productrepo.MemoryProductRepository
	orders    *orderrepo.MemoryOrderRepository

	tech     *supplierdomain.Supplier
	global   *supplierdomain.Supplier
	chip     *productdomain.Product
	sheet    *productdomain.Product
	delivOne *orderdomain.Order
}

// newFixtures builds two suppliers, two products and four orders: one
// delivered on time, one delivered late, one shipped due today and one
// pending. TechComponents owns three of the orders.
func newFixtures(t *testing.T) *fixtures {
	t.Helper()
	f := &fixtures{
		suppliers: supplierrepo.NewMemorySupplierRepository(),
		products:  productrepo.NewMemoryProductRepository(),
		orders:    orderrepo.NewMemoryOrderRepository(),
	}

	f.tech = &supplierdomain.Supplier{
		Name: "TechComponents Inc.", ContactPerson: "John Smith",
		Email: "john@techcomponents.com", LeadTime: 3, Reliability: 4, Active: true,
	}
	f.global = &supplierdomain.Supplier{
		Name: "Global Materials Ltd.", ContactPerson: "Sarah Johnson",
		Email: "sarah@globalmaterials.com", LeadTime: 5, Reliability: 5, Active: true,
	}
	require.NoError(t, f.suppliers.Create(f.tech))
	require.NoError(t, f.suppliers.Create(f.global))

	f.chip = &productdomain.Product{
		Name: "Microchip A1", SKU: "MC-A1-001", Price: 12.99, Category: "Electronics",
		SupplierID: f.tech.ID, MinStockLevel: 50, CurrentStock: 75, UnitOfMeasure: "piece",
	}
	f.sheet = &productdomain.Product{
		Name: "Aluminum Sheet", SKU: "AL-SH-002", Price: 45.50, Category: "Raw Materials",
		SupplierID: f.global.ID, MinStockLevel: 20, CurrentStock: 15, UnitOfMeasure: "sheet",
	}
	require.NoError(t, f.products.Create(f.chip))
	require.NoError(t, f.products.Create(f.sheet))

	onTime := day(-7)
	f.delivOne = &orderdomain.Order{
		OrderNumber: "ORD-2025-001", SupplierID: f.tech.ID, Status: orderdomain.StatusDelivered,
		OrderDate: day(-10), ExpectedDeliveryDate: day(-7), ActualDeliveryDate: &onTime,
		Items: []orderdomain.OrderItem{{ID: "1-1", ProductID: f.chip.ID, Quantity: 100, UnitPrice: 12.99}},
	}
	late := day(-3)
	delivTwo := &orderdomain.Order{
		OrderNumber: "ORD-2025-002", SupplierID: f.tech.ID, Status: orderdomain.StatusDelivered,
		OrderDate: day(-8), ExpectedDeliveryDate: day(-5), ActualDeliveryDate: &late,
		Items: []orderdomain.OrderItem{{ID: "2-1", ProductID: f.chip.ID, Quantity: 20, UnitPrice: 12.99}},
	}
	shipped := &orderdomain.Order{
		OrderNumber: "ORD-2025-003", SupplierID: f.global.ID, Status: orderdomain.StatusShipped,
		OrderDate: day(-5), ExpectedDeliveryDate: day(0),
		Items: []orderdomain.OrderItem{{ID: "3-1", ProductID: f.sheet.ID, Quantity: 30, UnitPrice: 45.50}},
	}
	pending := &orderdomain.Order{
		OrderNumber: "ORD-2025-004", SupplierID: f.tech.ID, Status: orderdomain.StatusPending,
		OrderDate: day(0), ExpectedDeliveryDate: day(3),
		Items: []orderdomain.OrderItem{{ID: "4-1", ProductID: f.chip.ID, Quantity: 40, UnitPrice: 12.99}},
	}
	for _, order := range []*orderdomain.Order{f.delivOne, delivTwo, shipped, pending} {
		order.RecalculateTotals()
		require.NoError(t, f.orders.Create(order))
	}
	return f
}

func TestSupplierPerformance(t *testing.T) {
	f := newFixtures(t)
	handler := NewSupplierPerformanceHandler(f.suppliers, f.orders)

	report, err := handler.Handle(SupplierPerformanceQuery{})
	require.NoError(t, err)
	require.Len(t, report, 2)

	// Busiest supplier first
	tech := report[0]
	assert.Equal(t, f.tech.ID, tech.SupplierID)
	assert.Equal(t, 3, tech.TotalOrders)
	assert.Equal(t, 2, tech.DeliveredOrders)
	assert.Equal(t, 1, tech.OnTimeDeliveries)
	// One of three orders arrived on time
	assert.InDelta(t, 100.0/3.0, tech.OnTimeRate, 0.001)
	assert.InDelta(t, 1299+259.8+519.6, tech.TotalSpent, 0.001)

	global := report[1]
	assert.Equal(t, 1, global.TotalOrders)
	assert.Zero(t, global.DeliveredOrders)
	assert.Zero(t, global.OnTimeRate)
}

func TestSupplierPerformanceNoOrders(t *testing.T) {
	suppliers := supplierrepo.NewMemorySupplierRepository()
	require.NoError(t, suppliers.Create(&supplierdomain.Supplier{
		Name: "Quality Parts Supply", ContactPerson: "Emma Wilson",
		Email: "emma@qualityparts.com", LeadTime: 4, Reliability: 4, Active: true,
	}))
	handler := NewSupplierPerformanceHandler(suppliers, orderrepo.NewMemoryOrderRepository())

	report, err := handler.Handle(SupplierPerformanceQuery{})
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Zero(t, report[0].TotalOrders)
	assert.Zero(t, report[0].OnTimeRate, "no orders must not divide by zero")
}

func TestSupplierPerformanceHalfOnTime(t *testing.T) {
	suppliers := supplierrepo.NewMemorySupplierRepository()
	orders := orderrepo.NewMemoryOrderRepository()

	supplier := &supplierdomain.Supplier{
		Name: "FastLogistics Co.", ContactPerson: "Michael Chen",
		Email: "michael@fastlogistics.com", LeadTime: 2, Reliability: 3, Active: true,
	}
	require.NoError(t, suppliers.Create(supplier))

	onTime := day(-4)
	require.NoError(t, orders.Create(&orderdomain.Order{
		OrderNumber: "ORD-2025-001", SupplierID: supplier.ID,
		Status: orderdomain.StatusDelivered, OrderDate: day(-7),
		ExpectedDeliveryDate: day(-4), ActualDeliveryDate: &onTime,
		TotalAmount: 100,
	}))
	require.NoError(t, orders.Create(&orderdomain.Order{
		OrderNumber: "ORD-2025-002", SupplierID: supplier.ID,
		Status: orderdomain.StatusPending, OrderDate: day(0),
		ExpectedDeliveryDate: day(3), TotalAmount: 200,
	}))

	handler := NewSupplierPerformanceHandler(suppliers, orders)
	report, err := handler.Handle(SupplierPerformanceQuery{})
	require.NoError(t, err)
	require.Len(t, report, 1)

	assert.Equal(t, 2, report[0].TotalOrders)
	assert.Equal(t, 1, report[0].OnTimeDeliveries)
	assert.Equal(t, 50.0, report[0].OnTimeRate)
	assert.Equal(t, 300.0, report[0].TotalSpent)
}

func TestProductFrequency(t *testing.T) {
	f := newFixtures(t)
	handler := NewProductFrequencyHandler(f.products, f.orders)

	report, err := handler.Handle(ProductFrequencyQuery{})
	require.NoError(t, err)
	require.Len(t, report, 2)

	// The chip appears in three orders regardless of their status
	chip := report[0]
	assert.Equal(t, f.chip.ID, chip.ProductID)
	assert.Equal(t, 160, chip.TotalOrdered)
	assert.InDelta(t, 2078.4, chip.TotalSpent, 0.001)
	assert.False(t, chip.LowStock)

	sheet := report[1]
	assert.Equal(t, 30, sheet.TotalOrdered)
	assert.True(t, sheet.LowStock)
}

func TestStatusDistribution(t *testing.T) {
	f := newFixtures(t)
	handler := NewStatusDistributionHandler(f.orders)

	distribution, err := handler.Handle(StatusDistributionQuery{})
	require.NoError(t, err)
	assert.Equal(t, 4, distribution.TotalOrders)
	require.Len(t, distribution.Statuses, 5)

	byStatus := make(map[orderdomain.Status]StatusCount)
	for _, row := range distribution.Statuses {
		byStatus[row.Status] = row
	}
	assert.Equal(t, 1, byStatus[orderdomain.StatusPending].Count)
	assert.Equal(t, 25.0, byStatus[orderdomain.StatusPending].Percentage)
	assert.Equal(t, 2, byStatus[orderdomain.StatusDelivered].Count)
	assert.Equal(t, 50.0, byStatus[orderdomain.StatusDelivered].Percentage)
	assert.Zero(t, byStatus[orderdomain.StatusCancelled].Count)
}

func TestStatusDistributionEmptyStore(t *testing.T) {
	handler := NewStatusDistributionHandler(orderrepo.NewMemoryOrderRepository())

	distribution, err := handler.Handle(StatusDistributionQuery{})
	require.NoError(t, err)
	assert.Zero(t, distribution.TotalOrders)
	for _, row := range distribution.Statuses {
		assert.Zero(t, row.Count)
		assert.Zero(t, row.Percentage)
	}
}

func TestMonthlyTrends(t *testing.T) {
	orders := orderrepo.NewMemoryOrderRepository()
	for _, o := range []*orderdomain.Order{
		{OrderNumber: "ORD-2025-001", SupplierID: "s1", Status: orderdomain.StatusDelivered,
			OrderDate: time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), TotalAmount: 100},
		{OrderNumber: "ORD-2025-002", SupplierID: "s1", Status: orderdomain.StatusPending,
			OrderDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), TotalAmount: 250},
		{OrderNumber: "ORD-2025-003", SupplierID: "s1", Status: orderdomain.StatusPending,
			OrderDate: time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC), TotalAmount: 50},
	} {
		require.NoError(t, orders.Create(o))
	}

	handler := NewMonthlyTrendsHandler(orders)
	trends, err := handler.Handle(MonthlyTrendsQuery{})
	require.NoError(t, err)

	// May has no orders and is omitted; months come back ascending
	require.Len(t, trends, 2)
	assert.Equal(t, MonthlyTrend{Month: "2025-04", Count: 1, Amount: 100}, trends[0])
	assert.Equal(t, MonthlyTrend{Month: "2025-06", Count: 2, Amount: 300}, trends[1])
}

func TestShipmentsView(t *testing.T) {
	f := newFixtures(t)
	handler := NewShipmentsHandler(f.orders, f.suppliers)
	handler.now = func() time.Time { return reportNow }

	shipments, err := handler.Handle(ShipmentsQuery{})
	require.NoError(t, err)

	// Only the shipped order is in transit; delivered and pending never appear
	require.Len(t, shipments, 1)
	shipment := shipments[0]
	assert.Equal(t, "ORD-2025-003", shipment.OrderNumber)
	assert.Equal(t, "Global Materials Ltd.", shipment.SupplierName)
	assert.Zero(t, shipment.DaysRemaining)
	assert.Equal(t, UrgencyDueToday, shipment.Urgency)
	assert.Equal(t, "Due today", shipment.DeliveryLabel)
}

func TestShipmentsUrgencyBuckets(t *testing.T) {
	suppliers := supplierrepo.NewMemorySupplierRepository()
	orders := orderrepo.NewMemoryOrderRepository()

	expectations := []struct {
		offset  int
		urgency string
		label   string
	}{
		{-2, UrgencyOverdue, "Overdue by 2 days"},
		{-1, UrgencyOverdue, "Overdue by 1 day"},
		{0, UrgencyDueToday, "Due today"},
		{1, UrgencyAtRisk, "1 day remaining"},
		{2, UrgencyAtRisk, "2 days remaining"},
		{3, UrgencyOnTrack, "3 days remaining"},
	}
	for i, e := range expectations {
		require.NoError(t, orders.Create(&orderdomain.Order{
			OrderNumber: orderdomain.FormatOrderNumber(2025, i+1),
			SupplierID:  "ghost", Status: orderdomain.StatusConfirmed,
			OrderDate: day(-5), ExpectedDeliveryDate: day(e.offset),
		}))
	}

	handler := NewShipmentsHandler(orders, suppliers)
	handler.now = func() time.Time { return reportNow }

	shipments, err := handler.Handle(ShipmentsQuery{})
	require.NoError(t, err)
	require.Len(t, shipments, len(expectations))

	// Soonest expected delivery first
	for i, e := range expectations {
		assert.Equal(t, e.offset, shipments[i].DaysRemaining)
		assert.Equal(t, e.urgency, shipments[i].Urgency, "offset %d", e.offset)
		assert.Equal(t, e.label, shipments[i].DeliveryLabel, "offset %d", e.offset)
		// The supplier reference dangles, so the name falls back
		assert.Equal(t, "Unknown", shipments[i].SupplierName)
	}
}

func TestShipmentsStatusFilterAndDelivery(t *testing.T) {
	f := newFixtures(t)
	handler := NewShipmentsHandler(f.orders, f.suppliers)
	handler.now = func() time.Time { return reportNow }

	shipped, err := handler.Handle(ShipmentsQuery{Status: orderdomain.StatusShipped})
	require.NoError(t, err)
	require.Len(t, shipped, 1)

	confirmed, err := handler.Handle(ShipmentsQuery{Status: orderdomain.StatusConfirmed})
	require.NoError(t, err)
	assert.Empty(t, confirmed)

	// Marking the shipment delivered removes it from the view
	order, err := f.orders.FindByID(shipped[0].OrderID)
	require.NoError(t, err)
	delivered := day(0)
	order.Status = orderdomain.StatusDelivered
	order.ActualDeliveryDate = &delivered
	require.NoError(t, f.orders.Update(order))

	shipments, err := handler.Handle(ShipmentsQuery{})
	require.NoError(t, err)
	assert.Empty(t, shipments)
}

func TestDashboardSummary(t *testing.T) {
	f := newFixtures(t)

	// An inactive supplier counts toward the total only
	require.NoError(t, f.suppliers.Create(&supplierdomain.Supplier{
		Name: "EcoPackage Solutions", ContactPerson: "David Lee",
		Email: "david@ecopackage.com", LeadTime: 3, Reliability: 4, Active: false,
	}))

	handler := NewDashboardHandler(f.suppliers, f.products, f.orders)
	summary, err := handler.Handle(DashboardQuery{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalSuppliers)
	assert.Equal(t, 2, summary.ActiveSuppliers)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.PendingOrders)
	assert.Equal(t, 1, summary.ShippedOrders)
	require.Len(t, summary.LowStockProducts, 1)
	assert.Equal(t, f.sheet.ID, summary.LowStockProducts[0].ID)

	require.Len(t, summary.RecentOrders, 4)
	assert.Equal(t, "ORD-2025-004", summary.RecentOrders[0].OrderNumber, "most recent order first")
}

func TestDashboardSummaryCapsRecentOrders(t *testing.T) {
	suppliers := supplierrepo.NewMemorySupplierRepository()
	products := productrepo.NewMemoryProductRepository()
	orders := orderrepo.NewMemoryOrderRepository()

	for i := 0; i < 7; i++ {
		require.NoError(t, orders.Create(&orderdomain.Order{
			OrderNumber: orderdomain.FormatOrderNumber(2025, i+1),
			SupplierID:  "s1", Status: orderdomain.StatusPending,
			OrderDate: day(-i), ExpectedDeliveryDate: day(3),
		}))
	}

	handler := NewDashboardHandler(suppliers, products, orders)
	summary, err := handler.Handle(DashboardQuery{})
	require.NoError(t, err)
	require.Len(t, summary.RecentOrders, 5)
	assert.Equal(t, "ORD-2025-001", summary.RecentOrders[0].OrderNumber)
}
