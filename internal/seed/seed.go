// Package seed loads a demo data set into the in-memory repositories so the
// dashboard starts with something to show.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	notificationdomain "github.com/tair/supplychain-dashboard/internal/notification/domain"
	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
	supplierdomain "github.com/tair/supplychain-dashboard/internal/supplier/domain"
	"github.com/tair/supplychain-dashboard/pkg/logger"
)

// Repositories holds the stores the demo data is loaded into
type Repositories struct {
	Suppliers     supplierdomain.SupplierRepository
	Products      productdomain.ProductRepository
	Orders        orderdomain.OrderRepository
	Notifications notificationdomain.NotificationRepository
}

// Load seeds five suppliers, seven products, five orders and five
// notifications. Order and delivery dates are placed relative to now so the
// shipments view always has overdue and upcoming entries. Load is skipped
// when the supplier store already has data.
func Load(repos Repositories, now time.Time) error {
	count, err := repos.Suppliers.Count()
	if err != nil {
		return fmt.Errorf("seed: counting suppliers: %w", err)
	}
	if count > 0 {
		logger.Component("seed").Debug().Msg("Repositories already populated, skipping demo data")
		return nil
	}

	suppliers := []*supplierdomain.Supplier{
		{
			Name:          "TechComponents Inc.",
			ContactPerson: "John Smith",
			Email:         "john@techcomponents.com",
			Phone:         "555-123-4567",
			Address:       "123 Tech Blvd, San Jose, CA 95123",
			Category:      "Electronics",
			LeadTime:      3,
			Reliability:   4,
			Active:        true,
		},
		{
			Name:          "Global Materials Ltd.",
			ContactPerson: "Sarah Johnson",
			Email:         "sarah@globalmaterials.com",
			Phone:         "555-987-6543",
			Address:       "456 Industry Way, Chicago, IL 60601",
			Category:      "Raw Materials",
			LeadTime:      5,
			Reliability:   5,
			Active:        true,
		},
		{
			Name:          "FastLogistics Co.",
			ContactPerson: "Michael Chen",
			Email:         "michael@fastlogistics.com",
			Phone:         "555-456-7890",
			Address:       "789 Shipping Lane, Atlanta, GA 30301",
			Category:      "Packaging",
			LeadTime:      2,
			Reliability:   3,
			Active:        true,
		},
		{
			Name:          "Quality Parts Supply",
			ContactPerson: "Emma Wilson",
			Email:         "emma@qualityparts.com",
			Phone:         "555-234-5678",
			Address:       "321 Manufacturing St, Detroit, MI 48201",
			Category:      "Automotive",
			LeadTime:      4,
			Reliability:   4,
			Active:        true,
		},
		{
			Name:          "EcoPackage Solutions",
			ContactPerson: "David Lee",
			Email:         "david@ecopackage.com",
			Phone:         "555-876-5432",
			Address:       "567 Green Ave, Portland, OR 97201",
			Category:      "Packaging",
			LeadTime:      3,
			Reliability:   4,
			Active:        false,
		},
	}
	for _, s := range suppliers {
		if err := repos.Suppliers.Create(s); err != nil {
			return fmt.Errorf("seed: creating supplier %s: %w", s.Name, err)
		}
	}

	products := []*productdomain.Product{
		{
			Name:          "Microchip A1",
			SKU:           "MC-A1-001",
			Description:   "High-performance microchip for electronic devices",
			Price:         12.99,
			Category:      "Electronics",
			SupplierID:    suppliers[0].ID,
			MinStockLevel: 50,
			CurrentStock:  75,
			UnitOfMeasure: "piece",
		},
		{
			Name:          "Aluminum Sheet",
			SKU:           "AL-SH-002",
			Description:   "Industrial grade aluminum sheet, 2mm thickness",
			Price:         45.50,
			Category:      "Raw Materials",
			SupplierID:    suppliers[1].ID,
			MinStockLevel: 20,
			CurrentStock:  15,
			UnitOfMeasure: "sheet",
		},
		{
			Name:          "Cardboard Box (Medium)",
			SKU:           "CB-MD-003",
			Description:   "Medium-sized cardboard box for product packaging",
			Price:         2.25,
			Category:      "Packaging",
			SupplierID:    suppliers[2].ID,
			MinStockLevel: 100,
			CurrentStock:  230,
			UnitOfMeasure: "piece",
		},
		{
			Name:          "Brake Pad Set",
			SKU:           "BP-ST-004",
			Description:   "Standard brake pad set for passenger vehicles",
			Price:         35.75,
			Category:      "Automotive",
			SupplierID:    suppliers[3].ID,
			MinStockLevel: 30,
			CurrentStock:  28,
			UnitOfMeasure: "set",
		},
		{
			Name:          "Biodegradable Wrap",
			SKU:           "BW-RL-005",
			Description:   "Eco-friendly packaging wrap, 100m roll",
			Price:         18.99,
			Category:      "Packaging",
			SupplierID:    suppliers[4].ID,
			MinStockLevel: 40,
			CurrentStock:  42,
			UnitOfMeasure: "roll",
		},
		{
			Name:          "Circuit Board X3",
			SKU:           "CB-X3-006",
			Description:   "Advanced circuit board for smart devices",
			Price:         28.50,
			Category:      "Electronics",
			SupplierID:    suppliers[0].ID,
			MinStockLevel: 25,
			CurrentStock:  18,
			UnitOfMeasure: "piece",
		},
		{
			Name:          "Steel Rod 10mm",
			SKU:           "SR-10-007",
			Description:   "Industrial steel rod, 10mm diameter",
			Price:         8.75,
			Category:      "Raw Materials",
			SupplierID:    suppliers[1].ID,
			MinStockLevel: 60,
			CurrentStock:  85,
			UnitOfMeasure: "meter",
		},
	}
	for _, p := range products {
		if err := repos.Products.Create(p); err != nil {
			return fmt.Errorf("seed: creating product %s: %w", p.Name, err)
		}
	}

	day := func(offset int) time.Time {
		return now.AddDate(0, 0, offset)
	}
	year := now.Year()
	deliveredAt := day(-7)

	orders := []*orderdomain.Order{
		{
			OrderNumber:          orderdomain.FormatOrderNumber(year, 1),
			SupplierID:           suppliers[0].ID,
			Status:               orderdomain.StatusDelivered,
			OrderDate:            day(-10),
			ExpectedDeliveryDate: day(-7),
			ActualDeliveryDate:   &deliveredAt,
			Items: []orderdomain.OrderItem{
				{ID: uuid.NewString(), ProductID: products[0].ID, Quantity: 100, UnitPrice: 12.99},
			},
			Notes: "Regular monthly order",
		},
		{
			OrderNumber:          orderdomain.FormatOrderNumber(year, 2),
			SupplierID:           suppliers[1].ID,
			Status:               orderdomain.StatusShipped,
			OrderDate:            day(-5),
			ExpectedDeliveryDate: day(0),
			Items: []orderdomain.OrderItem{
				{ID: uuid.NewString(), ProductID: products[1].ID, Quantity: 30, UnitPrice: 45.50},
				{ID: uuid.NewString(), ProductID: products[6].ID, Quantity: 50, UnitPrice: 8.75},
			},
		},
		{
			OrderNumber:          orderdomain.FormatOrderNumber(year, 3),
			SupplierID:           suppliers[2].ID,
			Status:               orderdomain.StatusConfirmed,
			OrderDate:            day(-2),
			ExpectedDeliveryDate: day(0),
			Items: []orderdomain.OrderItem{
				{ID: uuid.NewString(), ProductID: products[2].ID, Quantity: 200, UnitPrice: 2.25},
			},
			Notes: "Urgent order for upcoming product launch",
		},
		{
			OrderNumber:          orderdomain.FormatOrderNumber(year, 4),
			SupplierID:           suppliers[3].ID,
			Status:               orderdomain.StatusPending,
			OrderDate:            day(-1),
			ExpectedDeliveryDate: day(3),
			Items: []orderdomain.OrderItem{
				{ID: uuid.NewString(), ProductID: products[3].ID, Quantity: 25, UnitPrice: 35.75},
			},
		},
		{
			OrderNumber:          orderdomain.FormatOrderNumber(year, 5),
			SupplierID:           suppliers[0].ID,
			Status:               orderdomain.StatusPending,
			OrderDate:            day(0),
			ExpectedDeliveryDate: day(3),
			Items: []orderdomain.OrderItem{
				{ID: uuid.NewString(), ProductID: products[5].ID, Quantity: 40, UnitPrice: 28.50},
			},
		},
	}
	for _, o := range orders {
		o.RecalculateTotals()
		if err := repos.Orders.Create(o); err != nil {
			return fmt.Errorf("seed: creating order %s: %w", o.OrderNumber, err)
		}
	}

	notifications := []*notificationdomain.Notification{
		{
			Type:      notificationdomain.TypeWarning,
			Message:   "Aluminum Sheet stock is below minimum level",
			ProductID: products[1].ID,
			Timestamp: day(-1),
		},
		{
			Type:      notificationdomain.TypeInfo,
			Message:   fmt.Sprintf("Order %s has been shipped", orders[1].OrderNumber),
			Timestamp: day(-1),
			Read:      true,
		},
		{
			Type:      notificationdomain.TypeSuccess,
			Message:   fmt.Sprintf("Order %s has been delivered", orders[0].OrderNumber),
			Timestamp: day(-3),
			Read:      true,
		},
		{
			Type:      notificationdomain.TypeError,
			Message:   "Failed to connect with FastLogistics Co. API",
			Timestamp: day(-2),
		},
		{
			Type:      notificationdomain.TypeWarning,
			Message:   "Circuit Board X3 stock is below minimum level",
			ProductID: products[5].ID,
			Timestamp: day(0),
		},
	}
	// Oldest first so the prepend-on-create store ends newest first
	for i := len(notifications) - 1; i >= 0; i-- {
		if err := repos.Notifications.Create(notifications[i]); err != nil {
			return fmt.Errorf("seed: creating notification: %w", err)
		}
	}

	logger.Component("seed").Info().
		Int("suppliers", len(suppliers)).
		Int("products", len(products)).
		Int("orders", len(orders)).
		Int("notifications", len(notifications)).
		Msg("Demo data loaded")

	return nil
}
