package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/supplychain-dashboard/internal/notification/domain"
	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
	"github.com/tair/supplychain-dashboard/pkg/events"
	"github.com/tair/supplychain-dashboard/pkg/logger"
)

// StockMonitor watches the product catalog and records dashboard
// notifications. It reacts synchronously to store mutations through the
// event bus; there is no timer or background goroutine involved.
type StockMonitor struct {
	products      productdomain.ProductRepository
	notifications domain.NotificationRepository
	now           func() time.Time
}

// NewStockMonitor creates a stock monitor over the given repositories
func NewStockMonitor(products productdomain.ProductRepository, notifications domain.NotificationRepository) *StockMonitor {
	return &StockMonitor{
		products:      products,
		notifications: notifications,
		now:           time.Now,
	}
}

// Register subscribes the monitor to product and order events
func (m *StockMonitor) Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypeProductChanged, func(ctx context.Context, event interface{}) {
		if err := m.CheckStockLevels(ctx); err != nil {
			logger.Error(ctx).Err(err).Msg("Stock level check failed")
		}
	})
	bus.Subscribe(events.EventTypeOrderStatusChanged, func(ctx context.Context, event interface{}) {
		statusEvent, ok := event.(events.OrderStatusChangedEvent)
		if !ok {
			return
		}
		if err := m.recordOrderStatus(ctx, statusEvent); err != nil {
			logger.Error(ctx).Err(err).Msg("Order status notification failed")
		}
	})
}

// CheckStockLevels recomputes the low-stock set and records one warning per
// low-stock product. Duplicates are suppressed by (warning, product id);
// read warnings count too, so a product alerts at most once until its
// warning is cleared.
func (m *StockMonitor) CheckStockLevels(ctx context.Context) error {
	products, err := m.products.FindAll()
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	for _, product := range products {
		if !product.IsLowStock() {
			continue
		}
		if existing, _ := m.notifications.FindWarningByProduct(product.ID); existing != nil {
			continue
		}

		notification := &domain.Notification{
			Type:      domain.TypeWarning,
			Message:   fmt.Sprintf("%s stock is below minimum level", product.Name),
			ProductID: product.ID,
			Timestamp: m.now(),
			Read:      false,
		}
		if err := m.notifications.Create(notification); err != nil {
			return fmt.Errorf("failed to record stock warning: %w", err)
		}

		logger.Warn(ctx).
			Str("product_id", product.ID).
			Str("product_name", product.Name).
			Int("current_stock", product.CurrentStock).
			Int("min_stock_level", product.MinStockLevel).
			Msg("Low stock warning recorded")
	}

	return nil
}

// recordOrderStatus mirrors shipment progress into the notification feed
func (m *StockMonitor) recordOrderStatus(ctx context.Context, event events.OrderStatusChangedEvent) error {
	var notification *domain.Notification

	switch orderdomain.Status(event.Status) {
	case orderdomain.StatusShipped:
		notification = &domain.Notification{
			Type:      domain.TypeInfo,
			Message:   fmt.Sprintf("Order %s has been shipped", event.OrderNumber),
			Timestamp: m.now(),
		}
	case orderdomain.StatusDelivered:
		notification = &domain.Notification{
			Type:      domain.TypeSuccess,
			Message:   fmt.Sprintf("Order %s has been delivered", event.OrderNumber),
			Timestamp: m.now(),
		}
	default:
		return nil
	}

	if err := m.notifications.Create(notification); err != nil {
		return fmt.Errorf("failed to record order notification: %w", err)
	}

	logger.Info(ctx).
		Str("order_id", event.OrderID).
		Str("order_number", event.OrderNumber).
		Str("status", event.Status).
		Msg("Order status notification recorded")
	return nil
}
