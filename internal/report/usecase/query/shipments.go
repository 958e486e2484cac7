package query

import (
	"fmt"
	"sort"
	"time"

	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	supplierdomain "github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// Delivery urgency buckets for the shipments view
const (
	UrgencyOverdue  = "overdue"
	UrgencyDueToday = "due_today"
	UrgencyAtRisk   = "at_risk"
	UrgencyOnTrack  = "on_track"
)

// Shipment is one in-transit order enriched for the shipments view
type Shipment struct {
	OrderID              string             `json:"order_id"`
	OrderNumber          string             `json:"order_number"`
	SupplierID           string             `json:"supplier_id"`
	SupplierName         string             `json:"supplier_name"`
	Status               orderdomain.Status `json:"status"`
	OrderDate            time.Time          `json:"order_date"`
	ExpectedDeliveryDate time.Time          `json:"expected_delivery_date"`
	TotalAmount          float64            `json:"total_amount"`
	DaysRemaining        int                `json:"days_remaining"`
	Urgency              string             `json:"urgency"`
	DeliveryLabel        string             `json:"delivery_label"`
}

// ShipmentsQuery represents the shipments view request, optionally narrowed
// to one status
type ShipmentsQuery struct {
	Status orderdomain.Status
}

// ShipmentsHandler computes the shipments view. Only confirmed and shipped
// orders are in transit; pending, delivered and cancelled orders never
// appear here.
type ShipmentsHandler struct {
	orders    orderdomain.OrderRepository
	suppliers supplierdomain.SupplierRepository
	now       func() time.Time
}

// NewShipmentsHandler creates a new shipments handler
func NewShipmentsHandler(orders orderdomain.OrderRepository, suppliers supplierdomain.SupplierRepository) *ShipmentsHandler {
	return &ShipmentsHandler{orders: orders, suppliers: suppliers, now: time.Now}
}

// Handle executes the shipments view query. Days remaining compare calendar
// days with time of day zeroed on both sides; negative means overdue, zero
// means due today. Rows come back soonest expected delivery first.
func (h *ShipmentsHandler) Handle(q ShipmentsQuery) ([]Shipment, error) {
	orders, err := h.orders.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	suppliers, err := h.suppliers.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	names := make(map[string]string, len(suppliers))
	for _, supplier := range suppliers {
		names[supplier.ID] = supplier.Name
	}

	today := h.now()
	shipments := make([]Shipment, 0)
	for i := range orders {
		order := &orders[i]
		if !order.InTransit() {
			continue
		}
		if q.Status != "" && order.Status != q.Status {
			continue
		}

		name, ok := names[order.SupplierID]
		if !ok {
			// Dangling supplier reference, expected after supplier deletion
			name = "Unknown"
		}

		days := order.DaysRemaining(today)
		shipments = append(shipments, Shipment{
			OrderID:              order.ID,
			OrderNumber:          order.OrderNumber,
			SupplierID:           order.SupplierID,
			SupplierName:         name,
			Status:               order.Status,
			OrderDate:            order.OrderDate,
			ExpectedDeliveryDate: order.ExpectedDeliveryDate,
			TotalAmount:          order.TotalAmount,
			DaysRemaining:        days,
			Urgency:              urgencyFor(days),
			DeliveryLabel:        deliveryLabelFor(days),
		})
	}

	sort.SliceStable(shipments, func(i, j int) bool {
		return shipments[i].ExpectedDeliveryDate.Before(shipments[j].ExpectedDeliveryDate)
	})
	return shipments, nil
}

func urgencyFor(daysRemaining int) string {
	switch {
	case daysRemaining < 0:
		return UrgencyOverdue
	case daysRemaining == 0:
		return UrgencyDueToday
	case daysRemaining <= 2:
		return UrgencyAtRisk
	default:
		return UrgencyOnTrack
	}
}

func deliveryLabelFor(daysRemaining int) string {
	switch {
	case daysRemaining < 0:
		return fmt.Sprintf("Overdue by %d %s", -daysRemaining, pluralDays(-daysRemaining))
	case daysRemaining == 0:
		return "Due today"
	default:
		return fmt.Sprintf("%d %s remaining", daysRemaining, pluralDays(daysRemaining))
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
