package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/supplychain-dashboard/internal/order/domain"
	"github.com/tair/supplychain-dashboard/internal/order/usecase/command"
	"github.com/tair/supplychain-dashboard/internal/order/usecase/query"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
	"github.com/tair/supplychain-dashboard/pkg/events"
	"github.com/tair/supplychain-dashboard/pkg/logger"
)

// OrderHandler handles HTTP requests for purchase orders
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	updateHandler *command.UpdateOrderHandler
	statusHandler *command.UpdateOrderStatusHandler
	deleteHandler *command.DeleteOrderHandler

	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler

	orders             domain.OrderRepository
	pendingOrdersGauge prometheus.Gauge
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders domain.OrderRepository, products productdomain.ProductRepository, bus *events.Bus) *OrderHandler {
	pendingOrdersGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "supplychain_pending_orders",
			Help: "Number of orders waiting for confirmation",
		},
	)
	prometheus.MustRegister(pendingOrdersGauge)

	return &OrderHandler{
		createHandler:      command.NewCreateOrderHandler(orders, products),
		updateHandler:      command.NewUpdateOrderHandler(orders, products, bus),
		statusHandler:      command.NewUpdateOrderStatusHandler(orders, bus),
		deleteHandler:      command.NewDeleteOrderHandler(orders),
		getHandler:         query.NewGetOrderHandler(orders),
		listHandler:        query.NewListOrdersHandler(orders),
		orders:             orders,
		pendingOrdersGauge: pendingOrdersGauge,
	}
}

func (h *OrderHandler) updatePendingOrdersMetric() {
	orders, err := h.orders.FindAll()
	if err != nil {
		return
	}
	var pending int
	for _, order := range orders {
		if order.Status == domain.StatusPending {
			pending++
		}
	}
	h.pendingOrdersGauge.Set(float64(pending))
}

// Response is the uniform JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type orderItemRequest struct {
	ID        string `json:"id,omitempty"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type orderRequest struct {
	SupplierID           string             `json:"supplier_id"`
	Status               string             `json:"status"`
	OrderDate            string             `json:"order_date"`
	ExpectedDeliveryDate string             `json:"expected_delivery_date"`
	ActualDeliveryDate   string             `json:"actual_delivery_date,omitempty"`
	Items                []orderItemRequest `json:"items"`
	Notes                string             `json:"notes,omitempty"`
}

// CreateOrder handles POST /api/orders. The order number and all totals are
// derived server-side; callers only supply supplier, dates, notes and item
// product/quantity pairs.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order date"})
		return
	}
	expectedDate, err := parseDate(req.ExpectedDeliveryDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid expected delivery date"})
		return
	}

	items := make([]command.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, command.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.createHandler.Handle(r.Context(), command.CreateOrderCommand{
		SupplierID:           req.SupplierID,
		Status:               domain.Status(req.Status),
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expectedDate,
		Items:                items,
		Notes:                req.Notes,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updatePendingOrdersMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.getHandler.Handle(query.GetOrderQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

// ListOrders handles GET /api/orders with optional supplier_id and status
// filters
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listHandler.Handle(query.ListOrdersQuery{
		SupplierID: r.URL.Query().Get("supplier_id"),
		Status:     domain.Status(r.URL.Query().Get("status")),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list orders"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: orders})
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid order date"})
		return
	}
	expectedDate, err := parseDate(req.ExpectedDeliveryDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid expected delivery date"})
		return
	}
	actualDate, err := parseOptionalDate(req.ActualDeliveryDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid actual delivery date"})
		return
	}

	items := make([]command.UpdateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, command.UpdateOrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.updateHandler.Handle(r.Context(), command.UpdateOrderCommand{
		ID:                   id,
		SupplierID:           req.SupplierID,
		Status:               domain.Status(req.Status),
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expectedDate,
		ActualDeliveryDate:   actualDate,
		Items:                items,
		Notes:                req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updatePendingOrdersMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order updated successfully",
		Data:    order,
	})
}

// UpdateOrderStatus handles PATCH /api/orders/{id}/status
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Status             string `json:"status"`
		ActualDeliveryDate string `json:"actual_delivery_date,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	actualDate, err := parseOptionalDate(req.ActualDeliveryDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid actual delivery date"})
		return
	}
	// Marking delivered without a date means delivered today
	if domain.Status(req.Status) == domain.StatusDelivered && actualDate == nil {
		now := time.Now()
		actualDate = &now
	}

	order, err := h.statusHandler.Handle(r.Context(), command.UpdateOrderStatusCommand{
		ID:                 id,
		Status:             domain.Status(req.Status),
		ActualDeliveryDate: actualDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updatePendingOrdersMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: fmt.Sprintf("Order status updated to %s", order.Status),
		Data:    order,
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteOrderCommand{ID: id}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updatePendingOrdersMetric()

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Order deleted successfully"})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/orders", h.CreateOrder).Methods("POST")
	router.HandleFunc("/api/orders/{id}", h.GetOrder).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.UpdateOrder).Methods("PUT")
	router.HandleFunc("/api/orders/{id}", h.DeleteOrder).Methods("DELETE")
	router.HandleFunc("/api/orders/{id}/status", h.UpdateOrderStatus).Methods("PATCH")
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
