package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	ordersquery "github.com/tair/supplychain-dashboard/internal/order/usecase/query"
	productsquery "github.com/tair/supplychain-dashboard/internal/product/usecase/query"
	"github.com/tair/supplychain-dashboard/internal/supplier/domain"
	"github.com/tair/supplychain-dashboard/internal/supplier/usecase/command"
	"github.com/tair/supplychain-dashboard/internal/supplier/usecase/query"
	"github.com/tair/supplychain-dashboard/pkg/logger"
)

// SupplierHandler handles HTTP requests for suppliers
type SupplierHandler struct {
	createHandler *command.CreateSupplierHandler
	updateHandler *command.UpdateSupplierHandler
	deleteHandler *command.DeleteSupplierHandler

	getHandler  *query.GetSupplierHandler
	listHandler *query.ListSuppliersHandler

	listProductsHandler *productsquery.ListProductsHandler
	listOrdersHandler   *ordersquery.ListOrdersHandler
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(
	repo domain.SupplierRepository,
	listProducts *productsquery.ListProductsHandler,
	listOrders *ordersquery.ListOrdersHandler,
) *SupplierHandler {
	return &SupplierHandler{
		createHandler:       command.NewCreateSupplierHandler(repo),
		updateHandler:       command.NewUpdateSupplierHandler(repo),
		deleteHandler:       command.NewDeleteSupplierHandler(repo),
		getHandler:          query.NewGetSupplierHandler(repo),
		listHandler:         query.NewListSuppliersHandler(repo),
		listProductsHandler: listProducts,
		listOrdersHandler:   listOrders,
	}
}

// Response is the uniform JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type supplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Category      string `json:"category"`
	LeadTime      int    `json:"lead_time"`
	Reliability   int    `json:"reliability"`
	Active        bool   `json:"active"`
}

// CreateSupplier handles POST /api/suppliers
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	supplier, err := h.createHandler.Handle(command.CreateSupplierCommand{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Category:      req.Category,
		LeadTime:      req.LeadTime,
		Reliability:   req.Reliability,
		Active:        req.Active,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Supplier created successfully",
		Data:    supplier,
	})
}

// GetSupplier handles GET /api/suppliers/{id}
func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	supplier, err := h.getHandler.Handle(query.GetSupplierQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Supplier not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: supplier})
}

// ListSuppliers handles GET /api/suppliers
func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.listHandler.Handle(query.ListSuppliersQuery{
		ActiveOnly: r.URL.Query().Get("active") == "true",
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list suppliers")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list suppliers"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: suppliers})
}

// UpdateSupplier handles PUT /api/suppliers/{id}
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req supplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	supplier, err := h.updateHandler.Handle(command.UpdateSupplierCommand{
		ID:            id,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Category:      req.Category,
		LeadTime:      req.LeadTime,
		Reliability:   req.Reliability,
		Active:        req.Active,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supplier updated successfully",
		Data:    supplier,
	})
}

// DeleteSupplier handles DELETE /api/suppliers/{id}
func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(command.DeleteSupplierCommand{ID: id}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Supplier deleted successfully"})
}

// ListSupplierProducts handles GET /api/suppliers/{id}/products
func (h *SupplierHandler) ListSupplierProducts(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	products, err := h.listProductsHandler.Handle(productsquery.ListProductsQuery{SupplierID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list supplier products")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list supplier products"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// ListSupplierOrders handles GET /api/suppliers/{id}/orders
func (h *SupplierHandler) ListSupplierOrders(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	orders, err := h.listOrdersHandler.Handle(ordersquery.ListOrdersQuery{SupplierID: id})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list supplier orders")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list supplier orders"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: orders})
}

// RegisterRoutes registers all supplier routes
func (h *SupplierHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/suppliers", h.ListSuppliers).Methods("GET")
	router.HandleFunc("/api/suppliers", h.CreateSupplier).Methods("POST")
	router.HandleFunc("/api/suppliers/{id}", h.GetSupplier).Methods("GET")
	router.HandleFunc("/api/suppliers/{id}", h.UpdateSupplier).Methods("PUT")
	router.HandleFunc("/api/suppliers/{id}", h.DeleteSupplier).Methods("DELETE")
	router.HandleFunc("/api/suppliers/{id}/products", h.ListSupplierProducts).Methods("GET")
	router.HandleFunc("/api/suppliers/{id}/orders", h.ListSupplierOrders).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
