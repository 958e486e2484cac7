package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/supplychain-dashboard/internal/product/domain"
	"github.com/tair/supplychain-dashboard/internal/product/usecase/command"
	"github.com/tair/supplychain-dashboard/internal/product/usecase/query"
	"github.com/tair/supplychain-dashboard/pkg/events"
	"github.com/tair/supplychain-dashboard/pkg/logger"
)

// ProductHandler handles HTTP requests for the product catalog
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	getHandler      *query.GetProductHandler
	listHandler     *query.ListProductsHandler
	lowStockHandler *query.ListLowStockHandler

	lowStockGauge prometheus.Gauge
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository, bus *events.Bus) *ProductHandler {
	lowStockGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "supplychain_low_stock_products",
			Help: "Number of products at or below their minimum stock level",
		},
	)
	prometheus.MustRegister(lowStockGauge)

	return &ProductHandler{
		createHandler:   command.NewCreateProductHandler(repo, bus),
		updateHandler:   command.NewUpdateProductHandler(repo, bus),
		deleteHandler:   command.NewDeleteProductHandler(repo, bus),
		getHandler:      query.NewGetProductHandler(repo),
		listHandler:     query.NewListProductsHandler(repo),
		lowStockHandler: query.NewListLowStockHandler(repo),
		lowStockGauge:   lowStockGauge,
	}
}

// Response is the uniform JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type productRequest struct {
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	SupplierID    string  `json:"supplier_id"`
	MinStockLevel int     `json:"min_stock_level"`
	CurrentStock  int     `json:"current_stock"`
	UnitOfMeasure string  `json:"unit_of_measure"`
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		SupplierID:    req.SupplierID,
		MinStockLevel: req.MinStockLevel,
		CurrentStock:  req.CurrentStock,
		UnitOfMeasure: req.UnitOfMeasure,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updateLowStockMetric()
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// ListProducts handles GET /api/products. Passing low_stock=true narrows the
// catalog to products at or below their minimum stock level; supplier_id
// narrows to one supplier.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("low_stock") == "true" {
		products, err := h.lowStockHandler.Handle(query.ListLowStockQuery{})
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to list low-stock products")
			respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list low-stock products"})
			return
		}
		respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
		return
	}

	products, err := h.listHandler.Handle(query.ListProductsQuery{
		SupplierID: r.URL.Query().Get("supplier_id"),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list products"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.updateHandler.Handle(r.Context(), command.UpdateProductCommand{
		ID:            id,
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		SupplierID:    req.SupplierID,
		MinStockLevel: req.MinStockLevel,
		CurrentStock:  req.CurrentStock,
		UnitOfMeasure: req.UnitOfMeasure,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updateLowStockMetric()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.updateLowStockMetric()
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

func (h *ProductHandler) updateLowStockMetric() {
	lowStock, err := h.lowStockHandler.Handle(query.ListLowStockQuery{})
	if err != nil {
		return
	}
	h.lowStockGauge.Set(float64(len(lowStock)))
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products", h.CreateProduct).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.UpdateProduct).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.DeleteProduct).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
