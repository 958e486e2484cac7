package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	"github.com/tair/supplychain-dashboard/internal/report/usecase/query"
	"github.com/tair/supplychain-dashboard/pkg/logger"
)

// ReportHandler handles HTTP requests for derived reports. Every report is
// recomputed from the current store snapshot per call; nothing is cached.
type ReportHandler struct {
	supplierPerformance *query.SupplierPerformanceHandler
	productFrequency    *query.ProductFrequencyHandler
	statusDistribution  *query.StatusDistributionHandler
	monthlyTrends       *query.MonthlyTrendsHandler
	shipments           *query.ShipmentsHandler
	dashboard           *query.DashboardHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	supplierPerformance *query.SupplierPerformanceHandler,
	productFrequency *query.ProductFrequencyHandler,
	statusDistribution *query.StatusDistributionHandler,
	monthlyTrends *query.MonthlyTrendsHandler,
	shipments *query.ShipmentsHandler,
	dashboard *query.DashboardHandler,
) *ReportHandler {
	return &ReportHandler{
		supplierPerformance: supplierPerformance,
		productFrequency:    productFrequency,
		statusDistribution:  statusDistribution,
		monthlyTrends:       monthlyTrends,
		shipments:           shipments,
		dashboard:           dashboard,
	}
}

// Response is the uniform JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SupplierPerformance handles GET /api/reports/supplier-performance
func (h *ReportHandler) SupplierPerformance(w http.ResponseWriter, r *http.Request) {
	report, err := h.supplierPerformance.Handle(query.SupplierPerformanceQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute supplier performance report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute report"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// ProductFrequency handles GET /api/reports/product-frequency
func (h *ReportHandler) ProductFrequency(w http.ResponseWriter, r *http.Request) {
	report, err := h.productFrequency.Handle(query.ProductFrequencyQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute product frequency report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute report"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// StatusDistribution handles GET /api/reports/status-distribution
func (h *ReportHandler) StatusDistribution(w http.ResponseWriter, r *http.Request) {
	report, err := h.statusDistribution.Handle(query.StatusDistributionQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute status distribution report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute report"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// MonthlyTrends handles GET /api/reports/monthly-trends
func (h *ReportHandler) MonthlyTrends(w http.ResponseWriter, r *http.Request) {
	report, err := h.monthlyTrends.Handle(query.MonthlyTrendsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute monthly trends report")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute report"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// Shipments handles GET /api/reports/shipments with an optional status filter
func (h *ReportHandler) Shipments(w http.ResponseWriter, r *http.Request) {
	report, err := h.shipments.Handle(query.ShipmentsQuery{
		Status: orderdomain.Status(r.URL.Query().Get("status")),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute shipments view")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute report"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// Dashboard handles GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	report, err := h.dashboard.Handle(query.DashboardQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute dashboard summary")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to compute report"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: report})
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/supplier-performance", h.SupplierPerformance).Methods("GET")
	router.HandleFunc("/api/reports/product-frequency", h.ProductFrequency).Methods("GET")
	router.HandleFunc("/api/reports/status-distribution", h.StatusDistribution).Methods("GET")
	router.HandleFunc("/api/reports/monthly-trends", h.MonthlyTrends).Methods("GET")
	router.HandleFunc("/api/reports/shipments", h.Shipments).Methods("GET")
	router.HandleFunc("/api/reports/dashboard", h.Dashboard).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
