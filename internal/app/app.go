package app

import (
	"github.com/gorilla/mux"

	notificationhttp "github.com/tair/supplychain-dashboard/internal/notification/delivery/http"
	notificationdomain "github.com/tair/supplychain-dashboard/internal/notification/domain"
	"github.com/tair/supplychain-dashboard/internal/notification/monitor"
	orderhttp "github.com/tair/supplychain-dashboard/internal/order/delivery/http"
	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	producthttp "github.com/tair/supplychain-dashboard/internal/product/delivery/http"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
	reporthttp "github.com/tair/supplychain-dashboard/internal/report/delivery/http"
	supplierhttp "github.com/tair/supplychain-dashboard/internal/supplier/delivery/http"
	supplierdomain "github.com/tair/supplychain-dashboard/internal/supplier/domain"
	"github.com/tair/supplychain-dashboard/pkg/events"
)

// App bundles the assembled dashboard: repositories, the event bus, the
// stock monitor and every HTTP handler
type App struct {
	Bus *events.Bus

	Suppliers     supplierdomain.SupplierRepository
	Products      productdomain.ProductRepository
	Orders        orderdomain.OrderRepository
	Notifications notificationdomain.NotificationRepository

	StockMonitor *monitor.StockMonitor

	SupplierHandler     *supplierhttp.SupplierHandler
	ProductHandler      *producthttp.ProductHandler
	OrderHandler        *orderhttp.OrderHandler
	NotificationHandler *notificationhttp.NotificationHandler
	ReportHandler       *reporthttp.ReportHandler
}

// NewApp wires the monitor into the event bus and assembles the application
func NewApp(
	bus *events.Bus,
	suppliers supplierdomain.SupplierRepository,
	products productdomain.ProductRepository,
	orders orderdomain.OrderRepository,
	notifications notificationdomain.NotificationRepository,
	stockMonitor *monitor.StockMonitor,
	supplierHandler *supplierhttp.SupplierHandler,
	productHandler *producthttp.ProductHandler,
	orderHandler *orderhttp.OrderHandler,
	notificationHandler *notificationhttp.NotificationHandler,
	reportHandler *reporthttp.ReportHandler,
) *App {
	stockMonitor.Register(bus)

	return &App{
		Bus:                 bus,
		Suppliers:           suppliers,
		Products:            products,
		Orders:              orders,
		Notifications:       notifications,
		StockMonitor:        stockMonitor,
		SupplierHandler:     supplierHandler,
		ProductHandler:      productHandler,
		OrderHandler:        orderHandler,
		NotificationHandler: notificationHandler,
		ReportHandler:       reportHandler,
	}
}

// RegisterRoutes registers every API route on the router
func (a *App) RegisterRoutes(router *mux.Router) {
	a.SupplierHandler.RegisterRoutes(router)
	a.ProductHandler.RegisterRoutes(router)
	a.OrderHandler.RegisterRoutes(router)
	a.NotificationHandler.RegisterRoutes(router)
	a.ReportHandler.RegisterRoutes(router)
}
