//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	notificationhttp "github.com/tair/supplychain-dashboard/internal/notification/delivery/http"
	"github.com/tair/supplychain-dashboard/internal/notification/monitor"
	orderhttp "github.com/tair/supplychain-dashboard/internal/order/delivery/http"
	orderquery "github.com/tair/supplychain-dashboard/internal/order/usecase/query"
	producthttp "github.com/tair/supplychain-dashboard/internal/product/delivery/http"
	productquery "github.com/tair/supplychain-dashboard/internal/product/usecase/query"
	reporthttp "github.com/tair/supplychain-dashboard/internal/report/delivery/http"
	reportquery "github.com/tair/supplychain-dashboard/internal/report/usecase/query"
	supplierhttp "github.com/tair/supplychain-dashboard/internal/supplier/delivery/http"
	"github.com/tair/supplychain-dashboard/pkg/events"
)

// InitializeApp creates the fully wired application
func InitializeApp() (*App, error) {
	wire.Build(
		events.NewBus,
		ProvideSupplierRepository,
		ProvideProductRepository,
		ProvideOrderRepository,
		ProvideNotificationRepository,
		monitor.NewStockMonitor,
		productquery.NewListProductsHandler,
		orderquery.NewListOrdersHandler,
		reportquery.NewSupplierPerformanceHandler,
		reportquery.NewProductFrequencyHandler,
		reportquery.NewStatusDistributionHandler,
		reportquery.NewMonthlyTrendsHandler,
		reportquery.NewShipmentsHandler,
		reportquery.NewDashboardHandler,
		supplierhttp.NewSupplierHandler,
		producthttp.NewProductHandler,
		orderhttp.NewOrderHandler,
		notificationhttp.NewNotificationHandler,
		reporthttp.NewReportHandler,
		NewApp,
	)
	return &App{}, nil
}
