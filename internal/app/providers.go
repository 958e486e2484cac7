package app

import (
	notificationdomain "github.com/tair/supplychain-dashboard/internal/notification/domain"
	notificationrepo "github.com/tair/supplychain-dashboard/internal/notification/repository"
	orderdomain "github.com/tair/supplychain-dashboard/internal/order/domain"
	orderrepo "github.com/tair/supplychain-dashboard/internal/order/repository"
	productdomain "github.com/tair/supplychain-dashboard/internal/product/domain"
	productrepo "github.com/tair/supplychain-dashboard/internal/product/repository"
	supplierdomain "github.com/tair/supplychain-dashboard/internal/supplier/domain"
	supplierrepo "github.com/tair/supplychain-dashboard/internal/supplier/repository"
)

// ProvideSupplierRepository provides the in-memory supplier repository
func ProvideSupplierRepository() supplierdomain.SupplierRepository {
	return supplierrepo.NewMemorySupplierRepository()
}

// ProvideProductRepository provides the in-memory product repository
func ProvideProductRepository() productdomain.ProductRepository {
	return productrepo.NewMemoryProductRepository()
}

// ProvideOrderRepository provides the in-memory order repository
func ProvideOrderRepository() orderdomain.OrderRepository {
	return orderrepo.NewMemoryOrderRepository()
}

// ProvideNotificationRepository provides the in-memory notification repository
func ProvideNotificationRepository() notificationdomain.NotificationRepository {
	return notificationrepo.NewMemoryNotificationRepository()
}
