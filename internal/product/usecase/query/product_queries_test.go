package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/supplychain-dashboard/internal/product/domain"
	"github.com/tair/supplychain-dashboard/internal/product/repository"
)

func seedProducts(t *testing.T) *repository.MemoryProductRepository {
	t.Helper()
	repo := repository.NewMemoryProductRepository()
	for _, p := range []*domain.Product{
		{Name: "Microchip A1", SKU: "MC-A1-001", Price: 12.99, SupplierID: "s1", MinStockLevel: 50, CurrentStock: 75, UnitOfMeasure: "piece"},
		{Name: "Aluminum Sheet", SKU: "AL-SH-002", Price: 45.50, SupplierID: "s2", MinStockLevel: 20, CurrentStock: 15, UnitOfMeasure: "sheet"},
		{Name: "Circuit Board X3", SKU: "CB-X3-006", Price: 28.50, SupplierID: "s1", MinStockLevel: 25, CurrentStock: 18, UnitOfMeasure: "piece"},
	} {
		require.NoError(t, repo.Create(p))
	}
	return repo
}

func TestListProducts(t *testing.T) {
	handler := NewListProductsHandler(seedProducts(t))

	all, err := handler.Handle(ListProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	bySupplier, err := handler.Handle(ListProductsQuery{SupplierID: "s1"})
	require.NoError(t, err)
	require.Len(t, bySupplier, 2)
	assert.Equal(t, "Microchip A1", bySupplier[0].Name)
	assert.Equal(t, "Circuit Board X3", bySupplier[1].Name)
}

func TestListLowStockDerivesFreshSet(t *testing.T) {
	repo := seedProducts(t)
	handler := NewListLowStockHandler(repo)

	low, err := handler.Handle(ListLowStockQuery{})
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Aluminum Sheet", low[0].Name)
	assert.Equal(t, "Circuit Board X3", low[1].Name)

	// Restocking one product shrinks the set on the next call
	sheet, err := repo.FindBySKU("AL-SH-002")
	require.NoError(t, err)
	sheet.CurrentStock = 50
	require.NoError(t, repo.Update(sheet))

	low, err = handler.Handle(ListLowStockQuery{})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Circuit Board X3", low[0].Name)
}

func TestGetProduct(t *testing.T) {
	repo := seedProducts(t)
	chip, err := repo.FindBySKU("MC-A1-001")
	require.NoError(t, err)

	handler := NewGetProductHandler(repo)
	found, err := handler.Handle(GetProductQuery{ID: chip.ID})
	require.NoError(t, err)
	assert.Equal(t, "Microchip A1", found.Name)

	_, err = handler.Handle(GetProductQuery{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
