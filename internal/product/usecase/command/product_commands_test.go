package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/supplychain-dashboard/internal/product/repository"
	"github.com/tair/supplychain-dashboard/pkg/events"
)

func validProductCommand() CreateProductCommand {
	return CreateProductCommand{
		Name:          "Aluminum Sheet",
		SKU:           "AL-SH-002",
		Description:   "Industrial grade aluminum sheet, 2mm thickness",
		Price:         45.50,
		Category:      "Raw Materials",
		SupplierID:    "s2",
		MinStockLevel: 20,
		CurrentStock:  15,
		UnitOfMeasure: "sheet",
	}
}

func TestCreateProduct(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	bus := events.NewBus()

	var changed int
	bus.Subscribe(events.EventTypeProductChanged, func(ctx context.Context, event interface{}) {
		changed++
	})

	handler := NewCreateProductHandler(repo, bus)
	product, err := handler.Handle(context.Background(), validProductCommand())
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.True(t, product.IsLowStock())
	assert.Equal(t, 1, changed, "creation must announce a product change")
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	handler := NewCreateProductHandler(repo, events.NewBus())

	_, err := handler.Handle(context.Background(), validProductCommand())
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), validProductCommand())
	assert.ErrorContains(t, err, "SKU already exists")
}

func TestCreateProductValidation(t *testing.T) {
	handler := NewCreateProductHandler(repository.NewMemoryProductRepository(), events.NewBus())

	cases := []struct {
		name   string
		mutate func(*CreateProductCommand)
	}{
		{"missing name", func(c *CreateProductCommand) { c.Name = "" }},
		{"missing sku", func(c *CreateProductCommand) { c.SKU = "" }},
		{"negative price", func(c *CreateProductCommand) { c.Price = -1 }},
		{"negative min stock", func(c *CreateProductCommand) { c.MinStockLevel = -1 }},
		{"negative stock", func(c *CreateProductCommand) { c.CurrentStock = -1 }},
		{"unknown unit", func(c *CreateProductCommand) { c.UnitOfMeasure = "pallet" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validProductCommand()
			tc.mutate(&cmd)
			_, err := handler.Handle(context.Background(), cmd)
			assert.Error(t, err)
		})
	}
}

func TestUpdateProductPublishesChange(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	bus := events.NewBus()

	created, err := NewCreateProductHandler(repo, bus).Handle(context.Background(), validProductCommand())
	require.NoError(t, err)

	var changed int
	bus.Subscribe(events.EventTypeProductChanged, func(ctx context.Context, event interface{}) {
		changed++
	})

	handler := NewUpdateProductHandler(repo, bus)
	updated, err := handler.Handle(context.Background(), UpdateProductCommand{
		ID:            created.ID,
		Name:          created.Name,
		SKU:           created.SKU,
		Price:         created.Price,
		SupplierID:    created.SupplierID,
		MinStockLevel: created.MinStockLevel,
		CurrentStock:  60,
		UnitOfMeasure: created.UnitOfMeasure,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsLowStock())
	assert.Equal(t, 1, changed)

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, found.CurrentStock)
}

func TestDeleteProduct(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	bus := events.NewBus()
	created, err := NewCreateProductHandler(repo, bus).Handle(context.Background(), validProductCommand())
	require.NoError(t, err)

	handler := NewDeleteProductHandler(repo, bus)
	require.NoError(t, handler.Handle(context.Background(), DeleteProductCommand{ID: created.ID}))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	// Unknown ids are a silent no-op
	assert.NoError(t, handler.Handle(context.Background(), DeleteProductCommand{ID: created.ID}))
}
