package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/supplychain-dashboard/internal/supplier/domain"
	"github.com/tair/supplychain-dashboard/internal/supplier/repository"
)

func seedSuppliers(t *testing.T) *repository.MemorySupplierRepository {
	t.Helper()
	repo := repository.NewMemorySupplierRepository()
	for _, s := range []*domain.Supplier{
		{Name: "TechComponents Inc.", ContactPerson: "John Smith", Email: "john@techcomponents.com", LeadTime: 3, Reliability: 4, Active: true},
		{Name: "Global Materials Ltd.", ContactPerson: "Sarah Johnson", Email: "sarah@globalmaterials.com", LeadTime: 5, Reliability: 5, Active: true},
		{Name: "EcoPackage Solutions", ContactPerson: "David Lee", Email: "david@ecopackage.com", LeadTime: 3, Reliability: 4, Active: false},
	} {
		require.NoError(t, repo.Create(s))
	}
	return repo
}

func TestListSuppliers(t *testing.T) {
	handler := NewListSuppliersHandler(seedSuppliers(t))

	all, err := handler.Handle(ListSuppliersQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "TechComponents Inc.", all[0].Name)

	active, err := handler.Handle(ListSuppliersQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, s := range active {
		assert.True(t, s.Active)
	}
}

func TestGetSupplier(t *testing.T) {
	repo := seedSuppliers(t)
	suppliers, err := repo.FindAll()
	require.NoError(t, err)

	handler := NewGetSupplierHandler(repo)
	found, err := handler.Handle(GetSupplierQuery{ID: suppliers[1].ID})
	require.NoError(t, err)
	assert.Equal(t, "Global Materials Ltd.", found.Name)

	_, err = handler.Handle(GetSupplierQuery{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
