package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-2025-001", FormatOrderNumber(2025, 1))
	assert.Equal(t, "ORD-2025-042", FormatOrderNumber(2025, 42))
	assert.Equal(t, "ORD-2026-100", FormatOrderNumber(2026, 100))
	// Sequences past three digits keep growing instead of wrapping
	assert.Equal(t, "ORD-2025-1000", FormatOrderNumber(2025, 1000))
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusShipped, true},
		{StatusConfirmed, StatusDelivered, false},
		{StatusConfirmed, StatusCancelled, true},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusConfirmed, false},
		{StatusShipped, StatusCancelled, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestRecalculateTotals(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{ProductID: "p1", Quantity: 30, UnitPrice: 45.50},
			{ProductID: "p2", Quantity: 50, UnitPrice: 8.75},
		},
	}
	order.RecalculateTotals()

	assert.Equal(t, 1365.0, order.Items[0].TotalPrice)
	assert.Equal(t, 437.5, order.Items[1].TotalPrice)
	assert.Equal(t, 1802.5, order.TotalAmount)
}

func TestRecalculateTotalsOverwritesStaleLineTotals(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 10, TotalPrice: 999},
		},
		TotalAmount: 999,
	}
	order.RecalculateTotals()

	assert.Equal(t, 20.0, order.Items[0].TotalPrice)
	assert.Equal(t, 20.0, order.TotalAmount)
}

func TestRecalculateTotalsEmptyOrder(t *testing.T) {
	order := Order{TotalAmount: 50}
	order.RecalculateTotals()
	assert.Equal(t, 0.0, order.TotalAmount)
}

func TestDaysRemainingIgnoresTimeOfDay(t *testing.T) {
	// Late evening today vs early morning tomorrow is still one whole day
	today := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)
	order := Order{
		ExpectedDeliveryDate: time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 1, order.DaysRemaining(today))

	order.ExpectedDeliveryDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, order.DaysRemaining(today))

	order.ExpectedDeliveryDate = time.Date(2025, 6, 7, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, -3, order.DaysRemaining(today))
}

func TestDaysRemainingAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring forward on 2026-03-08 makes the local span 47h; the count
	// must still be two calendar days
	today := time.Date(2026, 3, 7, 9, 0, 0, 0, loc)
	order := Order{
		ExpectedDeliveryDate: time.Date(2026, 3, 9, 9, 0, 0, 0, loc),
	}
	assert.Equal(t, 2, order.DaysRemaining(today))

	// Fall back on 2026-11-01 makes the span 49h
	today = time.Date(2026, 10, 31, 9, 0, 0, 0, loc)
	order.ExpectedDeliveryDate = time.Date(2026, 11, 2, 9, 0, 0, 0, loc)
	assert.Equal(t, 2, order.DaysRemaining(today))
}

func TestDeliveredOnTime(t *testing.T) {
	expected := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Delivered late in the day it was due still counts as on time
	sameDay := time.Date(2025, 6, 10, 22, 0, 0, 0, time.UTC)
	order := Order{
		Status:               StatusDelivered,
		ExpectedDeliveryDate: expected,
		ActualDeliveryDate:   &sameDay,
	}
	assert.True(t, order.DeliveredOnTime())

	early := expected.AddDate(0, 0, -2)
	order.ActualDeliveryDate = &early
	assert.True(t, order.DeliveredOnTime())

	late := expected.AddDate(0, 0, 1)
	order.ActualDeliveryDate = &late
	assert.False(t, order.DeliveredOnTime())

	// Non-delivered orders are never on time, whatever the dates say
	order.ActualDeliveryDate = &early
	order.Status = StatusShipped
	assert.False(t, order.DeliveredOnTime())

	order.Status = StatusDelivered
	order.ActualDeliveryDate = nil
	assert.False(t, order.DeliveredOnTime())
}

func TestInTransit(t *testing.T) {
	for _, tc := range []struct {
		status    Status
		inTransit bool
	}{
		{StatusPending, false},
		{StatusConfirmed, true},
		{StatusShipped, true},
		{StatusDelivered, false},
		{StatusCancelled, false},
	} {
		order := Order{Status: tc.status}
		assert.Equal(t, tc.inTransit, order.InTransit(), "status %s", tc.status)
	}
}
