package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validOrder() *Order {
	return &Order{
		CustomerName:  "Mai Tran",
		CustomerPhone: "0901234567",
		Status:        StatusPending,
		Lines: []Line{
			{VariantID: 1, SKU: "HB-250", Quantity: 3, UnitPrice: 12},
			{VariantID: 2, SKU: "HB-500", Quantity: 1, UnitPrice: 20},
		},
	}
}

func TestOrderValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validOrder().Validate())
	})
	t.Run("missing name", func(t *testing.T) {
		order := validOrder()
		order.CustomerName = "  "
		require.ErrorIs(t, order.Validate(), ErrMissingCustomerName)
	})
	t.Run("missing phone", func(t *testing.T) {
		order := validOrder()
		order.CustomerPhone = ""
		require.ErrorIs(t, order.Validate(), ErrMissingCustomerPhone)
	})
	t.Run("no items", func(t *testing.T) {
		order := validOrder()
		order.Lines = nil
		require.ErrorIs(t, order.Validate(), ErrNoItems)
	})
	t.Run("zero quantity", func(t *testing.T) {
		order := validOrder()
		order.Lines[0].Quantity = 0
		require.ErrorIs(t, order.Validate(), ErrInvalidQuantity)
	})
	t.Run("unknown status", func(t *testing.T) {
		order := validOrder()
		order.Status = "SHIPPED_MAYBE"
		require.ErrorIs(t, order.Validate(), ErrInvalidStatus)
	})
}

func TestComputeTotal(t *testing.T) {
	order := validOrder()
	require.Equal(t, 56.0, order.ComputeTotal())
	require.Equal(t, 56.0, order.Total)
}

func TestUpdateStatus(t *testing.T) {
	order := validOrder()
	require.NoError(t, order.UpdateStatus(""))
	require.Equal(t, StatusPending, order.Status)
	require.NoError(t, order.UpdateStatus(StatusProcessing))
	require.ErrorIs(t, order.UpdateStatus("LOST"), ErrInvalidStatus)
}
