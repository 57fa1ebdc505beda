package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int64
		threshold int
		want      StockStatus
	}{
		{"negative quantity", -3, 10, StockOut},
		{"zero quantity", 0, 10, StockOut},
		{"one unit under low threshold", 1, 10, StockLow},
		{"exactly at threshold", 10, 10, StockLow},
		{"just above threshold", 11, 10, StockIn},
		{"well stocked", 500, 10, StockIn},
		{"threshold one treats single unit as low", 1, 1, StockLow},
		{"threshold one with two units", 2, 1, StockIn},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, StatusFor(tc.quantity, tc.threshold))
		})
	}
}

func TestResolveThreshold(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"valid value", "25", 25},
		{"empty falls back", "", DefaultLowStockThreshold},
		{"non-numeric falls back", "plenty", DefaultLowStockThreshold},
		{"zero falls back", "0", DefaultLowStockThreshold},
		{"negative falls back", "-4", DefaultLowStockThreshold},
		{"decimal falls back", "7.5", DefaultLowStockThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ResolveThreshold(tc.raw))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	product := &Product{ID: 1, Name: "House Blend", BasePrice: 12}
	priced := &Variant{ID: 1, ProductID: 1, SKU: "HB-250", Price: 14}
	unpriced := &Variant{ID: 2, ProductID: 1, SKU: "HB-500"}

	require.Equal(t, 14.0, priced.EffectivePrice(product))
	require.Equal(t, 12.0, unpriced.EffectivePrice(product))
	require.Equal(t, 0.0, unpriced.EffectivePrice(nil))
}
