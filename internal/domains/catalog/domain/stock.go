package domain

import "strconv"

// StockStatus is the storefront label derived from quantity on hand.
type StockStatus string

const (
	StockOut StockStatus = "OUT_OF_STOCK"
	StockLow StockStatus = "LOW_STOCK"
	StockIn  StockStatus = "IN_STOCK"
)

// SettingLowStockThreshold is the settings key holding the low-stock boundary.
const SettingLowStockThreshold = "low_stock_threshold"

// DefaultLowStockThreshold applies when the setting is absent or unusable.
const DefaultLowStockThreshold = 10

// StatusFor classifies a quantity against a threshold:
// quantity <= 0 is OUT_OF_STOCK, 0 < quantity <= threshold is LOW_STOCK,
// everything above is IN_STOCK.
func StatusFor(quantity int64, threshold int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= int64(threshold):
		return StockLow
	default:
		return StockIn
	}
}

// ResolveThreshold parses the raw setting value. Empty, non-numeric, and
// non-positive values all fall back to the default so a corrupted setting
// never breaks stock labeling.
func ResolveThreshold(raw string) int {
	threshold, err := strconv.Atoi(raw)
	if err != nil || threshold <= 0 {
		return DefaultLowStockThreshold
	}
	return threshold
}
