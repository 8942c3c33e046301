package domain

// EggsPerTray is the fixed tray conversion used throughout the system.
const EggsPerTray = 30

// Product is an egg variety tracked in trays and loose eggs.
//
// Stock quantities are allowed to go negative: a sale is never blocked on a
// stale stock count. Callers are told about negative stock via posting
// warnings instead.
type Product struct {
	ProductID            string `json:"productID"`
	Name                 string `json:"name"`
	CurrentStockQtyTrays int    `json:"currentStockQtyTrays"`
	CurrentStockQtyLoose int    `json:"currentStockQtyLoose"`
	AuditFields
}

// StockLevel is a point-in-time tray/loose quantity pair for one product.
type StockLevel struct {
	Trays int
	Loose int
}

// IsNegative reports whether either unit has gone below zero.
func (s StockLevel) IsNegative() bool {
	return s.Trays < 0 || s.Loose < 0
}
