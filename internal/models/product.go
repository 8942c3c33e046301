package models

// Product is the DB row for an egg variety. Stock is tracked in whole trays
// plus loose eggs and may go negative.
type Product struct {
	ProductID            string `db:"product_id"`
	Name                 string `db:"name"`
	CurrentStockQtyTrays int    `db:"current_stock_qty_trays"`
	CurrentStockQtyLoose int    `db:"current_stock_qty_loose"`
	AuditFields
}
