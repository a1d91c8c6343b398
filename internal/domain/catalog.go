package domain

import "github.com/shopspring/decimal"

// ItemRef is what a client sends to identify an item and variant on an order line.
type ItemRef struct {
	ItemID   uint
	ItemName string
	Variant  string
}

// CatalogEntry is the authoritative price of an available item variant.
type CatalogEntry struct {
	ItemID    uint
	ItemName  string
	Variant   string
	UnitPrice decimal.Decimal
}
