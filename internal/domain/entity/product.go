package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// Price es NUMERIC en la DB y decimal.Decimal en memoria: nunca float binario.
// Inventory en nil significa "sin seguimiento de inventario".
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Inventory   *int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
