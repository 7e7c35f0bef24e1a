package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus is the availability of a product.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusOnOrder    StockStatus = "on_order"
)

var ErrInvalidStockStatus = errors.New("invalid stock status")

// StockStatuses lists every stock status in display order.
func StockStatuses() []StockStatus {
	return []StockStatus{
		StockStatusInStock,
		StockStatusLowStock,
		StockStatusOutOfStock,
		StockStatusOnOrder,
	}
}

func (s StockStatus) Validate() error {
	switch s {
	case StockStatusInStock, StockStatusLowStock, StockStatusOutOfStock, StockStatusOnOrder:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStockStatus, string(s))
	}
}

type Product struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	ModelNumber    string              `json:"modelNumber"`
	Image          string              `json:"image"`
	Price          decimal.Decimal     `json:"price"`
	OriginalPrice  decimal.NullDecimal `json:"originalPrice"`
	Category       string              `json:"category"`
	Series         string              `json:"series"`
	StockStatus    StockStatus         `json:"stockStatus"`
	Rating         decimal.Decimal     `json:"rating"`
	ReviewCount    int                 `json:"reviewCount"`
	Specifications Document            `json:"specifications"`
	Description    *string             `json:"description"`
	Tags           Document            `json:"tags"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
