// Package query narrows, orders and pages the in-memory product collection.
package query

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
)

// SortBy selects the total ordering applied after filtering.
type SortBy string

const (
	SortByName      SortBy = "name"
	SortByPriceAsc  SortBy = "price_asc"
	SortByPriceDesc SortBy = "price_desc"
	SortByRating    SortBy = "rating"
	SortByNewest    SortBy = "newest"
)

var ErrInvalidSortBy = errors.New("invalid sort")

func (s SortBy) Validate() error {
	switch s {
	case SortByName, SortByPriceAsc, SortByPriceDesc, SortByRating, SortByNewest:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSortBy, string(s))
	}
}

// Filter is a validated search, filter, sort and page specification. Empty
// strings and invalid NullDecimals mean "no constraint" on that dimension.
type Filter struct {
	Search      string              `json:"search"`
	Category    string              `json:"category"`
	Series      string              `json:"series"`
	PriceMin    decimal.NullDecimal `json:"priceMin"`
	PriceMax    decimal.NullDecimal `json:"priceMax"`
	StockStatus model.StockStatus   `json:"stockStatus" validate:"omitempty,enum"`
	Rating      decimal.NullDecimal `json:"rating"`
	SortBy      SortBy              `json:"sortBy" validate:"enum"`
	Page        int                 `json:"page" validate:"gte=1"`
	Limit       int                 `json:"limit" validate:"gte=1"`
}

// Result is one page of matching products plus the count of all matches.
type Result struct {
	Products []model.Product
	Total    int
}
