package query

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
)

// FacetCount is the number of products sharing one facet value.
type FacetCount struct {
	Value string
	Count int
}

// PriceRange spans the cheapest and the most expensive product.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// StockCount is the number of products in one stock status.
type StockCount struct {
	Status model.StockStatus
	Count  int
}

// FacetSummary describes the values a client can filter the collection by.
type FacetSummary struct {
	Categories  []FacetCount
	Series      []FacetCount
	Price       *PriceRange
	StockStatus []StockCount
	Total       int
}

// Facets summarizes products for building filter controls. Category and
// series values that differ only in case are counted together under the first
// spelling seen, matching the case-insensitive equality filters.
func Facets(products []model.Product) FacetSummary {
	categories := newFacetCounter()
	series := newFacetCounter()
	stock := make(map[model.StockStatus]int, len(model.StockStatuses()))

	var price *PriceRange
	for i := range products {
		p := &products[i]

		categories.add(p.Category)
		series.add(p.Series)
		stock[p.StockStatus]++

		if price == nil {
			price = &PriceRange{Min: p.Price, Max: p.Price}
			continue
		}
		if p.Price.LessThan(price.Min) {
			price.Min = p.Price
		}
		if p.Price.GreaterThan(price.Max) {
			price.Max = p.Price
		}
	}

	statuses := make([]StockCount, 0, len(stock))
	for _, status := range model.StockStatuses() {
		statuses = append(statuses, StockCount{Status: status, Count: stock[status]})
	}

	return FacetSummary{
		Categories:  categories.counts(),
		Series:      series.counts(),
		Price:       price,
		StockStatus: statuses,
		Total:       len(products),
	}
}

type facetCounter struct {
	index map[string]int
	items []FacetCount
}

func newFacetCounter() *facetCounter {
	return &facetCounter{index: make(map[string]int)}
}

func (c *facetCounter) add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}

	key := strings.ToLower(value)
	if i, ok := c.index[key]; ok {
		c.items[i].Count++
		return
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, FacetCount{Value: value, Count: 1})
}

func (c *facetCounter) counts() []FacetCount {
	items := slices.Clone(c.items)
	if items == nil {
		items = []FacetCount{}
	}
	slices.SortFunc(items, func(a, b FacetCount) int {
		return strings.Compare(strings.ToLower(a.Value), strings.ToLower(b.Value))
	})
	return items
}
