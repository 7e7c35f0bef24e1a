package query_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/query"
)

func TestFacets(t *testing.T) {
	t.Run("Should summarize fixtures", func(t *testing.T) {
		got := query.Facets(fixtures(t))

		assert.Equal(t, 12, got.Total)
		assert.Equal(t, []query.FacetCount{
			{Value: "Compressors", Count: 3},
			{Value: "Condensing Units", Count: 2},
			{Value: "Controls", Count: 2},
			{Value: "Evaporators", Count: 2},
			{Value: "Valves", Count: 3},
		}, got.Categories)
		assert.Len(t, got.Series, 12)

		require.NotNil(t, got.Price)
		assert.True(t, decimal.RequireFromString("58.90").Equal(got.Price.Min))
		assert.True(t, decimal.RequireFromString("4210.00").Equal(got.Price.Max))

		assert.Equal(t, []query.StockCount{
			{Status: model.StockStatusInStock, Count: 6},
			{Status: model.StockStatusLowStock, Count: 2},
			{Status: model.StockStatusOutOfStock, Count: 2},
			{Status: model.StockStatusOnOrder, Count: 2},
		}, got.StockStatus)
	})

	t.Run("Should group values differing in case", func(t *testing.T) {
		products := []model.Product{
			newProduct("a", "A", "1"),
			newProduct("b", "B", "2"),
		}
		products[1].Category = "COMPRESSORS"

		got := query.Facets(products)

		assert.Equal(t, []query.FacetCount{{Value: "Compressors", Count: 2}}, got.Categories)
	})

	t.Run("Should handle an empty collection", func(t *testing.T) {
		got := query.Facets(nil)

		assert.Equal(t, 0, got.Total)
		assert.Nil(t, got.Price)
		assert.Empty(t, got.Categories)
		assert.Len(t, got.StockStatus, 4)
	})
}
