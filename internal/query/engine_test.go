package query_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/query"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/store"
)

func newProduct(id, title, price string) model.Product {
	return model.Product{
		ID:          id,
		Title:       title,
		ModelNumber: "MN-" + id,
		Price:       decimal.RequireFromString(price),
		Category:    "Compressors",
		Series:      "ZR",
		StockStatus: model.StockStatusInStock,
		Rating:      decimal.RequireFromString("4.0"),
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func defaultFilter() query.Filter {
	return query.Filter{
		SortBy: query.SortByName,
		Page:   1,
		Limit:  1000,
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func fixtures(t *testing.T) []model.Product {
	t.Helper()
	products, err := store.DefaultFixtures()
	require.NoError(t, err)
	return products
}

func TestApplyPricePaging(t *testing.T) {
	products := []model.Product{
		newProduct("a", "Alpha", "50.00"),
		newProduct("b", "Bravo", "100.00"),
		newProduct("c", "Charlie", "150.00"),
	}

	f := defaultFilter()
	f.SortBy = query.SortByPriceDesc
	f.Limit = 2

	got := query.Apply(products, f)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, []string{"c", "b"}, ids(got.Products))
}

func TestApplyEmptyMatch(t *testing.T) {
	f := defaultFilter()
	f.Category = "Valves"
	f.Search = "scroll"

	got := query.Apply(fixtures(t), f)

	assert.Equal(t, 0, got.Total)
	assert.NotNil(t, got.Products)
	assert.Empty(t, got.Products)
}

func TestApplyPageOutOfRange(t *testing.T) {
	products := make([]model.Product, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		products = append(products, newProduct(id, id, "10.00"))
	}

	f := defaultFilter()
	f.Page = 99
	f.Limit = 10

	got := query.Apply(products, f)

	assert.Equal(t, 5, got.Total)
	assert.Empty(t, got.Products)
}

func TestApplyPageLength(t *testing.T) {
	products := fixtures(t)

	for _, limit := range []int{1, 3, 5, 7, 12, 50} {
		for page := 1; page <= 14; page++ {
			f := defaultFilter()
			f.Page = page
			f.Limit = limit

			got := query.Apply(products, f)

			want := max(0, min(limit, got.Total-(page-1)*limit))
			assert.Len(t, got.Products, want, "page=%d limit=%d", page, limit)
			assert.Equal(t, len(products), got.Total)
		}
	}
}

func TestApplyTotalIgnoresPaging(t *testing.T) {
	products := fixtures(t)

	base := defaultFilter()
	base.Category = "Compressors"
	want := query.Apply(products, base).Total

	for _, sortBy := range []query.SortBy{query.SortByName, query.SortByPriceAsc, query.SortByRating, query.SortByNewest} {
		f := base
		f.SortBy = sortBy
		f.Page = 2
		f.Limit = 1
		assert.Equal(t, want, query.Apply(products, f).Total, string(sortBy))
	}
}

func TestApplyPagesPartitionResult(t *testing.T) {
	products := fixtures(t)

	all := query.Apply(products, defaultFilter())

	var paged []string
	for page := 1; page <= 3; page++ {
		f := defaultFilter()
		f.Page = page
		f.Limit = 5
		paged = append(paged, ids(query.Apply(products, f).Products)...)
	}

	assert.Equal(t, ids(all.Products), paged)
}

func TestApplySort(t *testing.T) {
	products := []model.Product{
		newProduct("p1", "delta unit", "30.00"),
		newProduct("p2", "Alpha unit", "10.00"),
		newProduct("p3", "charlie unit", "20.00"),
		newProduct("p4", "Bravo unit", "20.00"),
	}
	products[0].Rating = decimal.RequireFromString("4.9")
	products[1].Rating = decimal.RequireFromString("3.1")
	products[2].Rating = decimal.RequireFromString("4.9")
	products[3].Rating = decimal.RequireFromString("4.2")
	products[0].CreatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	products[1].CreatedAt = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	products[2].CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products[3].CreatedAt = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		sortBy query.SortBy
		want   []string
	}{
		{name: "name ignores case", sortBy: query.SortByName, want: []string{"p2", "p4", "p3", "p1"}},
		{name: "price ascending ties on id", sortBy: query.SortByPriceAsc, want: []string{"p2", "p3", "p4", "p1"}},
		{name: "price descending ties on id", sortBy: query.SortByPriceDesc, want: []string{"p1", "p3", "p4", "p2"}},
		{name: "rating descending ties on id", sortBy: query.SortByRating, want: []string{"p1", "p3", "p4", "p2"}},
		{name: "newest first", sortBy: query.SortByNewest, want: []string{"p2", "p4", "p1", "p3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := defaultFilter()
			f.SortBy = tc.sortBy

			got := query.Apply(products, f)

			assert.Equal(t, tc.want, ids(got.Products))
		})
	}
}

func TestApplyFilters(t *testing.T) {
	products := fixtures(t)

	t.Run("Should match search across fields ignoring case", func(t *testing.T) {
		f := defaultFilter()
		f.Search = "  SCROLL "

		got := query.Apply(products, f)

		assert.ElementsMatch(t, []string{"copeland-zr34k5e", "copeland-zs21kae"}, ids(got.Products))
	})

	t.Run("Should match search on model number", func(t *testing.T) {
		f := defaultFilter()
		f.Search = "068z3209"

		got := query.Apply(products, f)

		assert.Equal(t, []string{"danfoss-tx2-068z3209"}, ids(got.Products))
	})

	t.Run("Should match category ignoring case", func(t *testing.T) {
		upper := defaultFilter()
		upper.Category = "VALVES"
		exact := defaultFilter()
		exact.Category = "Valves"

		assert.Equal(t, query.Apply(products, exact), query.Apply(products, upper))
		assert.Equal(t, 3, query.Apply(products, exact).Total)
	})

	t.Run("Should match series exactly", func(t *testing.T) {
		f := defaultFilter()
		f.Series = "zr scroll"

		got := query.Apply(products, f)

		assert.Equal(t, []string{"copeland-zr34k5e"}, ids(got.Products))
	})

	t.Run("Should include price bounds", func(t *testing.T) {
		f := defaultFilter()
		f.PriceMin = decimal.NewNullDecimal(decimal.RequireFromString("86.40"))
		f.PriceMax = decimal.NewNullDecimal(decimal.RequireFromString("142.75"))
		f.SortBy = query.SortByPriceAsc

		got := query.Apply(products, f)

		assert.Equal(t, []string{"danfoss-tx2-068z3209", "ranco-etc-111000", "sporlan-bbiz-5-c"}, ids(got.Products))
	})

	t.Run("Should return nothing when min exceeds max", func(t *testing.T) {
		f := defaultFilter()
		f.PriceMin = decimal.NewNullDecimal(decimal.RequireFromString("500"))
		f.PriceMax = decimal.NewNullDecimal(decimal.RequireFromString("100"))

		got := query.Apply(products, f)

		assert.Equal(t, 0, got.Total)
	})

	t.Run("Should filter by stock status", func(t *testing.T) {
		f := defaultFilter()
		f.StockStatus = model.StockStatusOutOfStock

		got := query.Apply(products, f)

		assert.ElementsMatch(t, []string{"sporlan-bbiz-5-c", "ranco-etc-111000"}, ids(got.Products))
	})

	t.Run("Should apply rating floor inclusively", func(t *testing.T) {
		f := defaultFilter()
		f.Rating = decimal.NewNullDecimal(decimal.RequireFromString("4.8"))

		got := query.Apply(products, f)

		assert.ElementsMatch(t, []string{"danfoss-tx2-068z3209", "mitsubishi-puz-a36"}, ids(got.Products))
		for _, p := range got.Products {
			assert.True(t, p.Rating.GreaterThanOrEqual(f.Rating.Decimal))
		}
	})
}

func TestApplyAddingConstraintNeverGrows(t *testing.T) {
	products := fixtures(t)

	base := defaultFilter()
	base.Search = "copeland"
	baseTotal := query.Apply(products, base).Total

	narrowed := []func(f *query.Filter){
		func(f *query.Filter) { f.Category = "Compressors" },
		func(f *query.Filter) { f.StockStatus = model.StockStatusInStock },
		func(f *query.Filter) { f.Rating = decimal.NewNullDecimal(decimal.RequireFromString("4.6")) },
		func(f *query.Filter) { f.PriceMax = decimal.NewNullDecimal(decimal.RequireFromString("2000")) },
	}

	for _, narrow := range narrowed {
		f := base
		narrow(&f)
		assert.LessOrEqual(t, query.Apply(products, f).Total, baseTotal)
	}
}

func TestApplyIsRepeatable(t *testing.T) {
	products := fixtures(t)
	before := ids(products)

	f := defaultFilter()
	f.SortBy = query.SortByRating

	first := query.Apply(products, f)
	second := query.Apply(products, f)

	assert.Equal(t, first, second)
	assert.Equal(t, before, ids(products))
}
