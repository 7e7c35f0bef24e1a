package query_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/query"
	pkgvalidator "github.com/tuanvumaihuynh/hvac-catalog/pkg/validator"
)

func newParser(t *testing.T) *query.Parser {
	t.Helper()
	v, err := pkgvalidator.NewDefaultValidator()
	require.NoError(t, err)
	return query.NewParser(v, 50)
}

func TestParserDefaults(t *testing.T) {
	f, err := newParser(t).Parse(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, query.Filter{
		SortBy: query.SortByName,
		Page:   1,
		Limit:  50,
	}, f)
}

func TestParserReadsEveryField(t *testing.T) {
	values, err := url.ParseQuery("search=+scroll+&category=Valves&series=TX2&priceMin=10.5&priceMax=200" +
		"&stockStatus=in_stock&rating=4&sortBy=price_desc&page=2&limit=10")
	require.NoError(t, err)

	f, err := newParser(t).Parse(values)
	require.NoError(t, err)

	assert.Equal(t, "scroll", f.Search)
	assert.Equal(t, "Valves", f.Category)
	assert.Equal(t, "TX2", f.Series)
	require.True(t, f.PriceMin.Valid)
	assert.True(t, decimal.RequireFromString("10.5").Equal(f.PriceMin.Decimal))
	require.True(t, f.PriceMax.Valid)
	assert.True(t, decimal.RequireFromString("200").Equal(f.PriceMax.Decimal))
	assert.Equal(t, model.StockStatusInStock, f.StockStatus)
	require.True(t, f.Rating.Valid)
	assert.True(t, decimal.RequireFromString("4").Equal(f.Rating.Decimal))
	assert.Equal(t, query.SortByPriceDesc, f.SortBy)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 10, f.Limit)
}

func TestParserDropsMalformedNumbers(t *testing.T) {
	values := url.Values{
		"priceMin": {"cheap"},
		"priceMax": {"1,000"},
		"rating":   {""},
		"page":     {"two"},
		"limit":    {"1e3"},
	}

	f, err := newParser(t).Parse(values)
	require.NoError(t, err)

	assert.False(t, f.PriceMin.Valid)
	assert.False(t, f.PriceMax.Valid)
	assert.False(t, f.Rating.Valid)
	assert.Equal(t, query.DefaultPage, f.Page)
	assert.Equal(t, 50, f.Limit)
}

func TestParserRejects(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		field string
	}{
		{name: "unknown stock status", query: "stockStatus=discontinued", field: "stockStatus"},
		{name: "unknown sort", query: "sortBy=popularity", field: "sortBy"},
		{name: "page below one", query: "page=0", field: "page"},
		{name: "negative limit", query: "limit=-5", field: "limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			require.NoError(t, err)

			_, err = newParser(t).Parse(values)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.InvalidFilterErr)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field())
		})
	}
}

func TestNewParserFallsBackToDefaultLimit(t *testing.T) {
	v, err := pkgvalidator.NewDefaultValidator()
	require.NoError(t, err)

	f, err := query.NewParser(v, 0).Parse(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, query.DefaultLimit, f.Limit)
}
