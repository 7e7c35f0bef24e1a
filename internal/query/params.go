package query

import (
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/validator"
)

const (
	DefaultPage  = 1
	DefaultLimit = 1000
)

// Query parameter names accepted by Parse.
const (
	ParamSearch      = "search"
	ParamCategory    = "category"
	ParamSeries      = "series"
	ParamPriceMin    = "priceMin"
	ParamPriceMax    = "priceMax"
	ParamStockStatus = "stockStatus"
	ParamRating      = "rating"
	ParamSortBy      = "sortBy"
	ParamPage        = "page"
	ParamLimit       = "limit"
)

// Parser turns raw query parameters into a validated Filter.
type Parser struct {
	validator    validator.Validator
	defaultLimit int
}

func NewParser(v validator.Validator, defaultLimit int) *Parser {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	return &Parser{
		validator:    v,
		defaultLimit: defaultLimit,
	}
}

// Parse normalizes values into a Filter. Numeric parameters that are present
// but do not parse are dropped as if absent. Enum parameters that are present
// but unknown, and a page or limit below 1, fail with apperr.InvalidFilterErr.
func (p *Parser) Parse(values url.Values) (Filter, error) {
	f := Filter{
		Search:      strings.TrimSpace(values.Get(ParamSearch)),
		Category:    strings.TrimSpace(values.Get(ParamCategory)),
		Series:      strings.TrimSpace(values.Get(ParamSeries)),
		PriceMin:    parseDecimal(values.Get(ParamPriceMin)),
		PriceMax:    parseDecimal(values.Get(ParamPriceMax)),
		StockStatus: model.StockStatus(strings.TrimSpace(values.Get(ParamStockStatus))),
		Rating:      parseDecimal(values.Get(ParamRating)),
		SortBy:      SortByName,
		Page:        bindInt(values, ParamPage, DefaultPage),
		Limit:       bindInt(values, ParamLimit, p.defaultLimit),
	}

	if sortBy := strings.TrimSpace(values.Get(ParamSortBy)); sortBy != "" {
		f.SortBy = SortBy(sortBy)
	}

	if err := p.validator.Validate(f); err != nil {
		return Filter{}, apperr.InvalidFilterErr.WrapParent(err)
	}

	return f, nil
}

func parseDecimal(raw string) decimal.NullDecimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// bindInt reads a single form-style integer parameter, falling back to def
// when it is missing or malformed.
func bindInt(values url.Values, name string, def int) int {
	var dest *int
	if err := runtime.BindQueryParameter("form", true, false, name, values, &dest); err != nil || dest == nil {
		return def
	}
	return *dest
}
