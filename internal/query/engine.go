package query

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
)

type predicate func(p *model.Product) bool

// Apply filters, sorts and pages products according to f. It never modifies
// products and holds no state, so it is safe to call concurrently. Total counts
// every match regardless of paging; a page past the end yields no products.
func Apply(products []model.Product, f Filter) Result {
	preds := f.predicates()

	matched := make([]model.Product, 0, len(products))
	for i := range products {
		if matchesAll(&products[i], preds) {
			matched = append(matched, products[i])
		}
	}

	sortProducts(matched, f.SortBy)

	start, end := pageBounds(len(matched), f.Page, f.Limit)

	return Result{
		Products: slices.Clone(matched[start:end]),
		Total:    len(matched),
	}
}

func matchesAll(p *model.Product, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// predicates builds the filter passes in their fixed order, skipping every
// dimension the filter leaves unconstrained.
func (f Filter) predicates() []predicate {
	var preds []predicate

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		preds = append(preds, func(p *model.Product) bool {
			return containsFold(p.Title, search) ||
				containsFold(p.ModelNumber, search) ||
				containsFold(p.Category, search) ||
				containsFold(p.Series, search)
		})
	}

	if category := strings.TrimSpace(f.Category); category != "" {
		preds = append(preds, func(p *model.Product) bool {
			return strings.EqualFold(p.Category, category)
		})
	}

	if series := strings.TrimSpace(f.Series); series != "" {
		preds = append(preds, func(p *model.Product) bool {
			return strings.EqualFold(p.Series, series)
		})
	}

	if f.PriceMin.Valid || f.PriceMax.Valid {
		minPrice, maxPrice := f.PriceMin, f.PriceMax
		preds = append(preds, func(p *model.Product) bool {
			if minPrice.Valid && p.Price.LessThan(minPrice.Decimal) {
				return false
			}
			if maxPrice.Valid && p.Price.GreaterThan(maxPrice.Decimal) {
				return false
			}
			return true
		})
	}

	if f.StockStatus != "" {
		status := f.StockStatus
		preds = append(preds, func(p *model.Product) bool {
			return p.StockStatus == status
		})
	}

	if f.Rating.Valid {
		floor := f.Rating.Decimal
		preds = append(preds, func(p *model.Product) bool {
			return p.Rating.GreaterThanOrEqual(floor)
		})
	}

	return preds
}

// containsFold reports whether s contains the already lower-cased needle.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

// sortProducts orders products in place. Ties fall back to id so the order is
// total and repeatable.
func sortProducts(products []model.Product, sortBy SortBy) {
	var compare func(a, b *model.Product) int

	switch sortBy {
	case SortByPriceAsc:
		compare = func(a, b *model.Product) int { return a.Price.Cmp(b.Price) }
	case SortByPriceDesc:
		compare = func(a, b *model.Product) int { return b.Price.Cmp(a.Price) }
	case SortByRating:
		compare = func(a, b *model.Product) int { return b.Rating.Cmp(a.Rating) }
	case SortByNewest:
		compare = func(a, b *model.Product) int { return b.CreatedAt.Compare(a.CreatedAt) }
	default:
		// A Collator keeps internal buffers, so each call gets its own.
		collator := collate.New(language.English)
		compare = func(a, b *model.Product) int { return collator.CompareString(a.Title, b.Title) }
	}

	slices.SortFunc(products, func(a, b model.Product) int {
		if c := compare(&a, &b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// pageBounds returns the [start, end) slice of a 1-based page over n items.
func pageBounds(n, page, limit int) (int, int) {
	if page < 1 || limit < 1 || page-1 > n/limit {
		return n, n
	}

	start := (page - 1) * limit
	end := n
	if limit < n-start {
		end = start + limit
	}
	return start, end
}
