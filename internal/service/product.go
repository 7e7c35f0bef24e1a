package service

import (
	"context"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/query"
)

// ProductReader is the read side of the product store.
type ProductReader interface {
	GetByID(id string) (model.Product, bool)
	GetAll() []model.Product
}

type ProductService interface {
	ListProducts(ctx context.Context, filter query.Filter) (query.Result, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	ProductFacets(ctx context.Context) (query.FacetSummary, error)
}

type productService struct {
	products ProductReader
}

func NewProductService(products ProductReader) ProductService {
	return &productService{
		products: products,
	}
}

func (s *productService) ListProducts(_ context.Context, filter query.Filter) (query.Result, error) {
	return query.Apply(s.products.GetAll(), filter), nil
}

func (s *productService) GetProduct(_ context.Context, id string) (model.Product, error) {
	product, ok := s.products.GetByID(id)
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	return product, nil
}

func (s *productService) ProductFacets(_ context.Context) (query.FacetSummary, error) {
	return query.Facets(s.products.GetAll()), nil
}
