package apperr

import "github.com/tuanvumaihuynh/hvac-catalog/pkg/zerror"

const (
	ValidationErrorCode      = "VALIDATION_FAILED"
	InvalidFilterErrorCode   = "INVALID_FILTER"
	ProductNotFoundErrorCode = "PRODUCT_NOT_FOUND"
)

var (
	ValidationErr      = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	InvalidFilterErr   = zerror.NewBadRequest(InvalidFilterErrorCode, "Invalid filter parameters")
	ProductNotFoundErr = zerror.NewNotFound(ProductNotFoundErrorCode, "Product not found")
)
