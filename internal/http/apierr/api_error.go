package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/hvac-catalog/pkg/validator"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/zerror"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Code    string        `json:"code"`
	Details *[]FieldError `json:"details,omitempty"`

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

var InternalServerErr = ErrorResponse{
	Error:      "an unknown error occurred",
	Code:       "INTERNAL_SERVER_ERROR",
	StatusCode: http.StatusInternalServerError,
}

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			Error:      zErr.Msg(),
			Code:       zErr.Code(),
			Details:    fieldErrors(zErr.Parent()),
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	if details := fieldErrors(err); details != nil {
		return ErrorResponse{
			Error:      "validation error",
			Code:       "VALIDATION_FAILED",
			Details:    details,
			StatusCode: http.StatusBadRequest,
		}
	}

	if isDecodeErr(err) {
		return ErrorResponse{
			Error:      err.Error(),
			Code:       "VALIDATION_FAILED",
			StatusCode: http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

// fieldErrors returns per-field messages when err carries validator errors.
func fieldErrors(err error) *[]FieldError {
	var validationErrs govalidator.ValidationErrors
	if err == nil || !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		details[i] = FieldError{
			Field:   fe.Field(),
			Message: validator.ValidationErrorMessage(fe),
		}
	}
	return &details
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusBadRequest:
		return http.StatusBadRequest
	case zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	case zerror.StatusServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func isDecodeErr(err error) bool {
	var (
		e1 *json.SyntaxError
		e2 *json.UnmarshalTypeError
	)

	return errors.As(err, &e1) ||
		errors.As(err, &e2)
}
