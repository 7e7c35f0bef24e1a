package apierr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/validator"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/zerror"
)

func TestNew(t *testing.T) {
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	type body struct {
		Email string `json:"email" validate:"required,email"`
	}
	verr := v.Validate(body{Email: "nope"})
	require.Error(t, verr)

	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMsg     string
		wantDetails []apierr.FieldError
	}{
		{
			name:       "product not found",
			err:        fmt.Errorf("get product: %w", apperr.ProductNotFoundErr),
			wantStatus: http.StatusNotFound,
			wantCode:   apperr.ProductNotFoundErrorCode,
			wantMsg:    "Product not found",
		},
		{
			name:        "wrapped validation error keeps details",
			err:         apperr.ValidationErr.WrapParent(verr),
			wantStatus:  http.StatusBadRequest,
			wantCode:    apperr.ValidationErrorCode,
			wantMsg:     "validation error",
			wantDetails: []apierr.FieldError{{Field: "email", Message: "must be a valid email address"}},
		},
		{
			name:        "bare validation error",
			err:         verr,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMsg:     "validation error",
			wantDetails: []apierr.FieldError{{Field: "email", Message: "must be a valid email address"}},
		},
		{
			name:       "service unavailable",
			err:        zerror.NewServiceUnavailable("DB_DOWN", "database unavailable"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "DB_DOWN",
			wantMsg:    "database unavailable",
		},
		{
			name:       "json syntax error",
			err:        json.Unmarshal([]byte("{"), &body{}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantMsg:    "unexpected end of JSON input",
		},
		{
			name:       "unknown error hides details",
			err:        errors.New("connection refused to 10.0.0.3"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "an unknown error occurred",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := apierr.New(tc.err)

			assert.Equal(t, tc.wantStatus, got.StatusCode)
			assert.Equal(t, tc.wantCode, got.Code)
			assert.Equal(t, tc.wantMsg, got.Error)
			if tc.wantDetails == nil {
				assert.Nil(t, got.Details)
				return
			}
			require.NotNil(t, got.Details)
			assert.Equal(t, tc.wantDetails, *got.Details)
		})
	}
}
