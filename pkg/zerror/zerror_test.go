package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/hvac-catalog/pkg/zerror"
)

func TestZError(t *testing.T) {
	notFound := zerror.NewNotFound("PRODUCT_NOT_FOUND", "Product not found")

	t.Run("Should match predefined error after wrapping", func(t *testing.T) {
		parent := errors.New("lookup miss")
		err := fmt.Errorf("service get product: %w", notFound.WrapParent(parent))

		assert.ErrorIs(t, err, notFound)
		assert.ErrorIs(t, err, parent)
	})

	t.Run("Should extract with errors.As", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", notFound.WithMsg("no such id"))

		var zErr zerror.ZError
		assert.True(t, errors.As(err, &zErr))
		assert.Equal(t, zerror.StatusNotFound, zErr.Status())
		assert.Equal(t, "PRODUCT_NOT_FOUND", zErr.Code())
		assert.Equal(t, "no such id", zErr.Msg())
	})

	t.Run("Should not match a different code", func(t *testing.T) {
		other := zerror.NewBadRequest("INVALID_FILTER", "invalid filter")
		assert.NotErrorIs(t, other, notFound)
	})

	t.Run("Should format parent in message", func(t *testing.T) {
		err := notFound.WrapParent(errors.New("boom"))
		assert.Equal(t, "Code=PRODUCT_NOT_FOUND, Msg=Product not found, Parent=(boom)", err.Error())
		assert.Equal(t, "NOT_FOUND", err.Status().String())
	})
}
