package product_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	id := kernel.NewUUID()
	owner := kernel.NewUUID()
	price := kernel.MustAmount("4.20")

	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct(id, owner, "  Carrots ", price, false)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.Owner().IsEqual(owner))
		assert.Equal(t, "Carrots", p.Name())
		assert.True(t, p.Price().IsEqual(price))
		assert.False(t, p.AllowFloatValues())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		p, err := product.NewProduct(kernel.UUID{}, kernel.UUID{}, " ", kernel.Amount{}, true)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrAmountIsNotConstructed)
		assert.Contains(t, err.Error(), "value is required: name")
	})

	t.Run("nil product is not constructed", func(t *testing.T) {
		var p *product.Product

		assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())
	})
}

func TestProduct_AcceptsQuantity(t *testing.T) {
	wholeOnly, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Eggs", kernel.MustAmount("0.3"), false)
	require.NoError(t, err)
	fractional, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Flour", kernel.MustAmount("1.1"), true)
	require.NoError(t, err)

	t.Run("whole quantity is always accepted", func(t *testing.T) {
		require.NoError(t, wholeOnly.AcceptsQuantity(kernel.MustAmount("12")))
		require.NoError(t, fractional.AcceptsQuantity(kernel.MustAmount("12")))
	})

	t.Run("fractional quantity needs allowFloatValues", func(t *testing.T) {
		err := wholeOnly.AcceptsQuantity(kernel.MustAmount("1.5"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "does not allow fractional quantities")
		require.NoError(t, fractional.AcceptsQuantity(kernel.MustAmount("1.5")))
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		require.ErrorIs(t, fractional.AcceptsQuantity(kernel.Amount{}), kernel.ErrAmountIsNotConstructed)
	})
}
