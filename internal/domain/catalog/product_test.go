package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string   { return &s }
func f64ptr(f float64) *float64 { return &f }

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct("id-1", "", "SKU-1", 9.99)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "name")

	_, err = NewProduct("id-1", "Shirt", "", 9.99)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "sku")

	_, err = NewProduct("id-1", "", "", 9.99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name, sku")

	_, err = NewProduct("id-1", "Shirt", "SKU-1", 0)
	assert.ErrorIs(t, err, ErrInvalid)

	p, err := NewProduct("id-1", "Shirt", "SKU-1", 9.99)
	require.NoError(t, err)
	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "SKU-1", p.SKU)
}

func TestUpdateEmpty(t *testing.T) {
	assert.True(t, Update{}.Empty())
	assert.False(t, Update{Name: strptr("X")}.Empty())

	assert.ErrorIs(t, Update{}.Validate(), ErrNoFields)
	assert.ErrorIs(t, Update{}.Validate(), ErrInvalid)
}

func TestUpdateValidate(t *testing.T) {
	assert.ErrorIs(t, Update{Name: strptr("  ")}.Validate(), ErrInvalid)
	assert.ErrorIs(t, Update{SKU: strptr("")}.Validate(), ErrInvalid)
	assert.ErrorIs(t, Update{Price: f64ptr(0)}.Validate(), ErrInvalid)
	assert.NoError(t, Update{Name: strptr("X")}.Validate())
}

func TestUpdateApplyTouchesOnlySetFields(t *testing.T) {
	p := Product{
		ID:          "id-1",
		Name:        "Shirt",
		SKU:         "SKU-1",
		Description: "cotton",
		Price:       9.99,
		Category:    "apparel",
	}

	Update{Name: strptr("Hoodie"), Price: f64ptr(19.99)}.Apply(&p)

	assert.Equal(t, "Hoodie", p.Name)
	assert.Equal(t, 19.99, p.Price)
	assert.Equal(t, "SKU-1", p.SKU)
	assert.Equal(t, "cotton", p.Description)
	assert.Equal(t, "apparel", p.Category)
}
