package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	f, err := NewFormatter("LKR")
	require.NoError(t, err)

	assert.Equal(t, "LKR 450,000", f.Format(450000))
	assert.Equal(t, "LKR 0", f.Format(0))
	assert.Equal(t, "LKR 1,500", f.Format(1500))
	assert.Equal(t, "-LKR 20,000", f.Format(-20000))
	assert.Equal(t, "LKR", f.Code())
}

func TestNewFormatter_InvalidCode(t *testing.T) {
	_, err := NewFormatter("XX")
	assert.Error(t, err)
}

func TestBackOutTax(t *testing.T) {
	subtotal, tax := BackOutTax(110000, 0.1)
	assert.Equal(t, int64(100000), subtotal)
	assert.Equal(t, int64(10000), tax)

	subtotal, tax = BackOutTax(450000, 0.1)
	assert.Equal(t, int64(409091), subtotal)
	assert.Equal(t, int64(40909), tax)
	assert.Equal(t, int64(450000), subtotal+tax)

	subtotal, tax = BackOutTax(1000, 0)
	assert.Equal(t, int64(1000), subtotal)
	assert.Zero(t, tax)
}
