package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNoDiscount(t *testing.T) {
	// 2 x 150.00 => subtotal 300.00, tax 54.00, total 354.00
	totals, err := Compute([]Line{
		{Name: "Chicken Chowmein", UnitPrice: 15000, Quantity: 2},
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(30000), totals.SubTotal)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(5400), totals.Tax)
	assert.Equal(t, int64(35400), totals.Total)
}

func TestComputePercentageDiscount(t *testing.T) {
	// 100 + 200 with 10% off => discount 30.00, taxable 270.00,
	// tax 48.60, total 318.60
	totals, err := Compute([]Line{
		{Name: "Spring Roll", UnitPrice: 10000, Quantity: 1},
		{Name: "Fried Rice", UnitPrice: 20000, Quantity: 1},
	}, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(30000), totals.SubTotal)
	assert.Equal(t, int64(3000), totals.Discount)
	assert.Equal(t, int64(4860), totals.Tax)
	assert.Equal(t, int64(31860), totals.Total)
}

func TestComputeEmptyBill(t *testing.T) {
	_, err := Compute(nil, 0)
	assert.Error(t, err)

	_, err = Compute([]Line{}, 10)
	assert.Error(t, err)
}

func TestComputeRejectsBadLines(t *testing.T) {
	_, err := Compute([]Line{{Name: "Soup", UnitPrice: 5000, Quantity: 0}}, 0)
	assert.Error(t, err)

	_, err = Compute([]Line{{Name: "Soup", UnitPrice: -100, Quantity: 1}}, 0)
	assert.Error(t, err)
}

func TestComputeSubtotalIsOrderIndependent(t *testing.T) {
	lines := []Line{
		{Name: "a", UnitPrice: 12345, Quantity: 3},
		{Name: "b", UnitPrice: 999, Quantity: 1},
		{Name: "c", UnitPrice: 50, Quantity: 7},
	}
	reversed := []Line{lines[2], lines[1], lines[0]}

	forward, err := Compute(lines, 15)
	require.NoError(t, err)
	backward, err := Compute(reversed, 15)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}

func TestComputeClampsDiscount(t *testing.T) {
	// Discounts above 100% collapse to the full subtotal; the taxable
	// amount never goes negative.
	totals, err := Compute([]Line{{Name: "Noodles", UnitPrice: 10000, Quantity: 1}}, 250)
	require.NoError(t, err)

	assert.Equal(t, int64(10000), totals.Discount)
	assert.Equal(t, int64(0), totals.Tax)
	assert.Equal(t, int64(0), totals.Total)

	// Negative percentages are treated as no discount.
	totals, err = Compute([]Line{{Name: "Noodles", UnitPrice: 10000, Quantity: 1}}, -5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.Discount)
}

func TestComputeMonotonicity(t *testing.T) {
	base := []Line{{Name: "x", UnitPrice: 7500, Quantity: 2}}
	bigger := []Line{{Name: "x", UnitPrice: 7500, Quantity: 3}}

	small, err := Compute(base, 20)
	require.NoError(t, err)
	large, err := Compute(bigger, 20)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, large.Total, small.Total)

	lowDiscount, err := Compute(base, 5)
	require.NoError(t, err)
	highDiscount, err := Compute(base, 50)
	require.NoError(t, err)
	assert.LessOrEqual(t, highDiscount.Total, lowDiscount.Total)
}
