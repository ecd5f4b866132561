package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventAmount(t *testing.T) {
	assert.Equal(t, 0.0, EventAmount(nil))
	assert.Equal(t, 0.0, EventAmount([]MenuLine{}))

	lines := []MenuLine{
		{Price: 250, Quantity: 100},
		{Price: 40.5, Quantity: 2},
	}
	assert.Equal(t, 25081.0, EventAmount(lines))
}

func TestEventAmountZeroPriceAndQuantity(t *testing.T) {
	lines := []MenuLine{
		{Price: 0, Quantity: 50},
		{Price: 120, Quantity: 0},
	}
	assert.Equal(t, 0.0, EventAmount(lines))
}

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, 0.0, OrderTotal(nil))
	assert.Equal(t, 4500.0, OrderTotal([]float64{1500, 3000}))
}

func TestOrderBalance(t *testing.T) {
	assert.Equal(t, 700.0, OrderBalance(1000, []float64{300}))
	assert.Equal(t, 1000.0, OrderBalance(1000, nil))
	assert.Equal(t, 0.0, OrderBalance(1000, []float64{600, 400}))
}

func TestOrderBalanceOverpaymentClampsToZero(t *testing.T) {
	assert.Equal(t, 0.0, OrderBalance(1000, []float64{1500}))
	assert.Equal(t, 0.0, OrderBalance(0, []float64{50}))
}
