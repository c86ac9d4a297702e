package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "$0.00"},
		{"small", 4.5, "$4.50"},
		{"thousands", 5000, "$5,000.00"},
		{"millions", 1234567.891, "$1,234,567.89"},
		{"negative", -1500.25, "-$1,500.25"},
		{"negative rounds to zero", -0.001, "$0.00"},
		{"half cent rounds away from zero", 1.005, "$1.01"},
		{"exact thousand", 1000, "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.amount))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "60.00%", Percent(0.6))
	assert.Equal(t, "36.00%", Percent(0.36))
	assert.Equal(t, "0.00%", Percent(0))
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "200", Units(200))
	assert.Equal(t, "167", Units(166.6667))
	assert.Equal(t, "-300", Units(-300))
	assert.Equal(t, "10,000", Units(10000))
	assert.Equal(t, "1,234,568", Units(1234567.5))
}
