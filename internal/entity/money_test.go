package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfCents_RoundHalfUp(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  int64
	}{
		{"even amount", 2800, 1400},
		{"odd amount rounds half up", 2799, 1400},
		{"one cent", 1, 1},
		{"zero", 0, 0},
		{"27.99 dollars", DollarsToCents(27.99), 1400},
		{"28.00 dollars", DollarsToCents(28.00), 1400},
		{"32.00 dollars", DollarsToCents(32.00), 1600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HalfCents(tt.cents))
		})
	}
}

func TestDollarsToCents(t *testing.T) {
	assert.Equal(t, int64(2799), DollarsToCents(27.99))
	assert.Equal(t, int64(2800), DollarsToCents(28.0))
	assert.Equal(t, int64(0), DollarsToCents(0))
	// Binary float artifacts must not shave a cent
	assert.Equal(t, int64(1999), DollarsToCents(19.99))
}

func TestCentsToDollars(t *testing.T) {
	assert.Equal(t, 14.0, CentsToDollars(1400))
	assert.Equal(t, 27.99, CentsToDollars(2799))
	assert.Equal(t, 0.0, CentsToDollars(0))
}
