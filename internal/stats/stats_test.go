package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 3.0, Mean([]float64{1, 2, 3, 4, 5}))
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev([]float64{42}))
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
}

func TestCoefficientOfVariation_ZeroMean(t *testing.T) {
	// All-zero steps must not divide by zero.
	assert.Equal(t, 0.0, CoefficientOfVariation([]float64{0, 0, 0}))
}

func TestSlope(t *testing.T) {
	tests := []struct {
		name string
		ys   []float64
		want float64
	}{
		{"single point", []float64{5}, 0},
		{"flat", []float64{3, 3, 3, 3}, 0},
		{"rising", []float64{0, 1, 2, 3}, 1},
		{"falling", []float64{9, 7, 5, 3}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Slope(tt.ys), 1e-9)
		})
	}
}

func TestPearson(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 6, 8, 10}
	assert.InDelta(t, 1.0, Pearson(xs, ys), 1e-9)

	inv := []float64{10, 8, 6, 4, 2}
	assert.InDelta(t, -1.0, Pearson(xs, inv), 1e-9)
}

func TestPearson_Symmetric(t *testing.T) {
	xs := []float64{7200, 8100, 6400, 9900, 7500}
	ys := []float64{6.5, 7.2, 5.9, 8.1, 7.0}
	assert.InDelta(t, Pearson(xs, ys), Pearson(ys, xs), 1e-12)
}

func TestPearson_ZeroVariance(t *testing.T) {
	assert.Equal(t, 0.0, Pearson([]float64{5, 5, 5}, []float64{1, 2, 3}))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-12))
	assert.Equal(t, 100.0, ClampScore(140))
	assert.Equal(t, 55.5, ClampScore(55.5))
}
