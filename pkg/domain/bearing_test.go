package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/traverse/pkg/domain"
)

// angularGap is the unsigned distance between two bearings, accounting for wrap-around.
func angularGap(a, b float64) float64 {
	return math.Abs(domain.NormalizeSigned(a - b))
}

var sampleBearings = []float64{
	0, 0.5, 45, 89.999, 90, 90.001, 179.5, 180, 270, 359.25,
	-0.75, -90, -359, -360, -725.5, 360, 361, 720, 1e4 + 0.125, -1e4 - 0.125, 123456.789,
}

func TestNormalize_Range(t *testing.T) {
	for _, b := range sampleBearings {
		got := domain.Normalize(b)
		assert.GreaterOrEqual(t, got, 0.0, "Normalize(%v)", b)
		assert.Less(t, got, 360.0, "Normalize(%v)", b)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, b := range sampleBearings {
		once := domain.Normalize(b)
		assert.Equal(t, once, domain.Normalize(once), "Normalize(Normalize(%v))", b)
	}
}

func TestNormalize_PeriodInvariance(t *testing.T) {
	for _, b := range sampleBearings {
		for k := -5; k <= 5; k++ {
			shifted := domain.Normalize(b + 360*float64(k))
			assert.InDelta(t, 0, angularGap(shifted, domain.Normalize(b)), 1e-9, "b=%v k=%d", b, k)
		}
	}
}

func TestNormalize_TinyNegativeFoldsToZero(t *testing.T) {
	assert.Equal(t, 0.0, domain.Normalize(-1e-20))
}

func TestNormalize_KnownValues(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{450, 90},
		{-725, 355},
		{3600.5, 0.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, domain.Normalize(tt.in), 1e-9, "Normalize(%v)", tt.in)
	}
}

func TestCheckedNormalize(t *testing.T) {
	got, err := domain.CheckedNormalize(-30)
	require.NoError(t, err)
	assert.Equal(t, 330.0, got)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := domain.CheckedNormalize(bad)
		assert.ErrorIs(t, err, domain.ErrNormalizationOverflow, "CheckedNormalize(%v)", bad)
	}
}

func TestNormalizeSigned(t *testing.T) {
	assert.InDelta(t, -10, domain.NormalizeSigned(350), 1e-12)
	assert.InDelta(t, 10, domain.NormalizeSigned(-350), 1e-12)
	assert.InDelta(t, -180, domain.NormalizeSigned(180), 1e-12)
	for _, b := range sampleBearings {
		got := domain.NormalizeSigned(b)
		assert.GreaterOrEqual(t, got, -180.0)
		assert.Less(t, got, 180.0)
	}
}

func TestRadians_RoundTrip(t *testing.T) {
	for b := 0.0; b < 360; b += 0.37 {
		back := domain.FromRadians(domain.ToRadians(b))
		assert.InDelta(t, 0, angularGap(back, b), 1e-9, "bearing %v", b)
	}
}

func TestToRadians_Convention(t *testing.T) {
	// North points up the y axis, east along the x axis.
	tests := []struct {
		name    string
		bearing float64
		dx, dy  float64
	}{
		{"north", 0, 0, 1},
		{"east", 90, 1, 0},
		{"south", 180, 0, -1},
		{"west", 270, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theta := domain.ToRadians(tt.bearing)
			assert.InDelta(t, tt.dx, math.Cos(theta), 1e-12)
			assert.InDelta(t, tt.dy, math.Sin(theta), 1e-12)
		})
	}
}

func TestDeclination_Composition(t *testing.T) {
	declinations := []float64{0, 14 + 50.0/60, 10 + 50.0/60, -7.25, 400, -1000}
	for _, b := range sampleBearings {
		for _, d := range declinations {
			lhs := domain.Normalize(domain.Normalize(b) + d)
			rhs := domain.Normalize(b + d)
			assert.InDelta(t, 0, angularGap(lhs, rhs), 1e-9, "b=%v d=%v", b, d)
		}
	}
}

func TestDMS(t *testing.T) {
	assert.InDelta(t, 340.1, domain.DMS(340, 6), 1e-12)
	assert.InDelta(t, 112+10.0/60, 180-domain.DMS(67, 50), 1e-12)
}

func TestFormatDMS(t *testing.T) {
	assert.Equal(t, "174°56'", domain.FormatDMS(domain.DMS(174, 56)))
	assert.Equal(t, "0°00'", domain.FormatDMS(359.9999))
	assert.Equal(t, "90°00'", domain.FormatDMS(-270))
	assert.Equal(t, "10°30'", domain.FormatDMS(10.5))
}

func TestReverse(t *testing.T) {
	assert.InDelta(t, 174+56.0/60, domain.Reverse(354+56.0/60), 1e-9)
	assert.InDelta(t, 270, domain.Reverse(90), 1e-12)
}
