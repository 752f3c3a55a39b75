package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalZeroBase(t *testing.T) {
	// brak ceny / błąd w feedzie — zero bez marży, niezależnie od dostawcy
	assert.Equal(t, 0, Final(0, "b2bsport"))
	assert.Equal(t, 0, Final(0, "kinghoff"))
	assert.Equal(t, 0, Final(-1, "b2bsport"))
}

func TestFinalBrackets(t *testing.T) {
	cases := []struct {
		base     float64
		supplier string
		want     int
	}{
		{4.99, "b2bsport", 15},   // 200% → 14.97
		{5, "b2bsport", 14},      // 180% → 14.0
		{10, "b2bsport", 28},     // 180%
		{19.99, "b2bsport", 56},  // 180% → 55.972
		{20, "b2bsport", 50},     // 150%
		{49.99, "b2bsport", 125}, // 150% → 124.975
		{50, "b2bsport", 100},    // 100%
		{99.99, "b2bsport", 200}, // 100% → 199.98
		{100, "b2bsport", 180},   // 80%
		{150, "b2bsport", 270},   // 80%
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Final(c.base, c.supplier), "base=%v", c.base)
	}
}

func TestFinalKinghoffSurcharge(t *testing.T) {
	// +5 punktów procentowych ponad próg
	assert.Equal(t, 29, Final(10, "kinghoff"))  // 185% → 28.5, połówka w górę
	assert.Equal(t, 103, Final(50, "kinghoff")) // 105% → 102.5, połówka w górę
	assert.Equal(t, 100, Final(50, "b2bsport"))
}

func TestFinalAlwaysAboveBase(t *testing.T) {
	for _, base := range []float64{0.01, 1, 4.99, 5, 19.99, 20, 50, 99.99, 100, 500, 12345.67} {
		for _, sup := range []string{"b2bsport", "kinghoff"} {
			got := Final(base, sup)
			assert.Greater(t, float64(got), base, "base=%v supplier=%s", base, sup)
		}
	}
}

func TestMarkupPctNonIncreasing(t *testing.T) {
	prev := markupPct(0.01)
	for _, base := range []float64{1, 4.99, 5, 19.99, 20, 49.99, 50, 99.99, 100, 1000} {
		cur := markupPct(base)
		assert.LessOrEqual(t, cur, prev, "base=%v", base)
		prev = cur
	}
}
