// internal/pricing/pricing.go
package pricing

import "math"

// Marża procentowa wg progu cenowego (EUR, cena zakupu). Progi rosną,
// procent maleje.
func markupPct(base float64) float64 {
	switch {
	case base < 5:
		return 200
	case base < 20:
		return 180
	case base < 50:
		return 150
	case base < 100:
		return 100
	default:
		return 80
	}
}

// Dostawcy z dodatkową stałą dopłatą (punkty procentowe ponad próg).
var surcharge = map[string]float64{
	"kinghoff": 5,
}

// Final liczy cenę końcową (pełne EUR) z ceny zakupu i taga dostawcy.
// Cena zakupu 0 (brak ceny / błąd w feedzie) daje 0 — bez marży.
// Zaokrąglenie: math.Round, czyli połówki w górę dla cen dodatnich.
func Final(base float64, supplier string) int {
	if base <= 0 {
		return 0
	}
	pct := markupPct(base) + surcharge[supplier]
	v := int(math.Round(base * (1 + pct/100)))
	if v < 1 {
		// ceny groszowe nie mogą spaść do zera po zaokrągleniu
		v = 1
	}
	return v
}
