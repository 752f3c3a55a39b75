// internal/suppliers/types.go
package suppliers

import (
	"context"
	"encoding/json"

	"github.com/bartek5186/hurt2sklep/internal/export"
	"github.com/bartek5186/hurt2sklep/internal/translate"
	"github.com/rs/zerolog"
)

// Progi filtrowania prefiltra. MaxPrice <= 0 = brak górnego limitu.
type Filters struct {
	MinPrice float64
	MaxPrice float64
	MinQty   int
}

// Keep zwraca true gdy rekord przechodzi progi. Odrzut to normalny wynik
// filtrowania, nie błąd.
func (f Filters) Keep(price float64, qty int) bool {
	if price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && price > f.MaxPrice {
		return false
	}
	return qty >= f.MinQty
}

// Deps to zależności wspólne dla przebiegu każdego dostawcy.
type Deps struct {
	Tr             *translate.Translator
	Filters        Filters
	PartialsDir    string
	CheckpointRows int
}

// Stats z jednego przebiegu dostawcy.
type Stats struct {
	Parsed  int // rekordów w feedzie
	Kept    int // po progach
	TrFails int // nieudane tłumaczenia (fallback na oryginał)
}

// Supplier: jeden dostawca hurtowy = parse feedów + prefiltr + normalizacja
// do wspólnego schematu wierszy (z zapisem partiali po drodze).
type Supplier interface {
	Tag() string
	FeedPaths() []string
	Run(ctx context.Context, deps Deps) ([]export.Row, Stats, error)
}

type Factory func(log zerolog.Logger, raw json.RawMessage) (Supplier, error)
