// internal/translate/batch.go
package translate

import (
	"context"
	"sync"
	"sync/atomic"
)

// Batch tłumaczy sekwencję tekstów na ograniczonej puli workerów.
// Wynik pod indeksem i odpowiada wejściu pod indeksem i niezależnie od
// kolejności ukończenia (zapisy pod rozłącznymi indeksami). Porażki
// pojedynczych elementów są izolowane: element dostaje swój oryginał,
// a łączna liczba porażek wraca do wołającego.
func (t *Translator) Batch(ctx context.Context, in []string) ([]string, int) {
	if !t.enabled || len(in) == 0 {
		return in, 0
	}

	out := make([]string, len(in))
	var fails int64

	sem := make(chan struct{}, t.workers)
	var wg sync.WaitGroup

	for i, s := range in {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, s string) {
			defer func() {
				if r := recover(); r != nil {
					out[i] = s
					atomic.AddInt64(&fails, 1)
					t.log.Error().Interface("panic", r).Int("idx", i).Msg("translate: panic workera — fallback na oryginał")
				}
				<-sem
				wg.Done()
			}()
			tr, n := t.HTML(ctx, s)
			out[i] = tr
			if n > 0 {
				atomic.AddInt64(&fails, int64(n))
			}
		}(i, s)
	}
	wg.Wait()

	return out, int(fails)
}
