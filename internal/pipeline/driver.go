// internal/pipeline/driver.go
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	conf "github.com/bartek5186/hurt2sklep/internal/config"
	"github.com/bartek5186/hurt2sklep/internal/db"
	"github.com/bartek5186/hurt2sklep/internal/export"
	"github.com/bartek5186/hurt2sklep/internal/pricing"
	"github.com/bartek5186/hurt2sklep/internal/suppliers"
	"github.com/bartek5186/hurt2sklep/internal/translate"
	"github.com/rs/zerolog"

	// rejestracja dostawców
	_ "github.com/bartek5186/hurt2sklep/internal/suppliers/b2bsport"
	_ "github.com/bartek5186/hurt2sklep/internal/suppliers/kinghoff"
)

// kolejność scalania tabel (stała: najpierw b2bsport, potem kinghoff)
var order = []string{"b2bsport", "kinghoff"}

// Run wykonuje cały przebieg: prefiltr → normalizacja → scalenie → marże →
// eksport XLSX. Pusty wynik po filtrach to warning i czyste wyjście bez pliku.
func Run(ctx context.Context, log zerolog.Logger, cfg *conf.Config, dbh *db.Handle) error {
	start := time.Now()

	tr := translate.New(log, cfg.Translate, conf.OpenAIKey())
	deps := suppliers.Deps{
		Tr: tr,
		Filters: suppliers.Filters{
			MinPrice: cfg.Filters.MinPrice,
			MaxPrice: cfg.Filters.MaxPrice,
			MinQty:   cfg.Filters.MinQty,
		},
		PartialsDir:    cfg.PartialsDir(),
		CheckpointRows: cfg.CheckpointRows,
	}

	run := db.ExportRun{Status: "done"}
	var all []export.Row

	for _, name := range order {
		raw, ok := cfg.Suppliers[name]
		if !ok {
			log.Warn().Str("supplier", name).Msg("brak dostawcy w configu — pomijam")
			continue
		}
		f, ok := suppliers.Get(name)
		if !ok {
			log.Warn().Str("supplier", name).Msg("brak fabryki — pomijam")
			continue
		}
		sup, err := f(log.With().Str("supplier", name).Logger(), raw)
		if err != nil {
			return recordFatal(log, dbh, &run, start, fmt.Errorf("init dostawcy %s: %w", name, err))
		}

		// rejestr feedów (dedup po SHA — tylko diagnostycznie)
		if dbh != nil {
			for _, p := range sup.FeedPaths() {
				dup, err := dbh.RegisterFeed(p, name)
				if err != nil {
					log.Warn().Err(err).Str("file", p).Msg("rejestracja feedu nieudana")
					continue
				}
				if dup {
					log.Warn().Str("file", p).Msg("feed identyczny jak poprzednio (SHA bez zmian)")
				}
			}
		}

		rows, st, err := sup.Run(ctx, deps)
		if err != nil {
			// błąd parsowania feedu jest fatalny — przerywamy przebieg
			return recordFatal(log, dbh, &run, start, err)
		}
		log.Info().
			Str("supplier", name).
			Int("parsed", st.Parsed).
			Int("rows", len(rows)).
			Int("translate_fails", st.TrFails).
			Msg("dostawca przetworzony")

		switch name {
		case "b2bsport":
			run.RowsB2BSport = len(rows)
		case "kinghoff":
			run.RowsKinghoff = len(rows)
		}
		run.TranslateFails += st.TrFails
		all = append(all, rows...)
	}

	run.RowsTotal = len(all)
	if len(all) == 0 {
		log.Warn().Msg("brak rekordów po filtrach — nie zapisuję pliku eksportu")
		run.Status = "empty"
		run.DurationMS = time.Since(start).Milliseconds()
		saveRun(log, dbh, &run)
		return nil
	}

	// marże liczone wierszowo po scaleniu
	for i := range all {
		all[i].FinalPrice = pricing.Final(all[i].Price, all[i].Supplier)
	}

	outPath := filepath.Join(cfg.OutDir, fmt.Sprintf("export_%s.xlsx", start.Format("20060102_150405")))
	if err := export.Write(outPath, all); err != nil {
		return recordFatal(log, dbh, &run, start, err)
	}

	run.OutputPath = outPath
	run.DurationMS = time.Since(start).Milliseconds()
	saveRun(log, dbh, &run)

	log.Info().
		Int("rows", run.RowsTotal).
		Int("translate_fails", run.TranslateFails).
		Dur("elapsed", time.Since(start)).
		Str("file", outPath).
		Msg("eksport zakończony")
	return nil
}

func recordFatal(log zerolog.Logger, dbh *db.Handle, run *db.ExportRun, start time.Time, err error) error {
	run.Status = "error"
	run.LastError = err.Error()
	run.DurationMS = time.Since(start).Milliseconds()
	saveRun(log, dbh, run)
	return err
}

func saveRun(log zerolog.Logger, dbh *db.Handle, run *db.ExportRun) {
	if dbh == nil {
		return
	}
	if err := dbh.DB.Create(run).Error; err != nil {
		log.Error().Err(err).Msg("zapis export_runs nieudany")
	}
}
