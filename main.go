package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	conf "github.com/bartek5186/hurt2sklep/internal/config"
	"github.com/bartek5186/hurt2sklep/internal/db"
	logs "github.com/bartek5186/hurt2sklep/internal/logs"
	"github.com/bartek5186/hurt2sklep/internal/pipeline"
)

// wersję możesz nadpisać przez: -ldflags "-X 'main.ver=1.0.1'"
var ver = "1.0.0"

func main() {
	appDir := mustAppDataDir("hurt2sklep")

	cfgPath := flag.String("config", filepath.Join(appDir, "config.json"), "ścieżka do config.json")
	flag.Parse()

	log := logs.New(filepath.Join(appDir, "app.log"), true)
	log.Info().Str("ver", ver).Msg("hurt2sklep start")

	cfg, firstRun, err := conf.LoadOrCreate(*cfgPath)
	if err != nil {
		panic(err)
	}
	if firstRun {
		log.Info().Msgf("Utworzono domyślną konfigurację: %s — uzupełnij ścieżki feedów i odpal ponownie", *cfgPath)
		return
	}

	dbh, err := db.OpenAt(appDir)
	if err != nil {
		log.Fatal().Err(err).Msg("DB open error")
	}
	if err := dbh.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("DB migrate error")
	}
	log.Info().Str("db", dbh.Path).Msg("DB ready")
	sqlDB, _ := dbh.DB.DB()
	defer sqlDB.Close()

	// CTRL+C / SIGTERM przerywa przebieg (tłumaczenia dostają ctx)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := pipeline.Run(ctx, log, cfg, dbh); err != nil {
		log.Error().Err(err).Msg("przebieg zakończony błędem")
		os.Exit(1)
	}
}

func mustAppDataDir(name string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		panic(err)
	}
	p := filepath.Join(base, name)
	_ = os.MkdirAll(p, 0o755)
	return p
}
