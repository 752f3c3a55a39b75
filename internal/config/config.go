// internal/config/config.go
package conf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Ustawienia tłumaczenia pól tekstowych (OpenAI)
type TranslateConfig struct {
	Enabled    bool   `json:"enabled"`
	TargetLang string `json:"target_lang"` // np. "pl"
	Model      string `json:"model"`
	Workers    int    `json:"workers"` // rozmiar puli dla tłumaczeń batchowych
}

// Progi filtrowania (EUR); MaxPrice <= 0 oznacza brak górnego limitu
type FiltersConfig struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	MinQty   int     `json:"min_qty"`
}

// Główny config aplikacji
type Config struct {
	Translate      TranslateConfig            `json:"translate"`
	Filters        FiltersConfig              `json:"filters"`
	CheckpointRows int                        `json:"checkpoint_rows"` // co ile wierszy zapis partiala
	OutDir         string                     `json:"out_dir"`
	Suppliers      map[string]json.RawMessage `json:"suppliers"` // nazwa -> surowy JSON dostawcy
}

// Domyślne configi dostawców (używane do domyślnego JSON-a)
type B2BSportDefaults struct {
	Feed      string `json:"feed"`
	LightFeed string `json:"light_feed"`
}

type KinghoffDefaults struct {
	Feed string `json:"feed"`
}

func LoadOrCreate(path string) (*Config, bool, error) {
	// upewnij się, że katalog istnieje
	_ = os.MkdirAll(filepath.Dir(path), 0o755)

	// klucz API trzymamy poza configiem — .env / środowisko
	_ = godotenv.Load()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			rawB2B, _ := json.Marshal(B2BSportDefaults{
				Feed:      "./feeds/b2bsport.xml",
				LightFeed: "./feeds/b2bsport_light.xml",
			})
			rawKing, _ := json.Marshal(KinghoffDefaults{
				Feed: "./feeds/kinghoff.xml",
			})

			cfg := &Config{
				Translate: TranslateConfig{
					Enabled:    false,
					TargetLang: "pl",
					Model:      "gpt-4o-mini",
					Workers:    8,
				},
				Filters: FiltersConfig{
					MinPrice: 240,
					MaxPrice: 0,
					MinQty:   5,
				},
				CheckpointRows: 1000,
				OutDir:         "./export",
				Suppliers: map[string]json.RawMessage{
					"b2bsport": rawB2B,
					"kinghoff": rawKing,
				},
			}
			if err := Save(path, cfg); err != nil {
				return nil, false, fmt.Errorf("błąd zapisu domyślnego configa: %w", err)
			}
			return cfg, true, nil
		}
		return nil, false, fmt.Errorf("błąd otwierania configa: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, false, fmt.Errorf("błąd parsowania configa: %w", err)
	}
	if cfg.Suppliers == nil {
		cfg.Suppliers = map[string]json.RawMessage{}
	}
	if cfg.Translate.Workers <= 0 {
		cfg.Translate.Workers = 8
	}
	if cfg.CheckpointRows <= 0 {
		cfg.CheckpointRows = 1000
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "./export"
	}
	return &cfg, false, nil
}

func Save(path string, cfg *Config) error {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// PartialsDir zwraca katalog na partiale (checkpointy) wewnątrz OutDir.
func (c *Config) PartialsDir() string {
	return filepath.Join(c.OutDir, "partials")
}

// Helper do odczytu configa konkretnego dostawcy do struktury docelowej
func (c *Config) UnmarshalSupplier(name string, v any) error {
	raw, ok := c.Suppliers[name]
	if !ok {
		return fmt.Errorf("brak dostawcy %q w configu", name)
	}
	return json.Unmarshal(raw, v)
}

// OpenAIKey czyta klucz API ze środowiska (po godotenv.Load w LoadOrCreate).
func OpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}
