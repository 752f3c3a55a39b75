// internal/suppliers/b2bsport/supplier.go
package b2bsport

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bartek5186/hurt2sklep/internal/export"
	"github.com/bartek5186/hurt2sklep/internal/suppliers"
	"github.com/rs/zerolog"
)

const tag = "b2bsport"

type Config struct {
	Feed      string `json:"feed"`       // katalog szczegółowy
	LightFeed string `json:"light_feed"` // stany + ceny (join po SKU)
}

type Supplier struct {
	log zerolog.Logger
	cfg Config
}

func (s *Supplier) Tag() string { return tag }

func (s *Supplier) FeedPaths() []string { return []string{s.cfg.Feed, s.cfg.LightFeed} }

// rekord po prefiltrze; niezmienny aż do normalizacji
type filtered struct {
	prod  product
	offer *lightOffer // nil gdy SKU nie ma w feedzie light
	price float64
	qty   int
}

func (s *Supplier) Run(ctx context.Context, deps suppliers.Deps) ([]export.Row, suppliers.Stats, error) {
	var st suppliers.Stats

	light, err := parseLight(s.cfg.LightFeed)
	if err != nil {
		return nil, st, err
	}
	prods, err := parseFeed(s.cfg.Feed)
	if err != nil {
		return nil, st, err
	}
	st.Parsed = len(prods)

	kept := s.prefilter(prods, light, deps.Filters)
	st.Kept = len(kept)
	s.log.Info().Int("parsed", st.Parsed).Int("kept", st.Kept).Msg("prefiltr zakończony")

	rows, fails, err := s.normalize(ctx, kept, deps)
	st.TrFails = fails
	return rows, st, err
}

// prefilter łączy katalog z feedem light po SKU i tnie po progach.
// Kolejność dokumentu zostaje zachowana.
func (s *Supplier) prefilter(prods []product, light map[string]*lightOffer, f suppliers.Filters) []filtered {
	var out []filtered
	for _, p := range prods {
		offer := light[p.ID] // nil → cena 0, stan 0: wypadnie na progach
		price := offer.eurPrice()
		qty := offer.totalQty()
		if !f.Keep(price, qty) {
			continue
		}
		out = append(out, filtered{prod: p, offer: offer, price: price, qty: qty})
	}
	return out
}

func (s *Supplier) normalize(ctx context.Context, recs []filtered, deps suppliers.Deps) ([]export.Row, int, error) {
	fails := 0

	// trzy osobne batche: każde pole to osobny koszt/powierzchnia błędów
	names := make([]string, len(recs))
	descs := make([]string, len(recs))
	cats := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.prod.Name
		descs[i] = r.prod.Description
		cats[i] = r.prod.Category
	}
	var n int
	names, n = deps.Tr.Batch(ctx, names)
	fails += n
	descs, n = deps.Tr.Batch(ctx, descs)
	fails += n
	cats, n = deps.Tr.Batch(ctx, cats)
	fails += n

	cp := export.NewCheckpointer(s.log, deps.PartialsDir, tag, deps.CheckpointRows)

	rows := make([]export.Row, 0, len(recs))
	for i, r := range recs {
		variants, n := s.variants(ctx, r, deps)
		fails += n
		params, n := s.params(ctx, r.prod.Params, deps)
		fails += n
		main, extra := images(r.prod)

		row := export.Row{
			SKU:         r.prod.ID,
			Name:        names[i],
			Description: descs[i],
			Barcode:     barcodes(r.prod.Stock),
			Category:    cats[i],
			Delivery:    strings.TrimSpace(r.prod.Delivery),
			Image:       main,
			ImagesExtra: extra,
			Variants:    variants,
			Params:      params,
			Qty:         r.qty,
			Price:       r.price,
			Supplier:    tag,
		}
		rows = append(rows, row)
		if err := cp.Add(row); err != nil {
			return nil, fails, err
		}
	}
	if err := cp.Flush(); err != nil {
		return nil, fails, err
	}
	return rows, fails, nil
}

// variants skleja "etykieta (ilość) [kod]" dla wariantów z dodatnim stanem.
func (s *Supplier) variants(ctx context.Context, r filtered, deps suppliers.Deps) (string, int) {
	fails := 0
	var parts []string
	for _, it := range r.prod.Stock {
		qty := r.offer.optionQty(it.Option)
		if qty <= 0 {
			continue
		}
		label := strings.TrimSpace(it.Label)
		if label == "" {
			label = it.Option
		}
		tr, err := deps.Tr.Text(ctx, label)
		if err != nil {
			fails++
		}
		parts = append(parts, fmt.Sprintf("%s (%d) [%s]", tr, qty, it.Option))
	}
	return strings.Join(parts, ", "), fails
}

// params skleja "nazwa: wartość"; pary bez nazwy albo wartości pomijamy.
func (s *Supplier) params(ctx context.Context, ps []param, deps suppliers.Deps) (string, int) {
	fails := 0
	var parts []string
	for _, p := range ps {
		name := strings.TrimSpace(p.Name)
		val := strings.TrimSpace(p.Value)
		if name == "" || val == "" {
			continue
		}
		trName, err := deps.Tr.Text(ctx, name)
		if err != nil {
			fails++
		}
		trVal, err := deps.Tr.Text(ctx, val)
		if err != nil {
			fails++
		}
		parts = append(parts, trName+": "+trVal)
	}
	return strings.Join(parts, "; "), fails
}

func barcodes(stock []stockItem) string {
	var eans []string
	for _, it := range stock {
		if e := strings.TrimSpace(it.EAN); e != "" {
			eans = append(eans, e)
		}
	}
	return strings.Join(eans, ", ")
}

// images: zdjęcie główne produktu + zdjęcia wariantów jako dodatkowe
func images(p product) (main, extra string) {
	var urls []string
	if u := strings.TrimSpace(p.URL); u != "" {
		urls = append(urls, u)
	}
	for _, it := range p.Stock {
		if u := strings.TrimSpace(it.Img); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return "", ""
	}
	return urls[0], strings.Join(urls[1:], ", ")
}

func factory(log zerolog.Logger, raw json.RawMessage) (suppliers.Supplier, error) {
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &Supplier{log: log, cfg: cfg}, nil
}

func init() {
	suppliers.Register(tag, factory)
}
