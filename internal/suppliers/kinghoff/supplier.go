// internal/suppliers/kinghoff/supplier.go
package kinghoff

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bartek5186/hurt2sklep/internal/export"
	"github.com/bartek5186/hurt2sklep/internal/suppliers"
	"github.com/rs/zerolog"
)

const tag = "kinghoff"

type Config struct {
	Feed string `json:"feed"`
}

type Supplier struct {
	log zerolog.Logger
	cfg Config
}

func (s *Supplier) Tag() string { return tag }

func (s *Supplier) FeedPaths() []string { return []string{s.cfg.Feed} }

// Feed płaski: <products><item>… — cena i stan wprost w polach,
// bez joinu i bez wariantów.
type item struct {
	ID       string   `xml:"prod_id"`
	Name     string   `xml:"prod_name"`
	Desc     string   `xml:"prod_desc"`
	CatPath  string   `xml:"cat_path"`
	Shipping string   `xml:"prod_shipping_time"`
	Images   []string `xml:"prod_img>img"`
	Price    string   `xml:"prod_price"`
	Amount   string   `xml:"prod_amount"`
	EAN      string   `xml:"prod_ean"`
}

// rekord po prefiltrze
type filtered struct {
	it    item
	price float64
	qty   int
}

func parseFeed(path string) ([]item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kinghoff: otwarcie feedu: %w", err)
	}
	defer f.Close()

	dec := suppliers.NewXMLDecoder(f)
	var out []item
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kinghoff: parse feedu: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || !strings.EqualFold(se.Name.Local, "item") {
			continue
		}
		var it item
		if err := dec.DecodeElement(&it, &se); err != nil {
			return nil, fmt.Errorf("kinghoff: parse pozycji: %w", err)
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *Supplier) Run(ctx context.Context, deps suppliers.Deps) ([]export.Row, suppliers.Stats, error) {
	var st suppliers.Stats

	items, err := parseFeed(s.cfg.Feed)
	if err != nil {
		return nil, st, err
	}
	st.Parsed = len(items)

	kept := prefilter(items, deps.Filters)
	st.Kept = len(kept)
	s.log.Info().Int("parsed", st.Parsed).Int("kept", st.Kept).Msg("prefiltr zakończony")

	rows, fails, err := s.normalize(ctx, kept, deps)
	st.TrFails = fails
	return rows, st, err
}

func prefilter(items []item, f suppliers.Filters) []filtered {
	var out []filtered
	for _, it := range items {
		price := suppliers.F64(it.Price)
		qty := int(suppliers.F64(it.Amount))
		if !f.Keep(price, qty) {
			continue
		}
		out = append(out, filtered{it: it, price: price, qty: qty})
	}
	return out
}

func (s *Supplier) normalize(ctx context.Context, recs []filtered, deps suppliers.Deps) ([]export.Row, int, error) {
	fails := 0

	names := make([]string, len(recs))
	descs := make([]string, len(recs))
	cats := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.it.Name
		descs[i] = r.it.Desc
		cats[i] = r.it.CatPath
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
		main, extra := images(r.it.Images)
		row := export.Row{
			SKU:         r.it.ID,
			Name:        names[i],
			Description: descs[i],
			Barcode:     strings.TrimSpace(r.it.EAN),
			Category:    cats[i],
			Delivery:    strings.TrimSpace(r.it.Shipping),
			Image:       main,
			ImagesExtra: extra,
			// brak wariantów i parametrów w schemacie tego dostawcy
			Qty:      r.qty,
			Price:    r.price,
			Supplier: tag,
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

// images: pierwsze zdjęcie jako główne, reszta jako dodatkowe
func images(urls []string) (main, extra string) {
	var clean []string
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			clean = append(clean, u)
		}
	}
	if len(clean) == 0 {
		return "", ""
	}
	return clean[0], strings.Join(clean[1:], ", ")
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
