package kinghoff

import (
	"context"
	"path/filepath"
	"testing"

	conf "github.com/bartek5186/hurt2sklep/internal/config"
	"github.com/bartek5186/hurt2sklep/internal/suppliers"
	"github.com/bartek5186/hurt2sklep/internal/translate"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSupplier() *Supplier {
	return &Supplier{
		log: zerolog.Nop(),
		cfg: Config{Feed: filepath.Join("testdata", "feed.xml")},
	}
}

func testDeps(t *testing.T, f suppliers.Filters) suppliers.Deps {
	t.Helper()
	return suppliers.Deps{
		Tr:             translate.New(zerolog.Nop(), conf.TranslateConfig{Enabled: false}, ""),
		Filters:        f,
		PartialsDir:    t.TempDir(),
		CheckpointRows: 1000,
	}
}

func TestParseFeed(t *testing.T) {
	items, err := parseFeed(filepath.Join("testdata", "feed.xml"))
	require.NoError(t, err)
	require.Len(t, items, 2)

	it := items[0]
	assert.Equal(t, "566", it.ID)
	assert.Equal(t, "10-element cookware set KINGHOFF KH-4449", it.Name)
	assert.Equal(t, "Cookware/Sets", it.CatPath)
	assert.Equal(t, "4", it.Shipping)
	assert.Len(t, it.Images, 3)
	assert.Equal(t, "50.00", it.Price)
	assert.Equal(t, "5908287244498", it.EAN)
}

func TestPrefilterThresholds(t *testing.T) {
	items, err := parseFeed(filepath.Join("testdata", "feed.xml"))
	require.NoError(t, err)

	// próg 240: pozycja 50.00/12 odpada
	kept := prefilter(items, suppliers.Filters{MinPrice: 240, MinQty: 5})
	assert.Empty(t, kept)

	// obniżony próg ceny: wchodzi 566; 731 (3 szt.) odpada na stanie
	kept = prefilter(items, suppliers.Filters{MinPrice: 10, MinQty: 5})
	require.Len(t, kept, 1)
	assert.Equal(t, "566", kept[0].it.ID)
	assert.Equal(t, 50.0, kept[0].price)
	assert.Equal(t, 12, kept[0].qty)

	// przecinek dziesiętny w cenie: 12,50 daje 12.5
	kept = prefilter(items, suppliers.Filters{MinPrice: 12, MinQty: 3})
	require.Len(t, kept, 2)
	assert.Equal(t, 12.5, kept[1].price)
}

func TestRunNormalizedRows(t *testing.T) {
	s := testSupplier()
	rows, st, err := s.Run(context.Background(), testDeps(t, suppliers.Filters{MinPrice: 10, MinQty: 5}))
	require.NoError(t, err)
	assert.Equal(t, 2, st.Parsed)
	assert.Equal(t, 1, st.Kept)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "566", r.SKU)
	assert.Equal(t, "10-element cookware set KINGHOFF KH-4449", r.Name)
	assert.Equal(t, "5908287244498", r.Barcode)
	assert.Equal(t, "Cookware/Sets", r.Category)
	assert.Equal(t, "4", r.Delivery)
	assert.Equal(t, "https://kinghoff.online/images/kinghoff/0-1000/10-ELEMENTOWY-ZESTAW-GARNKOW-KINGHOFF-KH-4449_[854]_1200.jpg", r.Image)
	assert.Equal(t,
		"https://kinghoff.online/images/kinghoff/26000-27000/10-ELEMENTOWY-ZESTAW-GARNKOW-KINGHOFF-KH-4449_[26889]_1200.jpg, "+
			"https://kinghoff.online/images/kinghoff/26000-27000/10-ELEMENTOWY-ZESTAW-GARNKOW-KINGHOFF-KH-4449_[26890]_1200.jpg",
		r.ImagesExtra)
	assert.Empty(t, r.Variants, "schemat bez wariantów")
	assert.Empty(t, r.Params, "schemat bez parametrów")
	assert.Equal(t, 12, r.Qty)
	assert.Equal(t, 50.0, r.Price)
	assert.Equal(t, "kinghoff", r.Supplier)
}

func TestRunEmptyAfterFilters(t *testing.T) {
	s := testSupplier()
	rows, st, err := s.Run(context.Background(), testDeps(t, suppliers.Filters{MinPrice: 9999, MinQty: 1}))
	require.NoError(t, err)
	assert.Empty(t, rows, "pusty wynik filtrów to nie błąd")
	assert.Equal(t, 2, st.Parsed)
	assert.Zero(t, st.Kept)
}
