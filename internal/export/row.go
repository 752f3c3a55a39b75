// internal/export/row.go
package export

// Row to jeden wiersz wspólnego schematu po normalizacji feedu.
// FinalPrice uzupełnia silnik marż dopiero po scaleniu dostawców
// (w partialach zostaje 0).
type Row struct {
	SKU         string
	Name        string
	Description string
	Barcode     string // EAN-y po przecinku
	Category    string
	Delivery    string // dni
	Image       string // zdjęcie główne
	ImagesExtra string // dodatkowe, po przecinku
	Variants    string // "etykieta (ilość) [kod]" po przecinku
	Params      string // "nazwa: wartość" po średniku
	Qty         int
	Price       float64 // cena zakupu, EUR
	FinalPrice  int     // cena końcowa, pełne EUR
	Supplier    string
}

// Nagłówki prezentacyjne arkusza (kolejność = kolejność kolumn).
var headers = []string{
	"SKU",
	"Nazwa",
	"Opis",
	"EAN",
	"Kategoria",
	"Czas dostawy (dni)",
	"Zdjęcie",
	"Zdjęcia dodatkowe",
	"Warianty",
	"Parametry",
	"Ilość",
	"Cena zakupu",
	"Cena",
	"Dostawca",
}

func (r Row) cells() []interface{} {
	return []interface{}{
		r.SKU,
		r.Name,
		r.Description,
		r.Barcode,
		r.Category,
		r.Delivery,
		r.Image,
		r.ImagesExtra,
		r.Variants,
		r.Params,
		r.Qty,
		r.Price,
		r.FinalPrice,
		r.Supplier,
	}
}
