// internal/suppliers/b2bsport/feed.go
package b2bsport

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bartek5186/hurt2sklep/internal/suppliers"
)

// Feed szczegółowy: <products><product>…
type product struct {
	ID          string      `xml:"id"`
	Name        string      `xml:"name"`
	Description string      `xml:"description"`
	Category    string      `xml:"category"`
	Delivery    string      `xml:"delivery"`
	URL         string      `xml:"url"`
	Params      []param     `xml:"parameters>parameter"`
	Stock       []stockItem `xml:"stock>item"`
}

type param struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Pozycja magazynowa (wariant): name bywa puste, wtedy etykietą jest option.
type stockItem struct {
	Option string `xml:"option,attr"`
	Label  string `xml:"name,attr"`
	EAN    string `xml:"ean,attr"`
	UID    string `xml:"uid,attr"`
	Img    string `xml:"img,attr"`
}

// Feed light (stany+ceny): <data><o i="sku"><p c="EUR" r=".." w=".."/><v i="opcja">5</v>…
type lightOffer struct {
	SKU    string       `xml:"i,attr"`
	Prices []lightPrice `xml:"p"`
	Quants []lightQty   `xml:"v"`
}

type lightPrice struct {
	Currency  string `xml:"c,attr"`
	Retail    string `xml:"r,attr"`
	Wholesale string `xml:"w,attr"`
}

type lightQty struct {
	Option string `xml:"i,attr"`
	Qty    string `xml:",chardata"`
}

// cena zakupu: pierwszy wpis <p> w EUR, atrybut w (hurt); brak wpisu = 0
func (o *lightOffer) eurPrice() float64 {
	if o == nil {
		return 0
	}
	for _, p := range o.Prices {
		if strings.EqualFold(p.Currency, "EUR") {
			return suppliers.F64(p.Wholesale)
		}
	}
	return 0
}

// łączny stan: suma wszystkich <v> pod SKU; brak wpisu = 0
func (o *lightOffer) totalQty() int {
	if o == nil {
		return 0
	}
	sum := 0
	for _, v := range o.Quants {
		sum += int(suppliers.I64(v.Qty))
	}
	return sum
}

// stan konkretnej opcji (wariantu)
func (o *lightOffer) optionQty(option string) int {
	if o == nil {
		return 0
	}
	for _, v := range o.Quants {
		if v.Option == option {
			return int(suppliers.I64(v.Qty))
		}
	}
	return 0
}

// parseFeed czyta feed szczegółowy strumieniowo, produkt po produkcie.
func parseFeed(path string) ([]product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("b2bsport: otwarcie feedu: %w", err)
	}
	defer f.Close()

	dec := suppliers.NewXMLDecoder(f)
	var out []product
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("b2bsport: parse feedu: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || !strings.EqualFold(se.Name.Local, "product") {
			continue
		}
		var p product
		if err := dec.DecodeElement(&p, &se); err != nil {
			return nil, fmt.Errorf("b2bsport: parse produktu: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// parseLight czyta feed light i buduje lookup po SKU.
func parseLight(path string) (map[string]*lightOffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("b2bsport: otwarcie feedu light: %w", err)
	}
	defer f.Close()

	dec := suppliers.NewXMLDecoder(f)
	out := map[string]*lightOffer{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("b2bsport: parse feedu light: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || !strings.EqualFold(se.Name.Local, "o") {
			continue
		}
		var o lightOffer
		if err := dec.DecodeElement(&o, &se); err != nil {
			return nil, fmt.Errorf("b2bsport: parse oferty light: %w", err)
		}
		out[o.SKU] = &o
	}
	return out, nil
}
