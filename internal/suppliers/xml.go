// internal/suppliers/xml.go
package suppliers

import (
	"bufio"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// NewXMLDecoder buduje dekoder z obsługą charsetów (feedy od dostawców
// potrafią przyjść w czymś innym niż UTF-8).
func NewXMLDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(bufio.NewReader(r))
	dec.CharsetReader = func(cs string, in io.Reader) (io.Reader, error) {
		return charset.NewReaderLabel(normalizeCharset(cs), in)
	}
	return dec
}

// normalizeCharset mapuje nietypowe etykiety na standardowe nazwy rozpoznawane przez charset.NewReaderLabel
func normalizeCharset(cs string) string {
	c := strings.TrimSpace(strings.ToLower(cs))
	switch c {
	case "latin ii", "latin-2", "latin2", "iso8859-2", "iso_8859-2":
		return "iso-8859-2"
	case "cp1250", "windows1250", "win-1250":
		return "windows-1250"
	default:
		return c
	}
}

// F64: luźna koercja liczby z feedu — przecinek dziesiętny na kropkę,
// puste/śmieci dają 0 (rekord i tak wypadnie na progach).
func F64(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func I64(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
