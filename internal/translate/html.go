// internal/translate/html.go
package translate

import (
	"context"
	"regexp"
	"strings"
)

// Opisy w feedach niosą prosty inline-HTML: akapity i spany.
var (
	reInline = regexp.MustCompile(`(?is)<(p|span)\b[^>]*>(.*?)</(?:p|span)>`)
	reAnyTag = regexp.MustCompile(`<[^>]*>`)
)

// HTML tłumaczy wartość z ewentualnymi tagami <p>/<span>: zawartość każdego
// rozpoznanego taga tłumaczona jest osobno i wstawiana z powrotem w to samo
// miejsce (powtórzona fraza w dwóch tagach to dwa niezależne podstawienia).
// Gdy żaden rozpoznany tag nie pasuje, zdejmujemy wszystkie tagi i tłumaczymy
// pozostały tekst w całości. Zwraca wynik i liczbę nieudanych wywołań.
func (t *Translator) HTML(ctx context.Context, s string) (string, int) {
	if !t.enabled || strings.TrimSpace(s) == "" {
		return s, 0
	}

	fails := 0
	if reInline.MatchString(s) {
		out := reInline.ReplaceAllStringFunc(s, func(m string) string {
			openEnd := strings.Index(m, ">")
			closeStart := strings.LastIndex(m, "<")
			if openEnd < 0 || closeStart <= openEnd {
				return m
			}
			inner := m[openEnd+1 : closeStart]
			if strings.TrimSpace(inner) == "" {
				return m
			}
			tr, err := t.Text(ctx, inner)
			if err != nil {
				fails++
				return m
			}
			return m[:openEnd+1] + tr + m[closeStart:]
		})
		return out, fails
	}

	// brak rozpoznanych tagów — tekst traktujemy jako zwykły (tagi w śmieci)
	plain := reAnyTag.ReplaceAllString(s, "")
	tr, err := t.Text(ctx, plain)
	if err != nil {
		return s, 1
	}
	return tr, 0
}
