package format

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

const blockSelector = "p, div, li, br, tr, h1, h2, h3, h4, h5, h6"

// PlainText returns the visible text of an HTML fragment with whitespace
// collapsed. Job descriptions from hh.ru arrive as HTML.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapse(html)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml(" ")
	})

	return collapse(doc.Text())
}

func collapse(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// Truncate shortens s to at most n runes, ending with "…" when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// Skills lists up to limit skills and summarises the rest as "+N".
// A non-positive limit lists everything.
func Skills(skills []string, limit int) string {
	if limit <= 0 || len(skills) <= limit {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(skills[:limit], ", "), len(skills)-limit)
}
