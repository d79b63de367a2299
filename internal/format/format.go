// Package format renders backend values for people: salary ranges, dates,
// match-score bands and a few related helpers used by the CLI cards.
//
// Every function is pure and total. Invalid input never panics; it renders
// as the locale's "not specified" text or is returned unchanged.
//
// A Formatter is bound to one locale. The package-level functions use the
// Russian formatter, which is what the backend's users see.
package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported locales.
const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

type phrases struct {
	unspecified string
	from        string
	upTo        string
	noScore     string
}

var localePhrases = map[string]phrases{
	LocaleRU: {unspecified: "Не указана", from: "от", upTo: "до", noScore: "—"},
	LocaleEN: {unspecified: "Not specified", from: "from", upTo: "up to", noScore: "—"},
}

// Formatter renders values for one locale.
type Formatter struct {
	locale  string
	printer *message.Printer
	text    phrases
}

// New returns a formatter for locale. Unknown locales fall back to Russian.
func New(locale string) *Formatter {
	locale = strings.ToLower(strings.TrimSpace(locale))
	text, ok := localePhrases[locale]
	if !ok {
		locale = LocaleRU
		text = localePhrases[LocaleRU]
	}

	tag := language.Russian
	if locale == LocaleEN {
		tag = language.English
	}

	return &Formatter{locale: locale, printer: message.NewPrinter(tag), text: text}
}

// Locale reports the locale the formatter renders for.
func (f *Formatter) Locale() string {
	return f.locale
}

// Number groups thousands the way the locale does.
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

var defaultFormatter = New(LocaleRU)

func Salary(from, to *int64, currency string) string { return defaultFormatter.Salary(from, to, currency) }
func Date(iso string) string                         { return defaultFormatter.Date(iso) }
func Percent(score *float64) string                  { return defaultFormatter.Percent(score) }
func ExperienceYears(n int) string                   { return defaultFormatter.ExperienceYears(n) }
