package format

import (
	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/goodsign/monday"
)

var dateLayouts = map[string]struct {
	layout string
	locale monday.Locale
	suffix string
}{
	LocaleRU: {"2 January 2006", monday.LocaleRuRU, " г."},
	LocaleEN: {"January 2, 2006", monday.LocaleEnUS, ""},
}

// Date renders an ISO date or datetime in long form, e.g. "15 января 2024 г."
// or "January 15, 2024". The calendar date is taken as written, without zone
// conversion. Input that does not parse is returned unchanged.
func (f *Formatter) Date(iso string) string {
	ts, err := models.ParseTimestamp(iso)
	if err != nil || ts.IsZero() {
		return iso
	}

	d := dateLayouts[f.locale]
	return monday.Format(ts.Time, d.layout, d.locale) + d.suffix
}
