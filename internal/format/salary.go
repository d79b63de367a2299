package format

import (
	"fmt"

	"github.com/dmitrijs2005/jobpilot/internal/common"
)

// present treats zero as unspecified; the backend stores 0 for "no bound".
func present(v *int64) bool {
	return v != nil && *v != 0
}

// Salary renders a salary range: both bounds as "A - B CUR", a single bound
// as "от A CUR" / "до B CUR", none as the locale's "not specified". An empty
// currency means RUB.
func (f *Formatter) Salary(from, to *int64, currency string) string {
	if currency == "" {
		currency = common.DefaultCurrency
	}

	switch {
	case present(from) && present(to):
		return fmt.Sprintf("%s - %s %s", f.Number(*from), f.Number(*to), currency)
	case present(from):
		return fmt.Sprintf("%s %s %s", f.text.from, f.Number(*from), currency)
	case present(to):
		return fmt.Sprintf("%s %s %s", f.text.upTo, f.Number(*to), currency)
	default:
		return f.text.unspecified
	}
}
