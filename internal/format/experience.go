package format

import "fmt"

// Experience levels understood by the job search endpoint.
const (
	LevelJunior = "junior"
	LevelMiddle = "middle"
	LevelSenior = "senior"
)

// ExperienceLevel maps years of experience to a search level. nil yields "".
func ExperienceLevel(years *int) string {
	if years == nil {
		return ""
	}
	switch {
	case *years < 1:
		return LevelJunior
	case *years <= 3:
		return LevelMiddle
	default:
		return LevelSenior
	}
}

// ExperienceYears renders a year count with the right plural form.
func (f *Formatter) ExperienceYears(n int) string {
	if f.locale == LocaleEN {
		if n == 1 || n == -1 {
			return fmt.Sprintf("%d year", n)
		}
		return fmt.Sprintf("%d years", n)
	}
	return fmt.Sprintf("%d %s", n, ruYears(n))
}

func ruYears(n int) string {
	if n < 0 {
		n = -n
	}
	switch mod10, mod100 := n%10, n%100; {
	case mod10 == 1 && mod100 != 11:
		return "год"
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return "года"
	default:
		return "лет"
	}
}
