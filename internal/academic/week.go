package academic

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/week-parity/pkg/dateutil"
)

// Parity represents the alternating week tag
type Parity int

const (
	Odd Parity = iota + 1
	Even
)

// String returns the label used in exports ("Нечётная" / "Чётная")
func (p Parity) String() string {
	switch p {
	case Odd:
		return "Нечётная"
	case Even:
		return "Чётная"
	default:
		return fmt.Sprintf("Parity(%d)", int(p))
	}
}

// Mark returns the short form: "*" for odd, "**" for even
func (p Parity) Mark() string {
	switch p {
	case Odd:
		return "*"
	case Even:
		return "**"
	default:
		return "?"
	}
}

// Next returns the parity of the following week
func (p Parity) Next() Parity {
	if p == Odd {
		return Even
	}
	return Odd
}

// ParseParity accepts a label in any case ("Нечётная", "НЕЧЕТНАЯ") or a mark ("*", "**")
func ParseParity(s string) (Parity, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "ё", "е")

	switch normalized {
	case "*", "нечетная", "odd":
		return Odd, nil
	case "**", "четная", "even":
		return Even, nil
	}
	return 0, fmt.Errorf("unknown parity %q", s)
}

// Week is one generated academic week. Start is always a Monday and End the following Sunday.
type Week struct {
	Number             int
	Start              time.Time
	End                time.Time
	Parity             Parity
	IsCurrent          bool
	ContainsSeptember1 bool
}

// Contains reports whether date falls within the week
func (w Week) Contains(date time.Time) bool {
	return dateutil.InRange(date, w.Start, w.End)
}
