package finmath

import "fmt"

// Percent is a rate expressed in percent: Percent(12.5) is 0.125.
type Percent float64

// PercentOf converts a rate (0.125) into a Percent (12.5).
func PercentOf(rate float64) Percent { return Percent(100 * rate) }

// Rate converts back to a rate.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
