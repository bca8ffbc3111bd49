package finmath

import "math"

func checkFrequency(op string, m int) error {
	if m <= 0 {
		return domainError(op, "compounding frequency", float64(m), "must be a positive integer")
	}
	return nil
}

// NominalToEffectivePerPeriod returns the rate per compounding period of the
// nominal annual rate r compounded m times a year.
//
// A 12% nominal rate compounded monthly is 1% per month.
func NominalToEffectivePerPeriod(r float64, m int) (float64, error) {
	if err := checkFrequency("NominalToEffectivePerPeriod", m); err != nil {
		return 0, err
	}
	return r / float64(m), nil
}

// EffectiveAnnualRate returns the yearly yield of the nominal annual rate r
// compounded m times a year: (1 + r/m)^m - 1.
func EffectiveAnnualRate(r float64, m int) (float64, error) {
	if err := checkFrequency("EffectiveAnnualRate", m); err != nil {
		return 0, err
	}
	return math.Pow(1+r/float64(m), float64(m)) - 1, nil
}

// AnnualizedRate returns the yearly equivalent of a rate earned on each of
// the m periods of a year: (1 + rPerPeriod)^m - 1.
func AnnualizedRate(rPerPeriod float64, m int) (float64, error) {
	if err := checkFrequency("AnnualizedRate", m); err != nil {
		return 0, err
	}
	return math.Pow(1+rPerPeriod, float64(m)) - 1, nil
}
