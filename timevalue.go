package finmath

import "math"

// growth returns the compounding factor (1 + rate/m)^(m*years).
func growth(op string, rate, years, m float64) (float64, error) {
	if m <= 0 || m != math.Trunc(m) {
		return 0, domainError(op, "compounding frequency", m, "must be a positive integer")
	}
	rho := rate / m
	if rho == -1 {
		return 0, domainError(op, "rate", rate, "rate per period must not be -1")
	}
	return math.Pow(1+rho, m*years), nil
}

// PresentValue discounts a single cashFlow received after periods years at
// the nominal annual rate compounded m times a year:
//
//	cashFlow / (1 + rate/m)^(m*periods)
//
// Arguments are broadcast together, see Array.
func PresentValue(cashFlow, rate, periods, m Array) (Array, error) {
	return apply("PresentValue", func(x []float64) (float64, error) {
		g, err := growth("PresentValue", x[1], x[2], x[3])
		return x[0] / g, err
	}, cashFlow, rate, periods, m)
}

// FutureValue compounds a single cashFlow for periods years at the nominal
// annual rate compounded m times a year:
//
//	cashFlow * (1 + rate/m)^(m*periods)
//
// Arguments are broadcast together, see Array.
func FutureValue(cashFlow, rate, periods, m Array) (Array, error) {
	return apply("FutureValue", func(x []float64) (float64, error) {
		g, err := growth("FutureValue", x[1], x[2], x[3])
		return x[0] * g, err
	}, cashFlow, rate, periods, m)
}

// PresentValueAnnuity returns the value today of an ordinary annuity paying
// payment at the end of each of the m*years periods, at the nominal annual
// rate compounded m times a year.
func PresentValueAnnuity(payment, rate, years float64, m int) (float64, error) {
	if err := checkFrequency("PresentValueAnnuity", m); err != nil {
		return 0, err
	}
	rho, n := rate/float64(m), float64(m)*years
	if rho == 0 {
		return payment * n, nil
	}
	return payment * (1 - math.Pow(1+rho, -n)) / rho, nil
}

// FutureValueAnnuity returns the value at the last payment of an ordinary
// annuity paying payment at the end of each of the m*years periods.
func FutureValueAnnuity(payment, rate, years float64, m int) (float64, error) {
	if err := checkFrequency("FutureValueAnnuity", m); err != nil {
		return 0, err
	}
	rho, n := rate/float64(m), float64(m)*years
	if rho == 0 {
		return payment * n, nil
	}
	return payment * (math.Pow(1+rho, n) - 1) / rho, nil
}
