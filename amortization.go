package finmath

import (
	"math"

	"github.com/shopspring/decimal"
)

// payment is the fixed installment of a loan of pv over n periods at rho
// per period, leaving fv to be paid with the last installment.
func payment(rho, n, pv, fv float64) float64 {
	if rho == 0 {
		return (pv + fv) / n
	}
	g := math.Pow(1+rho, n)
	return rho * (pv*g + fv) / (g - 1)
}

// balance is the outstanding balance after k installments of pmt.
func balance(rho, k, pv, pmt float64) float64 {
	if rho == 0 {
		return pv - pmt*k
	}
	g := math.Pow(1+rho, k)
	return pv*g - pmt*(g-1)/rho
}

func checkLoan(op string, rho, n float64) error {
	if n <= 0 {
		return domainError(op, "periods", n, "must be positive")
	}
	if rho <= -1 {
		return domainError(op, "rate", rho, "must be greater than -1")
	}
	return nil
}

func checkPeriod(op string, k, n float64) error {
	if k < 1 || k > n {
		return domainError(op, "period", k, "must be within [1, periods]")
	}
	return nil
}

// PaymentAmount returns the fixed installment repaying principal over periods
// at rate per period, so that futureValue remains to be paid with the last
// installment:
//
//	rate*(principal*(1+rate)^periods + futureValue) / ((1+rate)^periods - 1)
//
// The amount is positive for a positive principal. Arguments are broadcast
// together, see Array; pass the zero Array for no futureValue.
func PaymentAmount(rate, periods, principal, futureValue Array) (Array, error) {
	const op = "PaymentAmount"
	return apply(op, func(x []float64) (float64, error) {
		rho, n, pv, fv := x[0], x[1], x[2], x[3]
		if err := checkLoan(op, rho, n); err != nil {
			return 0, err
		}
		return payment(rho, n, pv, fv), nil
	}, rate, periods, principal, futureValue)
}

// PaymentInterest returns the interest part of the installment due at period
// (1-indexed): rate applied to the balance outstanding at the start of that
// period.
func PaymentInterest(rate, period, periods, principal, futureValue Array) (Array, error) {
	const op = "PaymentInterest"
	return apply(op, func(x []float64) (float64, error) {
		interest, _, err := split(op, x[0], x[1], x[2], x[3], x[4])
		return interest, err
	}, rate, period, periods, principal, futureValue)
}

// PaymentPrincipal returns the principal part of the installment due at
// period (1-indexed), that is PaymentAmount - PaymentInterest.
func PaymentPrincipal(rate, period, periods, principal, futureValue Array) (Array, error) {
	const op = "PaymentPrincipal"
	return apply(op, func(x []float64) (float64, error) {
		_, principal, err := split(op, x[0], x[1], x[2], x[3], x[4])
		return principal, err
	}, rate, period, periods, principal, futureValue)
}

// split decomposes the k-th installment into interest and principal.
func split(op string, rho, k, n, pv, fv float64) (interest, principal float64, err error) {
	if err := checkLoan(op, rho, n); err != nil {
		return 0, 0, err
	}
	if err := checkPeriod(op, k, n); err != nil {
		return 0, 0, err
	}
	pmt := payment(rho, n, pv, fv)
	interest = rho * balance(rho, k-1, pv, pmt)
	return interest, pmt - interest, nil
}

// Installment is one row of an amortization Schedule.
type Installment struct {
	Period    int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64 // outstanding after this installment
}

// Schedule is the period by period amortization table of a fixed rate loan.
type Schedule struct {
	Rate        float64 // per period
	Principal   float64
	FutureValue float64
	Rows        []Installment
}

// NewSchedule returns the amortization table of principal over periods at
// rate per period.
func NewSchedule(rate float64, periods int, principal, futureValue float64) (*Schedule, error) {
	const op = "NewSchedule"
	n := float64(periods)
	if err := checkLoan(op, rate, n); err != nil {
		return nil, err
	}
	pmt := payment(rate, n, principal, futureValue)
	s := &Schedule{Rate: rate, Principal: principal, FutureValue: futureValue, Rows: make([]Installment, periods)}
	b := principal
	for k := 1; k <= periods; k++ {
		interest := rate * balance(rate, float64(k-1), principal, pmt)
		b -= pmt - interest
		s.Rows[k-1] = Installment{Period: k, Payment: pmt, Interest: interest, Principal: pmt - interest, Balance: b}
	}
	return s, nil
}

// Payment returns the fixed installment, 0 for an empty schedule.
func (s *Schedule) Payment() float64 {
	if len(s.Rows) == 0 {
		return 0
	}
	return s.Rows[0].Payment
}

// TotalPaid returns the sum of all installments.
func (s *Schedule) TotalPaid() float64 {
	var total float64
	for _, r := range s.Rows {
		total += r.Payment
	}
	return total
}

// TotalInterest returns the sum of the interest parts.
func (s *Schedule) TotalInterest() float64 {
	var total float64
	for _, r := range s.Rows {
		total += r.Interest
	}
	return total
}

// Round returns a copy of the schedule where every amount is rounded to
// places decimals, as a lender would bill it. Interest is computed on the
// rounded balance and the last installment absorbs the rounding residue so
// that the final balance is exactly -FutureValue.
func (s *Schedule) Round(places int32) *Schedule {
	r := &Schedule{Rate: s.Rate, Principal: s.Principal, FutureValue: s.FutureValue, Rows: make([]Installment, len(s.Rows))}
	rate := decimal.NewFromFloat(s.Rate)
	pmt := decimal.NewFromFloat(s.Payment()).Round(places)
	target := decimal.NewFromFloat(-s.FutureValue).Round(places)
	b := decimal.NewFromFloat(s.Principal).Round(places)
	for i, row := range s.Rows {
		interest := b.Mul(rate).Round(places)
		principal := pmt.Sub(interest)
		if i == len(s.Rows)-1 {
			principal = b.Sub(target)
		}
		b = b.Sub(principal)
		r.Rows[i] = Installment{
			Period:    row.Period,
			Payment:   interest.Add(principal).InexactFloat64(),
			Interest:  interest.InexactFloat64(),
			Principal: principal.InexactFloat64(),
			Balance:   b.InexactFloat64(),
		}
	}
	return r
}
