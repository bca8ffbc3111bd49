package renderer

import (
	"github.com/etnz/finmath"
)

// Loan holds the data of a loan report.
type Loan struct {
	Currency      string          `json:"currency"`
	Rate          finmath.Percent `json:"rate"` // per period
	Periods       int             `json:"periods"`
	Principal     finmath.Money   `json:"principal"`
	FutureValue   finmath.Money   `json:"futureValue"`
	Payment       finmath.Money   `json:"payment"`
	TotalPaid     finmath.Money   `json:"totalPaid"`
	TotalInterest finmath.Money   `json:"totalInterest"`
	Rows          []LoanRow       `json:"rows"`
}

// LoanRow is one installment of the schedule.
type LoanRow struct {
	Period    int           `json:"period"`
	Payment   finmath.Money `json:"payment"`
	Interest  finmath.Money `json:"interest"`
	Principal finmath.Money `json:"principal"`
	Balance   finmath.Money `json:"balance"`
}

// NewLoan creates a Loan report from an amortization schedule.
func NewLoan(s *finmath.Schedule, currency string) *Loan {
	l := &Loan{
		Currency:      currency,
		Rate:          finmath.PercentOf(s.Rate),
		Periods:       len(s.Rows),
		Principal:     finmath.M(s.Principal, currency),
		FutureValue:   finmath.M(s.FutureValue, currency),
		Payment:       finmath.M(s.Payment(), currency),
		TotalPaid:     finmath.M(s.TotalPaid(), currency),
		TotalInterest: finmath.M(s.TotalInterest(), currency),
		Rows:          make([]LoanRow, len(s.Rows)),
	}
	for i, r := range s.Rows {
		l.Rows[i] = LoanRow{
			Period:    r.Period,
			Payment:   finmath.M(r.Payment, currency),
			Interest:  finmath.M(r.Interest, currency),
			Principal: finmath.M(r.Principal, currency),
			Balance:   finmath.M(r.Balance, currency),
		}
	}
	return l
}
