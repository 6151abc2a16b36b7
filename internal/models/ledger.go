package models

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// NoEventName is shown in listings for transactions without an event.
const NoEventName = "N/A"

// MaxAmount bounds amount and paid_amount on a single transaction.
const MaxAmount = 1e15

// ErrAmountTooLarge is returned when a payment would push paid_amount past
// MaxAmount.
var ErrAmountTooLarge = errors.New("amount too large")

// Person is a counterparty for transactions.
type Person struct {
	ID   int64
	Name string
}

// Event is an optional grouping label for transactions.
type Event struct {
	ID   int64
	Name string
}

// Transaction is money owed by or to a Person, tracked to settlement.
type Transaction struct {
	ID          int64
	PersonID    int64
	EventID     *int64
	Amount      float64
	PaidAmount  float64
	Reason      string
	DueDate     time.Time
	Status      bool
	CreatedDate time.Time
}

// TransactionDetail is a Transaction joined with its person and event names.
type TransactionDetail struct {
	Transaction
	PersonName string
	EventName  *string
}

// EventLabel returns the event name or the NoEventName placeholder.
func (d TransactionDetail) EventLabel() string {
	if d.EventName == nil {
		return NoEventName
	}
	return *d.EventName
}

// IsPaidOff reports whether paid_amount has reached amount.
func (t *Transaction) IsPaidOff() bool {
	return decimal.NewFromFloat(t.PaidAmount).GreaterThanOrEqual(decimal.NewFromFloat(t.Amount))
}

// Settle forces status true once the transaction is paid off. It never
// clears status: a manual override to true is left alone.
func (t *Transaction) Settle() {
	if t.IsPaidOff() {
		t.Status = true
	}
}

// ApplyPayment adds amount to paid_amount and settles if the threshold is
// crossed. Overpayment is accepted up to MaxAmount; past it the transaction
// is left unchanged and ErrAmountTooLarge is returned.
func (t *Transaction) ApplyPayment(amount float64) error {
	paid := decimal.NewFromFloat(t.PaidAmount).Add(decimal.NewFromFloat(amount))
	if paid.GreaterThan(decimal.NewFromFloat(MaxAmount)) {
		return ErrAmountTooLarge
	}
	t.PaidAmount = paid.InexactFloat64()
	t.Settle()
	return nil
}

// Outstanding is what is still owed, never negative.
func (t *Transaction) Outstanding() float64 {
	rest := decimal.NewFromFloat(t.Amount).Sub(decimal.NewFromFloat(t.PaidAmount))
	if rest.IsNegative() {
		return 0
	}
	return rest.InexactFloat64()
}

// PersonTotal aggregates a person's transactions.
type PersonTotal struct {
	PersonID         int64
	PersonName       string
	TotalAmount      float64
	TotalPaid        float64
	Outstanding      float64
	OpenTransactions int
}

// Totals groups details by person in first-seen order.
func Totals(details []*TransactionDetail) []PersonTotal {
	index := make(map[int64]int)
	var totals []PersonTotal
	sums := make(map[int64][3]decimal.Decimal)

	for _, d := range details {
		i, ok := index[d.PersonID]
		if !ok {
			i = len(totals)
			index[d.PersonID] = i
			totals = append(totals, PersonTotal{PersonID: d.PersonID, PersonName: d.PersonName})
		}
		s := sums[d.PersonID]
		s[0] = s[0].Add(decimal.NewFromFloat(d.Amount))
		s[1] = s[1].Add(decimal.NewFromFloat(d.PaidAmount))
		s[2] = s[2].Add(decimal.NewFromFloat(d.Outstanding()))
		sums[d.PersonID] = s
		if !d.Status {
			totals[i].OpenTransactions++
		}
	}

	for i := range totals {
		s := sums[totals[i].PersonID]
		totals[i].TotalAmount = finite(s[0])
		totals[i].TotalPaid = finite(s[1])
		totals[i].Outstanding = finite(s[2])
	}
	return totals
}

// finite converts d, saturating at the largest float64 instead of +Inf.
func finite(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return math.Copysign(math.MaxFloat64, f)
	}
	return f
}
