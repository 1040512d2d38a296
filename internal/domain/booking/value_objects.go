package booking

import (
	"time"

	"travel-loyalty-booking/internal/pkg/errs"
)

var (
	ErrNegativeAmount   = errs.New("amount cannot be negative")
	ErrInvalidDateRange = errs.New("end date must not be before start date")
)

// Money is an amount in minor currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (d DateRange) Start() time.Time { return d.start }
func (d DateRange) End() time.Time   { return d.end }

// Cancellation records who cancelled a line item, when and why.
type Cancellation struct {
	At     time.Time
	Reason string
	By     string
}

type Totals struct {
	Cash           Money
	TaxesAndFees   Money
	PointsRedeemed int64
	PointsEarned   int64
}
