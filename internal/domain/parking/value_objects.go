package parking

import "errors"

var ErrNegativeCharge = errors.New("charge cannot be negative")

// Money is an amount in integer cents. All tariff arithmetic stays in cents,
// so two-decimal results are exact and never need floating point.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeCharge
	}
	return Money{cents: cents}, nil
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
