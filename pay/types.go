/*
Package pay provides the core pay computation engine.

PURPOSE:
  This package contains the types and rules for computing what an employee
  is owed. Pay is the sum of two independent policies:
  - a base pay policy (hourly, salaried, or none for freelancers)
  - an optional commission policy (per-commission rate, optional flat bonus)

  Every employee shape (hourly, hourly + commission, salaried, salaried +
  commission, freelancer, freelancer + bonus) is a configuration of the same
  Employee aggregate. There is no type per shape.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A monetary quantity with a currency label
  - Currency: The label attached to an Amount (no conversion is performed)

DESIGN PRINCIPLES:
  1. Immutability: Terms and employees are values, never mutated after construction
  2. Precision: Uses decimal.Decimal so 0.1 * 3 == 0.3
  3. No rounding: Results are exact products and sums
  4. Parity: Negative inputs are accepted arithmetically (see validate.go)

USAGE:
  emp := pay.Employee{
      Base:       pay.Hourly(100, 9),
      Commission: pay.Commission(100, 1),
  }
  total := emp.ComputePay() // 1000

SEE ALSO:
  - policy.go: Base pay and commission policies
  - employee.go: The Employee aggregate
  - validate.go: Optional non-negative validation
*/
package pay

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Monetary quantity with currency label
// =============================================================================

type Amount struct {
	Value    decimal.Decimal
	Currency Currency
}

type Currency string

// DefaultCurrency is used when a policy is built without an explicit currency.
const DefaultCurrency Currency = "USD"

func NewAmount(value float64, currency Currency) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Currency: currency}
}

func NewAmountFromInt(value int, currency Currency) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Currency: currency}
}

// ZeroAmount returns a zero amount in the given currency.
func ZeroAmount(currency Currency) Amount {
	return Amount{Value: decimal.Zero, Currency: currency}
}

// MustParseDecimal parses s or panics. Intended for constants and tests.
func MustParseDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (a Amount) Zero() Amount        { return Amount{Value: decimal.Zero, Currency: a.Currency} }
func (a Amount) Add(b Amount) Amount { return Amount{Value: a.Value.Add(b.Value), Currency: a.Currency} }
func (a Amount) IsZero() bool        { return a.Value.IsZero() }
func (a Amount) Equal(b Amount) bool { return a.Value.Equal(b.Value) }

// Float64 returns the value as a float64 for display and JSON responses.
func (a Amount) Float64() float64 {
	f, _ := a.Value.Float64()
	return f
}

func (a Amount) String() string {
	return a.Value.String() + " " + string(a.Currency)
}

// currencyOr returns c, or DefaultCurrency when c is empty.
func currencyOr(c Currency) Currency {
	if c == "" {
		return DefaultCurrency
	}
	return c
}
