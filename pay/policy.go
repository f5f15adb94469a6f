/*
policy.go - Base pay and commission policies

PURPOSE:
  Defines the two capabilities an Employee is composed from. Each capability
  is a one-method interface, and each variant is a plain value implementing
  it. Variants are selected by configuration, not by a type hierarchy.

BASE PAY POLICIES (BasePolicy):
  HourlyTerms:  hourly_rate * hours_worked
  SalaryTerms:  monthly_salary * months_worked
  NoBasePay:    0 (pure freelancer)

COMMISSION POLICIES (CommissionPolicy):
  CommissionTerms:  pay_per_commission * commission_count + bonus
                    (bonus defaults to 0, which is the plain commission rule)

FUNCTION VALUES:
  BasePolicyFunc and CommissionPolicyFunc let a closure stand in for either
  capability, e.g. a fixed stipend:

    stipend := pay.BasePolicyFunc(func() pay.Amount {
        return pay.NewAmount(250, pay.DefaultCurrency)
    })

BASIS:
  Every built-in base policy reports its Basis ("hourly", "salary", "none").
  Anything else reports BasisCustom through BasisOf.

SEE ALSO:
  - employee.go: Combines one BasePolicy with an optional CommissionPolicy
  - validate.go: Non-negative checks for the terms below
*/
package pay

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// CAPABILITIES
// =============================================================================

// BasePolicy computes the portion of pay derived from time worked.
type BasePolicy interface {
	BasePay() Amount
}

// CommissionPolicy computes the portion of pay derived from commissioned
// transactions.
type CommissionPolicy interface {
	CommissionPay() Amount
}

// BasePolicyFunc adapts a function to BasePolicy.
type BasePolicyFunc func() Amount

func (f BasePolicyFunc) BasePay() Amount { return f() }

// CommissionPolicyFunc adapts a function to CommissionPolicy.
type CommissionPolicyFunc func() Amount

func (f CommissionPolicyFunc) CommissionPay() Amount { return f() }

// =============================================================================
// BASIS - Which base pay rule applies
// =============================================================================

type Basis string

const (
	BasisHourly Basis = "hourly"
	BasisSalary Basis = "salary"
	BasisNone   Basis = "none"
	BasisCustom Basis = "custom"
)

// BasisOf reports the basis of a base policy. Nil is treated as BasisNone.
func BasisOf(p BasePolicy) Basis {
	if isNilPolicy(p) {
		return BasisNone
	}
	if b, ok := p.(interface{ Basis() Basis }); ok {
		return b.Basis()
	}
	return BasisCustom
}

// =============================================================================
// HOURLY
// =============================================================================

// HourlyTerms pays a rate for each hour worked.
type HourlyTerms struct {
	HourlyRate  decimal.Decimal `validate:"gte=0"`
	HoursWorked decimal.Decimal `validate:"gte=0"`
	Currency    Currency
}

// Hourly builds hourly terms in the default currency.
func Hourly(rate, hours float64) HourlyTerms {
	return HourlyTerms{
		HourlyRate:  decimal.NewFromFloat(rate),
		HoursWorked: decimal.NewFromFloat(hours),
	}
}

func (t HourlyTerms) BasePay() Amount {
	return Amount{Value: t.HourlyRate.Mul(t.HoursWorked), Currency: currencyOr(t.Currency)}
}

func (t HourlyTerms) Basis() Basis { return BasisHourly }

// =============================================================================
// SALARY
// =============================================================================

// SalaryTerms pays a monthly salary for each month worked.
type SalaryTerms struct {
	MonthlySalary decimal.Decimal `validate:"gte=0"`
	MonthsWorked  decimal.Decimal `validate:"gte=0"`
	Currency      Currency
}

// Salary builds salary terms in the default currency.
func Salary(monthlySalary, months float64) SalaryTerms {
	return SalaryTerms{
		MonthlySalary: decimal.NewFromFloat(monthlySalary),
		MonthsWorked:  decimal.NewFromFloat(months),
	}
}

func (t SalaryTerms) BasePay() Amount {
	return Amount{Value: t.MonthlySalary.Mul(t.MonthsWorked), Currency: currencyOr(t.Currency)}
}

func (t SalaryTerms) Basis() Basis { return BasisSalary }

// =============================================================================
// NO BASE PAY
// =============================================================================

// NoBasePay is the base policy of a pure freelancer.
type NoBasePay struct {
	Currency Currency
}

func (n NoBasePay) BasePay() Amount { return ZeroAmount(currencyOr(n.Currency)) }

func (n NoBasePay) Basis() Basis { return BasisNone }

// =============================================================================
// COMMISSION
// =============================================================================

// CommissionTerms pays a fixed amount per commission, plus an optional flat
// bonus. A zero Bonus is the plain commission rule.
type CommissionTerms struct {
	PayPerCommission decimal.Decimal `validate:"gte=0"`
	CommissionCount  int             `validate:"gte=0"`
	Bonus            decimal.Decimal `validate:"gte=0"`
	Currency         Currency
}

// Commission builds commission terms without a bonus.
func Commission(payPerCommission float64, count int) CommissionTerms {
	return CommissionTerms{
		PayPerCommission: decimal.NewFromFloat(payPerCommission),
		CommissionCount:  count,
	}
}

// CommissionWithBonus builds commission terms with a flat bonus.
func CommissionWithBonus(payPerCommission float64, count int, bonus float64) CommissionTerms {
	t := Commission(payPerCommission, count)
	t.Bonus = decimal.NewFromFloat(bonus)
	return t
}

func (t CommissionTerms) CommissionPay() Amount {
	v := t.PayPerCommission.Mul(decimal.NewFromInt(int64(t.CommissionCount))).Add(t.Bonus)
	return Amount{Value: v, Currency: currencyOr(t.Currency)}
}

// HasBonus reports whether the terms carry a non-zero bonus.
func (t CommissionTerms) HasBonus() bool { return !t.Bonus.IsZero() }
