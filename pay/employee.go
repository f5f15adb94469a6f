/*
employee.go - The Employee aggregate

PURPOSE:
  Combines exactly one base pay policy with zero or one commission policy.

    total = base.BasePay() + (commission != nil ? commission.CommissionPay() : 0)

  A nil Base is read as NoBasePay. A nil Commission contributes nothing; it is
  never an error. A typed nil, such as (*CommissionTerms)(nil), counts as nil.

EXAMPLE:
  hourly := pay.Employee{Base: pay.Hourly(100, 10)}
  hourly.ComputePay() // 1000

  mixed := pay.Employee{Base: pay.Salary(900, 1), Commission: pay.Commission(100, 1)}
  mixed.Breakdown()   // {Base: 900, Commission: 100, Total: 1000}
*/
package pay

import "reflect"

// Employee is a value: a base policy plus an optional commission policy.
type Employee struct {
	Base       BasePolicy
	Commission CommissionPolicy
}

// NewEmployee builds an employee from a base policy and an optional
// commission policy. Pass nil for no commission.
func NewEmployee(base BasePolicy, commission CommissionPolicy) Employee {
	return Employee{Base: base, Commission: commission}
}

// Breakdown splits total pay into its two components.
type Breakdown struct {
	Basis      Basis
	Base       Amount
	Commission Amount
	Total      Amount
}

// ComputePay returns base pay plus commission pay.
func (e Employee) ComputePay() Amount {
	return e.Breakdown().Total
}

// Breakdown computes both components and their sum. The total carries the
// base pay currency.
func (e Employee) Breakdown() Breakdown {
	base := e.basePolicy().BasePay()

	commission := base.Zero()
	if c := e.commissionPolicy(); c != nil {
		commission = c.CommissionPay()
	}

	return Breakdown{
		Basis:      BasisOf(e.Base),
		Base:       base,
		Commission: commission,
		Total:      base.Add(commission),
	}
}

// HasCommission reports whether a commission policy is attached.
func (e Employee) HasCommission() bool { return e.commissionPolicy() != nil }

func (e Employee) basePolicy() BasePolicy {
	if isNilPolicy(e.Base) {
		return NoBasePay{}
	}
	return e.Base
}

func (e Employee) commissionPolicy() CommissionPolicy {
	if isNilPolicy(e.Commission) {
		return nil
	}
	return e.Commission
}

// isNilPolicy reports whether p is nil or an interface holding a nil pointer
// or nil function, such as a (*CommissionTerms)(nil).
func isNilPolicy(p any) bool {
	if p == nil {
		return true
	}
	switch v := reflect.ValueOf(p); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
