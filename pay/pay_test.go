package pay_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/pay-engine/pay"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func usd(n float64) pay.Amount {
	return pay.NewAmount(n, pay.DefaultCurrency)
}

func assertAmount(t *testing.T, want float64, got pay.Amount, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, usd(want).Equal(got), append([]interface{}{"want %v, got %v", want, got.Value}, msgAndArgs...)...)
}

var (
	rates      = []float64{0, 1, 12.5, 100, 900, 1000}
	quantities = []float64{0, 1, 9, 10, 0.5, 160}
	counts     = []int{0, 1, 3, 25}
)

// =============================================================================
// BASE PAY
// =============================================================================

func TestHourly_RateTimesHours(t *testing.T) {
	for _, rate := range rates {
		for _, hours := range quantities {
			want := decimal.NewFromFloat(rate).Mul(decimal.NewFromFloat(hours))
			got := pay.Hourly(rate, hours).BasePay()
			assert.True(t, want.Equal(got.Value), "hourly %v x %v: got %v", rate, hours, got.Value)
		}
	}
}

func TestSalary_SalaryTimesMonths(t *testing.T) {
	for _, salary := range rates {
		for _, months := range quantities {
			want := decimal.NewFromFloat(salary).Mul(decimal.NewFromFloat(months))
			got := pay.Salary(salary, months).BasePay()
			assert.True(t, want.Equal(got.Value), "salary %v x %v: got %v", salary, months, got.Value)
		}
	}
}

func TestNoBasePay_IsZero(t *testing.T) {
	got := pay.NoBasePay{}.BasePay()
	assert.True(t, got.IsZero())
	assert.Equal(t, pay.DefaultCurrency, got.Currency)
}

func TestHourly_DecimalPrecision(t *testing.T) {
	// GIVEN: A rate that is not representable in binary floating point
	// WHEN: Multiplied by three hours
	// THEN: The result is exact
	got := pay.Hourly(0.1, 3).BasePay()
	assert.True(t, pay.MustParseDecimal("0.3").Equal(got.Value), "got %v", got.Value)
}

func TestBase_NegativeInputsAreArithmetic(t *testing.T) {
	// Negative inputs are not rejected by computation
	assertAmount(t, -50, pay.Hourly(-10, 5).BasePay())
	assertAmount(t, -1000, pay.Salary(1000, -1).BasePay())
}

func TestBasisOf(t *testing.T) {
	assert.Equal(t, pay.BasisHourly, pay.BasisOf(pay.Hourly(1, 1)))
	assert.Equal(t, pay.BasisSalary, pay.BasisOf(pay.Salary(1, 1)))
	assert.Equal(t, pay.BasisNone, pay.BasisOf(pay.NoBasePay{}))
	assert.Equal(t, pay.BasisNone, pay.BasisOf(nil))
	assert.Equal(t, pay.BasisCustom, pay.BasisOf(pay.BasePolicyFunc(func() pay.Amount { return usd(1) })))
}

// =============================================================================
// COMMISSION
// =============================================================================

func TestCommission_RateTimesCount(t *testing.T) {
	for _, rate := range rates {
		for _, count := range counts {
			want := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(int64(count)))
			got := pay.Commission(rate, count).CommissionPay()
			assert.True(t, want.Equal(got.Value), "commission %v x %d: got %v", rate, count, got.Value)
		}
	}
}

func TestCommissionWithBonus_AddsBonus(t *testing.T) {
	for _, rate := range rates {
		for _, count := range counts {
			for _, bonus := range []float64{0, 1, 100, 250.25} {
				want := decimal.NewFromFloat(rate).
					Mul(decimal.NewFromInt(int64(count))).
					Add(decimal.NewFromFloat(bonus))
				got := pay.CommissionWithBonus(rate, count, bonus).CommissionPay()
				assert.True(t, want.Equal(got.Value),
					"commission %v x %d + %v: got %v", rate, count, bonus, got.Value)
			}
		}
	}
}

func TestCommission_HasBonus(t *testing.T) {
	assert.False(t, pay.Commission(100, 1).HasBonus())
	assert.True(t, pay.CommissionWithBonus(100, 1, 5).HasBonus())
}

// =============================================================================
// EMPLOYEE AGGREGATE
// =============================================================================

func TestEmployee_NoCommissionEqualsBase(t *testing.T) {
	bases := []pay.BasePolicy{
		pay.Hourly(100, 10),
		pay.Salary(1000, 1),
		pay.NoBasePay{},
		pay.Hourly(-3, 7),
	}
	for _, base := range bases {
		emp := pay.Employee{Base: base}
		assert.True(t, base.BasePay().Equal(emp.ComputePay()), "basis %s", pay.BasisOf(base))
		assert.False(t, emp.HasCommission())
	}
}

func TestEmployee_NilBaseIsFreelancer(t *testing.T) {
	// GIVEN: An employee with only a commission policy
	emp := pay.Employee{Commission: pay.Commission(1000, 1)}

	// WHEN: Computing pay
	b := emp.Breakdown()

	// THEN: Base contributes nothing
	assert.Equal(t, pay.BasisNone, b.Basis)
	assert.True(t, b.Base.IsZero())
	assertAmount(t, 1000, b.Total)
}

func TestEmployee_Breakdown(t *testing.T) {
	emp := pay.NewEmployee(pay.Salary(900, 1), pay.Commission(100, 1))

	b := emp.Breakdown()

	assert.Equal(t, pay.BasisSalary, b.Basis)
	assertAmount(t, 900, b.Base)
	assertAmount(t, 100, b.Commission)
	assertAmount(t, 1000, b.Total)
	assert.True(t, b.Total.Equal(emp.ComputePay()))
}

func TestEmployee_FunctionPolicies(t *testing.T) {
	// GIVEN: Closures standing in for both capabilities
	stipend := pay.BasePolicyFunc(func() pay.Amount { return usd(250) })
	referral := pay.CommissionPolicyFunc(func() pay.Amount { return usd(50) })

	emp := pay.Employee{Base: stipend, Commission: referral}

	// THEN: They compose like the built-in terms
	assertAmount(t, 300, emp.ComputePay())
	assert.Equal(t, pay.BasisCustom, emp.Breakdown().Basis)
}

func TestEmployee_ExampleScenarios(t *testing.T) {
	tests := []struct {
		name     string
		employee pay.Employee
		want     float64
	}{
		{"hourly", pay.Employee{Base: pay.Hourly(100, 10)}, 1000},
		{"hourly with commission", pay.Employee{Base: pay.Hourly(100, 9), Commission: pay.Commission(100, 1)}, 1000},
		{"salary", pay.Employee{Base: pay.Salary(1000, 1)}, 1000},
		{"salary with commission", pay.Employee{Base: pay.Salary(900, 1), Commission: pay.Commission(100, 1)}, 1000},
		{"freelancer", pay.Employee{Base: pay.NoBasePay{}, Commission: pay.Commission(1000, 1)}, 1000},
		{"freelancer with bonus", pay.Employee{Base: pay.NoBasePay{}, Commission: pay.CommissionWithBonus(900, 1, 100)}, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, tt.employee.ComputePay())
		})
	}
}

func TestEmployee_TotalCarriesBaseCurrency(t *testing.T) {
	base := pay.Hourly(10, 2)
	base.Currency = "EUR"

	got := pay.Employee{Base: base}.ComputePay()

	assert.Equal(t, pay.Currency("EUR"), got.Currency)
	assert.Equal(t, "20 EUR", got.String())
}

// =============================================================================
// VALIDATION
// =============================================================================

func TestValidate_AcceptsNonNegative(t *testing.T) {
	emps := []pay.Employee{
		{Base: pay.Hourly(0, 0)},
		{Base: pay.Salary(900, 1), Commission: pay.Commission(100, 1)},
		{Base: pay.NoBasePay{}, Commission: pay.CommissionWithBonus(900, 1, 100)},
		{},
	}
	for i, e := range emps {
		assert.NoError(t, pay.Validate(e), "employee %d", i)
	}
}

func TestValidate_RejectsNegativeTerms(t *testing.T) {
	tests := []struct {
		name     string
		employee pay.Employee
		policy   string
		field    string
	}{
		{"hourly rate", pay.Employee{Base: pay.Hourly(-1, 10)}, "hourly", "HourlyRate"},
		{"hours", pay.Employee{Base: pay.Hourly(10, -1)}, "hourly", "HoursWorked"},
		{"months", pay.Employee{Base: pay.Salary(10, -2)}, "salary", "MonthsWorked"},
		{"count", pay.Employee{Commission: pay.Commission(10, -1)}, "commission", "CommissionCount"},
		{"bonus", pay.Employee{Commission: pay.CommissionWithBonus(10, 1, -5)}, "commission", "Bonus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.employee.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, pay.ErrNegativeTerm))
			assert.True(t, pay.IsValidationError(err))

			var termErr *pay.TermError
			require.True(t, errors.As(err, &termErr))
			assert.Equal(t, tt.policy, termErr.Policy)
			assert.Equal(t, tt.field, termErr.Field)
		})
	}
}

func TestValidate_CurrencyMismatch(t *testing.T) {
	commission := pay.Commission(10, 1)
	commission.Currency = "EUR"

	err := pay.Validate(pay.Employee{Base: pay.Hourly(1, 1), Commission: commission})

	require.Error(t, err)
	assert.True(t, errors.Is(err, pay.ErrCurrencyMismatch))
}

func TestErrorHelpers(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", pay.ErrScenarioNotFound)
	assert.True(t, pay.IsNotFound(wrapped))
	assert.False(t, pay.IsValidationError(wrapped))
	assert.True(t, pay.IsValidationError(pay.ErrUnknownBasis))
}

func TestEmployee_TypedNilPolicies(t *testing.T) {
	// GIVEN: Policies that are nil pointers or nil functions behind the interface
	var commission *pay.CommissionTerms
	var base *pay.HourlyTerms
	var fn pay.CommissionPolicyFunc

	// WHEN: Used as employee policies
	emp := pay.Employee{Base: base, Commission: commission}
	withFunc := pay.Employee{Base: pay.Salary(1000, 1), Commission: fn}

	// THEN: They behave like absent policies instead of panicking
	require.NotPanics(t, func() { emp.Breakdown() })
	assert.True(t, emp.ComputePay().IsZero())
	assert.False(t, emp.HasCommission())
	assert.Equal(t, pay.BasisNone, pay.BasisOf(base))
	assert.NoError(t, emp.Validate())

	assertAmount(t, 1000, withFunc.ComputePay())
	assert.False(t, withFunc.HasCommission())
}
