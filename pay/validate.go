/*
validate.go - Optional non-negative validation

Pay computation accepts any input: negative rates or counts simply produce
the arithmetic result. Callers that want to reject them call Validate
explicitly (the factory does so in strict mode). Nothing in this package
validates implicitly.

Term structs carry `validate:"gte=0"` tags checked by go-playground/validator.
decimal.Decimal fields are exposed to the validator as float64.
*/
package pay

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var termValidator = newTermValidator()

func newTermValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	return v
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func (t HourlyTerms) Validate() error     { return checkTerms(string(BasisHourly), t) }
func (t SalaryTerms) Validate() error     { return checkTerms(string(BasisSalary), t) }
func (t CommissionTerms) Validate() error { return checkTerms("commission", t) }

// Validate checks both policies of an employee. Policies without a Validate
// method (NoBasePay, function values) are accepted as they are.
func Validate(e Employee) error {
	basePolicy := e.basePolicy()
	if v, ok := basePolicy.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	commissionPolicy := e.commissionPolicy()
	if commissionPolicy == nil {
		return nil
	}
	if v, ok := commissionPolicy.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	base := basePolicy.BasePay().Currency
	commission := commissionPolicy.CommissionPay().Currency
	if base != commission {
		return errors.Wrapf(ErrCurrencyMismatch, "base %s, commission %s", base, commission)
	}
	return nil
}

// Validate is shorthand for pay.Validate(e).
func (e Employee) Validate() error { return Validate(e) }

func checkTerms(policy string, terms any) error {
	err := termValidator.Struct(terms)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &TermError{Policy: policy, Field: fe.Field(), Value: fmt.Sprint(fe.Value())}
	}
	return errors.Wrapf(err, "validate %s terms", policy)
}
