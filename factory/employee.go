/*
Package factory provides configuration document to pay.Employee conversion.

PURPOSE:
  Converts JSON or YAML employee configurations into pay.Employee values.
  Pay terms can then be supplied by an HTTP client, a roster file, or a
  preset, without code changes.

DOCUMENT SCHEMA:
  {
    "currency": "USD",
    "base": {
      "type": "hourly",
      "hourly_rate": 100,
      "hours_worked": 9
    },
    "commission": {
      "pay_per_commission": 100,
      "commission_count": 1,
      "bonus": 0
    }
  }

DEFAULTS:
  - Missing "base": no base pay (freelancer)
  - Missing "commission": no commission
  - Missing "pay_per_commission": the factory's DefaultPayPerCommission
  - Missing "bonus": 0
  - Missing "currency": the factory's Currency

STRICT MODE:
  With Strict set, negative rates, quantities, counts or bonuses are
  rejected with pay.ErrNegativeTerm. Otherwise they are computed as given.

USAGE:
  f := factory.NewEmployeeFactory()
  emp, err := f.ParseEmployee(staff.HourlyCommissionedJSON(100, 9, 100, 1))
  emp.ComputePay() // 1000

SEE ALSO:
  - registry.go: Base pay kinds
  - roster.go: Lists of labelled employees
  - staff/json.go: Preset documents
*/
package factory

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/pay-engine/config"
	"github.com/warp/pay-engine/pay"
)

// DefaultPayPerCommission is the per-commission rate used when a commission
// section omits it and the factory was not configured otherwise.
const DefaultPayPerCommission = 100

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// EmployeeJSON is the document form of an employee.
type EmployeeJSON struct {
	Currency   string          `json:"currency,omitempty" yaml:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Base       *BaseJSON       `json:"base,omitempty" yaml:"base,omitempty"`
	Commission *CommissionJSON `json:"commission,omitempty" yaml:"commission,omitempty"`
}

// BaseJSON is the base pay section. Only the fields of the chosen type apply.
type BaseJSON struct {
	Type          string  `json:"type" yaml:"type" validate:"required"`
	HourlyRate    float64 `json:"hourly_rate,omitempty" yaml:"hourly_rate,omitempty"`
	HoursWorked   float64 `json:"hours_worked,omitempty" yaml:"hours_worked,omitempty"`
	MonthlySalary float64 `json:"monthly_salary,omitempty" yaml:"monthly_salary,omitempty"`
	MonthsWorked  float64 `json:"months_worked,omitempty" yaml:"months_worked,omitempty"`
}

// CommissionJSON is the commission section.
type CommissionJSON struct {
	PayPerCommission *float64 `json:"pay_per_commission,omitempty" yaml:"pay_per_commission,omitempty"`
	CommissionCount  int      `json:"commission_count" yaml:"commission_count"`
	Bonus            float64  `json:"bonus,omitempty" yaml:"bonus,omitempty"`
}

// =============================================================================
// EMPLOYEE FACTORY
// =============================================================================

// EmployeeFactory converts documents to employees. Its fields are the
// per-instance defaults applied while decoding.
type EmployeeFactory struct {
	DefaultPayPerCommission decimal.Decimal
	Currency                pay.Currency
	Strict                  bool
}

// documentValidator is shared by all factories; validator.Validate is safe
// for concurrent use.
var documentValidator = validator.New(validator.WithRequiredStructEnabled())

// NewEmployeeFactory creates a factory with the built-in defaults.
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{
		DefaultPayPerCommission: decimal.NewFromInt(DefaultPayPerCommission),
		Currency:                pay.DefaultCurrency,
	}
}

// NewConfiguredFactory creates a factory with the pay section of the service
// configuration applied.
func NewConfiguredFactory(p config.Pay) *EmployeeFactory {
	f := NewEmployeeFactory()
	f.DefaultPayPerCommission = decimal.NewFromFloat(p.DefaultPayPerCommission)
	if p.Currency != "" {
		f.Currency = pay.Currency(strings.ToUpper(p.Currency))
	}
	f.Strict = p.Strict
	return f
}

// ParseEmployee parses a JSON document. Unknown fields and content after the
// document are rejected.
func (f *EmployeeFactory) ParseEmployee(jsonStr string) (pay.Employee, error) {
	var ej EmployeeJSON
	if err := DecodeStrictJSON([]byte(jsonStr), &ej); err != nil {
		return pay.Employee{}, errors.Wrapf(pay.ErrInvalidConfig, "parse employee JSON: %v", err)
	}
	return f.FromJSON(ej)
}

// DecodeStrictJSON decodes exactly one JSON value into v, rejecting unknown
// fields and trailing content. The decoder error is returned as is; callers
// attach the sentinel they need.
func DecodeStrictJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected content after JSON document")
	}
	return nil
}

// ParseEmployeeYAML parses a YAML document. Unknown fields are rejected.
func (f *EmployeeFactory) ParseEmployeeYAML(data []byte) (pay.Employee, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ej EmployeeJSON
	if err := dec.Decode(&ej); err != nil {
		return pay.Employee{}, errors.Wrapf(pay.ErrInvalidConfig, "parse employee YAML: %v", err)
	}
	return f.FromJSON(ej)
}

// FromJSON converts a decoded document to an employee.
func (f *EmployeeFactory) FromJSON(ej EmployeeJSON) (pay.Employee, error) {
	if err := documentValidator.Struct(ej); err != nil {
		return pay.Employee{}, errors.Wrapf(pay.ErrInvalidConfig, "%v", describeValidation(err))
	}

	currency := f.currency()
	if ej.Currency != "" {
		currency = pay.Currency(strings.ToUpper(ej.Currency))
	}

	base, err := f.parseBase(ej.Base, currency)
	if err != nil {
		return pay.Employee{}, err
	}

	emp := pay.Employee{Base: base}
	if ej.Commission != nil {
		emp.Commission = f.parseCommission(*ej.Commission, currency)
	}

	if f.Strict {
		if err := pay.Validate(emp); err != nil {
			return pay.Employee{}, err
		}
	}
	return emp, nil
}

// ToJSON converts an employee built from the standard terms back to its
// document form. Function-valued policies cannot be represented and yield
// pay.ErrUnknownBasis.
func (f *EmployeeFactory) ToJSON(emp pay.Employee) (EmployeeJSON, error) {
	var ej EmployeeJSON

	switch base := emp.Base.(type) {
	case nil:
	case pay.NoBasePay:
		ej.Base = &BaseJSON{Type: string(pay.BasisNone)}
	case pay.HourlyTerms:
		ej.Base = &BaseJSON{
			Type:        string(pay.BasisHourly),
			HourlyRate:  base.HourlyRate.InexactFloat64(),
			HoursWorked: base.HoursWorked.InexactFloat64(),
		}
	case pay.SalaryTerms:
		ej.Base = &BaseJSON{
			Type:          string(pay.BasisSalary),
			MonthlySalary: base.MonthlySalary.InexactFloat64(),
			MonthsWorked:  base.MonthsWorked.InexactFloat64(),
		}
	default:
		return EmployeeJSON{}, errors.Wrapf(pay.ErrUnknownBasis, "base policy %T", emp.Base)
	}

	switch c := emp.Commission.(type) {
	case nil:
	case pay.CommissionTerms:
		rate := c.PayPerCommission.InexactFloat64()
		ej.Commission = &CommissionJSON{
			PayPerCommission: &rate,
			CommissionCount:  c.CommissionCount,
			Bonus:            c.Bonus.InexactFloat64(),
		}
	default:
		return EmployeeJSON{}, errors.Wrapf(pay.ErrUnknownBasis, "commission policy %T", emp.Commission)
	}

	ej.Currency = string(emp.ComputePay().Currency)
	return ej, nil
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func (f *EmployeeFactory) parseBase(bj *BaseJSON, currency pay.Currency) (pay.BasePolicy, error) {
	if bj == nil {
		return pay.NoBasePay{Currency: currency}, nil
	}

	decode, ok := LookupBasis(bj.Type)
	if !ok {
		return nil, errors.Wrapf(pay.ErrUnknownBasis, "base type %q", bj.Type)
	}
	return decode(*bj, currency)
}

func (f *EmployeeFactory) parseCommission(cj CommissionJSON, currency pay.Currency) pay.CommissionTerms {
	rate := f.DefaultPayPerCommission
	if cj.PayPerCommission != nil {
		rate = decimal.NewFromFloat(*cj.PayPerCommission)
	}
	return pay.CommissionTerms{
		PayPerCommission: rate,
		CommissionCount:  cj.CommissionCount,
		Bonus:            decimal.NewFromFloat(cj.Bonus),
		Currency:         currency,
	}
}

func (f *EmployeeFactory) currency() pay.Currency {
	if f.Currency == "" {
		return pay.DefaultCurrency
	}
	return f.Currency
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Namespace()+" failed "+fe.Tag())
	}
	return strings.Join(msgs, "; ")
}
