/*
registry.go - Base pay kind registration and lookup

PURPOSE:
  Maps the "type" string of a base section ("hourly", "salary", "none") to
  the decoder that builds the matching pay.BasePolicy. New kinds can be
  added without touching the factory.

HOW IT WORKS:
  1. Built-in kinds register themselves in init()
  2. Other packages may call RegisterBasis with their own decoder
  3. EmployeeFactory resolves base sections through LookupBasis

USAGE:
  factory.RegisterBasis(factory.BasisInfo{
      Kind:        "stipend",
      Description: "Fixed amount per period",
      Fields:      []string{"monthly_salary"},
  }, func(b factory.BaseJSON, c pay.Currency) (pay.BasePolicy, error) {
      ...
  })
*/
package factory

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/warp/pay-engine/pay"
)

// BasisDecoder builds a base policy from a decoded base section.
type BasisDecoder func(b BaseJSON, currency pay.Currency) (pay.BasePolicy, error)

// BasisInfo describes a registered base pay kind.
type BasisInfo struct {
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

type basisEntry struct {
	info   BasisInfo
	decode BasisDecoder
}

// =============================================================================
// BASIS REGISTRY
// =============================================================================

var (
	basisRegistry = make(map[string]basisEntry)
	registryMu    sync.RWMutex
)

func init() {
	RegisterBasis(BasisInfo{
		Kind:        string(pay.BasisHourly),
		Description: "hourly_rate * hours_worked",
		Fields:      []string{"hourly_rate", "hours_worked"},
	}, decodeHourly)
	RegisterBasis(BasisInfo{
		Kind:        string(pay.BasisSalary),
		Description: "monthly_salary * months_worked",
		Fields:      []string{"monthly_salary", "months_worked"},
	}, decodeSalary)
	RegisterBasis(BasisInfo{
		Kind:        string(pay.BasisNone),
		Description: "no base pay (commission only)",
	}, decodeNone)
}

// RegisterBasis adds or replaces a base pay kind. Kinds are case-insensitive.
func RegisterBasis(info BasisInfo, decode BasisDecoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	info.Kind = normalizeKind(info.Kind)
	basisRegistry[info.Kind] = basisEntry{info: info, decode: decode}
}

// LookupBasis finds the decoder for a base pay kind.
func LookupBasis(kind string) (BasisDecoder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := basisRegistry[normalizeKind(kind)]
	return e.decode, ok
}

// ListBases returns all registered kinds sorted by name.
func ListBases() []BasisInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]BasisInfo, 0, len(basisRegistry))
	for _, e := range basisRegistry {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Kind < result[j].Kind })
	return result
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// =============================================================================
// BUILT-IN DECODERS
// =============================================================================

func decodeHourly(b BaseJSON, currency pay.Currency) (pay.BasePolicy, error) {
	if b.MonthlySalary != 0 || b.MonthsWorked != 0 {
		return nil, errors.Wrap(pay.ErrInvalidConfig, "hourly base does not take monthly_salary or months_worked")
	}
	return pay.HourlyTerms{
		HourlyRate:  decimal.NewFromFloat(b.HourlyRate),
		HoursWorked: decimal.NewFromFloat(b.HoursWorked),
		Currency:    currency,
	}, nil
}

func decodeSalary(b BaseJSON, currency pay.Currency) (pay.BasePolicy, error) {
	if b.HourlyRate != 0 || b.HoursWorked != 0 {
		return nil, errors.Wrap(pay.ErrInvalidConfig, "salary base does not take hourly_rate or hours_worked")
	}
	return pay.SalaryTerms{
		MonthlySalary: decimal.NewFromFloat(b.MonthlySalary),
		MonthsWorked:  decimal.NewFromFloat(b.MonthsWorked),
		Currency:      currency,
	}, nil
}

func decodeNone(b BaseJSON, currency pay.Currency) (pay.BasePolicy, error) {
	if b.HourlyRate != 0 || b.HoursWorked != 0 || b.MonthlySalary != 0 || b.MonthsWorked != 0 {
		return nil, errors.Wrap(pay.ErrInvalidConfig, "base type none takes no rate or quantity")
	}
	return pay.NoBasePay{Currency: currency}, nil
}
