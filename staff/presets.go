/*
Package staff provides ready-made employee configurations.

PURPOSE:
  Each historical employee shape is a configuration of pay.Employee, not a
  type of its own. This package names those configurations so callers do not
  have to assemble base and commission policies by hand.

AVAILABLE PRESETS:
  HourlyEmployee:              rate * hours
  HourlyCommissionedEmployee:  rate * hours + per_commission * count
  SalaryEmployee:              salary * months
  SalaryCommissionedEmployee:  salary * months + per_commission * count
  Freelancer:                  per_commission * count
  FreelancerWithBonus:         per_commission * count + bonus

COMMISSION DEFAULTS:
  Presets take pay_per_commission explicitly. Defaults are a property of the
  configuration source (see factory.EmployeeFactory.DefaultPayPerCommission),
  never of this package.

EXAMPLE:
  emp := staff.SalaryCommissionedEmployee(900, 1, 100, 1)
  emp.ComputePay() // 1000

SEE ALSO:
  - json.go: The same presets as configuration documents
  - scenarios.go: Worked examples built from these presets
*/
package staff

import (
	"github.com/warp/pay-engine/pay"
)

// =============================================================================
// HOURLY
// =============================================================================

// HourlyEmployee is paid by the hour with no commission.
func HourlyEmployee(hourlyRate, hoursWorked float64) pay.Employee {
	return pay.Employee{Base: pay.Hourly(hourlyRate, hoursWorked)}
}

// HourlyCommissionedEmployee is paid by the hour plus commission.
func HourlyCommissionedEmployee(hourlyRate, hoursWorked, payPerCommission float64, commissionCount int) pay.Employee {
	return pay.Employee{
		Base:       pay.Hourly(hourlyRate, hoursWorked),
		Commission: pay.Commission(payPerCommission, commissionCount),
	}
}

// =============================================================================
// SALARIED
// =============================================================================

// SalaryEmployee is paid monthly with no commission.
func SalaryEmployee(monthlySalary, monthsWorked float64) pay.Employee {
	return pay.Employee{Base: pay.Salary(monthlySalary, monthsWorked)}
}

// SalaryCommissionedEmployee is paid monthly plus commission.
func SalaryCommissionedEmployee(monthlySalary, monthsWorked, payPerCommission float64, commissionCount int) pay.Employee {
	return pay.Employee{
		Base:       pay.Salary(monthlySalary, monthsWorked),
		Commission: pay.Commission(payPerCommission, commissionCount),
	}
}

// =============================================================================
// FREELANCE
// =============================================================================

// Freelancer is paid purely from commission.
func Freelancer(payPerCommission float64, commissionCount int) pay.Employee {
	return pay.Employee{
		Base:       pay.NoBasePay{},
		Commission: pay.Commission(payPerCommission, commissionCount),
	}
}

// FreelancerWithBonus is paid from commission plus a flat bonus.
func FreelancerWithBonus(payPerCommission float64, commissionCount int, bonus float64) pay.Employee {
	return pay.Employee{
		Base:       pay.NoBasePay{},
		Commission: pay.CommissionWithBonus(payPerCommission, commissionCount, bonus),
	}
}
