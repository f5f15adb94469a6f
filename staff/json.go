package staff

// JSON presets produce the configuration documents read by the factory
// package. They build JSON directly so this package does not import factory.
//
//   doc := staff.HourlyCommissionedJSON(100, 9, 100, 1)
//   emp, err := factory.NewEmployeeFactory().ParseEmployee(doc)

import (
	"encoding/json"
)

// HourlyJSON returns the document for an hourly employee without commission.
func HourlyJSON(hourlyRate, hoursWorked float64) string {
	return employeeJSON(hourlyBase(hourlyRate, hoursWorked), nil)
}

// HourlyCommissionedJSON returns the document for an hourly employee with commission.
func HourlyCommissionedJSON(hourlyRate, hoursWorked, payPerCommission float64, commissionCount int) string {
	return employeeJSON(
		hourlyBase(hourlyRate, hoursWorked),
		commission(payPerCommission, commissionCount, 0),
	)
}

// SalaryJSON returns the document for a salaried employee without commission.
func SalaryJSON(monthlySalary, monthsWorked float64) string {
	return employeeJSON(salaryBase(monthlySalary, monthsWorked), nil)
}

// SalaryCommissionedJSON returns the document for a salaried employee with commission.
func SalaryCommissionedJSON(monthlySalary, monthsWorked, payPerCommission float64, commissionCount int) string {
	return employeeJSON(
		salaryBase(monthlySalary, monthsWorked),
		commission(payPerCommission, commissionCount, 0),
	)
}

// FreelancerJSON returns the document for a commission-only freelancer.
func FreelancerJSON(payPerCommission float64, commissionCount int) string {
	return employeeJSON(
		map[string]interface{}{"type": "none"},
		commission(payPerCommission, commissionCount, 0),
	)
}

// FreelancerWithBonusJSON returns the document for a freelancer with a flat bonus.
func FreelancerWithBonusJSON(payPerCommission float64, commissionCount int, bonus float64) string {
	return employeeJSON(
		map[string]interface{}{"type": "none"},
		commission(payPerCommission, commissionCount, bonus),
	)
}

func hourlyBase(rate, hours float64) map[string]interface{} {
	return map[string]interface{}{
		"type":         "hourly",
		"hourly_rate":  rate,
		"hours_worked": hours,
	}
}

func salaryBase(salary, months float64) map[string]interface{} {
	return map[string]interface{}{
		"type":           "salary",
		"monthly_salary": salary,
		"months_worked":  months,
	}
}

func commission(payPerCommission float64, count int, bonus float64) map[string]interface{} {
	c := map[string]interface{}{
		"pay_per_commission": payPerCommission,
		"commission_count":   count,
	}
	if bonus != 0 {
		c["bonus"] = bonus
	}
	return c
}

func employeeJSON(base, commission map[string]interface{}) string {
	doc := map[string]interface{}{"base": base}
	if commission != nil {
		doc["commission"] = commission
	}
	return mustMarshal(doc)
}

// mustMarshal panics on error. The documents are maps of strings and numbers,
// so an error here means a programming mistake in this file.
func mustMarshal(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(b)
}
