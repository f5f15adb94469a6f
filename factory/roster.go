package factory

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/warp/pay-engine/pay"
)

// RosterJSON is a list of labelled employee documents:
//
//	employees:
//	  - label: Front desk
//	    base: {type: hourly, hourly_rate: 100, hours_worked: 9}
//	    commission: {pay_per_commission: 100, commission_count: 1}
//
// Labels are display text only. JSON input is accepted as well.
type RosterJSON struct {
	Employees []RosterEntryJSON `json:"employees" yaml:"employees"`
}

// RosterEntryJSON is one labelled employee document.
type RosterEntryJSON struct {
	Label        string `json:"label" yaml:"label"`
	EmployeeJSON `yaml:",inline"`
}

// RosterLine is a decoded roster entry.
type RosterLine struct {
	Label    string
	Employee pay.Employee
}

// ParseRoster decodes a YAML or JSON roster. The first invalid entry stops
// parsing and is named in the error.
func (f *EmployeeFactory) ParseRoster(data []byte) ([]RosterLine, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rj RosterJSON
	if err := dec.Decode(&rj); err != nil {
		return nil, errors.Wrapf(pay.ErrInvalidConfig, "parse roster: %v", err)
	}

	lines := make([]RosterLine, 0, len(rj.Employees))
	for i, entry := range rj.Employees {
		emp, err := f.FromJSON(entry.EmployeeJSON)
		if err != nil {
			return nil, errors.Wrapf(err, "roster entry %d (%s)", i, entry.Label)
		}
		lines = append(lines, RosterLine{Label: entry.Label, Employee: emp})
	}
	return lines, nil
}
