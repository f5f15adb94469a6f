/*
main.go - Payroll report CLI

PURPOSE:
  Prints the pay of a list of employees, one line each. Without -roster the
  built-in worked examples are printed.

COMMAND-LINE FLAGS:
  -config  Path to config.yaml (currency, default rate, strict mode, logging)
  -roster  YAML or JSON roster file (see factory/roster.go)
  -json    Print JSON instead of a table

EXAMPLES:
  ./payroll
  ./payroll -roster=./config/roster.example.yaml
  ./payroll -roster=team.yaml -json
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/warp/pay-engine/config"
	"github.com/warp/pay-engine/factory"
	"github.com/warp/pay-engine/logs"
	"github.com/warp/pay-engine/pay"
	"github.com/warp/pay-engine/staff"
)

type reportLine struct {
	Label      string `json:"label"`
	Basis      string `json:"basis"`
	Base       string `json:"base"`
	Commission string `json:"commission"`
	Total      string `json:"total"`
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml")
	rosterPath := flag.String("roster", "", "Roster file (YAML or JSON)")
	asJSON := flag.Bool("json", false, "Print JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logs.New(cfg.Env.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	lines, err := collect(cfg.Pay, *rosterPath)
	if err != nil {
		logger.Fatal("cannot build payroll", zap.String("roster", *rosterPath), zap.Error(err))
	}

	if *asJSON {
		err = printJSON(os.Stdout, lines)
	} else {
		err = printTable(os.Stdout, lines)
	}
	if err != nil {
		logger.Fatal("cannot print payroll", zap.Error(err))
	}
}

func collect(p config.Pay, rosterPath string) ([]reportLine, error) {
	if rosterPath == "" {
		var lines []reportLine
		for _, s := range staff.Scenarios() {
			lines = append(lines, toReportLine(s.Name, s.Employee.Breakdown()))
		}
		return lines, nil
	}

	data, err := os.ReadFile(rosterPath)
	if err != nil {
		return nil, errors.Wrap(err, "read roster")
	}

	roster, err := factory.NewConfiguredFactory(p).ParseRoster(data)
	if err != nil {
		return nil, err
	}

	lines := make([]reportLine, 0, len(roster))
	for _, r := range roster {
		lines = append(lines, toReportLine(r.Label, r.Employee.Breakdown()))
	}
	return lines, nil
}

func toReportLine(label string, b pay.Breakdown) reportLine {
	return reportLine{
		Label:      label,
		Basis:      string(b.Basis),
		Base:       b.Base.String(),
		Commission: b.Commission.String(),
		Total:      b.Total.String(),
	}
}

func printTable(w io.Writer, lines []reportLine) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE\tBASIS\tBASE\tCOMMISSION\tPAY")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Label, l.Basis, l.Base, l.Commission, l.Total)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, lines []reportLine) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lines)
}
