// Package summary computes the derived monthly income/expense totals from
// the current appointment and expense lists. The result is never persisted;
// it is recomputed on demand from whatever rows are cached.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"salonledger/internal/core"
	"salonledger/internal/record"
)

// MonthlySummary is the derived result for one calendar month.
type MonthlySummary struct {
	Year     int
	Month    int // 1-12
	Income   core.Money
	Expenses core.Money
	Net      core.Money
}

// MonthKey renders the summary's month as "YYYY-MM".
func (m MonthlySummary) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// ForMonth sums appointment totals (income) and expense amounts for the
// exact calendar year and month. Rows with missing or unparseable dates are
// skipped, and amounts that fail to parse contribute zero; malformed input
// never errors.
func ForMonth(year, month int, appointments, expenses []record.Record) MonthlySummary {
	s := MonthlySummary{Year: year, Month: month}
	s.Income = sumMonth(year, month, appointments, record.AppointmentAmount)
	s.Expenses = sumMonth(year, month, expenses, record.ExpenseAmount)
	s.Net = s.Income.Sub(s.Expenses)
	return s
}

func sumMonth(year, month int, rows []record.Record, amount func(record.Record) core.Money) core.Money {
	var total core.Money
	for _, row := range rows {
		d, ok := core.ParseDate(record.Date(row))
		if !ok {
			continue
		}
		if d.Year() != year || int(d.Month()) != month {
			continue
		}
		total = total.Add(amount(row))
	}
	return total
}

// ParseMonthKey splits a "YYYY-MM" month selector into its components.
func ParseMonthKey(key string) (year, month int, err error) {
	parts := strings.SplitN(strings.TrimSpace(key), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month key %q", key)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("invalid year in month key %q", key)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month in month key %q", key)
	}
	return year, month, nil
}
