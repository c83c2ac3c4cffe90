package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Settlement holds the per-person totals for one period and the participants
// they belong to. It is derived from ledger rows and never persisted.
type Settlement struct {
	Pair   Pair
	Year   int
	Month  time.Month
	TotalA decimal.Decimal
	TotalB decimal.Decimal
}

// Settle aggregates ledger rows for the given month and year. Rows outside
// the period, rows with unparseable dates or amounts, and all-empty rows are
// skipped; aggregation is best-effort over heterogeneous historical data.
// Person cells are matched by substring containment, and a cell containing
// both participant names is counted into both totals.
func Settle(rows []Row, pair Pair, year int, month time.Month) Settlement {
	s := Settlement{Pair: pair, Year: year, Month: month, TotalA: decimal.Zero, TotalB: decimal.Zero}
	for _, row := range rows {
		if row.Empty() {
			continue
		}
		date, err := ParseStoredDate(row.Date, year)
		if err != nil {
			continue
		}
		if date.Year() != year || date.Month() != month {
			continue
		}
		amount, err := NormalizeAmount(row.Amount)
		if err != nil {
			continue
		}
		a, b := pair.Match(row.Person)
		if a {
			s.TotalA = s.TotalA.Add(amount)
		}
		if b {
			s.TotalB = s.TotalB.Add(amount)
		}
	}
	return s
}

// Debt returns who owes and how much. The common pool is split evenly, so
// only half the imbalance changes hands: after the transfer both effective
// contributions are equal.
func (s Settlement) Debt() (debtor string, amount decimal.Decimal) {
	switch s.TotalA.Cmp(s.TotalB) {
	case 1:
		return s.Pair.B, s.TotalA.Sub(s.TotalB).Div(two)
	case -1:
		return s.Pair.A, s.TotalB.Sub(s.TotalA).Div(two)
	}
	return "", decimal.Zero
}

// BalanceLine renders the settlement verdict, e.g. "VICKY DEBE $50.0".
func (s Settlement) BalanceLine() string {
	debtor, amount := s.Debt()
	if debtor == "" {
		return "IGUALES"
	}
	return fmt.Sprintf("%s DEBE $%s", strings.ToUpper(debtor), FormatAmount(amount))
}

// Message renders the full summary: verdict plus both raw totals.
func (s Settlement) Message() string {
	return fmt.Sprintf("%s\n\nTotal %s: $%s\nTotal %s: $%s",
		s.BalanceLine(),
		title(s.Pair.A), FormatAmount(s.TotalA),
		title(s.Pair.B), FormatAmount(s.TotalB))
}

// ClosingLine renders the settlement as a past payment, used by the month
// close message.
func (s Settlement) ClosingLine() string {
	debtor, amount := s.Debt()
	switch debtor {
	case s.Pair.B:
		return fmt.Sprintf("%s le pagó a %s: $%s", title(s.Pair.B), title(s.Pair.A), FormatAmount(amount))
	case s.Pair.A:
		return fmt.Sprintf("%s le pagó a %s: $%s", title(s.Pair.A), title(s.Pair.B), FormatAmount(amount))
	}
	return "No había deuda pendiente."
}

// DetailLine is one expense in a per-person monthly listing.
type DetailLine struct {
	Date        string
	Amount      decimal.Decimal
	Description string
}

// PersonDetail lists the rows attributed to one participant in the given
// month, plus their total. Row filtering follows the same lenient rules as
// Settle.
func PersonDetail(rows []Row, name string, year int, month time.Month) ([]DetailLine, decimal.Decimal) {
	var lines []DetailLine
	total := decimal.Zero
	needle := strings.ToLower(name)
	for _, row := range rows {
		if row.Empty() {
			continue
		}
		date, err := ParseStoredDate(row.Date, year)
		if err != nil {
			continue
		}
		if date.Year() != year || date.Month() != month {
			continue
		}
		amount, err := NormalizeAmount(row.Amount)
		if err != nil {
			continue
		}
		if !strings.Contains(strings.ToLower(strings.TrimSpace(row.Person)), needle) {
			continue
		}
		lines = append(lines, DetailLine{Date: row.Date, Amount: amount, Description: row.Description})
		total = total.Add(amount)
	}
	return lines, total
}

// FormatAmount renders a decimal rounded to 2 places, keeping one decimal
// digit for whole numbers ("50.0", "1234.56").
func FormatAmount(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsInteger() {
		return d.StringFixed(1)
	}
	return d.String()
}

func title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
