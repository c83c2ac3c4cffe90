package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errors.New("monto invalido")
	ErrInvalidDate      = errors.New("la fecha debe ser 'hoy', 'ayer', YYYY-MM-DD o DD-MM (usa año actual)")
	ErrMalformedExpense = errors.New("faltan datos")
)

type (
	// Pair holds the two participant identifiers. Person cells are matched
	// against them case-insensitively by substring containment.
	Pair struct {
		A string
		B string
	}

	// Record is a validated expense produced by ParseExpenseLine.
	Record struct {
		Person      string
		Date        time.Time
		Amount      decimal.Decimal
		HalfShare   decimal.Decimal
		Description string
	}

	// Row is the persisted five-column form of a record. Every field is raw
	// cell text; historical rows vary in date and amount formatting, so
	// readers parse them leniently.
	Row struct {
		Person      string
		Date        string
		Amount      string
		HalfShare   string
		Description string
	}
)

// DefaultPair returns the two participants this ledger is shared between.
func DefaultPair() Pair {
	return Pair{A: "seba", B: "vicky"}
}

func (p Pair) Validate() error {
	if strings.TrimSpace(p.A) == "" || strings.TrimSpace(p.B) == "" {
		return errors.New("both participant names are required")
	}
	return nil
}

// Match reports which participants the person cell refers to. A cell may
// match both; callers decide what to do with that.
func (p Pair) Match(person string) (a, b bool) {
	person = strings.ToLower(strings.TrimSpace(person))
	return strings.Contains(person, strings.ToLower(p.A)),
		strings.Contains(person, strings.ToLower(p.B))
}

// Row converts the record to its persisted form. Dates are written in the
// canonical format; legacy slash dates are accepted on read only.
func (r Record) Row() Row {
	return Row{
		Person:      r.Person,
		Date:        r.Date.Format(DateLayout),
		Amount:      r.Amount.String(),
		HalfShare:   r.HalfShare.String(),
		Description: r.Description,
	}
}

// Empty reports whether every field is blank. An all-empty row marks the
// first unused slot in the ledger window.
func (r Row) Empty() bool {
	return strings.TrimSpace(r.Person) == "" &&
		strings.TrimSpace(r.Date) == "" &&
		strings.TrimSpace(r.Amount) == "" &&
		strings.TrimSpace(r.HalfShare) == "" &&
		strings.TrimSpace(r.Description) == ""
}
