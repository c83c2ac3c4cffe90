package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatHint is the usage text shown whenever an expense line cannot be
// parsed.
const FormatHint = "Formato: persona [fecha|hoy|ayer|DD-MM] monto descripcion\nEjemplo: seba hoy 54000 ferreteria"

var two = decimal.NewFromInt(2)

// ParseError wraps any failure while parsing an expense line. Its Error text
// is meant to be sent back to the submitting user as-is: it repeats the
// expected format and includes the underlying cause.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error al procesar el gasto. %s\n\nDetalle: %v", FormatHint, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseExpenseLine tokenizes a free-text message into a validated expense
// record. The expected shape is "persona fecha monto descripcion..." with at
// least four whitespace-separated tokens; the description keeps every token
// from the fourth onward joined by single spaces. The whole line is
// lowercased first, matching how person cells are compared later.
//
// ParseExpenseLine is pure: persisting the record and formatting the
// confirmation reply are the caller's job.
func ParseExpenseLine(line string, today time.Time) (Record, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) < 4 {
		return Record{}, &ParseError{Line: line, Err: fmt.Errorf("%w: persona fecha monto descripcion", ErrMalformedExpense)}
	}
	date, err := ResolveDate(fields[1], today)
	if err != nil {
		return Record{}, &ParseError{Line: line, Err: err}
	}
	amount, err := NormalizeAmount(fields[2])
	if err != nil {
		return Record{}, &ParseError{Line: line, Err: err}
	}
	return Record{
		Person:      fields[0],
		Date:        date,
		Amount:      amount,
		HalfShare:   amount.Div(two),
		Description: strings.Join(fields[3:], " "),
	}, nil
}
