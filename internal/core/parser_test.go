package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseExpenseLine(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	rec, err := ParseExpenseLine("seba hoy 54000 ferreteria", today)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Person != "seba" {
		t.Errorf("person: expected seba, got %q", rec.Person)
	}
	if got := rec.Date.Format(DateLayout); got != "2024-03-15" {
		t.Errorf("date: expected 2024-03-15, got %s", got)
	}
	if !rec.Amount.Equal(decimal.NewFromInt(54000)) {
		t.Errorf("amount: expected 54000, got %s", rec.Amount)
	}
	if !rec.HalfShare.Equal(decimal.NewFromInt(27000)) {
		t.Errorf("half share: expected 27000, got %s", rec.HalfShare)
	}
	if rec.Description != "ferreteria" {
		t.Errorf("description: expected ferreteria, got %q", rec.Description)
	}
}

func TestParseExpenseLineMultiWordDescription(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	rec, err := ParseExpenseLine("Vicky  ayer  $1.234,56   super   del  barrio", today)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Person != "vicky" {
		t.Errorf("person should be lowercased, got %q", rec.Person)
	}
	if got := rec.Date.Format(DateLayout); got != "2024-03-14" {
		t.Errorf("date: expected 2024-03-14, got %s", got)
	}
	if !rec.Amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("amount: expected 1234.56, got %s", rec.Amount)
	}
	if rec.Description != "super del barrio" {
		t.Errorf("description: expected single-space join, got %q", rec.Description)
	}
}

func TestParseExpenseLineErrors(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		line string
		want error
	}{
		{"seba 54000", ErrMalformedExpense},
		{"", ErrMalformedExpense},
		{"seba manana 54000 ferreteria", ErrInvalidDate},
		{"seba hoy nada ferreteria", ErrInvalidAmount},
	}
	for _, tc := range cases {
		_, err := ParseExpenseLine(tc.line, today)
		if err == nil {
			t.Fatalf("%q: expected error", tc.line)
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.line, tc.want, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected *ParseError, got %T", tc.line, err)
		}
		if pe.Line != tc.line {
			t.Errorf("%q: ParseError should carry the original line, got %q", tc.line, pe.Line)
		}
		if !strings.Contains(pe.Error(), "Ejemplo: seba hoy 54000 ferreteria") {
			t.Errorf("%q: error text should include the usage example", tc.line)
		}
	}
}

func TestRecordRowRoundTrip(t *testing.T) {
	today := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	rec, err := ParseExpenseLine("seba 3-4 1.234,5 cosas varias", today)
	if err != nil {
		t.Fatal(err)
	}
	row := rec.Row()
	if row.Date != "2024-04-03" {
		t.Errorf("row date should be canonical, got %q", row.Date)
	}

	back, err := ParseStoredDate(row.Date, today.Year())
	if err != nil {
		t.Fatalf("stored date should parse back: %v", err)
	}
	if !back.Equal(rec.Date) {
		t.Errorf("date round trip mismatch: %v vs %v", back, rec.Date)
	}
	amt, err := NormalizeAmount(row.Amount)
	if err != nil {
		t.Fatalf("stored amount should parse back: %v", err)
	}
	if !amt.Equal(rec.Amount) {
		t.Errorf("amount round trip mismatch: %s vs %s", amt, rec.Amount)
	}
	half, err := NormalizeAmount(row.HalfShare)
	if err != nil {
		t.Fatal(err)
	}
	if !half.Equal(rec.Amount.Div(decimal.NewFromInt(2))) {
		t.Errorf("half share should be exactly amount/2, got %s", half)
	}
	if row.Person != rec.Person || row.Description != rec.Description {
		t.Error("person and description must survive the round trip unchanged")
	}
}
