// Package services orchestrates the expense engine over a ledger backend:
// register an expense, answer summary queries, close the month, and build
// the monthly reminder.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gastos/internal/core"
	"gastos/internal/ledger"
)

type LedgerService struct {
	store    ledger.Store
	archiver ledger.Archiver
	pair     core.Pair
	now      func() time.Time
}

func NewLedgerService(store ledger.Store, archiver ledger.Archiver, pair core.Pair) *LedgerService {
	return &LedgerService{
		store:    store,
		archiver: archiver,
		pair:     pair,
		now:      time.Now,
	}
}

// WithClock replaces the time source; tests use it to pin "today".
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

func (s *LedgerService) Pair() core.Pair { return s.pair }

// RegisterExpense parses a free-text expense line, persists it, and returns
// the confirmation reply. Parse failures come back as *core.ParseError, whose
// text is already user-facing; store failures carry the raw underlying error
// so the user sees what went wrong.
func (s *LedgerService) RegisterExpense(ctx context.Context, line string) (string, error) {
	rec, err := core.ParseExpenseLine(line, s.now())
	if err != nil {
		return "", err
	}

	if err := s.store.Append(ctx, rec.Row()); err != nil {
		slog.ErrorContext(ctx, "Failed to write expense row", "error", err)
		return "", fmt.Errorf("Error escribiendo en la planilla: %w", err)
	}

	return fmt.Sprintf(
		"Gasto guardado:\nPersona: %s\nFecha: %s\nMonto: %s\nDescripción: %s\nCada uno paga: %s",
		rec.Person,
		rec.Date.Format(core.DateLayout),
		rec.Amount.String(),
		rec.Description,
		rec.HalfShare.String(),
	), nil
}

// Summary computes the settlement for the current month. It is a pure
// function of the stored rows: identical ledger contents produce identical
// output.
func (s *LedgerService) Summary(ctx context.Context) (string, error) {
	rows, err := s.store.Rows(ctx)
	if err != nil {
		return "", fmt.Errorf("leer la planilla: %w", err)
	}
	if !hasData(rows) {
		return "No hay gastos registrados.", nil
	}
	today := s.now()
	return core.Settle(rows, s.pair, today.Year(), today.Month()).Message(), nil
}

// PersonExpenses lists one participant's expenses for the current month.
func (s *LedgerService) PersonExpenses(ctx context.Context, name string) (string, error) {
	rows, err := s.store.Rows(ctx)
	if err != nil {
		return "", fmt.Errorf("leer la planilla: %w", err)
	}
	today := s.now()
	lines, total := core.PersonDetail(rows, name, today.Year(), today.Month())
	display := titleCase(name)
	if len(lines) == 0 {
		return fmt.Sprintf("No hay gastos de %s este mes.", display), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Gastos de %s este mes:\n", display)
	for _, l := range lines {
		fmt.Fprintf(&b, "%s: $%s - %s\n", l.Date, l.Amount.String(), l.Description)
	}
	fmt.Fprintf(&b, "\nTotal: $%s", core.FormatAmount(total))
	return b.String(), nil
}

// CloseMonth archives the current ledger window and starts a new period.
// The settlement is computed from the rows read before any mutation, so the
// closing message reflects the period that was just archived. If an archive
// step fails after that, the backend is left as-is for manual correction.
func (s *LedgerService) CloseMonth(ctx context.Context) (string, error) {
	rows, err := s.store.Rows(ctx)
	if err != nil {
		return "", fmt.Errorf("leer la planilla: %w", err)
	}
	today := s.now()
	settled := core.Settle(rows, s.pair, today.Year(), today.Month())

	label := core.PeriodLabel(today)
	if err := s.archiver.ArchivePeriod(ctx, label); err != nil {
		slog.ErrorContext(ctx, "Month close failed", "label", label, "error", err)
		return "", fmt.Errorf("Error cerrando el mes: %w", err)
	}

	return fmt.Sprintf("Mes cerrado CRACK! Se inició el listado para %s.\n%s",
		label, settled.ClosingLine()), nil
}

// MonthlyReminder returns the previous-month summary when today is the first
// of the month. Running it twice on the 1st yields the same message twice;
// there is no suppression of repeats.
func (s *LedgerService) MonthlyReminder(ctx context.Context, today time.Time) (string, bool, error) {
	if !core.IsReminderDay(today) {
		return "", false, nil
	}
	rows, err := s.store.Rows(ctx)
	if err != nil {
		return "", false, fmt.Errorf("leer la planilla: %w", err)
	}
	year, month := core.PreviousPeriod(today)
	msg := core.Settle(rows, s.pair, year, month).Message()
	return "Resumen del mes anterior:\n" + msg, true, nil
}

func hasData(rows []core.Row) bool {
	for _, r := range rows {
		if !r.Empty() {
			return true
		}
	}
	return false
}

func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
