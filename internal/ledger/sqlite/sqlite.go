// Package sqlite keeps the ledger in a local SQLite database. Unlike the
// Sheets adapter it uses plain append semantics: the table grows unbounded
// and the period close moves rows into an archive table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gastos/internal/core"
	"gastos/internal/ledger"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

var (
	_ ledger.Store    = (*Repository)(nil)
	_ ledger.Archiver = (*Repository)(nil)
)

func New(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Repository) Append(ctx context.Context, row core.Row) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO ledger (person, date, amount, half_share, description) VALUES (?, ?, ?, ?, ?)`,
		row.Person, row.Date, row.Amount, row.HalfShare, row.Description)
	if err != nil {
		return fmt.Errorf("insert ledger row: %w", err)
	}
	id, _ := res.LastInsertId()
	slog.InfoContext(ctx, "Expense row written", "id", id, "person", row.Person)
	return nil
}

func (r *Repository) Rows(ctx context.Context) ([]core.Row, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT person, date, amount, half_share, description FROM ledger ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select ledger rows: %w", err)
	}
	defer rows.Close()

	var out []core.Row
	for rows.Next() {
		var row core.Row
		if err := rows.Scan(&row.Person, &row.Date, &row.Amount, &row.HalfShare, &row.Description); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return out, nil
}

// ArchivePeriod moves every active row into the archive table under the
// given label and empties the active ledger, all in one transaction.
func (r *Repository) ArchivePeriod(ctx context.Context, label string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ledger_archive (period, person, date, amount, half_share, description)
		 SELECT ?, person, date, amount, half_share, description FROM ledger ORDER BY id`,
		label); err != nil {
		return fmt.Errorf("copy rows to archive: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger`); err != nil {
		return fmt.Errorf("clear active ledger: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}

	slog.InfoContext(ctx, "Ledger archived", "label", label)
	return nil
}
