// Package ledger defines the narrow contract the engine needs from a ledger
// backend. Adapters live in subpackages.
package ledger

import (
	"context"

	"gastos/internal/core"
)

// Ports for outbound adapters.
type (
	// Reader returns the raw rows of the current ledger window.
	Reader interface {
		Rows(ctx context.Context) ([]core.Row, error)
	}

	// Appender persists one row. The Google Sheets adapter fills the first
	// all-empty slot inside its fixed window; other adapters append.
	Appender interface {
		Append(ctx context.Context, row core.Row) error
	}

	// Archiver snapshots the current window under the given period label and
	// resets it for a new period. A failure partway through leaves the
	// backend in a manually-correctable state; there is no rollback.
	Archiver interface {
		ArchivePeriod(ctx context.Context, label string) error
	}

	// Store is what the ledger service needs for day-to-day operations.
	Store interface {
		Reader
		Appender
	}
)
