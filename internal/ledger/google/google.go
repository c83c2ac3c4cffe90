// Package google persists the ledger in a Google Sheets worksheet, using the
// same five-column window layout the spreadsheet has always had: a merged
// period title in row 1, the header in row 2, and data rows in A3:E1000.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gastos/internal/core"
	"gastos/internal/ledger"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

const (
	firstDataRow = 3
	lastDataRow  = 1000
	columns      = 5
)

var headerRow = []any{"persona", "fecha", "monto", "division", "descripcion"}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// Ensure interface conformance
var (
	_ ledger.Store    = (*Client)(nil)
	_ ledger.Archiver = (*Client)(nil)
)

// New creates a Sheets-backed ledger using service-account credentials.
func New(ctx context.Context, spreadsheetID, sheetName string, credentialsJSON []byte) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if strings.TrimSpace(sheetName) == "" {
		return nil, errors.New("missing sheet name")
	}
	if len(credentialsJSON) == 0 {
		return nil, errors.New("missing service account credentials")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets ledger initialized", "sheet", sheetName)
	return &Client{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}, nil
}

// Rows reads the raw contents of the current ledger window.
func (c *Client) Rows(ctx context.Context) ([]core.Row, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.windowRange()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.windowRange(), err)
	}
	rows := make([]core.Row, 0, len(resp.Values))
	for _, cells := range resp.Values {
		rows = append(rows, toRow(cells))
	}
	return rows, nil
}

// Append writes the row into the first all-empty slot of the window. The
// window is fixed, so a full window is an error rather than silent growth.
func (c *Client) Append(ctx context.Context, row core.Row) error {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.windowRange()).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read %s: %w", c.windowRange(), err)
	}
	slot := firstDataRow + firstEmptySlot(resp.Values)
	if slot > lastDataRow {
		return fmt.Errorf("ledger window full (rows %d-%d)", firstDataRow, lastDataRow)
	}

	rng := fmt.Sprintf("'%s'!A%d:E%d", c.sheetName, slot, slot)
	vr := &gsheet.ValueRange{Values: [][]any{{row.Person, row.Date, row.Amount, row.HalfShare, row.Description}}}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write %s: %w", rng, err)
	}

	slog.InfoContext(ctx, "Expense row written", "range", rng, "person", row.Person)
	return nil
}

// ArchivePeriod shifts the current window five columns to the right by
// inserting fresh columns at A, then rebuilds the window head: merged title
// cell with the period label, header row, and cleared data rows. Mutations
// run in order and are not rolled back on failure.
func (c *Client) ArchivePeriod(ctx context.Context, label string) error {
	sheetID, err := c.sheetID(ctx)
	if err != nil {
		return err
	}

	batch := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{
			{
				InsertDimension: &gsheet.InsertDimensionRequest{
					Range: &gsheet.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "COLUMNS",
						StartIndex: 0,
						EndIndex:   columns,
					},
				},
			},
			{
				MergeCells: &gsheet.MergeCellsRequest{
					MergeType: "MERGE_ALL",
					Range: &gsheet.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    0,
						EndRowIndex:      1,
						StartColumnIndex: 0,
						EndColumnIndex:   columns,
					},
				},
			},
		},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, batch).Context(ctx).Do(); err != nil {
		return fmt.Errorf("insert archive columns: %w", err)
	}

	titleRange := fmt.Sprintf("'%s'!A1", c.sheetName)
	title := &gsheet.ValueRange{Values: [][]any{{label}}}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, titleRange, title).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write period title: %w", err)
	}

	headerRange := fmt.Sprintf("'%s'!A2:E2", c.sheetName)
	header := &gsheet.ValueRange{Values: [][]any{headerRow}}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, headerRange, header).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, c.windowRange(), &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear data rows: %w", err)
	}

	slog.InfoContext(ctx, "Ledger window archived", "label", label)
	return nil
}

func (c *Client) windowRange() string {
	return fmt.Sprintf("'%s'!A%d:E%d", c.sheetName, firstDataRow, lastDataRow)
}

func (c *Client) sheetID(ctx context.Context) (int64, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet metadata: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == c.sheetName {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found", c.sheetName)
}

// firstEmptySlot returns the zero-based offset of the first all-empty row in
// the window values. The API trims trailing empty rows, so reaching the end
// of values means the next slot is right after them.
func firstEmptySlot(values [][]any) int {
	for i, cells := range values {
		if toRow(cells).Empty() {
			return i
		}
	}
	return len(values)
}

func toRow(cells []any) core.Row {
	get := func(i int) string {
		if i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(fmt.Sprint(cells[i]))
	}
	return core.Row{
		Person:      get(0),
		Date:        get(1),
		Amount:      get(2),
		HalfShare:   get(3),
		Description: get(4),
	}
}
