// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"taskboard/internal/spreadsheet"
)

// Call records one gateway invocation.
type Call struct {
	Op            string
	SpreadsheetID string
	Range         string
	Rows          [][]string
}

// FakeSpreadsheet is an in-memory implementation of spreadsheet.Gateway.
// Cells are addressed with the same A1 ranges the Google client sends.
type FakeSpreadsheet struct {
	mu      sync.Mutex
	files   map[string]map[string][][]string // spreadsheetID -> sheet -> rows
	names   map[string]string
	trashed map[string]bool
	nextID  int

	Calls []Call

	// Errs injects a failure for an operation name ("GetValues", "CopyFile", ...).
	Errs map[string]error
}

var _ spreadsheet.Gateway = (*FakeSpreadsheet)(nil)

func NewFakeSpreadsheet() *FakeSpreadsheet {
	return &FakeSpreadsheet{
		files:   make(map[string]map[string][][]string),
		names:   make(map[string]string),
		trashed: make(map[string]bool),
		Errs:    make(map[string]error),
	}
}

// AddSpreadsheet registers an empty spreadsheet file.
func (f *FakeSpreadsheet) AddSpreadsheet(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.files[id] == nil {
		f.files[id] = make(map[string][][]string)
	}
}

// SetRows writes rows starting at column A of the given 1-based row.
func (f *FakeSpreadsheet) SetRows(id, sheet string, startRow int, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.files[id] == nil {
		f.files[id] = make(map[string][][]string)
	}
	f.write(id, sheet, startRow, 0, rows)
}

// Rows returns a copy of every row of a sheet, starting at row 1.
func (f *FakeSpreadsheet) Rows(id, sheet string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, row := range f.files[id][sheet] {
		out = append(out, append([]string(nil), row...))
	}
	return out
}

func (f *FakeSpreadsheet) Exists(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.files[id]
	return ok
}

func (f *FakeSpreadsheet) Trashed(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.trashed[id]
}

func (f *FakeSpreadsheet) Name(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.names[id]
}

// CallsFor returns the recorded calls of one operation.
func (f *FakeSpreadsheet) CallsFor(op string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// MutatingCalls counts update, append and clear calls.
func (f *FakeSpreadsheet) MutatingCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		switch c.Op {
		case "UpdateValues", "AppendValues", "ClearValues":
			n++
		}
	}
	return n
}

func (f *FakeSpreadsheet) record(op, id string, rng spreadsheet.Range, rows [][]string) error {
	f.Calls = append(f.Calls, Call{Op: op, SpreadsheetID: id, Range: rng.String(), Rows: rows})
	if err := f.Errs[op]; err != nil {
		return err
	}
	if _, ok := f.files[id]; !ok {
		return fmt.Errorf("spreadsheet %s: %w", id, spreadsheet.ErrNotFound)
	}
	return nil
}

func (f *FakeSpreadsheet) GetValues(ctx context.Context, id string, rng spreadsheet.Range) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetValues", id, rng, nil); err != nil {
		return nil, err
	}

	rows := f.files[id][rng.Sheet]
	start := max(rng.StartRow, 1)
	end := rng.EndRow
	if end == 0 || end > len(rows) {
		end = len(rows)
	}
	firstCol := spreadsheet.ColumnIndex(rng.StartCol)
	width := rng.Width()

	out := [][]string{}
	for r := start; r <= end; r++ {
		var cells []string
		row := rows[r-1]
		for c := firstCol; c < firstCol+width && c < len(row); c++ {
			cells = append(cells, row[c])
		}
		out = append(out, trimCells(cells))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (f *FakeSpreadsheet) UpdateValues(ctx context.Context, id string, rng spreadsheet.Range, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateValues", id, rng, rows); err != nil {
		return err
	}
	if len(rows) > 0 && len(rows[0]) > rng.Width() {
		return fmt.Errorf("range %s is narrower than %d values", rng, len(rows[0]))
	}
	f.write(id, rng.Sheet, max(rng.StartRow, 1), spreadsheet.ColumnIndex(rng.StartCol), rows)
	return nil
}

func (f *FakeSpreadsheet) AppendValues(ctx context.Context, id string, rng spreadsheet.Range, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("AppendValues", id, rng, rows); err != nil {
		return err
	}

	firstCol := spreadsheet.ColumnIndex(rng.StartCol)
	width := rng.Width()
	last := 0
	for i, row := range f.files[id][rng.Sheet] {
		for c := firstCol; c < firstCol+width && c < len(row); c++ {
			if row[c] != "" {
				last = i + 1
				break
			}
		}
	}
	f.write(id, rng.Sheet, last+1, firstCol, rows)
	return nil
}

func (f *FakeSpreadsheet) ClearValues(ctx context.Context, id string, rng spreadsheet.Range) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ClearValues", id, rng, nil); err != nil {
		return err
	}

	rows := f.files[id][rng.Sheet]
	end := rng.EndRow
	if end == 0 || end > len(rows) {
		end = len(rows)
	}
	firstCol := spreadsheet.ColumnIndex(rng.StartCol)
	for r := max(rng.StartRow, 1); r <= end; r++ {
		row := rows[r-1]
		for c := firstCol; c < firstCol+rng.Width() && c < len(row); c++ {
			row[c] = ""
		}
	}
	return nil
}

func (f *FakeSpreadsheet) CopyFile(ctx context.Context, fileID, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Op: "CopyFile", SpreadsheetID: fileID})
	if err := f.Errs["CopyFile"]; err != nil {
		return "", err
	}
	src, ok := f.files[fileID]
	if !ok {
		return "", fmt.Errorf("file %s: %w", fileID, spreadsheet.ErrNotFound)
	}

	f.nextID++
	id := fmt.Sprintf("copy-%d", f.nextID)
	dst := make(map[string][][]string, len(src))
	for sheet, rows := range src {
		for _, row := range rows {
			dst[sheet] = append(dst[sheet], append([]string(nil), row...))
		}
	}
	f.files[id] = dst
	f.names[id] = name
	return id, nil
}

func (f *FakeSpreadsheet) TrashFile(ctx context.Context, fileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Op: "TrashFile", SpreadsheetID: fileID})
	if err := f.Errs["TrashFile"]; err != nil {
		return err
	}
	if _, ok := f.files[fileID]; !ok {
		return fmt.Errorf("file %s: %w", fileID, spreadsheet.ErrNotFound)
	}
	f.trashed[fileID] = true
	return nil
}

// write must be called with mu held.
func (f *FakeSpreadsheet) write(id, sheet string, startRow, startCol int, rows [][]string) {
	grid := f.files[id][sheet]
	for i, values := range rows {
		r := startRow - 1 + i
		for len(grid) <= r {
			grid = append(grid, nil)
		}
		for len(grid[r]) < startCol+len(values) {
			grid[r] = append(grid[r], "")
		}
		copy(grid[r][startCol:], values)
	}
	f.files[id][sheet] = grid
}

func trimCells(cells []string) []string {
	n := len(cells)
	for n > 0 && strings.TrimSpace(cells[n-1]) == "" {
		n--
	}
	if n == 0 {
		return []string{}
	}
	return cells[:n]
}
