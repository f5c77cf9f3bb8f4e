// Package spreadsheet is the boundary to the spreadsheet backend: range based
// value reads and writes plus file copy and trash.
package spreadsheet

import "context"

// Gateway is the set of spreadsheet operations the board relies on. Reads
// return cells as strings with trailing empty cells and rows trimmed, the way
// the Sheets API reports them.
type Gateway interface {
	GetValues(ctx context.Context, spreadsheetID string, rng Range) ([][]string, error)
	UpdateValues(ctx context.Context, spreadsheetID string, rng Range, rows [][]string) error
	AppendValues(ctx context.Context, spreadsheetID string, rng Range, rows [][]string) error
	ClearValues(ctx context.Context, spreadsheetID string, rng Range) error
	// CopyFile copies a spreadsheet file and returns the id of the copy.
	CopyFile(ctx context.Context, fileID, name string) (string, error)
	TrashFile(ctx context.Context, fileID string) error
}
