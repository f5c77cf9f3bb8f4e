package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an A1-notation block on a named sheet. A zero StartRow or EndRow
// leaves that side unbounded ("A:A", "A2:G"); an empty EndCol addresses a
// single cell.
type Range struct {
	Sheet    string
	StartCol string
	StartRow int
	EndCol   string
	EndRow   int
}

// Columns returns a range spanning startCol..endCol from startRow down to the
// last row of the sheet.
func Columns(sheet, startCol, endCol string, startRow int) Range {
	return Range{Sheet: sheet, StartCol: startCol, StartRow: startRow, EndCol: endCol}
}

// Row returns the cells startCol..endCol of a single 1-based row.
func Row(sheet, startCol, endCol string, row int) Range {
	return Range{Sheet: sheet, StartCol: startCol, StartRow: row, EndCol: endCol, EndRow: row}
}

// Cell returns a single cell.
func Cell(sheet, col string, row int) Range {
	return Range{Sheet: sheet, StartCol: col, StartRow: row}
}

func (r Range) String() string {
	var b strings.Builder
	b.WriteString(quoteSheet(r.Sheet))
	b.WriteByte('!')
	b.WriteString(r.StartCol)
	if r.StartRow > 0 {
		b.WriteString(strconv.Itoa(r.StartRow))
	}
	if r.EndCol == "" {
		return b.String()
	}
	b.WriteByte(':')
	b.WriteString(r.EndCol)
	if r.EndRow > 0 {
		b.WriteString(strconv.Itoa(r.EndRow))
	}
	return b.String()
}

// Width is the number of columns the range spans.
func (r Range) Width() int {
	if r.EndCol == "" {
		return 1
	}
	return ColumnIndex(r.EndCol) - ColumnIndex(r.StartCol) + 1
}

func quoteSheet(name string) string {
	if strings.ContainsAny(name, " '!:") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}

// ParseRange parses "Sheet!A2:G", "Sheet!A:A", "Sheet!B1:B4" or "Sheet!E7".
func ParseRange(s string) (Range, error) {
	i := strings.LastIndex(s, "!")
	if i <= 0 {
		return Range{}, fmt.Errorf("range %q: missing sheet name", s)
	}
	sheet := s[:i]
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	r := Range{Sheet: sheet}
	start, end, hasEnd := strings.Cut(s[i+1:], ":")

	var err error
	if r.StartCol, r.StartRow, err = parseCell(start); err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	if hasEnd {
		if r.EndCol, r.EndRow, err = parseCell(end); err != nil {
			return Range{}, fmt.Errorf("range %q: %w", s, err)
		}
	}
	return r, nil
}

func parseCell(s string) (string, int, error) {
	n := 0
	for n < len(s) && s[n] >= 'A' && s[n] <= 'Z' {
		n++
	}
	if n == 0 {
		return "", 0, fmt.Errorf("bad cell reference %q", s)
	}
	if n == len(s) {
		return s, 0, nil
	}
	row, err := strconv.Atoi(s[n:])
	if err != nil || row < 1 {
		return "", 0, fmt.Errorf("bad cell reference %q", s)
	}
	return s[:n], row, nil
}

// ColumnIndex converts a column letter ("A", "AB") to its 0-based index.
func ColumnIndex(col string) int {
	idx := 0
	for _, c := range col {
		idx = idx*26 + int(c-'A'+1)
	}
	return idx - 1
}

// ColumnLetter converts a 0-based index back to its column letter.
func ColumnLetter(idx int) string {
	var out []byte
	for idx++; idx > 0; idx = (idx - 1) / 26 {
		out = append([]byte{byte('A' + (idx-1)%26)}, out...)
	}
	return string(out)
}
