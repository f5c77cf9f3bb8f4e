package model

import (
	"fmt"
	"strings"
)

const placeholderProjectPrefix = "proj-"

type Project struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	OpenDate      string     `json:"openDate"`
	Description   string     `json:"description"`
	Progress      int        `json:"progress"`
	Lists         []TaskList `json:"lists"`
	CreatedAt     string     `json:"createdAt"`
	SpreadsheetID string     `json:"spreadsheetId"`
}

// PlaceholderProjectID is the id given to a registry row without a spreadsheet id.
func PlaceholderProjectID(ordinal int) string {
	return fmt.Sprintf("%s%d", placeholderProjectPrefix, ordinal)
}

// IsPlaceholderProjectID reports whether id was synthesized by PlaceholderProjectID.
// Such ids do not address a spreadsheet.
func IsPlaceholderProjectID(id string) bool {
	rest, ok := strings.CutPrefix(id, placeholderProjectPrefix)
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
