// Package service implements the board operations on top of the sheet
// repositories. It keeps no state of its own: every call reads or writes the
// spreadsheets, and the last write to a cell range wins.
package service

import (
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// TemplateSetting names the configuration key of the template spreadsheet id.
const TemplateSetting = "GOOGLE_TEMPLATE_SHEET_ID"

func requireTemplate(templateID string) error {
	if templateID == "" {
		return &ConfigurationError{Setting: TemplateSetting}
	}
	return nil
}

// checkProjectID rejects ids that cannot address a spreadsheet.
func checkProjectID(id string) error {
	if strings.TrimSpace(id) == "" {
		return required("projectId")
	}
	if model.IsPlaceholderProjectID(id) {
		return &ValidationError{Field: "projectId", Reason: "project " + id + " has no spreadsheet id"}
	}
	return nil
}

func checkRowIndex(rowIndex int) error {
	if rowIndex == 0 {
		return required("rowIndex")
	}
	if rowIndex < repository.FirstDataRow {
		return &ValidationError{Field: "rowIndex", Reason: "rowIndex must address a data row"}
	}
	return nil
}
