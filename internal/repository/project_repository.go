package repository

import (
	"context"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/spreadsheet"
)

type ProjectRepository struct {
	gw spreadsheet.Gateway
}

func NewProjectRepository(gw spreadsheet.Gateway) *ProjectRepository {
	return &ProjectRepository{gw: gw}
}

func registryRange() spreadsheet.Range {
	return spreadsheet.Columns(ProjectSheet, "A", "E", FirstDataRow)
}

// List reads the project registry of the template spreadsheet
func (r *ProjectRepository) List(ctx context.Context, templateID string) ([]model.Project, error) {
	rows, err := r.gw.GetValues(ctx, templateID, registryRange())
	if err != nil {
		return nil, err
	}
	return DecodeProjects(rows), nil
}

// CopyTemplate creates the backing spreadsheet of a new project
func (r *ProjectRepository) CopyTemplate(ctx context.Context, templateID, title string) (string, error) {
	return r.gw.CopyFile(ctx, templateID, title)
}

// WriteInfo fills the info block of the project's own spreadsheet
func (r *ProjectRepository) WriteInfo(ctx context.Context, p model.Project) error {
	return r.gw.UpdateValues(ctx, p.SpreadsheetID, spreadsheet.Range{
		Sheet: ProjectSheet, StartCol: "B", StartRow: 1, EndCol: "B", EndRow: 4,
	}, EncodeProjectInfo(p))
}

// Register appends the project to the template registry
func (r *ProjectRepository) Register(ctx context.Context, templateID string, p model.Project) error {
	return r.gw.AppendValues(ctx, templateID, spreadsheet.Columns(ProjectSheet, "A", "E", 0), [][]string{EncodeRegistryRow(p)})
}

// FindRow returns the sheet row of the registry entry pointing at spreadsheetID
func (r *ProjectRepository) FindRow(ctx context.Context, templateID, spreadsheetID string) (int, error) {
	rows, err := r.gw.GetValues(ctx, templateID, registryRange())
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if strings.TrimSpace(cell(row, 4)) == spreadsheetID {
			return i + FirstDataRow, nil
		}
	}
	return 0, ErrProjectNotFound
}

// ClearRow empties a registry row in place; later scans skip it
func (r *ProjectRepository) ClearRow(ctx context.Context, templateID string, row int) error {
	return r.gw.ClearValues(ctx, templateID, spreadsheet.Row(ProjectSheet, "A", "E", row))
}

// Trash moves the project's spreadsheet to the trash
func (r *ProjectRepository) Trash(ctx context.Context, spreadsheetID string) error {
	return r.gw.TrashFile(ctx, spreadsheetID)
}
