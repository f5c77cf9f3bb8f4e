package repository

import (
	"context"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/spreadsheet"
)

type TaskRepository struct {
	gw  spreadsheet.Gateway
	now func() time.Time
}

func NewTaskRepository(gw spreadsheet.Gateway) *TaskRepository {
	return &TaskRepository{gw: gw, now: time.Now}
}

// WithClock replaces the clock used for created dates
func (r *TaskRepository) WithClock(now func() time.Time) *TaskRepository {
	r.now = now
	return r
}

// Today is the current UTC calendar date
func (r *TaskRepository) Today() string {
	return r.now().UTC().Format(model.DateLayout)
}

// List reads the task sheet and groups it into lists
func (r *TaskRepository) List(ctx context.Context, spreadsheetID string) ([]model.TaskList, error) {
	rows, err := r.gw.GetValues(ctx, spreadsheetID, spreadsheet.Columns(TaskSheet, "A", "G", FirstDataRow))
	if err != nil {
		return nil, err
	}
	return DecodeTasks(rows, r.Today()), nil
}

// NextRow is the row after the last populated title cell
func (r *TaskRepository) NextRow(ctx context.Context, spreadsheetID string) (int, error) {
	rows, err := r.gw.GetValues(ctx, spreadsheetID, spreadsheet.Columns(TaskSheet, "A", "A", 0))
	if err != nil {
		return 0, err
	}
	return max(len(rows)+1, FirstDataRow), nil
}

// Create writes a new task row after the last populated row and returns its row index
func (r *TaskRepository) Create(ctx context.Context, spreadsheetID string, f model.TaskFields) (int, error) {
	row, err := r.NextRow(ctx, spreadsheetID)
	if err != nil {
		return 0, err
	}
	values := EncodeNewTask(f, r.Today())
	if err := r.gw.UpdateValues(ctx, spreadsheetID, spreadsheet.Row(TaskSheet, "A", "G", row), [][]string{values}); err != nil {
		return 0, err
	}
	return row, nil
}

// Update overwrites columns A..F of a task row
func (r *TaskRepository) Update(ctx context.Context, spreadsheetID string, rowIndex int, f model.TaskFields) error {
	return r.gw.UpdateValues(ctx, spreadsheetID, spreadsheet.Row(TaskSheet, "A", "F", rowIndex), [][]string{EncodeTaskUpdate(f)})
}

// SetList rewrites only the list name cell of a task row
func (r *TaskRepository) SetList(ctx context.Context, spreadsheetID string, rowIndex int, listName string) error {
	return r.gw.UpdateValues(ctx, spreadsheetID, spreadsheet.Cell(TaskSheet, "E", rowIndex), [][]string{{listName}})
}

// Clear empties columns A..G of a task row; the row itself stays
func (r *TaskRepository) Clear(ctx context.Context, spreadsheetID string, rowIndex int) error {
	return r.gw.ClearValues(ctx, spreadsheetID, spreadsheet.Row(TaskSheet, "A", "G", rowIndex))
}
