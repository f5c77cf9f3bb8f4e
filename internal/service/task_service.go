package service

import (
	"context"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/reminder"
	"taskboard/internal/repository"
)

type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// Move describes dragging a card from one list to another.
type Move struct {
	RowIndex int
	FromList string
	ToList   string
}

// List returns the project's board
func (s *TaskService) List(ctx context.Context, projectID string) ([]model.TaskList, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, required("projectId")
	}
	lists, err := s.tasks.List(ctx, projectID)
	if err != nil {
		return nil, upstream("fetch tasks", err)
	}
	return lists, nil
}

// Progress is the share of done cards, read fresh from the sheet
func (s *TaskService) Progress(ctx context.Context, projectID string) (int, error) {
	lists, err := s.List(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return model.Progress(lists), nil
}

// Reminders lists the due-date reminders of the board as of today
func (s *TaskService) Reminders(ctx context.Context, projectID string, today time.Time) ([]reminder.Reminder, error) {
	lists, err := s.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return reminder.Collect(lists, today), nil
}

// Create appends a new todo card and returns its row index
func (s *TaskService) Create(ctx context.Context, projectID string, f model.TaskFields) (int, error) {
	if err := checkProjectID(projectID); err != nil {
		return 0, err
	}
	if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.ListName) == "" {
		return 0, &ValidationError{Field: "title", Reason: "title and listName are required"}
	}
	row, err := s.tasks.Create(ctx, projectID, f)
	if err != nil {
		return 0, upstream("create task", err)
	}
	return row, nil
}

// Update overwrites the editable columns of the card at rowIndex
func (s *TaskService) Update(ctx context.Context, projectID string, rowIndex int, f model.TaskFields) error {
	if err := checkProjectID(projectID); err != nil {
		return err
	}
	if err := checkRowIndex(rowIndex); err != nil {
		return err
	}
	if err := s.tasks.Update(ctx, projectID, rowIndex, f); err != nil {
		return upstream("update task", err)
	}
	return nil
}

// Delete clears the card's row; later rows keep their numbers
func (s *TaskService) Delete(ctx context.Context, projectID string, rowIndex int) error {
	if err := checkProjectID(projectID); err != nil {
		return err
	}
	if err := checkRowIndex(rowIndex); err != nil {
		return err
	}
	if err := s.tasks.Clear(ctx, projectID, rowIndex); err != nil {
		return upstream("delete task", err)
	}
	return nil
}

// Move persists a cross-list move by rewriting the card's list name. Order
// inside a list is not stored, so a same-list move makes no call and
// reports false.
func (s *TaskService) Move(ctx context.Context, projectID string, m Move) (bool, error) {
	if err := checkProjectID(projectID); err != nil {
		return false, err
	}
	if err := checkRowIndex(m.RowIndex); err != nil {
		return false, err
	}
	if strings.TrimSpace(m.ToList) == "" {
		return false, required("toList")
	}
	if m.FromList == m.ToList {
		return false, nil
	}
	if err := s.tasks.SetList(ctx, projectID, m.RowIndex, m.ToList); err != nil {
		return false, upstream("move task", err)
	}
	return true, nil
}
