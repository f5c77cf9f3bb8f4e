package handler

import (
	"context"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/reminder"
	"taskboard/internal/service"
)

type MemberService interface {
	List(ctx context.Context) ([]model.Member, error)
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
}

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, req service.NewProject) (*model.Project, error)
	Delete(ctx context.Context, id string) (service.DeleteResult, error)
}

type TaskService interface {
	List(ctx context.Context, projectID string) ([]model.TaskList, error)
	Progress(ctx context.Context, projectID string) (int, error)
	Reminders(ctx context.Context, projectID string, today time.Time) ([]reminder.Reminder, error)
	Create(ctx context.Context, projectID string, f model.TaskFields) (int, error)
	Update(ctx context.Context, projectID string, rowIndex int, f model.TaskFields) error
	Delete(ctx context.Context, projectID string, rowIndex int) error
	Move(ctx context.Context, projectID string, m service.Move) (bool, error)
}

var (
	_ MemberService  = (*service.MemberService)(nil)
	_ ProjectService = (*service.ProjectService)(nil)
	_ TaskService    = (*service.TaskService)(nil)
)
