package handler_test

import (
	"context"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/reminder"
	"taskboard/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) List(ctx context.Context) ([]model.Member, error) {
	args := m.Called(ctx)
	members, _ := args.Get(0).([]model.Member)
	return members, args.Error(1)
}

func (m *MockMemberService) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	args := m.Called(ctx, email)
	member := args.Get(0)
	if member == nil {
		return nil, args.Error(1)
	}
	return member.(*model.Member), args.Error(1)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]model.Project)
	return projects, args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, req service.NewProject) (*model.Project, error) {
	args := m.Called(ctx, req)
	project := args.Get(0)
	if project == nil {
		return nil, args.Error(1)
	}
	return project.(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id string) (service.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.DeleteResult), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context, projectID string) ([]model.TaskList, error) {
	args := m.Called(ctx, projectID)
	lists, _ := args.Get(0).([]model.TaskList)
	return lists, args.Error(1)
}

func (m *MockTaskService) Progress(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskService) Reminders(ctx context.Context, projectID string, today time.Time) ([]reminder.Reminder, error) {
	args := m.Called(ctx, projectID, today)
	reminders, _ := args.Get(0).([]reminder.Reminder)
	return reminders, args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, projectID string, f model.TaskFields) (int, error) {
	args := m.Called(ctx, projectID, f)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, projectID string, rowIndex int, f model.TaskFields) error {
	args := m.Called(ctx, projectID, rowIndex, f)
	return args.Error(0)
}

func (m *MockTaskService) Delete(ctx context.Context, projectID string, rowIndex int) error {
	args := m.Called(ctx, projectID, rowIndex)
	return args.Error(0)
}

func (m *MockTaskService) Move(ctx context.Context, projectID string, mv service.Move) (bool, error) {
	args := m.Called(ctx, projectID, mv)
	return args.Bool(0), args.Error(1)
}
