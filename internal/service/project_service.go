package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type ProjectService struct {
	projects   *repository.ProjectRepository
	templateID string
	now        func() time.Time
}

func NewProjectService(projects *repository.ProjectRepository, templateID string) *ProjectService {
	return &ProjectService{projects: projects, templateID: templateID, now: time.Now}
}

// WithClock replaces the clock used for created dates
func (s *ProjectService) WithClock(now func() time.Time) *ProjectService {
	s.now = now
	return s
}

type NewProject struct {
	Title       string
	OpenDate    string
	Description string
}

// DeleteResult reports which cleanup steps of a delete went through.
type DeleteResult struct {
	Trashed      bool
	Unregistered bool
}

// List returns the registry. Progress is always 0 here; it needs the project's tasks.
func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	if err := requireTemplate(s.templateID); err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx, s.templateID)
	if err != nil {
		return nil, upstream("fetch projects", err)
	}
	return projects, nil
}

// Create copies the template, fills the copy's info block and registers it.
// A copy whose registration fails is left behind unregistered.
func (s *ProjectService) Create(ctx context.Context, req NewProject) (*model.Project, error) {
	if err := requireTemplate(s.templateID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.OpenDate) == "" {
		return nil, &ValidationError{Field: "title", Reason: "title, openDate are required"}
	}

	spreadsheetID, err := s.projects.CopyTemplate(ctx, s.templateID, req.Title)
	if err != nil {
		return nil, upstream("copy template", err)
	}

	p := model.Project{
		ID:            spreadsheetID,
		Title:         req.Title,
		OpenDate:      req.OpenDate,
		Description:   req.Description,
		Lists:         []model.TaskList{},
		CreatedAt:     s.now().UTC().Format(model.DateLayout),
		SpreadsheetID: spreadsheetID,
	}

	if err := s.projects.WriteInfo(ctx, p); err != nil {
		log.Printf("⚠️  Project spreadsheet %s created but info block not written", spreadsheetID)
		return nil, upstream("write project info", err)
	}
	if err := s.projects.Register(ctx, s.templateID, p); err != nil {
		log.Printf("⚠️  Project spreadsheet %s created but not registered", spreadsheetID)
		return nil, upstream("register project", err)
	}

	return &p, nil
}

// Delete trashes the project's spreadsheet and clears its registry row. Both
// steps are best effort: failures are logged, never returned.
func (s *ProjectService) Delete(ctx context.Context, id string) (DeleteResult, error) {
	var res DeleteResult
	if err := requireTemplate(s.templateID); err != nil {
		return res, err
	}
	if err := checkProjectID(id); err != nil {
		return res, err
	}

	if err := s.projects.Trash(ctx, id); err != nil {
		log.Printf("⚠️  Failed to trash spreadsheet %s: %v", id, err)
	} else {
		res.Trashed = true
	}

	row, err := s.projects.FindRow(ctx, s.templateID, id)
	switch {
	case errors.Is(err, repository.ErrProjectNotFound):
		return res, nil
	case err != nil:
		log.Printf("⚠️  Failed to look up registry row of %s: %v", id, err)
		return res, nil
	}

	if err := s.projects.ClearRow(ctx, s.templateID, row); err != nil {
		log.Printf("⚠️  Failed to clear registry row %d of %s: %v", row, id, err)
		return res, nil
	}
	res.Unregistered = true
	return res, nil
}
