package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/auth"
	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router   *gin.Engine
	members  *MockMemberService
	projects *MockProjectService
	tasks    *MockTaskService
}

func setupTest(tokens *auth.Tokens) *fixture {
	gin.SetMode(gin.TestMode)
	f := &fixture{
		router:   gin.New(),
		members:  new(MockMemberService),
		projects: new(MockProjectService),
		tasks:    new(MockTaskService),
	}

	memberHandler := handler.NewMemberHandler(f.members)
	projectHandler := handler.NewProjectHandler(f.projects)
	taskHandler := handler.NewTaskHandler(f.tasks)
	sessionHandler := handler.NewSessionHandler(f.members, tokens)

	f.router.POST("/sessions", sessionHandler.Create)
	f.router.GET("/members", memberHandler.GetAll)
	f.router.GET("/projects", projectHandler.GetAll)
	f.router.POST("/projects", projectHandler.Create)
	f.router.DELETE("/projects/:projectId", projectHandler.Delete)
	f.router.GET("/projects/:projectId/tasks", taskHandler.GetAll)
	f.router.POST("/projects/:projectId/tasks", taskHandler.Create)
	f.router.PUT("/projects/:projectId/tasks", taskHandler.Update)
	f.router.DELETE("/projects/:projectId/tasks", taskHandler.Delete)
	f.router.POST("/projects/:projectId/tasks/move", taskHandler.Move)
	f.router.GET("/projects/:projectId/progress", taskHandler.Progress)
	f.router.GET("/projects/:projectId/reminders", taskHandler.Reminders)
	return f
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func TestGetMembers_Success(t *testing.T) {
	// Arrange
	f := setupTest(nil)
	f.members.On("List", mock.Anything).Return([]model.Member{{Name: "佐藤", Email: "sato@example.com", Color: "Red"}}, nil)

	// Act
	resp := f.do("GET", "/members", nil)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Members []model.Member `json:"members"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "佐藤", body.Members[0].Name)
	f.members.AssertExpectations(t)
}

func TestGetMembers_MissingTemplate(t *testing.T) {
	f := setupTest(nil)
	f.members.On("List", mock.Anything).Return(nil, &service.ConfigurationError{Setting: service.TemplateSetting})

	resp := f.do("GET", "/members", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "GOOGLE_TEMPLATE_SHEET_ID is not configured", decode(t, resp)["error"])
}

func TestGetProjects_UpstreamErrorIsHidden(t *testing.T) {
	f := setupTest(nil)
	f.projects.On("List", mock.Anything).Return(nil, &service.UpstreamError{Op: "fetch projects", Err: fmt.Errorf("secret backend detail")})

	resp := f.do("GET", "/projects", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Failed to fetch projects", decode(t, resp)["error"])
	assert.NotContains(t, resp.Body.String(), "secret backend detail")
}

func TestCreateProject_Success(t *testing.T) {
	// Arrange
	f := setupTest(nil)
	req := service.NewProject{Title: "新店舗", OpenDate: "2025-04-01"}
	f.projects.On("Create", mock.Anything, req).Return(&model.Project{ID: "sheet-a", SpreadsheetID: "sheet-a", Title: "新店舗"}, nil)

	// Act
	resp := f.do("POST", "/projects", handler.CreateProjectRequest{Title: "新店舗", OpenDate: "2025-04-01"})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	var body struct {
		Project model.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "sheet-a", body.Project.ID)
	f.projects.AssertExpectations(t)
}

func TestCreateProject_ValidationError(t *testing.T) {
	f := setupTest(nil)
	f.projects.On("Create", mock.Anything, mock.Anything).Return(nil, &service.ValidationError{Field: "title", Reason: "title, openDate are required"})

	resp := f.do("POST", "/projects", handler.CreateProjectRequest{Title: "新店舗"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "title, openDate are required", decode(t, resp)["error"])
}

func TestCreateProject_MalformedJSON(t *testing.T) {
	f := setupTest(nil)

	resp := f.do("POST", "/projects", "{not json")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	f.projects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteProject(t *testing.T) {
	f := setupTest(nil)
	f.projects.On("Delete", mock.Anything, "sheet-a").Return(service.DeleteResult{}, nil)

	resp := f.do("DELETE", "/projects/sheet-a", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, decode(t, resp)["success"])
	f.projects.AssertExpectations(t)
}

func TestGetTasks(t *testing.T) {
	f := setupTest(nil)
	lists := []model.TaskList{{ID: "list-0", Title: "準備", Direction: model.DirectionVertical, Cards: []model.TaskCard{{ID: "row-2", RowIndex: 2, Title: "買い物", Status: model.StatusTodo}}}}
	f.tasks.On("List", mock.Anything, "sheet-a").Return(lists, nil)

	resp := f.do("GET", "/projects/sheet-a/tasks", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Lists []model.TaskList `json:"lists"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, lists, body.Lists)
}

func TestCreateTask(t *testing.T) {
	f := setupTest(nil)
	fields := model.TaskFields{Title: "買い物", ListName: "準備", Assignee: "佐藤"}
	f.tasks.On("Create", mock.Anything, "sheet-a", fields).Return(5, nil)

	resp := f.do("POST", "/projects/sheet-a/tasks", handler.CreateTaskRequest{Title: "買い物", ListName: "準備", Assignee: "佐藤"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	body := decode(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(5), body["rowIndex"])
}

func TestCreateTask_MissingListName(t *testing.T) {
	f := setupTest(nil)
	f.tasks.On("Create", mock.Anything, "sheet-a", mock.Anything).Return(0, &service.ValidationError{Field: "title", Reason: "title and listName are required"})

	resp := f.do("POST", "/projects/sheet-a/tasks", handler.CreateTaskRequest{Title: "買い物"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateTask_ChecklistReplacesDescription(t *testing.T) {
	// Arrange
	f := setupTest(nil)
	want := model.TaskFields{Title: "買い物", Status: "done", ListName: "準備", Description: "・牛乳\n・[x]パン"}
	f.tasks.On("Update", mock.Anything, "sheet-a", 4, want).Return(nil)

	// Act
	resp := f.do("PUT", "/projects/sheet-a/tasks", handler.UpdateTaskRequest{
		RowIndex:    4,
		Title:       "買い物",
		Status:      "done",
		ListName:    "準備",
		Description: "買うもの\n・牛乳",
		Checklist:   []model.ChecklistItem{{Text: "牛乳"}, {Text: "パン", Checked: true}},
	})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	f.tasks.AssertExpectations(t)
}

func TestUpdateTask_MissingRowIndex(t *testing.T) {
	f := setupTest(nil)
	f.tasks.On("Update", mock.Anything, "sheet-a", 0, mock.Anything).Return(&service.ValidationError{Field: "rowIndex"})

	resp := f.do("PUT", "/projects/sheet-a/tasks", map[string]string{"title": "買い物"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "rowIndex is required", decode(t, resp)["error"])
}

func TestDeleteTask(t *testing.T) {
	f := setupTest(nil)
	f.tasks.On("Delete", mock.Anything, "sheet-a", 3).Return(nil)

	resp := f.do("DELETE", "/projects/sheet-a/tasks", handler.DeleteTaskRequest{RowIndex: 3})

	assert.Equal(t, http.StatusOK, resp.Code)
	f.tasks.AssertExpectations(t)
}

func TestMoveTask(t *testing.T) {
	f := setupTest(nil)
	f.tasks.On("Move", mock.Anything, "sheet-a", service.Move{RowIndex: 3, FromList: "準備", ToList: "当日"}).Return(true, nil)

	resp := f.do("POST", "/projects/sheet-a/tasks/move", handler.MoveTaskRequest{RowIndex: 3, FromList: "準備", ToList: "当日"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, decode(t, resp)["moved"])
}

func TestProgress(t *testing.T) {
	f := setupTest(nil)
	f.tasks.On("Progress", mock.Anything, "sheet-a").Return(33, nil)

	resp := f.do("GET", "/projects/sheet-a/progress", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, float64(33), decode(t, resp)["progress"])
}

func TestReminders(t *testing.T) {
	f := setupTest(nil)
	f.tasks.On("Reminders", mock.Anything, "sheet-a", mock.AnythingOfType("time.Time")).Return(nil, nil)

	resp := f.do("GET", "/projects/sheet-a/reminders", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	f.tasks.AssertExpectations(t)
}

func TestCreateSession_Success(t *testing.T) {
	// Arrange
	tokens := auth.NewTokens("test-secret", 24)
	f := setupTest(tokens)
	f.members.On("FindByEmail", mock.Anything, "sato@example.com").Return(&model.Member{Name: "佐藤", Email: "sato@example.com"}, nil)

	// Act
	resp := f.do("POST", "/sessions", handler.SessionRequest{Email: "sato@example.com"})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	token, _ := decode(t, resp)["token"].(string)
	member, err := tokens.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "佐藤", member)
}

func TestCreateSession_UnknownMember(t *testing.T) {
	f := setupTest(auth.NewTokens("test-secret", 24))
	f.members.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	resp := f.do("POST", "/sessions", handler.SessionRequest{Email: "nobody@example.com"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateSession_InvalidEmail(t *testing.T) {
	f := setupTest(auth.NewTokens("test-secret", 24))

	resp := f.do("POST", "/sessions", handler.SessionRequest{Email: "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	f.members.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestCreateSession_Disabled(t *testing.T) {
	f := setupTest(nil)

	resp := f.do("POST", "/sessions", handler.SessionRequest{Email: "sato@example.com"})

	assert.Equal(t, http.StatusNotImplemented, resp.Code)
}
