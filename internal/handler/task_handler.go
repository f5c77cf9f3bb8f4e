package handler

import (
	"net/http"
	"time"

	"taskboard/internal/checklist"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks TaskService
	now   func() time.Time
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks, now: time.Now}
}

// CreateTaskRequest is the body of a new card
type CreateTaskRequest struct {
	Title       string `json:"title"`
	ListName    string `json:"listName"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"dueDate"`
	Description string `json:"description"`
}

// UpdateTaskRequest overwrites every editable column of the row; omitted
// fields are written as empty. A checklist, when sent, replaces the description.
type UpdateTaskRequest struct {
	RowIndex    int                   `json:"rowIndex"`
	Title       string                `json:"title"`
	Status      string                `json:"status"`
	Assignee    string                `json:"assignee"`
	DueDate     string                `json:"dueDate"`
	ListName    string                `json:"listName"`
	Description string                `json:"description"`
	Checklist   []model.ChecklistItem `json:"checklist"`
}

type DeleteTaskRequest struct {
	RowIndex int `json:"rowIndex"`
}

type MoveTaskRequest struct {
	RowIndex int    `json:"rowIndex"`
	FromList string `json:"fromList"`
	ToList   string `json:"toList"`
}

// GetAll returns the project's board
// @Summary  List tasks grouped by list
// @Tags     Tasks
// @Produce  json
// @Param    projectId  path      string  true  "Spreadsheet id"
// @Success  200        {object}  map[string][]model.TaskList
// @Failure  500        {object}  map[string]string
// @Router   /projects/{projectId}/tasks [get]
func (h *TaskHandler) GetAll(c *gin.Context) {
	lists, err := h.tasks.List(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"lists": lists})
}

// Create appends a card to the task sheet
// @Summary  Create task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    projectId  path      string             true  "Spreadsheet id"
// @Param    task       body      CreateTaskRequest  true  "Task"
// @Success  201        {object}  map[string]interface{}
// @Failure  400        {object}  map[string]string
// @Failure  500        {object}  map[string]string
// @Router   /projects/{projectId}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	row, err := h.tasks.Create(c.Request.Context(), c.Param("projectId"), model.TaskFields{
		Title:       req.Title,
		ListName:    req.ListName,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "rowIndex": row})
}

// Update rewrites a card's row
// @Summary  Update task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    projectId  path      string             true  "Spreadsheet id"
// @Param    task       body      UpdateTaskRequest  true  "Task"
// @Success  200        {object}  map[string]bool
// @Failure  400        {object}  map[string]string
// @Failure  500        {object}  map[string]string
// @Router   /projects/{projectId}/tasks [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	description := req.Description
	if req.Checklist != nil {
		description = checklist.Serialize(req.Checklist)
	}

	err := h.tasks.Update(c.Request.Context(), c.Param("projectId"), req.RowIndex, model.TaskFields{
		Title:       req.Title,
		Status:      req.Status,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
		ListName:    req.ListName,
		Description: description,
	})
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete clears a card's row
// @Summary  Delete task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    projectId  path      string             true  "Spreadsheet id"
// @Param    task       body      DeleteTaskRequest  true  "Row"
// @Success  200        {object}  map[string]bool
// @Failure  400        {object}  map[string]string
// @Failure  500        {object}  map[string]string
// @Router   /projects/{projectId}/tasks [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	var req DeleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), c.Param("projectId"), req.RowIndex); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Move persists a drag of a card into another list
// @Summary  Move task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    projectId  path      string           true  "Spreadsheet id"
// @Param    move       body      MoveTaskRequest  true  "Move"
// @Success  200        {object}  map[string]bool
// @Failure  400        {object}  map[string]string
// @Failure  500        {object}  map[string]string
// @Router   /projects/{projectId}/tasks/move [post]
func (h *TaskHandler) Move(c *gin.Context) {
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	moved, err := h.tasks.Move(c.Request.Context(), c.Param("projectId"), service.Move{
		RowIndex: req.RowIndex,
		FromList: req.FromList,
		ToList:   req.ToList,
	})
	if err != nil {
		respondError(c, err, "Failed to move task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "moved": moved})
}

// Progress returns the percentage of done cards
// @Summary  Project progress
// @Tags     Tasks
// @Produce  json
// @Param    projectId  path      string  true  "Spreadsheet id"
// @Success  200        {object}  map[string]int
// @Failure  500        {object}  map[string]string
// @Router   /projects/{projectId}/progress [get]
func (h *TaskHandler) Progress(c *gin.Context) {
	progress, err := h.tasks.Progress(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// Reminders lists cards due soon, due today or overdue
// @Summary  Due-date reminders
// @Tags     Tasks
// @Produce  json
// @Param    projectId  path      string  true  "Spreadsheet id"
// @Success  200        {object}  map[string][]reminder.Reminder
// @Failure  500        {object}  map[string]string
// @Router   /projects/{projectId}/reminders [get]
func (h *TaskHandler) Reminders(c *gin.Context) {
	reminders, err := h.tasks.Reminders(c.Request.Context(), c.Param("projectId"), h.now())
	if err != nil {
		respondError(c, err, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}
