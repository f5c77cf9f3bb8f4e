package handler

import (
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projects ProjectService
}

func NewProjectHandler(projects ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type CreateProjectRequest struct {
	Title       string `json:"title"`
	OpenDate    string `json:"openDate"`
	Description string `json:"description"`
}

// GetAll returns every registered project
// @Summary  List projects
// @Tags     Projects
// @Produce  json
// @Success  200  {object}  map[string][]model.Project
// @Failure  500  {object}  map[string]string
// @Router   /projects [get]
func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Create copies the template into a new project
// @Summary  Create project
// @Tags     Projects
// @Accept   json
// @Produce  json
// @Param    project  body      CreateProjectRequest  true  "Project"
// @Success  201      {object}  map[string]model.Project
// @Failure  400      {object}  map[string]string
// @Failure  500      {object}  map[string]string
// @Router   /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	project, err := h.projects.Create(c.Request.Context(), service.NewProject{
		Title:       req.Title,
		OpenDate:    req.OpenDate,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// Delete trashes the project's spreadsheet and unregisters it
// @Summary  Delete project
// @Tags     Projects
// @Produce  json
// @Param    projectId  path      string  true  "Spreadsheet id"
// @Success  200        {object}  map[string]bool
// @Failure  400        {object}  map[string]string
// @Failure  500        {object}  map[string]string
// @Router   /projects/{projectId} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if _, err := h.projects.Delete(c.Request.Context(), c.Param("projectId")); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
