package handlers

import (
	"net/http"
	"strings"

	"renovation_estimator/internal/adapter/http/dto/request"
	"renovation_estimator/internal/adapter/http/dto/response"
	"renovation_estimator/internal/adapter/http/middleware"
	"renovation_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for renovation project estimates.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject godoc
// @Summary      Create a project estimate
// @Description  Sanitizes the category tree, computes totals and payment details, validates and stores the project.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      request.ProjectRequest  true  "Project"
// @Success      201      {object}  response.ProjectResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}

	project, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), draft)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

// UpdateProject godoc
// @Summary      Replace a project estimate
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Project ID"
// @Param        project  body      request.ProjectRequest  true  "Project"
// @Success      200      {object}  response.ProjectResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}

	project, err := h.usecase.Update(c.Request.Context(), middleware.OwnerID(c), pathID(c), draft)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// GetProject godoc
// @Summary      Get a project estimate
// @Description  Unnamed custom work items are repaired on the way out.
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ProjectResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), middleware.OwnerID(c), pathID(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// ListProjects godoc
// @Summary      List the caller's projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  response.ProjectSummaryResponse
// @Security     Bearer
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListByOwner(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjectList(projects))
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Param        id   path  string  true  "Project ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.OwnerID(c), pathID(c)); err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// CalculateProject godoc
// @Summary      Preview an estimate
// @Description  Runs the same pipeline as create without storing anything.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      request.ProjectRequest  true  "Project"
// @Success      200      {object}  response.CalculationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/calculate [post]
func (h *ProjectHandler) CalculateProject(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}

	project, err := h.usecase.Preview(c.Request.Context(), draft)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(project))
}

func bindDraft(c *gin.Context) (usecase.ProjectDraft, bool) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return usecase.ProjectDraft{}, false
	}
	return usecase.ProjectDraft{
		CustomerInfo: payload.ToCustomerInfo(),
		Categories:   payload.RawCategories(),
		Settings:     payload.ToSettings(),
	}, true
}

func pathID(c *gin.Context) string {
	return strings.TrimSpace(c.Param("id"))
}
