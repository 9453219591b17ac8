package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/app/services"
	"github.com/selorm/scholarbase/internal/middleware"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
	"github.com/selorm/scholarbase/internal/pkg/helpers"
)

// ProjectController handles project administration
type ProjectController struct {
	projectService services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// CreateProject godoc
// @Summary Create a project
// @Description Multipart form; include a "document" file part to attach the
// @Description project document in the same request.
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateProjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid project payload: "+err.Error()))
		return
	}

	document, err := ctx.FormFile("document")
	if err != nil {
		document = nil
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), actor, &req, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, project)
}

// ListProjects godoc
// @Summary List projects
// @Description Coordinators see every project, faculty only their own.
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Match against title, abstract, keywords or author"
// @Param researchArea query string false "Filter by research area"
// @Param degreeType query string false "Filter by degree type"
// @Param isPublished query bool false "Filter by published state"
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PagedData}
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var filter dto.ProjectFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid filter parameters"))
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	projects, pagination, err := c.projectService.ListProjects(ctx.Request.Context(), actor, &filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, dto.PagedData{Items: projects, Pagination: pagination})
}

// GetProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	project, err := c.projectService.GetProject(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, project)
}

// UpdateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid project payload: "+err.Error()))
		return
	}

	document, err := ctx.FormFile("document")
	if err != nil {
		document = nil
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), actor, id, &req, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.projectService.DeleteProject(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, dto.SuccessResponse{Message: "Project deleted"})
}

// TogglePublish godoc
// @Summary Toggle a project's published flag
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id}/toggle-publish [post]
func (c *ProjectController) TogglePublish(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	project, err := c.projectService.TogglePublish(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, project)
}

// DownloadDocument godoc
// @Summary Download a project's document
// @Tags projects
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {file} binary
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id}/document [get]
func (c *ProjectController) DownloadDocument(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename, contentType, data, err := c.projectService.DownloadDocument(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, contentType, data)
}

// DeleteDocument godoc
// @Summary Remove a project's document
// @Tags projects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id}/document [delete]
func (c *ProjectController) DeleteDocument(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.projectService.RemoveDocument(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, dto.SuccessResponse{Message: "Document removed"})
}

// ViewDocument godoc
// @Summary View a project's document inline
// @Tags projects
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {file} binary
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id}/document/view [get]
func (c *ProjectController) ViewDocument(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename, contentType, data, err := c.projectService.ViewDocument(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	ctx.Data(200, contentType, data)
}
