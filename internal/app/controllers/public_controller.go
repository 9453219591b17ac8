package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/app/services"
	"github.com/selorm/scholarbase/internal/middleware"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
	"github.com/selorm/scholarbase/internal/pkg/helpers"
)

// PublicController serves the unauthenticated read API for the public site
type PublicController struct {
	projectService services.ProjectService
	figureService  services.FigureService
	userService    services.UserService
	publicURL      string
}

// NewPublicController creates a new PublicController. publicURL is the
// externally visible base URL used by the crawler endpoints.
func NewPublicController(projectService services.ProjectService, figureService services.FigureService, userService services.UserService, publicURL string) *PublicController {
	return &PublicController{
		projectService: projectService,
		figureService:  figureService,
		userService:    userService,
		publicURL:      publicURL,
	}
}

// ListProjects godoc
// @Summary List published projects
// @Tags public
// @Produce json
// @Param search query string false "Match against title, abstract, keywords or author"
// @Param researchArea query string false "Filter by research area"
// @Param degreeType query string false "Filter by degree type"
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PagedData}
// @Router /public/projects [get]
func (c *PublicController) ListProjects(ctx *gin.Context) {
	var filter dto.ProjectFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid filter parameters"))
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	projects, pagination, err := c.projectService.ListPublished(ctx.Request.Context(), &filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, dto.PagedData{Items: projects, Pagination: pagination})
}

// GetProject godoc
// @Summary Get a published project by slug
// @Description Returns the project and its figures; bumps the view counter.
// @Tags public
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} dto.APIResponse{data=dto.PublicProjectResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /public/projects/{slug} [get]
func (c *PublicController) GetProject(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("slug is required"))
		return
	}

	project, err := c.projectService.GetPublishedBySlug(ctx.Request.Context(), slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	figures, err := c.figureService.ListFigures(ctx.Request.Context(), project.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	for _, figure := range figures {
		figure.URL = fmt.Sprintf("/api/v1/figures/%d/image", figure.ID)
	}

	okResponse(ctx, dto.PublicProjectResponse{Project: project, Figures: figures})
}

// GetFeaturedProjects godoc
// @Summary List the most viewed published projects
// @Tags public
// @Produce json
// @Param limit query int false "Number of projects (default: 6)"
// @Success 200 {object} dto.APIResponse{data=[]models.Project}
// @Router /public/featured [get]
func (c *PublicController) GetFeaturedProjects(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "6"))

	projects, err := c.projectService.ListFeatured(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, projects)
}

// GetStats godoc
// @Summary Get the public site's headline numbers
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PublicStatsResponse}
// @Router /public/stats [get]
func (c *PublicController) GetStats(ctx *gin.Context) {
	stats, err := c.projectService.PublicStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, stats)
}

// DownloadDocument godoc
// @Summary Download a published project's document
// @Tags public
// @Produce octet-stream
// @Param slug path string true "Project slug"
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /public/projects/{slug}/document [get]
func (c *PublicController) DownloadDocument(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("slug is required"))
		return
	}

	filename, contentType, data, err := c.projectService.DownloadPublishedDocument(ctx.Request.Context(), slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, contentType, data)
}

// ViewDocument godoc
// @Summary View a published project's document inline
// @Description Serves the document for in-browser display and bumps the view counter.
// @Tags public
// @Produce octet-stream
// @Param slug path string true "Project slug"
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /public/projects/{slug}/document/view [get]
func (c *PublicController) ViewDocument(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("slug is required"))
		return
	}

	filename, contentType, data, err := c.projectService.ViewPublishedDocument(ctx.Request.Context(), slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	ctx.Data(200, contentType, data)
}

// GetSupervisorProfile godoc
// @Summary Get a supervisor's public profile by slug
// @Description Returns the profile and the published projects linked to it.
// @Tags public
// @Produce json
// @Param slug path string true "Profile slug"
// @Param page query int false "Project page number (default: 1)"
// @Param size query int false "Project page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PublicProfileResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /public/supervisors/{slug} [get]
func (c *PublicController) GetSupervisorProfile(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("slug is required"))
		return
	}

	profile, err := c.userService.GetPublicProfile(ctx.Request.Context(), slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	projects, pagination, err := c.projectService.ListBySupervisor(ctx.Request.Context(), profile.ID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, dto.PublicProfileResponse{
		Profile:  profile,
		Projects: projects,
		Total:    pagination.TotalItems,
	})
}

// GetSupervisorPicture godoc
// @Summary Get a supervisor's profile picture by slug
// @Tags public
// @Produce octet-stream
// @Param slug path string true "Profile slug"
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /public/supervisors/{slug}/picture [get]
func (c *PublicController) GetSupervisorPicture(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("slug is required"))
		return
	}

	filename, contentType, data, err := c.userService.GetPublicProfilePicture(ctx.Request.Context(), slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	ctx.Data(200, contentType, data)
}
