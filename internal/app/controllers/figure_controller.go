package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/app/services"
	"github.com/selorm/scholarbase/internal/middleware"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
)

// FigureController handles project figure uploads
type FigureController struct {
	figureService services.FigureService
}

// NewFigureController creates a new FigureController
func NewFigureController(figureService services.FigureService) *FigureController {
	return &FigureController{figureService: figureService}
}

// UploadFigure godoc
// @Summary Attach a figure image to a project
// @Tags figures
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param title formData string true "Figure title"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=models.ProjectFigure}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 413 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id}/figures [post]
func (c *FigureController) UploadFigure(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	projectID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UploadFigureRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("figure title is required"))
		return
	}

	image, err := ctx.FormFile("image")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("an image file is required"))
		return
	}

	figure, err := c.figureService.UploadFigure(ctx.Request.Context(), actor, projectID, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, figure)
}

// ListFigures godoc
// @Summary List a project's figures
// @Tags figures
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ProjectFigure}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /projects/{id}/figures [get]
func (c *FigureController) ListFigures(ctx *gin.Context) {
	projectID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	figures, err := c.figureService.ListFigures(ctx.Request.Context(), projectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, figures)
}

// GetImage godoc
// @Summary Download a figure image
// @Tags figures
// @Produce octet-stream
// @Param figureId path int true "Figure ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /figures/{figureId}/image [get]
func (c *FigureController) GetImage(ctx *gin.Context) {
	figureID, err := parseIDParam(ctx, "figureId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename, contentType, data, err := c.figureService.GetImage(ctx.Request.Context(), figureID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	ctx.Data(200, contentType, data)
}

// UpdateFigure godoc
// @Summary Update figure metadata
// @Tags figures
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param figureId path int true "Figure ID"
// @Success 200 {object} dto.APIResponse{data=models.ProjectFigure}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /figures/{figureId} [put]
func (c *FigureController) UpdateFigure(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	figureID, err := parseIDParam(ctx, "figureId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateFigureRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid figure payload"))
		return
	}

	figure, err := c.figureService.UpdateFigure(ctx.Request.Context(), actor, figureID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, figure)
}

// DeleteFigure godoc
// @Summary Delete a figure
// @Tags figures
// @Produce json
// @Security ApiKeyAuth
// @Param figureId path int true "Figure ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /figures/{figureId} [delete]
func (c *FigureController) DeleteFigure(ctx *gin.Context) {
	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	figureID, err := parseIDParam(ctx, "figureId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.figureService.DeleteFigure(ctx.Request.Context(), actor, figureID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, dto.SuccessResponse{Message: "Figure deleted"})
}
