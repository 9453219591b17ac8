package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/app/services"
	"github.com/selorm/scholarbase/internal/middleware"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
)

// ProfileController handles the authenticated user's own profile
type ProfileController struct {
	userService services.UserService
}

// NewProfileController creates a new ProfileController
func NewProfileController(userService services.UserService) *ProfileController {
	return &ProfileController{userService: userService}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}
	okResponse(ctx, user)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Multipart form; include a "picture" file part to replace the
// @Description profile picture in the same request.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid profile payload: "+err.Error()))
		return
	}

	picture, err := ctx.FormFile("picture")
	if err != nil {
		picture = nil
	}

	updated, err := c.userService.UpdateProfile(ctx.Request.Context(), user.ID, &req, picture)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, updated)
}

// GetProfilePicture godoc
// @Summary Download the authenticated user's profile picture
// @Tags profile
// @Produce octet-stream
// @Security ApiKeyAuth
// @Success 200 {file} binary
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /profile/picture [get]
func (c *ProfileController) GetProfilePicture(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	filename, contentType, data, err := c.userService.GetProfilePicture(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	ctx.Data(200, contentType, data)
}

// DeleteProfilePicture godoc
// @Summary Remove the authenticated user's profile picture
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /profile/picture [delete]
func (c *ProfileController) DeleteProfilePicture(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	if err := c.userService.DeleteProfilePicture(ctx.Request.Context(), user.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	okResponse(ctx, dto.SuccessResponse{Message: "Profile picture removed"})
}
