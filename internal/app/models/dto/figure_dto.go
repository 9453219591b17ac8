package dto

// UploadFigureRequest is the multipart figure upload payload
type UploadFigureRequest struct {
	Title      string  `form:"title" binding:"required"`
	Caption    *string `form:"caption"`
	OrderIndex int     `form:"orderIndex"`
}

// UpdateFigureRequest updates figure metadata; nil fields are left untouched
type UpdateFigureRequest struct {
	Title      *string `form:"title"`
	Caption    *string `form:"caption"`
	OrderIndex *int    `form:"orderIndex"`
}
