package models

import "time"

// ProjectFigure defines a figure image attached to a project, stored as a
// database BLOB
type ProjectFigure struct {
	ID         int64   `json:"id" db:"id"`
	ProjectID  int64   `json:"projectId" db:"project_id"`
	Title      string  `json:"title" db:"title"`
	Caption    *string `json:"caption,omitempty" db:"caption"`
	OrderIndex int     `json:"orderIndex" db:"order_index"`

	Filename    string `json:"filename" db:"filename"`
	Size        int64  `json:"size" db:"size"`
	Data        []byte `json:"-" db:"data"`
	ContentType string `json:"contentType" db:"content_type"`

	// Dimensions are sniffed at upload time; nil when the image could not
	// be decoded
	Width  *int `json:"width,omitempty" db:"width"`
	Height *int `json:"height,omitempty" db:"height"`

	UploadedByID int64     `json:"uploadedById" db:"uploaded_by_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	URL string `json:"url,omitempty"` // filled in by the API layer, not stored
}
