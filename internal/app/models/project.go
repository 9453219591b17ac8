package models

import (
	"time"
)

// Project defines the project model based on the 'projects' table
type Project struct {
	ID       int64   `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`
	Slug     string  `json:"slug" db:"slug"` // unique, derived from title
	Abstract *string `json:"abstract,omitempty" db:"abstract"`
	Keywords *string `json:"keywords,omitempty" db:"keywords"`

	ResearchArea *string `json:"researchArea,omitempty" db:"research_area"`
	DegreeType   *string `json:"degreeType,omitempty" db:"degree_type"`
	AcademicYear *string `json:"academicYear,omitempty" db:"academic_year"`
	Institution  *string `json:"institution,omitempty" db:"institution"`
	Department   *string `json:"department,omitempty" db:"department"`

	// Supervisor holds the legacy free-text name. Once SupervisorID is set
	// the text is retained for audit only and is no longer authoritative.
	Supervisor   *string `json:"supervisor,omitempty" db:"supervisor"`
	SupervisorID *int64  `json:"supervisorId,omitempty" db:"supervisor_id"`

	AuthorName  string  `json:"authorName" db:"author_name"`
	AuthorEmail *string `json:"authorEmail,omitempty" db:"author_email"`

	IsPublished     bool      `json:"isPublished" db:"is_published"`
	PublicationDate time.Time `json:"publicationDate" db:"publication_date"`

	MetaDescription *string `json:"metaDescription,omitempty" db:"meta_description"`
	MetaKeywords    *string `json:"metaKeywords,omitempty" db:"meta_keywords"`

	// Document stored as a database BLOB
	DocumentFilename    *string `json:"documentFilename,omitempty" db:"document_filename"`
	DocumentSize        *int64  `json:"documentSize,omitempty" db:"document_size"`
	DocumentData        []byte  `json:"-" db:"document_data"`
	DocumentContentType *string `json:"-" db:"document_content_type"`

	ViewCount     int64 `json:"viewCount" db:"view_count"`
	DownloadCount int64 `json:"downloadCount" db:"download_count"`

	CreatedByID int64     `json:"createdById" db:"created_by_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// HasDocument reports whether a document BLOB is attached
func (p *Project) HasDocument() bool {
	return len(p.DocumentData) > 0 || (p.DocumentFilename != nil && *p.DocumentFilename != "")
}
