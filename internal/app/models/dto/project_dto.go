package dto

// CreateProjectRequest is the multipart project creation payload. "Others"
// selections require the matching custom field.
type CreateProjectRequest struct {
	Title              string  `form:"title" binding:"required"`
	Abstract           *string `form:"abstract"`
	Keywords           *string `form:"keywords"`
	ResearchArea       *string `form:"researchArea"`
	CustomResearchArea *string `form:"customResearchArea"`
	DegreeType         *string `form:"degreeType"`
	CustomDegreeType   *string `form:"customDegreeType"`
	AcademicYear       *string `form:"academicYear"`
	Institution        *string `form:"institution"`
	CustomInstitution  *string `form:"customInstitution"`
	Department         *string `form:"department"`
	Supervisor         *string `form:"supervisor"`
	AuthorName         string  `form:"authorName" binding:"required"`
	AuthorEmail        *string `form:"authorEmail"`
	MetaDescription    *string `form:"metaDescription"`
	MetaKeywords       *string `form:"metaKeywords"`
	IsPublished        *bool   `form:"isPublished"`
}

// UpdateProjectRequest updates a project; nil fields are left untouched
type UpdateProjectRequest struct {
	Title              *string `form:"title"`
	Abstract           *string `form:"abstract"`
	Keywords           *string `form:"keywords"`
	ResearchArea       *string `form:"researchArea"`
	CustomResearchArea *string `form:"customResearchArea"`
	DegreeType         *string `form:"degreeType"`
	CustomDegreeType   *string `form:"customDegreeType"`
	AcademicYear       *string `form:"academicYear"`
	Institution        *string `form:"institution"`
	CustomInstitution  *string `form:"customInstitution"`
	Department         *string `form:"department"`
	Supervisor         *string `form:"supervisor"`
	AuthorName         *string `form:"authorName"`
	AuthorEmail        *string `form:"authorEmail"`
	MetaDescription    *string `form:"metaDescription"`
	MetaKeywords       *string `form:"metaKeywords"`
	IsPublished        *bool   `form:"isPublished"`
	RemoveFile         bool    `form:"removeFile"`
}

// ProjectFilter narrows project listings
type ProjectFilter struct {
	Search       string `form:"search"`
	ResearchArea string `form:"researchArea"`
	DegreeType   string `form:"degreeType"`
	IsPublished  *bool  `form:"isPublished"`

	// CreatedByID restricts the listing to one creator; set by the service
	// for non-coordinators, never from the request.
	CreatedByID *int64 `form:"-"`
}
