package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/app/repositories"
	"github.com/selorm/scholarbase/internal/config"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
	"github.com/selorm/scholarbase/internal/pkg/helpers"
	"github.com/selorm/scholarbase/internal/pkg/logger"
	"github.com/selorm/scholarbase/internal/pkg/slug"
)

// CustomOption is the dropdown value that signals a free-text entry.
const CustomOption = "Others"

var allowedDocumentExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ProjectService defines the interface for project operations
type ProjectService interface {
	CreateProject(ctx context.Context, actor *models.User, req *dto.CreateProjectRequest, document *multipart.FileHeader) (*models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	ListProjects(ctx context.Context, actor *models.User, filter *dto.ProjectFilter, page, size int) ([]*models.Project, dto.PaginationInfo, error)
	UpdateProject(ctx context.Context, actor *models.User, id int64, req *dto.UpdateProjectRequest, document *multipart.FileHeader) (*models.Project, error)
	DeleteProject(ctx context.Context, actor *models.User, id int64) error
	TogglePublish(ctx context.Context, actor *models.User, id int64) (*models.Project, error)
	DownloadDocument(ctx context.Context, actor *models.User, id int64) (filename, contentType string, data []byte, err error)
	RemoveDocument(ctx context.Context, actor *models.User, id int64) error
	ViewDocument(ctx context.Context, actor *models.User, id int64) (filename, contentType string, data []byte, err error)

	GetPublishedBySlug(ctx context.Context, slug string) (*models.Project, error)
	DownloadPublishedDocument(ctx context.Context, slug string) (filename, contentType string, data []byte, err error)
	ViewPublishedDocument(ctx context.Context, slug string) (filename, contentType string, data []byte, err error)
	ListPublishedSlugs(ctx context.Context) ([]repositories.SlugEntry, error)
	ListPublished(ctx context.Context, filter *dto.ProjectFilter, page, size int) ([]*models.Project, dto.PaginationInfo, error)
	ListFeatured(ctx context.Context, limit int) ([]*models.Project, error)
	PublicStats(ctx context.Context) (*dto.PublicStatsResponse, error)
	ListBySupervisor(ctx context.Context, supervisorID int64, page, size int) ([]*models.Project, dto.PaginationInfo, error)
}

type projectServiceImpl struct {
	projectRepo *repositories.ProjectRepository
	cfg         *config.Config
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo *repositories.ProjectRepository, cfg *config.Config) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		cfg:         cfg,
	}
}

// resolveOption maps a dropdown selection to its stored value. Picking the
// custom option requires the matching free-text field.
func resolveOption(selected, custom *string, field string) (*string, error) {
	if selected == nil || *selected != CustomOption {
		return selected, nil
	}
	if custom == nil || strings.TrimSpace(*custom) == "" {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("custom %s is required when %q is selected", field, CustomOption))
	}
	value := strings.TrimSpace(*custom)
	return &value, nil
}

func canManageProject(actor *models.User, project *models.Project) bool {
	return actor.IsCoordinator() || project.CreatedByID == actor.ID
}

// CreateProject creates a new project with an optional document upload.
func (s *projectServiceImpl) CreateProject(ctx context.Context, actor *models.User, req *dto.CreateProjectRequest, document *multipart.FileHeader) (*models.Project, error) {
	researchArea, err := resolveOption(req.ResearchArea, req.CustomResearchArea, "research area")
	if err != nil {
		return nil, err
	}
	degreeType, err := resolveOption(req.DegreeType, req.CustomDegreeType, "degree type")
	if err != nil {
		return nil, err
	}
	institution, err := resolveOption(req.Institution, req.CustomInstitution, "institution")
	if err != nil {
		return nil, err
	}

	projectSlug, err := s.generateSlug(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:           strings.TrimSpace(req.Title),
		Slug:            projectSlug,
		Abstract:        req.Abstract,
		Keywords:        req.Keywords,
		ResearchArea:    researchArea,
		DegreeType:      degreeType,
		AcademicYear:    req.AcademicYear,
		Institution:     institution,
		Department:      req.Department,
		Supervisor:      req.Supervisor,
		AuthorName:      strings.TrimSpace(req.AuthorName),
		AuthorEmail:     req.AuthorEmail,
		PublicationDate: time.Now(),
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		CreatedByID:     actor.ID,
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}

	id, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	if document != nil {
		if err := s.storeDocument(ctx, id, document); err != nil {
			return nil, err
		}
	}

	logger.Info().Int64("projectID", id).Str("slug", projectSlug).Msg("Project created")
	return s.projectRepo.GetByID(ctx, id)
}

// GetProject retrieves a project by ID.
func (s *projectServiceImpl) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// ListProjects retrieves a page of projects for the admin portal. Faculty
// members only see their own projects; coordinators see everything.
func (s *projectServiceImpl) ListProjects(ctx context.Context, actor *models.User, filter *dto.ProjectFilter, page, size int) ([]*models.Project, dto.PaginationInfo, error) {
	params := listParamsFromFilter(filter, page, size)
	if !actor.IsCoordinator() {
		params.CreatedByID = &actor.ID
	}
	return s.projectRepo.List(ctx, params)
}

// UpdateProject updates a project and optionally replaces or removes its
// document.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, actor *models.User, id int64, req *dto.UpdateProjectRequest, document *multipart.FileHeader) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageProject(actor, project) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" && strings.TrimSpace(*req.Title) != project.Title {
		project.Title = strings.TrimSpace(*req.Title)
		newSlug, err := s.generateSlug(ctx, project.Title, id)
		if err != nil {
			return nil, err
		}
		project.Slug = newSlug
	}
	if req.Abstract != nil {
		project.Abstract = req.Abstract
	}
	if req.Keywords != nil {
		project.Keywords = req.Keywords
	}
	if req.ResearchArea != nil {
		researchArea, err := resolveOption(req.ResearchArea, req.CustomResearchArea, "research area")
		if err != nil {
			return nil, err
		}
		project.ResearchArea = researchArea
	}
	if req.DegreeType != nil {
		degreeType, err := resolveOption(req.DegreeType, req.CustomDegreeType, "degree type")
		if err != nil {
			return nil, err
		}
		project.DegreeType = degreeType
	}
	if req.Institution != nil {
		institution, err := resolveOption(req.Institution, req.CustomInstitution, "institution")
		if err != nil {
			return nil, err
		}
		project.Institution = institution
	}
	if req.AcademicYear != nil {
		project.AcademicYear = req.AcademicYear
	}
	if req.Department != nil {
		project.Department = req.Department
	}
	if req.Supervisor != nil {
		// Editing the free-text name invalidates any earlier account link.
		project.Supervisor = req.Supervisor
		project.SupervisorID = nil
	}
	if req.AuthorName != nil && strings.TrimSpace(*req.AuthorName) != "" {
		project.AuthorName = strings.TrimSpace(*req.AuthorName)
	}
	if req.AuthorEmail != nil {
		project.AuthorEmail = req.AuthorEmail
	}
	if req.MetaDescription != nil {
		project.MetaDescription = req.MetaDescription
	}
	if req.MetaKeywords != nil {
		project.MetaKeywords = req.MetaKeywords
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	if req.RemoveFile && document == nil {
		if err := s.projectRepo.ClearDocument(ctx, id); err != nil {
			return nil, err
		}
	}
	if document != nil {
		if err := s.storeDocument(ctx, id, document); err != nil {
			return nil, err
		}
	}

	return s.projectRepo.GetByID(ctx, id)
}

// DeleteProject removes a project and its figures.
func (s *projectServiceImpl) DeleteProject(ctx context.Context, actor *models.User, id int64) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManageProject(actor, project) {
		return apperrors.ErrPermissionDenied
	}
	return s.projectRepo.Delete(ctx, id)
}

// TogglePublish flips a project's published flag.
func (s *projectServiceImpl) TogglePublish(ctx context.Context, actor *models.User, id int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageProject(actor, project) {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := s.projectRepo.SetPublished(ctx, id, !project.IsPublished); err != nil {
		return nil, err
	}
	return s.projectRepo.GetByID(ctx, id)
}

// DownloadDocument retrieves a project's document for the coordinator or the
// project owner and bumps its download counter.
func (s *projectServiceImpl) DownloadDocument(ctx context.Context, actor *models.User, id int64) (string, string, []byte, error) {
	filename, contentType, data, err := s.fetchDocument(ctx, actor, id)
	if err != nil {
		return "", "", nil, err
	}

	if err := s.projectRepo.IncrementDownloadCount(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("projectID", id).Msg("Failed to bump download counter")
	}

	return filename, contentType, data, nil
}

// ViewDocument retrieves a project's document for inline display and bumps
// its view counter.
func (s *projectServiceImpl) ViewDocument(ctx context.Context, actor *models.User, id int64) (string, string, []byte, error) {
	filename, contentType, data, err := s.fetchDocument(ctx, actor, id)
	if err != nil {
		return "", "", nil, err
	}

	if err := s.projectRepo.IncrementViewCount(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("projectID", id).Msg("Failed to bump view counter")
	}

	return filename, contentType, data, nil
}

// RemoveDocument detaches and deletes a project's document.
func (s *projectServiceImpl) RemoveDocument(ctx context.Context, actor *models.User, id int64) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManageProject(actor, project) {
		return apperrors.ErrPermissionDenied
	}
	return s.projectRepo.ClearDocument(ctx, id)
}

func (s *projectServiceImpl) fetchDocument(ctx context.Context, actor *models.User, id int64) (string, string, []byte, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return "", "", nil, err
	}
	if !canManageProject(actor, project) {
		return "", "", nil, apperrors.ErrPermissionDenied
	}
	return s.projectRepo.GetDocument(ctx, id)
}

// DownloadPublishedDocument retrieves a published project's document for the
// public site and bumps the project's download counter.
func (s *projectServiceImpl) DownloadPublishedDocument(ctx context.Context, projectSlug string) (string, string, []byte, error) {
	project, err := s.projectRepo.GetPublishedBySlug(ctx, projectSlug)
	if err != nil {
		return "", "", nil, err
	}

	filename, contentType, data, err := s.projectRepo.GetDocument(ctx, project.ID)
	if err != nil {
		return "", "", nil, err
	}

	if err := s.projectRepo.IncrementDownloadCount(ctx, project.ID); err != nil {
		logger.Warn().Err(err).Int64("projectID", project.ID).Msg("Failed to bump download counter")
	}

	return filename, contentType, data, nil
}

// ViewPublishedDocument retrieves a published project's document for inline
// display on the public site and bumps the project's view counter.
func (s *projectServiceImpl) ViewPublishedDocument(ctx context.Context, projectSlug string) (string, string, []byte, error) {
	project, err := s.projectRepo.GetPublishedBySlug(ctx, projectSlug)
	if err != nil {
		return "", "", nil, err
	}

	filename, contentType, data, err := s.projectRepo.GetDocument(ctx, project.ID)
	if err != nil {
		return "", "", nil, err
	}

	if err := s.projectRepo.IncrementViewCount(ctx, project.ID); err != nil {
		logger.Warn().Err(err).Int64("projectID", project.ID).Msg("Failed to bump view counter")
	}

	return filename, contentType, data, nil
}

// ListPublishedSlugs returns slug entries for all published projects, for the
// sitemap.
func (s *projectServiceImpl) ListPublishedSlugs(ctx context.Context) ([]repositories.SlugEntry, error) {
	return s.projectRepo.PublishedSlugEntries(ctx)
}

// GetPublishedBySlug retrieves a published project for the public site and
// bumps its view counter.
func (s *projectServiceImpl) GetPublishedBySlug(ctx context.Context, projectSlug string) (*models.Project, error) {
	project, err := s.projectRepo.GetPublishedBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.IncrementViewCount(ctx, project.ID); err != nil {
		logger.Warn().Err(err).Int64("projectID", project.ID).Msg("Failed to bump view counter")
	}

	return project, nil
}

// ListPublished retrieves a page of published projects for the public site.
func (s *projectServiceImpl) ListPublished(ctx context.Context, filter *dto.ProjectFilter, page, size int) ([]*models.Project, dto.PaginationInfo, error) {
	params := listParamsFromFilter(filter, page, size)
	published := true
	params.IsPublished = &published
	params.CreatedByID = nil
	return s.projectRepo.List(ctx, params)
}

// defaultFeaturedLimit caps the featured-project list when the caller does
// not ask for a specific size.
const defaultFeaturedLimit = 6

// ListFeatured retrieves the most viewed published projects for the public
// site's landing page.
func (s *projectServiceImpl) ListFeatured(ctx context.Context, limit int) ([]*models.Project, error) {
	if limit <= 0 || limit > helpers.MaxPageSize {
		limit = defaultFeaturedLimit
	}
	return s.projectRepo.Featured(ctx, limit)
}

// PublicStats aggregates the public site's headline numbers.
func (s *projectServiceImpl) PublicStats(ctx context.Context) (*dto.PublicStatsResponse, error) {
	projects, institutions, researchAreas, downloads, err := s.projectRepo.PublishedStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PublicStatsResponse{
		TotalProjects:      projects,
		TotalInstitutions:  institutions,
		TotalResearchAreas: researchAreas,
		TotalDownloads:     downloads,
	}, nil
}

// ListBySupervisor retrieves the published projects linked to a supervisor
// account, for their public profile page.
func (s *projectServiceImpl) ListBySupervisor(ctx context.Context, supervisorID int64, page, size int) ([]*models.Project, dto.PaginationInfo, error) {
	published := true
	return s.projectRepo.List(ctx, repositories.ListProjectsParams{
		IsPublished:  &published,
		SupervisorID: &supervisorID,
		Page:         page,
		Size:         size,
	})
}

func listParamsFromFilter(filter *dto.ProjectFilter, page, size int) repositories.ListProjectsParams {
	params := repositories.ListProjectsParams{
		Page: page,
		Size: size,
	}
	if filter == nil {
		return params
	}
	params.Search = filter.Search
	if filter.ResearchArea != "" {
		params.ResearchArea = &filter.ResearchArea
	}
	if filter.DegreeType != "" {
		params.DegreeType = &filter.DegreeType
	}
	params.IsPublished = filter.IsPublished
	params.CreatedByID = filter.CreatedByID
	return params
}

func (s *projectServiceImpl) generateSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "project"
	}

	var probeErr error
	unique := slug.Unique(base, func(candidate string) bool {
		if probeErr != nil {
			return false
		}
		exists, err := s.projectRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			probeErr = err
			return false
		}
		return exists
	})
	if probeErr != nil {
		return "", probeErr
	}
	return unique, nil
}

func (s *projectServiceImpl) storeDocument(ctx context.Context, projectID int64, document *multipart.FileHeader) error {
	if document.Size > s.cfg.MaxDocumentSize() {
		return apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(document.Filename))
	contentType, ok := allowedDocumentExtensions[ext]
	if !ok {
		return apperrors.ErrInvalidFileType
	}
	if headerType := document.Header.Get("Content-Type"); headerType != "" {
		contentType = headerType
	}

	src, err := document.Open()
	if err != nil {
		return fmt.Errorf("error opening uploaded document: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("error reading uploaded document: %w", err)
	}

	return s.projectRepo.SetDocument(ctx, projectID, document.Filename, int64(len(data)), data, contentType)
}
