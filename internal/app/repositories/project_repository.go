package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
	"github.com/selorm/scholarbase/internal/pkg/dberrors"
	"github.com/selorm/scholarbase/internal/pkg/helpers"
	"github.com/selorm/scholarbase/internal/pkg/logger"
)

// ListProjectsParams holds parameters for filtering and paginating project listings.
type ListProjectsParams struct {
	Search       string
	ResearchArea *string
	DegreeType   *string
	AcademicYear *string
	IsPublished  *bool
	CreatedByID  *int64
	SupervisorID *int64
	Page         int
	Size         int
}

// ResearchAreaCount is a per-area aggregate used by the dashboard.
type ResearchAreaCount struct {
	ResearchArea string `json:"researchArea"`
	Count        int64  `json:"count"`
}

// SlugEntry pairs a published project's slug with its last modification
// time, for crawler endpoints.
type SlugEntry struct {
	Slug      string
	UpdatedAt time.Time
}

// ProjectRepository handles database operations for projects.
type ProjectRepository struct {
	DB *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// Document BLOB data is excluded here; it is fetched on demand.
func (r *ProjectRepository) selectProjectQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "title", "slug", "abstract", "keywords",
		"research_area", "degree_type", "academic_year", "institution", "department",
		"supervisor", "supervisor_id", "author_name", "author_email",
		"is_published", "publication_date", "meta_description", "meta_keywords",
		"document_filename", "document_size", "document_content_type",
		"view_count", "download_count", "created_by_id", "created_at", "updated_at",
	).From("projects").PlaceholderFormat(squirrel.Dollar)
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Abstract, &p.Keywords,
		&p.ResearchArea, &p.DegreeType, &p.AcademicYear, &p.Institution, &p.Department,
		&p.Supervisor, &p.SupervisorID, &p.AuthorName, &p.AuthorEmail,
		&p.IsPublished, &p.PublicationDate, &p.MetaDescription, &p.MetaKeywords,
		&p.DocumentFilename, &p.DocumentSize, &p.DocumentContentType,
		&p.ViewCount, &p.DownloadCount, &p.CreatedByID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrProjectNotFound
		}
		logger.Error().Err(err).Msg("Error scanning project row")
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project and returns its ID.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (int64, error) {
	sqlStr, args, err := squirrel.Insert("projects").
		Columns("title", "slug", "abstract", "keywords",
			"research_area", "degree_type", "academic_year", "institution", "department",
			"supervisor", "supervisor_id", "author_name", "author_email",
			"is_published", "publication_date", "meta_description", "meta_keywords",
			"created_by_id").
		Values(project.Title, project.Slug, project.Abstract, project.Keywords,
			project.ResearchArea, project.DegreeType, project.AcademicYear, project.Institution, project.Department,
			project.Supervisor, project.SupervisorID, project.AuthorName, project.AuthorEmail,
			project.IsPublished, project.PublicationDate, project.MetaDescription, project.MetaKeywords,
			project.CreatedByID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create project SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		logger.Error().Err(err).Str("title", project.Title).Msg("Error executing create project query")
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a project by ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	sqlStr, args, err := r.selectProjectQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanProject(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetPublishedBySlug retrieves a published project by slug.
func (r *ProjectRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Project, error) {
	sqlStr, args, err := r.selectProjectQuery().
		Where(squirrel.Eq{"slug": slug, "is_published": true}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanProject(r.DB.QueryRow(ctx, sqlStr, args...))
}

// List retrieves a paginated and filtered list of projects.
func (r *ProjectRepository) List(ctx context.Context, params ListProjectsParams) ([]*models.Project, dto.PaginationInfo, error) {
	applyFilters := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Search != "" {
			pattern := "%" + params.Search + "%"
			b = b.Where(squirrel.Or{
				squirrel.ILike{"title": pattern},
				squirrel.ILike{"abstract": pattern},
				squirrel.ILike{"keywords": pattern},
				squirrel.ILike{"author_name": pattern},
			})
		}
		if params.ResearchArea != nil && *params.ResearchArea != "" {
			b = b.Where(squirrel.Eq{"research_area": *params.ResearchArea})
		}
		if params.DegreeType != nil && *params.DegreeType != "" {
			b = b.Where(squirrel.Eq{"degree_type": *params.DegreeType})
		}
		if params.AcademicYear != nil && *params.AcademicYear != "" {
			b = b.Where(squirrel.Eq{"academic_year": *params.AcademicYear})
		}
		if params.IsPublished != nil {
			b = b.Where(squirrel.Eq{"is_published": *params.IsPublished})
		}
		if params.CreatedByID != nil {
			b = b.Where(squirrel.Eq{"created_by_id": *params.CreatedByID})
		}
		if params.SupervisorID != nil {
			b = b.Where(squirrel.Eq{"supervisor_id": *params.SupervisorID})
		}
		return b
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("count(*)").From("projects").PlaceholderFormat(squirrel.Dollar)).ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var total int64
	if err := r.DB.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting projects")
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	sqlStr, args, err := applyFilters(r.selectProjectQuery()).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing projects")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	projects := make([]*models.Project, 0, limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return projects, helpers.NewPaginationInfo(total, params.Page, limit), nil
}

// Update persists the mutable fields of a project.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	sqlStr, args, err := squirrel.Update("projects").
		Set("title", project.Title).
		Set("slug", project.Slug).
		Set("abstract", project.Abstract).
		Set("keywords", project.Keywords).
		Set("research_area", project.ResearchArea).
		Set("degree_type", project.DegreeType).
		Set("academic_year", project.AcademicYear).
		Set("institution", project.Institution).
		Set("department", project.Department).
		Set("supervisor", project.Supervisor).
		Set("supervisor_id", project.SupervisorID).
		Set("author_name", project.AuthorName).
		Set("author_email", project.AuthorEmail).
		Set("is_published", project.IsPublished).
		Set("publication_date", project.PublicationDate).
		Set("meta_description", project.MetaDescription).
		Set("meta_keywords", project.MetaKeywords).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": project.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Int64("projectID", project.ID).Msg("Error updating project")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// SetPublished flips the published flag of a project.
func (r *ProjectRepository) SetPublished(ctx context.Context, projectID int64, published bool) error {
	tag, err := r.DB.Exec(ctx,
		"UPDATE projects SET is_published = $1, updated_at = NOW() WHERE id = $2", published, projectID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project. Figures are removed by the FK cascade.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", id).Msg("Error deleting project")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// SlugExists checks whether a slug is taken by a project other than excludeID.
// Pass excludeID 0 to consider all projects.
func (r *ProjectRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM projects WHERE slug = $1 AND id <> $2)", slug, excludeID).Scan(&exists)
	return exists, err
}

// SetDocument stores a project document BLOB.
func (r *ProjectRepository) SetDocument(ctx context.Context, projectID int64, filename string, size int64, data []byte, contentType string) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE projects SET
			document_filename = $1,
			document_size = $2,
			document_data = $3,
			document_content_type = $4,
			updated_at = NOW()
		WHERE id = $5`,
		filename, size, data, contentType, projectID)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", projectID).Msg("Error storing project document")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// GetDocument retrieves a project's document BLOB.
func (r *ProjectRepository) GetDocument(ctx context.Context, projectID int64) (filename, contentType string, data []byte, err error) {
	var fn, ct *string
	err = r.DB.QueryRow(ctx, `
		SELECT document_filename, document_content_type, document_data
		FROM projects WHERE id = $1`, projectID).Scan(&fn, &ct, &data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", nil, apperrors.ErrProjectNotFound
		}
		return "", "", nil, err
	}
	if fn == nil || len(data) == 0 {
		return "", "", nil, apperrors.ErrDocumentNotFound
	}
	filename = *fn
	contentType = "application/octet-stream"
	if ct != nil {
		contentType = *ct
	}
	return filename, contentType, data, nil
}

// ClearDocument removes a project's document BLOB.
func (r *ProjectRepository) ClearDocument(ctx context.Context, projectID int64) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE projects SET
			document_filename = NULL,
			document_size = NULL,
			document_data = NULL,
			document_content_type = NULL,
			updated_at = NOW()
		WHERE id = $1`, projectID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// IncrementViewCount bumps the view counter of a published project.
func (r *ProjectRepository) IncrementViewCount(ctx context.Context, projectID int64) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE projects SET view_count = view_count + 1 WHERE id = $1", projectID)
	return err
}

// IncrementDownloadCount bumps the download counter of a project.
func (r *ProjectRepository) IncrementDownloadCount(ctx context.Context, projectID int64) error {
	_, err := r.DB.Exec(ctx,
		"UPDATE projects SET download_count = download_count + 1 WHERE id = $1", projectID)
	return err
}

// CountAll returns the total number of projects.
func (r *ProjectRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx, "SELECT count(*) FROM projects").Scan(&count)
	return count, err
}

// CountPublished returns the number of published projects.
func (r *ProjectRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx,
		"SELECT count(*) FROM projects WHERE is_published = TRUE").Scan(&count)
	return count, err
}

// SumCounters returns the total view and download counts across all projects.
func (r *ProjectRepository) SumCounters(ctx context.Context) (views, downloads int64, err error) {
	err = r.DB.QueryRow(ctx,
		"SELECT COALESCE(SUM(view_count), 0), COALESCE(SUM(download_count), 0) FROM projects").
		Scan(&views, &downloads)
	return views, downloads, err
}

// PublishedStats aggregates the public site's headline numbers over
// published projects.
func (r *ProjectRepository) PublishedStats(ctx context.Context) (projects, institutions, researchAreas, downloads int64, err error) {
	err = r.DB.QueryRow(ctx, `
		SELECT count(*),
		       count(DISTINCT institution),
		       count(DISTINCT research_area),
		       COALESCE(SUM(download_count), 0)
		FROM projects
		WHERE is_published = TRUE`).
		Scan(&projects, &institutions, &researchAreas, &downloads)
	return projects, institutions, researchAreas, downloads, err
}

// Featured returns the most viewed published projects.
func (r *ProjectRepository) Featured(ctx context.Context, limit int) ([]*models.Project, error) {
	sqlStr, args, err := r.selectProjectQuery().
		Where(squirrel.Eq{"is_published": true}).
		OrderBy("view_count DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.Project, 0, limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Recent returns the most recently created projects.
func (r *ProjectRepository) Recent(ctx context.Context, limit int) ([]*models.Project, error) {
	sqlStr, args, err := r.selectProjectQuery().
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.Project, 0, limit)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// PublishedSlugEntries returns the slug and last update time of every
// published project, newest first.
func (r *ProjectRepository) PublishedSlugEntries(ctx context.Context) ([]SlugEntry, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT slug, updated_at
		FROM projects
		WHERE is_published = TRUE
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []SlugEntry
	for rows.Next() {
		var e SlugEntry
		if err := rows.Scan(&e.Slug, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByResearchArea aggregates project counts per research area.
func (r *ProjectRepository) CountByResearchArea(ctx context.Context) ([]ResearchAreaCount, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT research_area, count(*)
		FROM projects
		WHERE research_area IS NOT NULL AND research_area <> ''
		GROUP BY research_area
		ORDER BY count(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []ResearchAreaCount
	for rows.Next() {
		var c ResearchAreaCount
		if err := rows.Scan(&c.ResearchArea, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
