package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
	"github.com/selorm/scholarbase/internal/pkg/logger"
)

// FigureRepository handles database operations for project figures.
type FigureRepository struct {
	DB *pgxpool.Pool
}

// NewFigureRepository creates a new FigureRepository.
func NewFigureRepository(db *pgxpool.Pool) *FigureRepository {
	return &FigureRepository{DB: db}
}

// Image BLOB data is excluded here; it is fetched on demand.
func (r *FigureRepository) selectFigureQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "project_id", "title", "caption", "order_index",
		"filename", "size", "content_type", "width", "height",
		"uploaded_by_id", "created_at", "updated_at",
	).From("project_figures").PlaceholderFormat(squirrel.Dollar)
}

func scanFigure(row pgx.Row) (*models.ProjectFigure, error) {
	var f models.ProjectFigure
	err := row.Scan(
		&f.ID, &f.ProjectID, &f.Title, &f.Caption, &f.OrderIndex,
		&f.Filename, &f.Size, &f.ContentType, &f.Width, &f.Height,
		&f.UploadedByID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFigureNotFound
		}
		logger.Error().Err(err).Msg("Error scanning figure row")
		return nil, err
	}
	return &f, nil
}

// Create inserts a new figure with its image BLOB and returns its ID.
func (r *FigureRepository) Create(ctx context.Context, figure *models.ProjectFigure) (int64, error) {
	sqlStr, args, err := squirrel.Insert("project_figures").
		Columns("project_id", "title", "caption", "order_index",
			"filename", "size", "data", "content_type", "width", "height",
			"uploaded_by_id").
		Values(figure.ProjectID, figure.Title, figure.Caption, figure.OrderIndex,
			figure.Filename, figure.Size, figure.Data, figure.ContentType, figure.Width, figure.Height,
			figure.UploadedByID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create figure SQL")
		return 0, err
	}

	var id int64
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", figure.ProjectID).Msg("Error executing create figure query")
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a figure's metadata by ID.
func (r *FigureRepository) GetByID(ctx context.Context, id int64) (*models.ProjectFigure, error) {
	sqlStr, args, err := r.selectFigureQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanFigure(r.DB.QueryRow(ctx, sqlStr, args...))
}

// ListByProject retrieves a project's figures ordered by display position.
func (r *FigureRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.ProjectFigure, error) {
	sqlStr, args, err := r.selectFigureQuery().
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("order_index ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", projectID).Msg("Error listing figures")
		return nil, err
	}
	defer rows.Close()

	var figures []*models.ProjectFigure
	for rows.Next() {
		f, err := scanFigure(rows)
		if err != nil {
			return nil, err
		}
		figures = append(figures, f)
	}
	return figures, rows.Err()
}

// CountByProject returns the number of figures attached to a project.
func (r *FigureRepository) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	err := r.DB.QueryRow(ctx,
		"SELECT count(*) FROM project_figures WHERE project_id = $1", projectID).Scan(&count)
	return count, err
}

// GetImage retrieves a figure's image BLOB.
func (r *FigureRepository) GetImage(ctx context.Context, id int64) (filename, contentType string, data []byte, err error) {
	err = r.DB.QueryRow(ctx,
		"SELECT filename, content_type, data FROM project_figures WHERE id = $1", id).
		Scan(&filename, &contentType, &data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", nil, apperrors.ErrFigureNotFound
		}
		return "", "", nil, err
	}
	return filename, contentType, data, nil
}

// Update persists figure metadata. The image BLOB is immutable after upload.
func (r *FigureRepository) Update(ctx context.Context, figure *models.ProjectFigure) error {
	sqlStr, args, err := squirrel.Update("project_figures").
		Set("title", figure.Title).
		Set("caption", figure.Caption).
		Set("order_index", figure.OrderIndex).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": figure.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("figureID", figure.ID).Msg("Error updating figure")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFigureNotFound
	}
	return nil
}

// Delete removes a figure.
func (r *FigureRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM project_figures WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("figureID", id).Msg("Error deleting figure")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFigureNotFound
	}
	return nil
}
