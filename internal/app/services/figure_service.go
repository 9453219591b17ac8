package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/selorm/scholarbase/internal/app/models"
	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/app/repositories"
	"github.com/selorm/scholarbase/internal/config"
	"github.com/selorm/scholarbase/internal/pkg/apperrors"
	"github.com/selorm/scholarbase/internal/pkg/imagemeta"
	"github.com/selorm/scholarbase/internal/pkg/logger"
)

// FigureService defines the interface for project figure operations
type FigureService interface {
	UploadFigure(ctx context.Context, actor *models.User, projectID int64, req *dto.UploadFigureRequest, image *multipart.FileHeader) (*models.ProjectFigure, error)
	ListFigures(ctx context.Context, projectID int64) ([]*models.ProjectFigure, error)
	GetImage(ctx context.Context, figureID int64) (filename, contentType string, data []byte, err error)
	UpdateFigure(ctx context.Context, actor *models.User, figureID int64, req *dto.UpdateFigureRequest) (*models.ProjectFigure, error)
	DeleteFigure(ctx context.Context, actor *models.User, figureID int64) error
}

type figureServiceImpl struct {
	figureRepo  *repositories.FigureRepository
	projectRepo *repositories.ProjectRepository
	cfg         *config.Config
}

// NewFigureService creates a new FigureService
func NewFigureService(figureRepo *repositories.FigureRepository, projectRepo *repositories.ProjectRepository, cfg *config.Config) FigureService {
	return &figureServiceImpl{
		figureRepo:  figureRepo,
		projectRepo: projectRepo,
		cfg:         cfg,
	}
}

// UploadFigure attaches a new figure image to a project.
func (s *figureServiceImpl) UploadFigure(ctx context.Context, actor *models.User, projectID int64, req *dto.UploadFigureRequest, image *multipart.FileHeader) (*models.ProjectFigure, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canManageProject(actor, project) {
		return nil, apperrors.ErrPermissionDenied
	}

	count, err := s.figureRepo.CountByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.cfg.Uploads.MaxFiguresPerProject) {
		return nil, apperrors.ErrFigureLimit
	}

	if image.Size > s.cfg.MaxImageSize() {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := image.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return nil, apperrors.ErrInvalidImageType
	}

	src, err := image.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening uploaded image: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("error reading uploaded image: %w", err)
	}

	figure := &models.ProjectFigure{
		ProjectID:    projectID,
		Title:        strings.TrimSpace(req.Title),
		Caption:      req.Caption,
		OrderIndex:   req.OrderIndex,
		Filename:     image.Filename,
		Size:         int64(len(data)),
		Data:         data,
		ContentType:  contentType,
		UploadedByID: actor.ID,
	}

	if width, height, ok := imagemeta.Dimensions(data); ok {
		figure.Width = &width
		figure.Height = &height
	}

	id, err := s.figureRepo.Create(ctx, figure)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("figureID", id).Int64("projectID", projectID).Msg("Figure uploaded")
	return s.figureRepo.GetByID(ctx, id)
}

// ListFigures retrieves a project's figures in display order.
func (s *figureServiceImpl) ListFigures(ctx context.Context, projectID int64) ([]*models.ProjectFigure, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.figureRepo.ListByProject(ctx, projectID)
}

// GetImage retrieves a figure's image BLOB.
func (s *figureServiceImpl) GetImage(ctx context.Context, figureID int64) (string, string, []byte, error) {
	return s.figureRepo.GetImage(ctx, figureID)
}

// UpdateFigure updates figure metadata.
func (s *figureServiceImpl) UpdateFigure(ctx context.Context, actor *models.User, figureID int64, req *dto.UpdateFigureRequest) (*models.ProjectFigure, error) {
	figure, err := s.figureRepo.GetByID(ctx, figureID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, figure.ProjectID)
	if err != nil {
		return nil, err
	}
	if !canManageProject(actor, project) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		figure.Title = strings.TrimSpace(*req.Title)
	}
	if req.Caption != nil {
		figure.Caption = req.Caption
	}
	if req.OrderIndex != nil {
		figure.OrderIndex = *req.OrderIndex
	}

	if err := s.figureRepo.Update(ctx, figure); err != nil {
		return nil, err
	}
	return s.figureRepo.GetByID(ctx, figureID)
}

// DeleteFigure removes a figure.
func (s *figureServiceImpl) DeleteFigure(ctx context.Context, actor *models.User, figureID int64) error {
	figure, err := s.figureRepo.GetByID(ctx, figureID)
	if err != nil {
		return err
	}

	project, err := s.projectRepo.GetByID(ctx, figure.ProjectID)
	if err != nil {
		return err
	}
	if !canManageProject(actor, project) {
		return apperrors.ErrPermissionDenied
	}

	return s.figureRepo.Delete(ctx, figureID)
}
