package services

import (
	"context"
	"fmt"

	"github.com/selorm/scholarbase/internal/app/models/dto"
	"github.com/selorm/scholarbase/internal/app/repositories"
)

// recentProjectsLimit caps the recent-project list on the dashboard.
const recentProjectsLimit = 5

// recentActivityLimit caps each list in the activity feed.
const recentActivityLimit = 10

// DashboardService defines the interface for dashboard aggregates
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetActivity(ctx context.Context) (*dto.DashboardActivityResponse, error)
}

type dashboardServiceImpl struct {
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(projectRepo *repositories.ProjectRepository, userRepo *repositories.UserRepository) DashboardService {
	return &dashboardServiceImpl{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// GetStats aggregates portal-wide numbers for the admin dashboard.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	total, err := s.projectRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting projects: %w", err)
	}

	published, err := s.projectRepo.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting published projects: %w", err)
	}

	users, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	activeUsers, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting active users: %w", err)
	}

	views, downloads, err := s.projectRepo.SumCounters(ctx)
	if err != nil {
		return nil, fmt.Errorf("error summing project counters: %w", err)
	}

	recent, err := s.projectRepo.Recent(ctx, recentProjectsLimit)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent projects: %w", err)
	}

	areaCounts, err := s.projectRepo.CountByResearchArea(ctx)
	if err != nil {
		return nil, fmt.Errorf("error aggregating research areas: %w", err)
	}

	areas := make([]dto.ResearchAreaStat, 0, len(areaCounts))
	for _, c := range areaCounts {
		areas = append(areas, dto.ResearchAreaStat{ResearchArea: c.ResearchArea, Count: c.Count})
	}

	return &dto.DashboardStatsResponse{
		TotalProjects:     total,
		PublishedProjects: published,
		DraftProjects:     total - published,
		TotalUsers:        users,
		ActiveUsers:       activeUsers,
		InactiveUsers:     users - activeUsers,
		TotalViews:        views,
		TotalDownloads:    downloads,
		RecentProjects:    recent,
		ResearchAreas:     areas,
	}, nil
}

// GetActivity returns the latest projects and accounts added to the portal.
func (s *dashboardServiceImpl) GetActivity(ctx context.Context) (*dto.DashboardActivityResponse, error) {
	projects, err := s.projectRepo.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent projects: %w", err)
	}

	users, err := s.userRepo.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("error fetching recent accounts: %w", err)
	}

	return &dto.DashboardActivityResponse{
		RecentProjects: projects,
		RecentUsers:    users,
	}, nil
}
