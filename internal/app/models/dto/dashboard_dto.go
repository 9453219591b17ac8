package dto

import "github.com/selorm/scholarbase/internal/app/models"

// DashboardStatsResponse aggregates portal-wide numbers for the admin
// dashboard
type DashboardStatsResponse struct {
	TotalProjects     int64 `json:"totalProjects"`
	PublishedProjects int64 `json:"publishedProjects"`
	DraftProjects     int64 `json:"draftProjects"`
	TotalUsers        int64 `json:"totalUsers"`
	ActiveUsers       int64 `json:"activeUsers"`
	InactiveUsers     int64 `json:"inactiveUsers"`
	TotalViews        int64 `json:"totalViews"`
	TotalDownloads    int64 `json:"totalDownloads"`

	RecentProjects []*models.Project  `json:"recentProjects"`
	ResearchAreas  []ResearchAreaStat `json:"researchAreas"`
}

// DashboardActivityResponse lists the latest additions to the portal
type DashboardActivityResponse struct {
	RecentProjects []*models.Project `json:"recentProjects"`
	RecentUsers    []*models.User    `json:"recentUsers"`
}

// ResearchAreaStat is a per-area project count
type ResearchAreaStat struct {
	ResearchArea string `json:"researchArea"`
	Count        int64  `json:"count"`
}
