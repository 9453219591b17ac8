package dto

import "github.com/selorm/scholarbase/internal/app/models"

// PublicProjectResponse is a published project with its figures, served to
// the public site
type PublicProjectResponse struct {
	Project *models.Project         `json:"project"`
	Figures []*models.ProjectFigure `json:"figures"`
}

// PublicProfileResponse is a supervisor's public profile with their linked
// published projects
type PublicProfileResponse struct {
	Profile  *models.User      `json:"profile"`
	Projects []*models.Project `json:"projects"`
	Total    int64             `json:"totalProjects"`
}

// PublicStatsResponse carries the public site's headline numbers
type PublicStatsResponse struct {
	TotalProjects      int64 `json:"totalProjects"`
	TotalInstitutions  int64 `json:"totalInstitutions"`
	TotalResearchAreas int64 `json:"totalResearchAreas"`
	TotalDownloads     int64 `json:"totalDownloads"`
}
