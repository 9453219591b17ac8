package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/reference"
	"github.com/selorm/scholarbase/internal/roster"
)

// ReferenceController serves the fixed form constants used by the portal
// frontend: research areas, degree types, institutions, academic years and
// the supervisor roster.
type ReferenceController struct{}

// NewReferenceController creates a new ReferenceController
func NewReferenceController() *ReferenceController {
	return &ReferenceController{}
}

type rosterEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution,omitempty"`
	Title       string `json:"title,omitempty"`
}

// GetConstants godoc
// @Summary Get the portal form constants
// @Description Returns the dropdown options for project and profile forms.
// @Tags reference
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /reference/constants [get]
func (c *ReferenceController) GetConstants(ctx *gin.Context) {
	okResponse(ctx, gin.H{
		"researchAreas": reference.ResearchAreas,
		"degreeTypes":   reference.DegreeTypes,
		"institutions":  reference.Institutions,
		"academicYears": reference.AcademicYears(),
	})
}

// GetSupervisors godoc
// @Summary Get the supervisor roster
// @Description Returns the fixed supervisor list for project forms. Email
// @Description addresses are never exposed here.
// @Tags reference
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /reference/supervisors [get]
func (c *ReferenceController) GetSupervisors(ctx *gin.Context) {
	entries := make([]rosterEntry, 0, len(roster.Supervisors))
	for _, e := range roster.Supervisors {
		entries = append(entries, rosterEntry{
			ID:          e.ID,
			Name:        e.Name,
			Institution: e.Institution,
			Title:       e.Title,
		})
	}
	okResponse(ctx, entries)
}
