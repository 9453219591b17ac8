// Package reference holds the predefined form constants of the portal:
// research areas, degree types, academic years and institutions. Like the
// roster, these are fixed at deploy time.
package reference

import (
	"fmt"
	"time"
)

// ResearchAreas lists the selectable research areas, "Others" last.
var ResearchAreas = []string{
	"Medicine and Health Sciences",
	"Nursing and Midwifery",
	"Public Health",
	"Pharmacy and Pharmaceutical Sciences",
	"Biomedical Sciences",
	"Clinical Psychology",
	"Epidemiology",
	"Health Policy and Management",
	"Nutrition and Dietetics",
	"Environmental Health",
	"Occupational Health and Safety",
	"Traditional and Alternative Medicine",
	"Medical Laboratory Sciences",
	"Physiotherapy and Rehabilitation",
	"Dentistry and Oral Health",
	"Health Information Management",
	"Physician Assistantship",
	"Optometry and Vision Science",
	"Sports and Exercise Medicine",
	"Others",
}

// DegreeTypes lists the selectable degree types, "Others" last.
var DegreeTypes = []string{
	"PhD", "MPhil", "MSc", "MA", "MPH", "MBA", "MD", "MBChB",
	"BPharm", "BSc", "BA", "Diploma", "Certificate", "Others",
}

// Institution is a campus or school with a stable id.
type Institution struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Institutions lists the university's schools and campuses.
var Institutions = []Institution{
	{ID: 8, Name: "School of Medicine"},
	{ID: 9, Name: "School of Basic and Biomedical Sciences"},
	{ID: 10, Name: "School of Nursing and Midwifery"},
	{ID: 11, Name: "School of Public Health"},
	{ID: 12, Name: "School of Pharmacy"},
	{ID: 13, Name: "School of Allied Health Sciences"},
	{ID: 14, Name: "Institute of Traditional and Alternative Medicine"},
	{ID: 15, Name: "Nursing and Midwifery Training College"},
	{ID: 16, Name: "Others"},
}

// InstitutionByID returns the institution name for an id, or
// "Unknown Institution" when the id is not on the list.
func InstitutionByID(id int) string {
	for _, inst := range Institutions {
		if inst.ID == id {
			return inst.Name
		}
	}
	return "Unknown Institution"
}

// AcademicYears returns the last ten academic years, newest first,
// formatted as "2025/2026".
func AcademicYears() []string {
	current := time.Now().Year()
	years := make([]string, 0, 10)
	for y := current; y > current-10; y-- {
		years = append(years, fmt.Sprintf("%d/%d", y, y+1))
	}
	return years
}
