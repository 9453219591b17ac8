package reference

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOthersIsAlwaysLast(t *testing.T) {
	assert.Equal(t, "Others", ResearchAreas[len(ResearchAreas)-1])
	assert.Equal(t, "Others", DegreeTypes[len(DegreeTypes)-1])
	assert.Equal(t, "Others", Institutions[len(Institutions)-1].Name)
}

func TestInstitutionByID(t *testing.T) {
	assert.Equal(t, "School of Medicine", InstitutionByID(8))
	assert.Equal(t, "Others", InstitutionByID(16))
	assert.Equal(t, "Unknown Institution", InstitutionByID(999))
}

func TestAcademicYears(t *testing.T) {
	years := AcademicYears()
	assert.Len(t, years, 10)

	current := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("%d/%d", current, current+1), years[0])
	assert.Equal(t, fmt.Sprintf("%d/%d", current-9, current-8), years[9])
}
