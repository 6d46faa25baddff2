package academic

import (
	"time"

	"github.com/username/week-parity/pkg/dateutil"
)

// YearAnalysis describes how an academic year starts
type YearAnalysis struct {
	Anchor       Anchor
	FirstWeekEnd time.Time
	FirstParity  Parity
	// Neighbors holds the anchors for year-1, year and year+1
	Neighbors []Anchor
}

// AnalyzeYear explains the start of the academic year without generating weeks
func AnalyzeYear(year int) YearAnalysis {
	anchor := ComputeAnchor(year)

	neighbors := make([]Anchor, 0, 3)
	for y := year - 1; y <= year+1; y++ {
		neighbors = append(neighbors, ComputeAnchor(y))
	}

	return YearAnalysis{
		Anchor:       anchor,
		FirstWeekEnd: dateutil.EndOfWeek(anchor.Start),
		FirstParity:  anchor.FirstParity(),
		Neighbors:    neighbors,
	}
}

// AcademicYearFor returns the academic year that today belongs to.
// September through December belong to the year that just started, January through August to the previous one.
func AcademicYearFor(today time.Time) int {
	if today.Month() >= time.September {
		return today.Year()
	}
	return today.Year() - 1
}
