// Package completeness derives a resume completion percentage from a fixed
// checklist of profile sections. The score is recomputed on demand and never
// stored.
package completeness

import (
	"math"
	"strings"
)

// Checks is the number of predicates on the checklist.
const Checks = 7

// Input carries the contact fields of the resume profile and the entry
// counts of the six qualifying section collections.
type Input struct {
	Name  string
	Email string
	Phone string

	Education       int
	Projects        int
	Skills          int
	Certifications  int
	Achievements    int
	Extracurricular int
}

// Score evaluates the seven checklist predicates and returns
// round(100 * completed / 7) as an integer in [0, 100].
func Score(in Input) int {
	completed := 0

	// Contact details count as a single predicate: all three are required.
	if nonEmpty(in.Name) && nonEmpty(in.Email) && nonEmpty(in.Phone) {
		completed++
	}

	for _, n := range []int{
		in.Education,
		in.Projects,
		in.Skills,
		in.Certifications,
		in.Achievements,
		in.Extracurricular,
	} {
		if n > 0 {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / Checks))
}

func nonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
