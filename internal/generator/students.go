package generator

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/schedbench/schedgen/pkg/model"
)

// GenerateStudents produces students with year-biased enrollments: the year
// is drawn from the configured distribution, the course count follows the
// year (graduates take fewer), and each enrollment slot first draws a level
// from the year's preference weights, then picks uniformly among the
// remaining courses at that level. When the preferred level is exhausted the
// draw falls back to the whole remaining pool, so a student never stalls on
// a small catalog. Courses are removed from the pool per student, which rules
// out duplicate enrollments.
func GenerateStudents(rng *Rand, cfg Config, numStudents int, courses []model.Course) []model.Student {
	students := make([]model.Student, 0, numStudents)
	for i := range numStudents {
		year := WeightedChoice(rng, cfg.StudentYears, cfg.StudentYearWeights)

		var coursesToTake int
		if year == model.Graduate {
			coursesToTake = Choice(rng, []int{2, 3, 4})
		} else {
			coursesToTake = Choice(rng, []int{3, 4, 5})
		}

		levelWeights := cfg.LevelPreferences[year]
		pool := slices.Clone(courses)
		enrolled := make([]string, 0, coursesToTake)
		for range coursesToTake {
			if len(pool) == 0 {
				break
			}

			level := cfg.Levels[rng.WeightedIndex(levelWeights)].Level
			candidates := lo.Filter(pool, func(course model.Course, _ int) bool {
				return course.Level == level
			})
			if len(candidates) == 0 {
				candidates = pool
			}

			chosen := Choice(rng, candidates)
			enrolled = append(enrolled, chosen.ID)
			pool = lo.Reject(pool, func(course model.Course, _ int) bool {
				return course.ID == chosen.ID
			})
		}

		// The numeric suffix keeps names unique without a last-name pool.
		students = append(students, model.Student{
			ID:                fmt.Sprintf("STU%04d", i),
			Name:              fmt.Sprintf("%v %v", Choice(rng, studentFirstNames), i),
			Year:              year,
			EnrolledCourseIDs: enrolled,
		})
	}

	return students
}
