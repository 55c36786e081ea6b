package generator

import (
	"fmt"

	"github.com/schedbench/schedgen/pkg/model"
)

// GenerateCourses builds the course catalog. Levels follow the configured
// weighted distribution, enrollment is uniform within the level's range, and
// instructors are assigned round-robin so the teaching load stays even and
// no instructor is left without courses when numInstructors <= numCourses.
func GenerateCourses(rng *Rand, cfg Config, numCourses, numInstructors int) ([]model.Course, error) {
	if numCourses <= 0 {
		return nil, fmt.Errorf("number of courses must be positive: %v", numCourses)
	}
	if numInstructors <= 0 {
		return nil, fmt.Errorf("cannot assign %v courses without instructors: %v", numCourses, numInstructors)
	}

	courses := make([]model.Course, 0, numCourses)
	for i := range numCourses {
		level := cfg.Levels[rng.WeightedIndex(cfg.levelWeights())]

		// Lower-division courses are lecture-only; upper-division courses
		// occasionally carry a lab block.
		weeklyHours := 1.5
		if level.Level == model.Level300 || level.Level == model.Level400 {
			if !rng.Bool(cfg.LectureOnlyProbability) {
				weeklyHours = 3.0
			}
		}

		courses = append(courses, model.Course{
			ID:                 fmt.Sprintf("COURSE%03d", i),
			Name:               courseName(rng),
			Type:               WeightedChoice(rng, cfg.CourseTypes, cfg.CourseTypeWeights),
			WeeklyHours:        weeklyHours,
			InstructorID:       fmt.Sprintf("PROF%03d", i%numInstructors),
			ExpectedEnrollment: rng.IntBetween(level.MinEnrollment, level.MaxEnrollment),
			Level:              level.Level,
			Department:         Choice(rng, cfg.Departments),
		})
	}

	return courses, nil
}

func courseName(rng *Rand) string {
	prefix := Choice(rng, coursePrefixes)
	number := rng.IntBetween(100, 499)
	if rng.Bool(0.3) {
		return fmt.Sprintf("%v %v: %v", prefix, number, Choice(rng, courseSuffixes))
	}
	return fmt.Sprintf("%v %v", prefix, number)
}
