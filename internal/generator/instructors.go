package generator

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/schedbench/schedgen/pkg/model"
)

// TeachingLoad is the per-instructor demand derived from the catalog while
// generating availability. It is diagnostic output for callers and tests and
// is never serialized into the instance document.
type TeachingLoad struct {
	InstructorID       string
	AssignedCourses    int
	WeeklyHours        float64
	AvailablePeriods   int
	RequiredMinPeriods int
}

// GenerateInstructors produces one instructor per index with availability
// sized to the teaching load the catalog assigns them. Each instructor must
// hold at least AvailabilitySlack times their required periods (floored at
// MinAvailabilityPeriods); whole extra days are appended until the target is
// met or all weekdays are in use. The repair is greedy: an instructor that
// already covers every weekday can stay under-provisioned, which the
// verifier reports.
func GenerateInstructors(rng *Rand, cfg Config, numInstructors int, courses []model.Course) ([]model.Instructor, []TeachingLoad) {
	coursesPerInstructor := lo.CountValuesBy(courses, func(course model.Course) string {
		return course.InstructorID
	})
	hoursPerInstructor := make(map[string]float64)
	for _, course := range courses {
		hoursPerInstructor[course.InstructorID] += course.WeeklyHours
	}

	instructors := make([]model.Instructor, 0, numInstructors)
	loads := make([]TeachingLoad, 0, numInstructors)
	for i := range numInstructors {
		id := fmt.Sprintf("PROF%03d", i)
		assignedCourses := coursesPerInstructor[id]
		weeklyHours := hoursPerInstructor[id]

		requiredPeriods := int(weeklyHours * float64(cfg.PeriodsPerHour))
		minPeriodsNeeded := max(
			int(float64(requiredPeriods)*cfg.AvailabilitySlack),
			cfg.MinAvailabilityPeriods,
		)

		availableDays := Sample(rng, cfg.Weekdays, Choice(rng, []int{4, 5}))
		availability := make([]model.TimeSlot, 0, len(availableDays)*cfg.FullDayPeriods)
		for _, day := range availableDays {
			start, end := availabilityWindow(rng, assignedCourses)
			for period := start; period < end; period++ {
				availability = append(availability, model.TimeSlot{Day: day, PeriodIndex: period})
			}
		}

		// Top-up: add whole extra days until the slack target is met.
		if len(availability) < minPeriodsNeeded {
			remainingDays := lo.Filter(cfg.Weekdays, func(day string, _ int) bool {
				return !slices.Contains(availableDays, day)
			})
			for len(availability) < minPeriodsNeeded && len(remainingDays) > 0 {
				extraDay := remainingDays[0]
				remainingDays = remainingDays[1:]
				for period := range cfg.FullDayPeriods {
					availability = append(availability, model.TimeSlot{Day: extraDay, PeriodIndex: period})
				}
			}
		}

		instructors = append(instructors, model.Instructor{
			ID:                   id,
			Name:                 fmt.Sprintf("Prof. %v %v", Choice(rng, instructorFirstNames), Choice(rng, instructorLastNames)),
			Availability:         availability,
			BackToBackPreference: WeightedChoice(rng, []int{-1, 0, 1}, cfg.BackToBackWeights),
			AllowLunchTeaching:   rng.Bool(cfg.LunchTeachingProbability),
			Department:           Choice(rng, cfg.Departments),
		})
		loads = append(loads, TeachingLoad{
			InstructorID:       id,
			AssignedCourses:    assignedCourses,
			WeeklyHours:        weeklyHours,
			AvailablePeriods:   len(availability),
			RequiredMinPeriods: minPeriodsNeeded,
		})
	}

	return instructors, loads
}

// availabilityWindow draws one of three daily window shapes. Partial days
// (morning or afternoon people) are restricted to lightly loaded
// instructors; everyone else gets a full day, which keeps heavy loads
// schedulable.
func availabilityWindow(rng *Rand, assignedCourses int) (int, int) {
	if rng.Bool(0.2) {
		if assignedCourses <= 2 {
			return 0, 12 // morning, 08:00-14:00
		}
		return 0, 18
	}
	if rng.Bool(0.2) {
		if assignedCourses <= 2 {
			return 6, 20 // afternoon, 11:00-18:00
		}
		return 0, 18
	}
	return 0, 20 // full day, 08:00-18:00
}
