package generator

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/schedbench/schedgen/pkg/model"
)

// VerifyFeasibility audits a generated instance against four necessary
// conditions: room capacity, per-instructor availability, the global
// availability ratio, and time-slot utilization. Every finding is a warning,
// never an error; these are necessary, not sufficient, conditions and the
// downstream optimizer may still succeed or fail on its own terms.
func VerifyFeasibility(
	cfg Config,
	term model.TermConfig,
	courses []model.Course,
	instructors []model.Instructor,
	classrooms []model.Classroom,
) []string {
	warnings := make([]string, 0)
	hoursPerPeriod := float64(term.PeriodLengthMinutes) / 60

	//** Check 1: every course fits in at least one room
	maxRoomCapacity := lo.Max(lo.Map(classrooms, func(room model.Classroom, _ int) int {
		return room.Capacity
	}))
	for _, course := range courses {
		if course.ExpectedEnrollment > maxRoomCapacity {
			warnings = append(warnings, fmt.Sprintf(
				"course %v has %v students but max room capacity is %v",
				course.ID, course.ExpectedEnrollment, maxRoomCapacity,
			))
		}
	}

	//** Check 2: per-instructor availability vs assigned teaching load
	requiredHours := make(map[string]float64)
	for _, course := range courses {
		requiredHours[course.InstructorID] += course.WeeklyHours
	}
	for _, instructor := range instructors {
		required := requiredHours[instructor.ID]
		if required == 0 {
			continue
		}
		available := float64(len(instructor.Availability)) * hoursPerPeriod
		if available < required*cfg.AvailabilitySlack {
			warnings = append(warnings, fmt.Sprintf(
				"%v teaches %.1fh but only has %.1fh available (need %.1fh for flexibility)",
				instructor.Name, required, available, required*cfg.AvailabilitySlack,
			))
		}
	}

	//** Check 3: global teaching load vs global availability
	totalCourseHours := lo.SumBy(courses, func(course model.Course) float64 {
		return course.WeeklyHours
	})
	totalAvailableHours := lo.SumBy(instructors, func(instructor model.Instructor) float64 {
		return float64(len(instructor.Availability)) * hoursPerPeriod
	})
	if totalAvailableHours < totalCourseHours*cfg.AvailabilitySlack {
		warnings = append(warnings, fmt.Sprintf(
			"total teaching load (%.1fh) may be tight given total availability (%.1fh); recommend a ratio of %.0f:1 or higher",
			totalCourseHours, totalAvailableHours, cfg.AvailabilitySlack,
		))
	}

	//** Check 4: weekly slot utilization across the room inventory
	if slotsPerWeek := term.SlotsPerWeek(); slotsPerWeek > 0 && len(classrooms) > 0 {
		totalPeriodsNeeded := lo.SumBy(courses, func(course model.Course) float64 {
			return course.WeeklyHours * float64(cfg.PeriodsPerHour)
		})
		utilization := totalPeriodsNeeded / float64(slotsPerWeek*len(classrooms))
		if utilization > cfg.UtilizationCeiling {
			warnings = append(warnings, fmt.Sprintf(
				"high time slot utilization (%.1f%%); recommend keeping below %.0f%% for flexibility",
				utilization*100, cfg.UtilizationCeiling*100,
			))
		}
	}

	return warnings
}
