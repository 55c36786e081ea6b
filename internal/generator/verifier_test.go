package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedbench/schedgen/pkg/model"
)

func defaultTerm() model.TermConfig {
	return model.TermConfig{
		NumWeeks:            10,
		Days:                []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		PeriodLengthMinutes: 30,
		DayStartTime:        "08:00",
		DayEndTime:          "20:00",
		LunchStartTime:      "12:00",
		LunchEndTime:        "13:00",
	}
}

func fullWeekAvailability(days []string, periods int) []model.TimeSlot {
	availability := make([]model.TimeSlot, 0, len(days)*periods)
	for _, day := range days {
		for period := range periods {
			availability = append(availability, model.TimeSlot{Day: day, PeriodIndex: period})
		}
	}
	return availability
}

func TestVerifyFeasibilityCleanInstance(t *testing.T) {
	// Arrange: one light course, one wide-open instructor, one big room.
	cfg := DefaultConfig()
	courses := []model.Course{{
		ID: "COURSE000", InstructorID: "PROF000", WeeklyHours: 1.5, ExpectedEnrollment: 100,
	}}
	instructors := []model.Instructor{{
		ID: "PROF000", Name: "Prof. Alice Chen",
		Availability: fullWeekAvailability([]string{"Mon", "Tue", "Wed", "Thu", "Fri"}, 20),
	}}
	classrooms := []model.Classroom{{ID: "ROOM000", Capacity: 150}}

	// Act
	warnings := VerifyFeasibility(cfg, defaultTerm(), courses, instructors, classrooms)

	// Assert
	assert.Empty(t, warnings)
}

func TestVerifyFeasibilityRoomCapacity(t *testing.T) {
	cfg := DefaultConfig()
	courses := []model.Course{{
		ID: "COURSE000", InstructorID: "PROF000", WeeklyHours: 1.5, ExpectedEnrollment: 300,
	}}
	instructors := []model.Instructor{{
		ID:           "PROF000",
		Availability: fullWeekAvailability([]string{"Mon", "Tue", "Wed", "Thu", "Fri"}, 20),
	}}
	classrooms := []model.Classroom{{ID: "ROOM000", Capacity: 150}}

	warnings := VerifyFeasibility(cfg, defaultTerm(), courses, instructors, classrooms)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "COURSE000")
	assert.Contains(t, warnings[0], "max room capacity")
}

func TestVerifyFeasibilityInstructorShortfall(t *testing.T) {
	cfg := DefaultConfig()
	courses := []model.Course{{
		ID: "COURSE000", InstructorID: "PROF000", WeeklyHours: 3.0, ExpectedEnrollment: 20,
	}}
	// 10 available periods = 5h, well under the 9h slack target.
	instructors := []model.Instructor{{
		ID: "PROF000", Name: "Prof. Bob Smith",
		Availability: fullWeekAvailability([]string{"Mon"}, 10),
	}}
	classrooms := []model.Classroom{{ID: "ROOM000", Capacity: 150}}

	warnings := VerifyFeasibility(cfg, defaultTerm(), courses, instructors, classrooms)

	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "Prof. Bob Smith")
}

func TestVerifyFeasibilityUtilizationWarning(t *testing.T) {
	// Arrange: 60 lab courses need 360 periods/week against a single room's
	// 120 slots; utilization lands at 300%, far over the ceiling. The
	// verifier must warn and must not fail.
	cfg := DefaultConfig()
	courses := make([]model.Course, 0, 60)
	for i := range 60 {
		courses = append(courses, model.Course{
			ID:                 fmt.Sprintf("COURSE%03d", i),
			InstructorID:       "PROF000",
			WeeklyHours:        3.0,
			ExpectedEnrollment: 10,
		})
	}
	instructors := []model.Instructor{{
		ID:           "PROF000",
		Availability: fullWeekAvailability([]string{"Mon", "Tue", "Wed", "Thu", "Fri"}, 20),
	}}
	classrooms := []model.Classroom{{ID: "ROOM000", Capacity: 150}}

	// Act
	warnings := VerifyFeasibility(cfg, defaultTerm(), courses, instructors, classrooms)

	// Assert
	utilizationWarnings := 0
	for _, warning := range warnings {
		if strings.Contains(warning, "utilization") {
			utilizationWarnings++
		}
	}
	assert.Equal(t, 1, utilizationWarnings)
}
