package generator

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedbench/schedgen/pkg/model"
)

func TestGenerateClassrooms(t *testing.T) {
	// Arrange
	cfg := DefaultConfig()
	rng := NewRand(42)
	courses, err := GenerateCourses(rng, cfg, 60, 35)
	require.NoError(t, err)

	// Act
	classrooms, diagnostics := GenerateClassrooms(rng, cfg, 40, courses)

	// Assert
	require.Len(t, classrooms, 40)
	assert.Empty(t, diagnostics)

	maxEnrollment := lo.Max(lo.Map(courses, func(course model.Course, _ int) int {
		return course.ExpectedEnrollment
	}))
	maxCapacity := lo.Max(lo.Map(classrooms, func(room model.Classroom, _ int) int {
		return room.Capacity
	}))
	assert.GreaterOrEqual(t, maxCapacity, maxEnrollment)

	for i, room := range classrooms {
		assert.Equal(t, fmt.Sprintf("ROOM%03d", i), room.ID)
		assert.NotEmpty(t, room.Name)
		assert.Positive(t, room.Capacity)
	}

	// The forced auditorium rooms sit in the large-capacity range.
	for _, room := range classrooms[:cfg.GuaranteedLargeRooms] {
		assert.GreaterOrEqual(t, room.Capacity, max(120, maxEnrollment))
	}
}

func TestGenerateClassroomsCapacityInvariantWithFewRooms(t *testing.T) {
	// Even a single room must seat the largest course.
	cfg := DefaultConfig()
	rng := NewRand(7)
	courses, err := GenerateCourses(rng, cfg, 20, 5)
	require.NoError(t, err)

	classrooms, diagnostics := GenerateClassrooms(rng, cfg, 1, courses)

	require.Len(t, classrooms, 1)
	assert.Empty(t, diagnostics)

	maxEnrollment := lo.Max(lo.Map(courses, func(course model.Course, _ int) int {
		return course.ExpectedEnrollment
	}))
	assert.GreaterOrEqual(t, classrooms[0].Capacity, maxEnrollment)
}

func TestGenerateClassroomsDiagnosesOversizedCourses(t *testing.T) {
	// Disabling the forced large rooms lets small buckets dominate, so a
	// giant course must surface as a diagnostic, not a failure.
	cfg := DefaultConfig()
	cfg.GuaranteedLargeRooms = 0
	cfg.CapacityBuckets = []CapacityBucket{{MinCapacity: 20, MaxCapacity: 30, Weight: 1}}
	rng := NewRand(7)

	courses := []model.Course{{
		ID:                 "COURSE000",
		ExpectedEnrollment: 500,
		Level:              model.Level100,
		WeeklyHours:        1.5,
	}}

	_, diagnostics := GenerateClassrooms(rng, cfg, 5, courses)

	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0], "COURSE000")
}
