package generator

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/schedbench/schedgen/pkg/model"
)

// GenerateClassrooms produces the room inventory. The first
// GuaranteedLargeRooms rooms are forced into an auditorium-sized range
// derived from the largest course, so the capacity invariant holds
// regardless of how the weighted buckets fall. Returned diagnostics name any
// course that still exceeds the largest room; they are advisory, matching
// the verifier's contract.
func GenerateClassrooms(rng *Rand, cfg Config, numRooms int, courses []model.Course) ([]model.Classroom, []string) {
	maxEnrollment := lo.Max(lo.Map(courses, func(course model.Course, _ int) int {
		return course.ExpectedEnrollment
	}))

	classrooms := make([]model.Classroom, 0, numRooms)
	for i := range numRooms {
		var capacity int
		if i < cfg.GuaranteedLargeRooms {
			capacity = rng.IntBetween(max(120, maxEnrollment), max(250, maxEnrollment+50))
		} else {
			bucket := cfg.CapacityBuckets[rng.WeightedIndex(cfg.capacityWeights())]
			capacity = rng.IntBetween(bucket.MinCapacity, bucket.MaxCapacity)
		}

		classrooms = append(classrooms, model.Classroom{
			ID:       fmt.Sprintf("ROOM%03d", i),
			Name:     fmt.Sprintf("%v %v", Choice(rng, buildings), rng.IntBetween(100, 599)),
			Capacity: capacity,
		})
	}

	largestRoom := lo.Max(lo.Map(classrooms, func(room model.Classroom, _ int) int {
		return room.Capacity
	}))
	var diagnostics []string
	for _, course := range courses {
		if course.ExpectedEnrollment > largestRoom {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"course %v expects %v students but the largest room seats %v",
				course.ID, course.ExpectedEnrollment, largestRoom,
			))
		}
	}

	return classrooms, diagnostics
}
