package generator

import (
	"time"

	"github.com/schedbench/schedgen/pkg/model"
)

// LevelSpec bounds the enrollment of one course level and carries its draw
// weight within the catalog.
type LevelSpec struct {
	Level         model.CourseLevel
	MinEnrollment int
	MaxEnrollment int
	Weight        float64
}

// CapacityBucket is one tier of the classroom capacity distribution.
type CapacityBucket struct {
	MinCapacity int
	MaxCapacity int
	Weight      float64
}

// Config carries every distribution table and feasibility threshold the
// generators consume. Distribution tables are ordered slices rather than
// maps: iteration order feeds the random source, and map order would break
// seed reproducibility.
type Config struct {
	Departments []string
	Weekdays    []string

	Levels            []LevelSpec
	CourseTypes       []model.CourseType
	CourseTypeWeights []float64
	// Probability that a 300/400-level course is lecture-only (1.5h) rather
	// than lecture+lab (3.0h).
	LectureOnlyProbability float64

	CapacityBuckets []CapacityBucket
	// The first rooms are forced into an auditorium-sized capacity range so
	// the largest course always fits somewhere.
	GuaranteedLargeRooms int

	StudentYears       []model.StudentYear
	StudentYearWeights []float64
	// Per-year draw weights over Levels, aligned with the Levels order.
	LevelPreferences map[model.StudentYear][]float64

	BackToBackWeights        []float64
	LunchTeachingProbability float64

	// Feasibility heuristics. These are generator-chosen thresholds, not
	// derived from the solver's constraints, hence configurable.
	AvailabilitySlack      float64
	MinAvailabilityPeriods int
	UtilizationCeiling     float64

	PeriodsPerHour int
	FullDayPeriods int
	SemesterStart  time.Time
	DefaultWeights model.ConflictWeights
}

// DefaultConfig mirrors the distributions observed in real university
// catalogs: intro courses are few but large, upper-division courses dominate
// the catalog, and most rooms are mid-sized.
func DefaultConfig() Config {
	return Config{
		Departments: []string{
			"Computer Science", "Mathematics", "Statistics", "Economics",
			"Management Science & Engineering", "Electrical Engineering",
			"Mechanical Engineering", "Physics", "Chemistry", "Biology",
		},
		Weekdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},

		Levels: []LevelSpec{
			{Level: model.Level100, MinEnrollment: 80, MaxEnrollment: 200, Weight: 0.15},
			{Level: model.Level200, MinEnrollment: 40, MaxEnrollment: 100, Weight: 0.30},
			{Level: model.Level300, MinEnrollment: 20, MaxEnrollment: 60, Weight: 0.35},
			{Level: model.Level400, MinEnrollment: 10, MaxEnrollment: 30, Weight: 0.20},
		},
		CourseTypes: []model.CourseType{
			model.FullTerm, model.FirstHalfTerm, model.SecondHalfTerm,
		},
		CourseTypeWeights:      []float64{0.70, 0.15, 0.15},
		LectureOnlyProbability: 0.7,

		CapacityBuckets: []CapacityBucket{
			{MinCapacity: 20, MaxCapacity: 30, Weight: 0.10},
			{MinCapacity: 30, MaxCapacity: 50, Weight: 0.20},
			{MinCapacity: 50, MaxCapacity: 80, Weight: 0.30},
			{MinCapacity: 80, MaxCapacity: 120, Weight: 0.25},
			{MinCapacity: 120, MaxCapacity: 250, Weight: 0.15},
		},
		GuaranteedLargeRooms: 3,

		StudentYears: []model.StudentYear{
			model.Freshman, model.Sophomore, model.Junior, model.Senior, model.Graduate,
		},
		StudentYearWeights: []float64{0.25, 0.25, 0.25, 0.20, 0.05},
		LevelPreferences: map[model.StudentYear][]float64{
			model.Freshman:  {0.7, 0.3, 0.0, 0.0},
			model.Sophomore: {0.3, 0.5, 0.2, 0.0},
			model.Junior:    {0.1, 0.3, 0.5, 0.1},
			model.Senior:    {0.0, 0.2, 0.5, 0.3},
			model.Graduate:  {0.0, 0.0, 0.3, 0.7},
		},

		BackToBackWeights:        []float64{0.3, 0.5, 0.2},
		LunchTeachingProbability: 0.3,

		AvailabilitySlack:      3,
		MinAvailabilityPeriods: 30,
		UtilizationCeiling:     0.5,

		PeriodsPerHour: 2,
		FullDayPeriods: 20,
		SemesterStart:  time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		DefaultWeights: model.ConflictWeights{
			GlobalStudentConflictWeight: 1.0,
			InstructorCompactnessWeight: 1.0,
			PreferredTimeSlotsWeight:    1.0,
		},
	}
}

func (cfg Config) levelWeights() []float64 {
	weights := make([]float64, len(cfg.Levels))
	for i, level := range cfg.Levels {
		weights[i] = level.Weight
	}
	return weights
}

func (cfg Config) capacityWeights() []float64 {
	weights := make([]float64, len(cfg.CapacityBuckets))
	for i, bucket := range cfg.CapacityBuckets {
		weights[i] = bucket.Weight
	}
	return weights
}
