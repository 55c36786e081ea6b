package generator

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/schedbench/schedgen/pkg/model"
)

// Version tags generated instance documents.
const Version = "1.0"

// Params sizes a single generated instance.
type Params struct {
	Courses     int
	Instructors int
	Rooms       int
	Students    int
	Weeks       int
}

func (params Params) validate() error {
	if params.Courses <= 0 {
		return fmt.Errorf("number of courses must be positive: %v", params.Courses)
	} else if params.Instructors <= 0 {
		return fmt.Errorf("number of instructors must be positive: %v", params.Instructors)
	} else if params.Rooms <= 0 {
		return fmt.Errorf("number of rooms must be positive: %v", params.Rooms)
	} else if params.Students <= 0 {
		return fmt.Errorf("number of students must be positive: %v", params.Students)
	} else if params.Weeks <= 0 {
		return fmt.Errorf("number of weeks must be positive: %v", params.Weeks)
	}
	return nil
}

// Generator produces internally consistent scheduling instances. Each
// Generator owns its random source, so distinct seeds can run in parallel
// with no shared state.
type Generator struct {
	rng *Rand
	cfg Config
	now func() time.Time
}

func New(seed int64) *Generator {
	return NewWithConfig(seed, DefaultConfig())
}

func NewWithConfig(seed int64, cfg Config) *Generator {
	return &Generator{
		rng: NewRand(seed),
		cfg: cfg,
		now: time.Now,
	}
}

// WithClock pins the metadata timestamp. Generation is deterministic per
// seed; the timestamp is the only field that is not, so reproducibility
// tests fix it here.
func (generator *Generator) WithClock(now func() time.Time) *Generator {
	generator.now = now
	return generator
}

// Generate runs the five generation stages in dependency order (catalog,
// instructors, classrooms, students, verification) and assembles the
// resulting instance document. The returned warnings are the advisory
// feasibility findings; they never prevent assembly.
func (generator *Generator) Generate(params Params) (*model.ProblemInstance, []string, error) {
	if err := params.validate(); err != nil {
		return nil, nil, err
	}

	rng, cfg := generator.rng, generator.cfg

	courses, err := GenerateCourses(rng, cfg, params.Courses, params.Instructors)
	if err != nil {
		return nil, nil, err
	}
	instructors, _ := GenerateInstructors(rng, cfg, params.Instructors, courses)
	classrooms, diagnostics := GenerateClassrooms(rng, cfg, params.Rooms, courses)
	students := GenerateStudents(rng, cfg, params.Students, courses)

	term := generator.termConfig(params.Weeks)
	warnings := append(diagnostics, VerifyFeasibility(cfg, term, courses, instructors, classrooms)...)

	totalEnrollments := lo.SumBy(students, func(student model.Student) int {
		return len(student.EnrolledCourseIDs)
	})
	potentialConflicts := lo.SumBy(students, func(student model.Student) int {
		taken := len(student.EnrolledCourseIDs)
		return taken * (taken - 1) / 2
	})

	instance := &model.ProblemInstance{
		TermConfig:      term,
		Classrooms:      classrooms,
		Instructors:     instructors,
		Courses:         courses,
		Students:        students,
		ConflictWeights: cfg.DefaultWeights,
		Metadata: model.Metadata{
			GeneratedAt:      generator.now().Format(time.RFC3339),
			GeneratorVersion: Version,
			Description: fmt.Sprintf(
				"Large-scale scheduling input: %v courses, %v instructors, %v students",
				params.Courses, params.Instructors, params.Students,
			),
			FeasibilityChecked: true,
			Statistics: model.Statistics{
				NumCourses:           params.Courses,
				NumInstructors:       params.Instructors,
				NumRooms:             params.Rooms,
				NumStudents:          params.Students,
				TotalEnrollments:     totalEnrollments,
				AvgCoursesPerStudent: float64(totalEnrollments) / float64(params.Students),
				PotentialConflicts:   potentialConflicts,
			},
		},
	}

	return instance, warnings, nil
}

func (generator *Generator) termConfig(weeks int) model.TermConfig {
	start := generator.cfg.SemesterStart
	end := start.AddDate(0, 0, weeks*7-1)

	return model.TermConfig{
		NumWeeks:            weeks,
		Days:                generator.cfg.Weekdays,
		PeriodLengthMinutes: 30,
		DayStartTime:        "08:00",
		DayEndTime:          "20:00",
		LunchStartTime:      "12:00",
		LunchEndTime:        "13:00",
		SemesterStartDate:   start.Format(model.DateLayout),
		SemesterEndDate:     end.Format(model.DateLayout),
	}
}
