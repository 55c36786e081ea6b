package model

import (
	"strconv"
	"strings"
	"time"
)

type CourseType string

const (
	FullTerm       CourseType = "full_term"
	FirstHalfTerm  CourseType = "first_half_term"
	SecondHalfTerm CourseType = "second_half_term"
)

// CourseLevel is the numeric tier of a course. Kept as a string to match the
// solver's input format, where levels are object keys.
type CourseLevel string

const (
	Level100 CourseLevel = "100"
	Level200 CourseLevel = "200"
	Level300 CourseLevel = "300"
	Level400 CourseLevel = "400"
)

type StudentYear string

const (
	Freshman  StudentYear = "freshman"
	Sophomore StudentYear = "sophomore"
	Junior    StudentYear = "junior"
	Senior    StudentYear = "senior"
	Graduate  StudentYear = "graduate"
)

// TermConfig holds the term-wide settings shared by every entity. The
// semester end date is always start + weeks*7 - 1 days.
type TermConfig struct {
	NumWeeks            int      `json:"num_weeks" mapstructure:"num_weeks"`
	Days                []string `json:"days" mapstructure:"days"`
	PeriodLengthMinutes int      `json:"period_length_minutes" mapstructure:"period_length_minutes"`
	DayStartTime        string   `json:"day_start_time" mapstructure:"day_start_time"`
	DayEndTime          string   `json:"day_end_time" mapstructure:"day_end_time"`
	LunchStartTime      string   `json:"lunch_start_time" mapstructure:"lunch_start_time"`
	LunchEndTime        string   `json:"lunch_end_time" mapstructure:"lunch_end_time"`
	SemesterStartDate   string   `json:"semester_start_date" mapstructure:"semester_start_date"`
	SemesterEndDate     string   `json:"semester_end_date" mapstructure:"semester_end_date"`
}

// PeriodsPerDay derives the number of schedulable periods from the daily
// window and the period length (24 for the default 08:00-20:00, 30min term).
func (term TermConfig) PeriodsPerDay() int {
	start := parseClock(term.DayStartTime)
	end := parseClock(term.DayEndTime)
	if term.PeriodLengthMinutes <= 0 || end <= start {
		return 0
	}
	return (end - start) / term.PeriodLengthMinutes
}

// SlotsPerWeek is the total room-independent time-slot supply of one week.
func (term TermConfig) SlotsPerWeek() int {
	return len(term.Days) * term.PeriodsPerDay()
}

func parseClock(value string) int {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

type Course struct {
	ID                 string      `json:"id" mapstructure:"id"`
	Name               string      `json:"name" mapstructure:"name"`
	Type               CourseType  `json:"type" mapstructure:"type"`
	WeeklyHours        float64     `json:"weekly_hours" mapstructure:"weekly_hours"`
	InstructorID       string      `json:"instructor_id" mapstructure:"instructor_id"`
	ExpectedEnrollment int         `json:"expected_enrollment" mapstructure:"expected_enrollment"`
	Level              CourseLevel `json:"level" mapstructure:"level"`
	Department         string      `json:"department" mapstructure:"department"`
}

// TimeSlot is one entry of an instructor's sparse weekly calendar.
type TimeSlot struct {
	Day         string `json:"day" mapstructure:"day"`
	PeriodIndex int    `json:"period_index" mapstructure:"period_index"`
}

type Instructor struct {
	ID           string     `json:"id" mapstructure:"id"`
	Name         string     `json:"name" mapstructure:"name"`
	Availability []TimeSlot `json:"availability" mapstructure:"availability"`
	// -1 prefers back-to-back sessions, 0 is neutral, 1 avoids them.
	BackToBackPreference int    `json:"back_to_back_preference" mapstructure:"back_to_back_preference"`
	AllowLunchTeaching   bool   `json:"allow_lunch_teaching" mapstructure:"allow_lunch_teaching"`
	Department           string `json:"department" mapstructure:"department"`
}

type Classroom struct {
	ID       string `json:"id" mapstructure:"id"`
	Name     string `json:"name" mapstructure:"name"`
	Capacity int    `json:"capacity" mapstructure:"capacity"`
}

type Student struct {
	ID                string      `json:"id" mapstructure:"id"`
	Name              string      `json:"name" mapstructure:"name"`
	Year              StudentYear `json:"year" mapstructure:"year"`
	EnrolledCourseIDs []string    `json:"enrolled_course_ids" mapstructure:"enrolled_course_ids"`
}

type ConflictWeights struct {
	GlobalStudentConflictWeight float64 `json:"global_student_conflict_weight" mapstructure:"global_student_conflict_weight"`
	InstructorCompactnessWeight float64 `json:"instructor_compactness_weight" mapstructure:"instructor_compactness_weight"`
	PreferredTimeSlotsWeight    float64 `json:"preferred_time_slots_weight" mapstructure:"preferred_time_slots_weight"`
}

type Statistics struct {
	NumCourses           int     `json:"num_courses" mapstructure:"num_courses"`
	NumInstructors       int     `json:"num_instructors" mapstructure:"num_instructors"`
	NumRooms             int     `json:"num_rooms" mapstructure:"num_rooms"`
	NumStudents          int     `json:"num_students" mapstructure:"num_students"`
	TotalEnrollments     int     `json:"total_enrollments" mapstructure:"total_enrollments"`
	AvgCoursesPerStudent float64 `json:"avg_courses_per_student" mapstructure:"avg_courses_per_student"`
	PotentialConflicts   int     `json:"potential_conflicts" mapstructure:"potential_conflicts"`
}

type Metadata struct {
	GeneratedAt        string     `json:"generated_at" mapstructure:"generated_at"`
	GeneratorVersion   string     `json:"generator_version" mapstructure:"generator_version"`
	Description        string     `json:"description" mapstructure:"description"`
	FeasibilityChecked bool       `json:"feasibility_checked" mapstructure:"feasibility_checked"`
	Statistics         Statistics `json:"statistics" mapstructure:"statistics"`
}

// ProblemInstance is one complete, solver-consumable scheduling problem.
// It is assembled once by the generator and never mutated afterwards.
type ProblemInstance struct {
	TermConfig      TermConfig      `json:"term_config" mapstructure:"term_config"`
	Classrooms      []Classroom     `json:"classrooms" mapstructure:"classrooms"`
	Instructors     []Instructor    `json:"instructors" mapstructure:"instructors"`
	Courses         []Course        `json:"courses" mapstructure:"courses"`
	Students        []Student       `json:"students" mapstructure:"students"`
	ConflictWeights ConflictWeights `json:"conflict_weights" mapstructure:"conflict_weights"`
	Metadata        Metadata        `json:"metadata" mapstructure:"metadata"`
}

// DateLayout is the wire format of semester dates.
const DateLayout = time.DateOnly
