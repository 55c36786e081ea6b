package report

import (
	"os"

	"github.com/gocarina/gocsv"
)

// SummaryRow is one line of the manifest written next to a batch of
// generated instance files. The run id ties an instance to the tracking
// logs the solver pipeline produces for it later.
type SummaryRow struct {
	RunID                string  `csv:"run_id"`
	Seed                 int64   `csv:"seed"`
	File                 string  `csv:"file"`
	Courses              int     `csv:"courses"`
	Instructors          int     `csv:"instructors"`
	Rooms                int     `csv:"rooms"`
	Students             int     `csv:"students"`
	TotalEnrollments     int     `csv:"total_enrollments"`
	AvgCoursesPerStudent float64 `csv:"avg_courses_per_student"`
	PotentialConflicts   int     `csv:"potential_conflicts"`
	Warnings             int     `csv:"warnings"`
}

// WriteSummary writes the batch manifest as CSV, replacing any previous one.
func WriteSummary(path string, rows []*SummaryRow) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return gocsv.MarshalFile(&rows, out)
}
