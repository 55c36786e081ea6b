package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	// Arrange
	rows := []*SummaryRow{
		{
			RunID: "a4c135f0", Seed: 1001, File: "batch_output/schedule_input_001.json",
			Courses: 50, Instructors: 30, Rooms: 20, Students: 1000,
			TotalEnrollments: 3890, AvgCoursesPerStudent: 3.89, PotentialConflicts: 5600,
		},
		{
			RunID: "b9d2267c", Seed: 1002, File: "batch_output/schedule_input_002.json",
			Courses: 50, Instructors: 30, Rooms: 20, Students: 1000,
			TotalEnrollments: 3912, AvgCoursesPerStudent: 3.912, PotentialConflicts: 5701,
			Warnings: 2,
		},
	}
	path := filepath.Join(t.TempDir(), "summary.csv")

	// Act
	err := WriteSummary(path, rows)

	// Assert
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var decoded []*SummaryRow
	require.NoError(t, gocsv.UnmarshalFile(file, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, rows[0].RunID, decoded[0].RunID)
	assert.Equal(t, rows[1].Seed, decoded[1].Seed)
	assert.Equal(t, rows[1].Warnings, decoded[1].Warnings)
}
