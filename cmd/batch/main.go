package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/schedbench/schedgen/internal/generator"
	"github.com/schedbench/schedgen/internal/report"
	"github.com/schedbench/schedgen/pkg/model"
)

// batch produces one instance per seed for solver benchmarking sweeps. Each
// run owns an independent generator, so seeds fan out across workers with no
// shared state; only result collection is synchronized.

type job struct {
	index int
	seed  int64
}

type outcome struct {
	index int
	row   *report.SummaryRow
	err   error
}

func main() {
	countPtr := flag.Int("count", 50, "Number of instances to generate")
	baseSeedPtr := flag.Int64("base-seed", 1000, "Seeds run from base-seed+1 to base-seed+count")
	outDirPtr := flag.String("outdir", "batch_output", "Output directory")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Number of parallel workers")
	coursesPtr := flag.Int("courses", 50, "Number of courses per instance")
	instructorsPtr := flag.Int("instructors", 30, "Number of instructors per instance")
	roomsPtr := flag.Int("rooms", 20, "Number of classrooms per instance")
	studentsPtr := flag.Int("students", 1000, "Number of students per instance")
	weeksPtr := flag.Int("weeks", 14, "Term length in weeks")
	flag.Parse()

	count := *countPtr
	workers := *workersPtr
	if count <= 0 {
		log.Fatalf("count must be positive: %v", count)
	} else if workers <= 0 {
		log.Fatalf("workers must be positive: %v", workers)
	}

	if err := os.MkdirAll(*outDirPtr, 0755); err != nil {
		log.Fatalf("cannot create output directory: %v", err)
	}

	params := generator.Params{
		Courses:     *coursesPtr,
		Instructors: *instructorsPtr,
		Rooms:       *roomsPtr,
		Students:    *studentsPtr,
		Weeks:       *weeksPtr,
	}

	fmt.Printf("Start generating %v datasets...\n", count)

	jobs := make(chan job)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				row, err := produce(j, params, *outDirPtr)
				outcomes <- outcome{index: j.index, row: row, err: err}
			}
		}()
	}

	go func() {
		for i := 1; i <= count; i++ {
			jobs <- job{index: i, seed: *baseSeedPtr + int64(i)}
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	rows := make([]*report.SummaryRow, count)
	completed := 0
	for result := range outcomes {
		if result.err != nil {
			log.Fatalf("generation failed: %v", result.err)
		}
		rows[result.index-1] = result.row
		completed++
		fmt.Printf("[%v/%v] saved: %v\n", completed, count, result.row.File)
	}

	summaryPath := filepath.Join(*outDirPtr, "summary.csv")
	if err := report.WriteSummary(summaryPath, rows); err != nil {
		log.Fatalf("cannot write summary: %v", err)
	}
	fmt.Printf("Manifest written to %v\n", summaryPath)
}

func produce(j job, params generator.Params, outDir string) (*report.SummaryRow, error) {
	instance, warnings, err := generator.New(j.seed).Generate(params)
	if err != nil {
		return nil, fmt.Errorf("seed %v: %w", j.seed, err)
	}

	filename := filepath.Join(outDir, fmt.Sprintf("schedule_input_%03d.json", j.index))
	if err := write(instance, filename); err != nil {
		return nil, fmt.Errorf("seed %v: %w", j.seed, err)
	}

	statistics := instance.Metadata.Statistics
	return &report.SummaryRow{
		RunID:                uuid.NewString(),
		Seed:                 j.seed,
		File:                 filename,
		Courses:              statistics.NumCourses,
		Instructors:          statistics.NumInstructors,
		Rooms:                statistics.NumRooms,
		Students:             statistics.NumStudents,
		TotalEnrollments:     statistics.TotalEnrollments,
		AvgCoursesPerStudent: statistics.AvgCoursesPerStudent,
		PotentialConflicts:   statistics.PotentialConflicts,
		Warnings:             len(warnings),
	}, nil
}

func write(instance *model.ProblemInstance, path string) error {
	bytes, err := instance.ToJson()
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0666)
}
