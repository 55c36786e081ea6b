package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/schedbench/schedgen/internal/generator"
	"github.com/schedbench/schedgen/pkg/model"
)

func main() {
	// Define arguments
	coursesPtr := flag.Int("courses", 50, "Number of courses")
	instructorsPtr := flag.Int("instructors", 30, "Number of instructors")
	roomsPtr := flag.Int("rooms", 20, "Number of classrooms")
	studentsPtr := flag.Int("students", 1000, "Number of students")
	weeksPtr := flag.Int("weeks", 14, "Term length in weeks")
	outPtr := flag.String("out", "large_schedule_input.json", "Output filename")
	seedPtr := flag.Int64("seed", 42, "Random seed for reproducibility")
	multiplePtr := flag.Bool("multiple", false, "Generate the preset medium/large/very-large scenarios instead of a single instance")
	outDirPtr := flag.String("outdir", "large_inputs", "Output directory for the preset scenarios")
	flag.Parse()

	if *multiplePtr {
		generateScenarios(*seedPtr, *outDirPtr)
		return
	}

	params := generator.Params{
		Courses:     *coursesPtr,
		Instructors: *instructorsPtr,
		Rooms:       *roomsPtr,
		Students:    *studentsPtr,
		Weeks:       *weeksPtr,
	}

	fmt.Println("Generating large-scale scheduling input...")
	fmt.Printf("  Courses: %v\n", params.Courses)
	fmt.Printf("  Instructors: %v\n", params.Instructors)
	fmt.Printf("  Rooms: %v\n", params.Rooms)
	fmt.Printf("  Students: %v\n", params.Students)
	fmt.Printf("  Term length: %v weeks\n", params.Weeks)

	instance, warnings, err := generator.New(*seedPtr).Generate(params)
	if err != nil {
		log.Fatalf("cannot generate instance: %v", err)
	}

	printWarnings(warnings)
	printStatistics(instance)

	if err := writeInstance(instance, *outPtr); err != nil {
		log.Fatalf("cannot write instance: %v", err)
	}
	fmt.Printf("Saved to %v\n", *outPtr)
}

func generateScenarios(seed int64, outDir string) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("cannot create output directory: %v", err)
	}

	for _, scenario := range generator.PresetScenarios() {
		fmt.Printf("Generating scenario: %v\n", scenario.Name)

		instance, warnings, err := generator.New(seed).Generate(scenario.Params)
		if err != nil {
			log.Fatalf("cannot generate scenario %v: %v", scenario.Name, err)
		}
		printWarnings(warnings)

		filename := filepath.Join(outDir, scenario.Name+"_input.json")
		if err := writeInstance(instance, filename); err != nil {
			log.Fatalf("cannot write scenario %v: %v", scenario.Name, err)
		}
		fmt.Printf("Saved to %v\n", filename)
	}
}

func writeInstance(instance *model.ProblemInstance, path string) error {
	bytes, err := instance.ToJson()
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0666)
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Println("  All basic feasibility checks passed")
		return
	}
	fmt.Printf("  Feasibility warnings (%v):\n", len(warnings))
	for _, warning := range warnings {
		fmt.Printf("    %v\n", warning)
	}
	fmt.Println("  Note: these are warnings; the optimizer may still find a solution")
}

func printStatistics(instance *model.ProblemInstance) {
	statistics := instance.Metadata.Statistics
	fmt.Println("  Statistics:")
	fmt.Printf("    Average courses per student: %.2f\n", statistics.AvgCoursesPerStudent)
	fmt.Printf("    Total enrollments: %v\n", statistics.TotalEnrollments)
	fmt.Printf("    Potential conflict pairs: %v\n", statistics.PotentialConflicts)
}
