package generator

// Scenario is a named preset instance size used for benchmark sweeps.
type Scenario struct {
	Name   string
	Params Params
}

// PresetScenarios returns the fixed benchmark ladder: medium, large and very
// large instances at a ten-week term.
func PresetScenarios() []Scenario {
	return []Scenario{
		{
			Name:   "medium_scale",
			Params: Params{Courses: 50, Instructors: 30, Rooms: 35, Students: 1000, Weeks: 10},
		},
		{
			Name:   "large_scale",
			Params: Params{Courses: 75, Instructors: 40, Rooms: 50, Students: 1500, Weeks: 10},
		},
		{
			Name:   "very_large_scale",
			Params: Params{Courses: 100, Instructors: 50, Rooms: 60, Students: 2000, Weeks: 10},
		},
	}
}
