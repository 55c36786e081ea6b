package generator

// Name pools used across the generators. Identifier uniqueness never depends
// on these; ids are positional and names are display-only.

var coursePrefixes = []string{
	"CS", "MATH", "STAT", "ECON", "MS&E", "EE", "ME", "PHYS", "CHEM", "BIO",
	"ENGR", "DATA", "HIST", "ENGL", "PSYCH", "SOC", "PHIL",
}

var courseSuffixes = []string{
	"Introduction", "Advanced", "Theory", "Applications",
	"Seminar", "Lab", "Workshop", "Project",
}

var instructorFirstNames = []string{
	"Alice", "Bob", "Carol", "David", "Emma", "Frank", "Grace", "Henry",
	"Iris", "Jack", "Karen", "Leo", "Maria", "Nathan", "Olivia", "Peter",
	"Quinn", "Rachel", "Sam", "Tina", "Uma", "Victor", "Wendy", "Xavier",
	"Yuki", "Zoe", "Alex", "Blake", "Casey", "Drew", "Eli", "Fiona",
}

var instructorLastNames = []string{
	"Anderson", "Brown", "Chen", "Davis", "Evans", "Fischer", "Garcia",
	"Harris", "Ivanov", "Johnson", "Kim", "Lee", "Martinez", "Nguyen",
	"O'Brien", "Patel", "Quinn", "Rodriguez", "Smith", "Taylor", "Ueda",
	"Vargas", "Wang", "Xu", "Yamamoto", "Zhang",
}

var buildings = []string{
	"Gates", "Huang", "Hewlett", "McCullough", "Littlefield",
	"Meyer", "Jordan", "Skilling", "Mitchell", "Thornton",
}

var studentFirstNames = []string{
	"Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia", "Mason",
	"Isabella", "William", "Mia", "James", "Charlotte", "Benjamin", "Amelia",
	"Lucas", "Harper", "Henry", "Evelyn", "Alexander", "Abigail", "Michael",
	"Emily", "Daniel", "Elizabeth", "Matthew", "Sofia", "Jackson", "Avery",
	"Sebastian", "Ella", "Jack", "Scarlett", "Aiden", "Grace", "Owen", "Chloe",
	"Samuel", "Victoria", "David", "Riley", "Joseph", "Aria", "Carter", "Lily",
}
