package domain

// Source is the human-readable origin label of an article. The set of
// sources is closed: one constant per configured adapter. Free-form strings
// would silently fragment the deduplication key space, so the labels are
// typed.
type Source string

const (
	SourceHackerNews         Source = "Hacker News"
	SourceRedditTech         Source = "Reddit Tech"
	SourceDevTo              Source = "Dev.to"
	SourceRedditMotivation   Source = "Reddit Motivation"
	SourceRedditMarketing    Source = "Reddit Marketing"
	SourceRedditProductivity Source = "Reddit Productivity"
	SourceRedditMusic        Source = "Reddit Music"
	SourceRedditBusiness     Source = "Reddit Business"
	SourceRedditDesign       Source = "Reddit Design"
	SourceRedditTips         Source = "Reddit Tips"
	SourceRedditScience      Source = "Reddit Science"
	SourceRedditPhotography  Source = "Reddit Photography"
	SourceRedditFinance      Source = "Reddit Finance"
	SourceRedditFitness      Source = "Reddit Fitness"
)

// Sources lists every configured source label.
func Sources() []Source {
	return []Source{
		SourceHackerNews,
		SourceRedditTech,
		SourceDevTo,
		SourceRedditMotivation,
		SourceRedditMarketing,
		SourceRedditProductivity,
		SourceRedditMusic,
		SourceRedditBusiness,
		SourceRedditDesign,
		SourceRedditTips,
		SourceRedditScience,
		SourceRedditPhotography,
		SourceRedditFinance,
		SourceRedditFitness,
	}
}

// Valid reports whether s is a known source label.
func (s Source) Valid() bool {
	for _, known := range Sources() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Source) String() string { return string(s) }

// Category is one label from the fixed taxonomy. Categories are a static
// property of each adapter, never derived from content.
type Category string

const (
	CategoryTechnology   Category = "Technology"
	CategoryProgramming  Category = "Programming"
	CategoryMarketing    Category = "Marketing"
	CategoryProductivity Category = "Productivity"
	CategoryMusic        Category = "Music"
	CategoryBusiness     Category = "Business"
	CategoryDesign       Category = "Design"
	CategoryLifestyle    Category = "Lifestyle"
	CategoryScience      Category = "Science"
	CategoryPhotography  Category = "Photography"
	CategoryFinance      Category = "Finance"
	CategoryHealth       Category = "Health"
)

// Categories lists the full taxonomy.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryProgramming,
		CategoryMarketing,
		CategoryProductivity,
		CategoryMusic,
		CategoryBusiness,
		CategoryDesign,
		CategoryLifestyle,
		CategoryScience,
		CategoryPhotography,
		CategoryFinance,
		CategoryHealth,
	}
}

// Valid reports whether c is a known category label.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }
