package reference

import "github.com/jonathan/career-planner/internal/types"

// Default returns the compiled-in reference tables. Callers get a fresh copy
// on each call so loaded overrides never leak between analysis runs.
func Default() *Tables {
	return &Tables{
		CategoryTransferability: map[string]map[string]float64{
			"programming": {
				"web development": 0.7,
				"data science":    0.6,
				"devops":          0.5,
				"mobile":          0.6,
			},
			"web development": {
				"programming": 0.7,
				"mobile":      0.5,
				"design":      0.4,
			},
			"data science": {
				"programming": 0.6,
				"ai ml":       0.7,
				"analytics":   0.8,
			},
			"ai ml": {
				"data science": 0.7,
				"programming":  0.5,
			},
			"devops": {
				"programming": 0.5,
				"cloud":       0.8,
				"security":    0.5,
			},
			"cloud": {
				"devops":   0.8,
				"security": 0.4,
			},
			"databases": {
				"data science": 0.6,
				"programming":  0.5,
			},
			"soft skills": {
				"management": 0.7,
			},
			"management": {
				"soft skills": 0.7,
			},
		},
		SameCategoryTransferScore: 0.8,

		LanguageFamilies: map[string][]string{
			"c family":  {"c", "c++", "java", "c#", "objective c"},
			"scripting": {"python", "ruby", "perl", "php"},
			"web":       {"javascript", "typescript"},
			"jvm":       {"java", "kotlin", "scala", "groovy"},
			"systems":   {"go", "rust", "c", "c++"},
		},
		FrameworkFamilies: map[string][]string{
			"javascript ui": {"react", "angular", "vue", "svelte"},
			"node":          {"nodejs", "express", "nestjs"},
			"python web":    {"django", "flask", "fastapi"},
			"java web":      {"spring", "spring boot"},
		},
		DatabaseFamilies: map[string][]string{
			"relational": {"sql", "mysql", "postgresql", "postgres", "oracle", "sqlite", "sql server"},
			"document":   {"mongodb", "couchdb", "dynamodb"},
			"key value":  {"redis", "memcached"},
		},
		CloudFamilies: map[string][]string{
			"platforms":  {"aws", "azure", "gcp", "google cloud"},
			"containers": {"docker", "kubernetes", "containerd"},
		},

		KeywordPrerequisites: map[string][]string{
			"react":            {"JavaScript", "HTML", "CSS"},
			"angular":          {"JavaScript", "TypeScript", "HTML", "CSS"},
			"vue":              {"JavaScript", "HTML", "CSS"},
			"nodejs":           {"JavaScript"},
			"typescript":       {"JavaScript"},
			"machine learning": {"Python", "Statistics", "Linear Algebra"},
			"deep learning":    {"Machine Learning", "Python"},
			"data science":     {"Python", "Statistics", "SQL"},
			"kubernetes":       {"Docker", "Linux"},
			"terraform":        {"Cloud Fundamentals"},
			"django":           {"Python"},
			"flask":            {"Python"},
			"spring":           {"Java"},
			"graphql":          {"API Design"},
			"microservices":    {"API Design", "Docker"},
		},
		CategoryPrerequisites: map[string][]string{
			"web development": {"programming"},
			"ai ml":           {"data science"},
			"data science":    {"programming"},
			"devops":          {"programming"},
			"mobile":          {"programming"},
		},
		FoundationalDependents: map[string][]string{
			"javascript":       {"react", "angular", "vue", "nodejs", "typescript"},
			"python":           {"machine learning", "data science", "django", "flask"},
			"html":             {"react", "angular", "vue"},
			"css":              {"react", "angular", "vue"},
			"sql":              {"data science", "data engineering"},
			"docker":           {"kubernetes", "microservices"},
			"statistics":       {"machine learning", "data science"},
			"machine learning": {"deep learning"},
			"java":             {"spring"},
			"linux":            {"kubernetes", "devops"},
		},

		CategoryDifficulty: map[string]types.Difficulty{
			"ai ml":           types.DifficultyVeryHard,
			"data science":    types.DifficultyHard,
			"programming":     types.DifficultyHard,
			"security":        types.DifficultyHard,
			"devops":          types.DifficultyModerate,
			"databases":       types.DifficultyModerate,
			"web development": types.DifficultyModerate,
			"cloud":           types.DifficultyModerate,
			"tools":           types.DifficultyEasy,
			"soft skills":     types.DifficultyEasy,
		},
		CategoryHourMultipliers: map[string]float64{
			"ai ml":        2.0,
			"data science": 1.5,
			"programming":  1.3,
			"security":     1.4,
			"devops":       1.2,
			"tools":        0.6,
			"soft skills":  0.5,
		},
		SkillHourMultipliers: map[string]float64{
			"machine learning": 1.8,
			"deep learning":    2.0,
			"kubernetes":       1.5,
			"distributed":      1.6,
			"compiler":         1.8,
			"blockchain":       1.5,
		},
		HardSkillKeywords: []string{
			"machine learning",
			"deep learning",
			"kubernetes",
			"distributed systems",
			"compiler",
			"cryptography",
			"blockchain",
			"quantum",
		},

		BaseHoursPerLevel:         80,
		HoursPerMonth:             40,
		NoFoundationPenaltyMonths: 1.0,
		ExperienceGapPenalty:      0.5,
	}
}
