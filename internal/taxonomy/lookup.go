// Package taxonomy provides the skill-synonym lookup used during synonym
// matching. The lookup is an external collaborator: implementations may be
// backed by a remote taxonomy service, but a failed or missing lookup always
// degrades to "no synonyms found" at the call site.
package taxonomy

import (
	"context"

	"github.com/jonathan/career-planner/internal/parsing"
)

// Lookup is an abstraction over synonym/taxonomy providers
type Lookup interface {
	// Synonyms returns the known synonyms for a skill name. A nil slice with
	// a nil error means the skill is not in the taxonomy.
	Synonyms(ctx context.Context, skillName string) ([]string, error)
}

// StaticLookup serves synonyms from an in-memory table keyed by normalized
// skill name. Safe for concurrent use; the table is never mutated after
// construction.
type StaticLookup struct {
	synonyms map[string][]string
}

// NewStaticLookup builds a StaticLookup from a skill→synonyms table.
// Keys are normalized; entries are made symmetric so that looking up either
// side of a synonym pair finds the other.
func NewStaticLookup(table map[string][]string) *StaticLookup {
	synonyms := make(map[string][]string, len(table))

	add := func(key, synonym string) {
		normalized := parsing.NormalizeSkillName(key)
		if normalized == "" || parsing.NormalizeSkillName(synonym) == normalized {
			return
		}
		for _, existing := range synonyms[normalized] {
			if parsing.NormalizeSkillName(existing) == parsing.NormalizeSkillName(synonym) {
				return
			}
		}
		synonyms[normalized] = append(synonyms[normalized], synonym)
	}

	for skill, names := range table {
		for _, synonym := range names {
			add(skill, synonym)
			add(synonym, skill)
			// Synonyms of the same skill are also synonyms of each other
			for _, other := range names {
				add(synonym, other)
			}
		}
	}

	return &StaticLookup{synonyms: synonyms}
}

// NewDefaultLookup returns a StaticLookup over the built-in synonym table
func NewDefaultLookup() *StaticLookup {
	return NewStaticLookup(defaultSynonyms)
}

// Synonyms implements Lookup
func (s *StaticLookup) Synonyms(_ context.Context, skillName string) ([]string, error) {
	return s.synonyms[parsing.NormalizeSkillName(skillName)], nil
}

// defaultSynonyms maps canonical skill names to their common variants
var defaultSynonyms = map[string][]string{
	"Go":                      {"golang", "go lang"},
	"JavaScript":              {"js", "ecmascript"},
	"TypeScript":              {"ts"},
	"Kubernetes":              {"k8s"},
	"PostgreSQL":              {"postgres", "psql"},
	"Node.js":                 {"node", "nodejs"},
	"React":                   {"react.js", "reactjs"},
	"Vue":                     {"vue.js", "vuejs"},
	"Amazon Web Services":     {"aws"},
	"Google Cloud":            {"gcp", "google cloud platform"},
	"Machine Learning":        {"ml"},
	"Artificial Intelligence": {"ai"},
	"Continuous Integration":  {"ci", "ci cd", "cicd"},
	"C#":                      {"csharp", "c sharp"},
	"C++":                     {"cpp", "cplusplus"},
}
