package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-planner/internal/types"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateUserSkills checks every user skill record against its struct tags.
// An empty collection is valid; the core treats it as "no recorded skills".
func ValidateUserSkills(skills []types.UserSkill) error {
	for i, skill := range skills {
		if err := structValidator.Struct(skill); err != nil {
			return &RecordError{Collection: "user_skills", Index: i, Cause: err}
		}
	}
	return nil
}

// ValidateRequirements checks every job requirement record against its
// struct tags. An empty collection is valid.
func ValidateRequirements(requirements []types.JobSkillRequirement) error {
	for i, req := range requirements {
		if err := structValidator.Struct(req); err != nil {
			return &RecordError{Collection: "requirements", Index: i, Cause: err}
		}
	}
	return nil
}
