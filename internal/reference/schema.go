package reference

// tablesSchema validates reference-table override files before unmarshaling.
// Every table is optional; unknown properties are rejected to catch typos in
// hand-edited tuning files.
const tablesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Reference table overrides",
  "type": "object",
  "additionalProperties": false,
  "definitions": {
    "stringListMap": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {"type": "string", "minLength": 1}
      }
    },
    "scoreMap": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0}
    }
  },
  "properties": {
    "category_transferability": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
      }
    },
    "same_category_transfer_score": {"type": "number", "minimum": 0, "maximum": 1},
    "language_families": {"$ref": "#/definitions/stringListMap"},
    "framework_families": {"$ref": "#/definitions/stringListMap"},
    "database_families": {"$ref": "#/definitions/stringListMap"},
    "cloud_families": {"$ref": "#/definitions/stringListMap"},
    "keyword_prerequisites": {"$ref": "#/definitions/stringListMap"},
    "category_prerequisites": {"$ref": "#/definitions/stringListMap"},
    "foundational_dependents": {"$ref": "#/definitions/stringListMap"},
    "category_difficulty": {
      "type": "object",
      "additionalProperties": {"enum": ["easy", "moderate", "hard", "very-hard"]}
    },
    "category_hour_multipliers": {"$ref": "#/definitions/scoreMap"},
    "skill_hour_multipliers": {"$ref": "#/definitions/scoreMap"},
    "hard_skill_keywords": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "base_hours_per_level": {"type": "number", "exclusiveMinimum": 0},
    "hours_per_month": {"type": "number", "exclusiveMinimum": 0},
    "no_foundation_penalty_months": {"type": "number", "minimum": 0},
    "experience_gap_penalty": {"type": "number", "minimum": 0}
  }
}`
