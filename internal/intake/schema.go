package intake

// JSON Schemas (draft 2020-12) for the collaborator payloads. The
// external text-analysis and assessment services produce these shapes;
// everything is validated at the boundary so the core never sees a
// malformed graph or an out-of-range signal.

const graphSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["concepts"],
  "properties": {
    "concepts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "complexity"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "complexity": {"type": "integer", "minimum": 1, "maximum": 5}
        }
      }
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["prerequisite_id", "dependent_id"],
        "properties": {
          "prerequisite_id": {"type": "string", "minLength": 1},
          "dependent_id": {"type": "string", "minLength": 1},
          "strength": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    }
  }
}`

const examPapersSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["papers"],
  "properties": {
    "papers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["year", "questions"],
        "properties": {
          "year": {"type": "integer", "minimum": 1900},
          "questions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["concept_id", "marks"],
              "properties": {
                "concept_id": {"type": "string", "minLength": 1},
                "marks": {"type": "number", "minimum": 0}
              }
            }
          }
        }
      }
    }
  }
}`

const assessmentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["completeness", "coherence", "question_accuracy"],
  "properties": {
    "completeness": {"type": "number", "minimum": 0, "maximum": 1},
    "coherence": {"type": "number", "minimum": 0, "maximum": 1},
    "question_accuracy": {"type": "number", "minimum": 0, "maximum": 1},
    "misconceptions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["description", "severity"],
        "properties": {
          "description": {"type": "string", "minLength": 1},
          "severity": {"type": "string", "enum": ["low", "medium", "high"]},
          "related_concept": {"type": "string"}
        }
      }
    }
  }
}`
