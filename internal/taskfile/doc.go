// Package taskfile reads and inspects project task stores.
//
// The task store format (project-tasks.json) is a single JSON object with
// one field:
//
//	{
//	  "tasks": [
//	    {
//	      "id": 1,
//	      "title": "Task title",
//	      "description": "Optional free text",
//	      "acceptanceCriteria": "Optional Gherkin-style text",
//	      "passes": false
//	    }
//	  ]
//	}
//
// Only id is required for lookup; title is expected by every consumer but
// not enforced on load. description, acceptanceCriteria, and passes default
// to the empty string and false when absent. Task order in the array is
// significant: it determines the "next not-passing task" and first-match
// wins when ids are duplicated.
//
// # Validation
//
// The package supports two validation modes:
//
// 1. JSON Schema validation (draft 2020-12) against the embedded
// tasks schema, or against an override schema file when one is configured.
//
// 2. Minimal fallback validation when no usable schema is available:
// structural checks only (tasks presence, non-empty titles).
//
// Validation is advisory. Load performs best-effort field access and only
// rejects stores that are unreadable, not valid JSON, or missing the
// tasks field entirely.
package taskfile
