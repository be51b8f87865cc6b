// Package schemas holds the embedded JSON Schemas for externally supplied
// documents: the decision policy and startup metric sets.
package schemas

import _ "embed"

// PolicySchemaJSON is the JSON Schema for policy YAML documents.
//
//go:embed policy.schema.json
var PolicySchemaJSON string

// MetricsSchemaJSON is the JSON Schema for metric set inputs.
//
//go:embed metrics.schema.json
var MetricsSchemaJSON string
