// Package schema declares the attributes each serializable type accepts.
// Schemas are read from JSON or YAML documents (the plotly ones are embedded)
// and compiled to kin-openapi schemas for validation. Attribute types extend
// the JSON primitives with "color" (hex, rgb/rgba/hsl/hsla functions or an SVG
// color name) and "enumerated" (a closed set of strings). String attributes
// flagged with sanitize have markup stripped during normalisation.
package schema
