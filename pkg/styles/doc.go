// Package styles derives default attribute values for serializable types
// from go-theme manifests. A token named "<qualified type>.<attribute>"
// applies to one type; "font.<attribute>" applies to every type named Font.
// Variant tokens override the base manifest, and theme tokens override the
// defaults declared in the type's schema.
package styles
