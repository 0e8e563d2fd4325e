// Package value defines the in-memory representation for everything that
// can appear in a GraphQL response.
//
// # The Value union
//
// Value is a closed tagged union of eight variants: Null, Int, Float,
// Boolean, String, Enum, List and Map. Construction is total (every
// From* constructor succeeds) and a Value is immutable once returned,
// so values may be shared freely across goroutines without coordination.
// Scalar kinds never coerce into one another: an Int is never silently
// read as a Float, and callers convert explicitly when they need to.
//
// Map entries keep their insertion order. That order is not semantically
// significant, since equality and Compare treat maps as unordered pair
// sets, but it is deterministic: a serializer walking Entries always emits
// the same bytes for the same construction sequence.
//
// # Names
//
// Name is identifier-shaped text (letters, digits, underscore, not
// starting with a digit) used for map keys and enum payloads. MakeName
// validates untrusted text; a plain Name conversion is reserved for
// input already known to be well formed, such as field names taken from
// a parsed query document.
//
// # Open conversion
//
// While the variant set is closed, participation is open: any type can
// implement ToValuer to describe its own response representation, and
// the generic FromSlice and FromStringMap lift sequences and string-keyed
// maps of such types into List and Map values. Enum values have no
// generic path on purpose; no Go source type maps to "enum"
// unambiguously, so enum construction is always an explicit FromEnum.
package value
