// Package fieldset provides the Name-unique collection of top-level
// response fields. A FieldSet is built once (empty, from a single field,
// or from a list) and grows only through Union, which returns a new set
// and fails on any name collision instead of silently picking a winner.
package fieldset

import (
	"fmt"
	"sort"

	value "github.com/hanpama/responsegraph/internal/value"
)

// Field is a named response value. Fields are identified by Name alone:
// two fields with the same name are the same field for set membership,
// whatever their values.
type Field struct {
	Name  value.Name
	Value value.Value
}

// FieldSet is an immutable set of Fields with unique names. Iteration
// order is the insertion order of the originating construction, which
// keeps conversions deterministic; it carries no meaning beyond that.
type FieldSet struct {
	fields []Field
	index  map[value.Name]int
}

// DuplicateFieldNameError reports a name collision during construction
// or union. It signals a producer bug (two builders emitted a field
// under the same name for the same scope) so callers surface it rather
// than recover silently.
type DuplicateFieldNameError struct {
	Name value.Name
}

func (e *DuplicateFieldNameError) Error() string {
	return fmt.Sprintf("duplicate field name %q", string(e.Name))
}

// Empty returns the empty set, the identity element for Union.
func Empty() FieldSet { return FieldSet{} }

// Singleton returns a set holding exactly f.
func Singleton(f Field) FieldSet {
	return FieldSet{
		fields: []Field{f},
		index:  map[value.Name]int{f.Name: 0},
	}
}

// FromList builds a set from fields, failing with a
// *DuplicateFieldNameError naming the first colliding field if two share
// a Name. The input slice is copied.
func FromList(fields []Field) (FieldSet, error) {
	out := FieldSet{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[value.Name]int, len(fields)),
	}
	for _, f := range fields {
		if _, exists := out.index[f.Name]; exists {
			return FieldSet{}, &DuplicateFieldNameError{Name: f.Name}
		}
		out.index[f.Name] = len(out.fields)
		out.fields = append(out.fields, f)
	}
	return out, nil
}

// Union returns the set union of a and b, failing with a
// *DuplicateFieldNameError if they share any name. Neither operand is
// modified. Union is commutative and associative up to Equal.
func Union(a, b FieldSet) (FieldSet, error) {
	merged := make([]Field, 0, len(a.fields)+len(b.fields))
	merged = append(merged, a.fields...)
	for _, f := range b.fields {
		if _, exists := a.index[f.Name]; exists {
			return FieldSet{}, &DuplicateFieldNameError{Name: f.Name}
		}
		merged = append(merged, f)
	}
	return FromList(merged)
}

// Unions folds Union over Empty from left to right, failing on the first
// collision. Because Union rejects rather than resolves collisions, the
// fold order does not affect whether Unions succeeds or what it yields.
func Unions(sets ...FieldSet) (FieldSet, error) {
	out := Empty()
	for _, s := range sets {
		var err error
		out, err = Union(out, s)
		if err != nil {
			return FieldSet{}, err
		}
	}
	return out, nil
}

// Len returns the number of fields in the set.
func (s FieldSet) Len() int { return len(s.fields) }

// Get looks up a field value by name.
func (s FieldSet) Get(name value.Name) (value.Value, bool) {
	if i, ok := s.index[name]; ok {
		return s.fields[i].Value, true
	}
	return value.Value{}, false
}

// Fields returns the fields in insertion order as a fresh slice.
func (s FieldSet) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// ToValue collects the set into a Map value. Entries are emitted in name
// order so equal sets always convert to identical maps. The conversion
// cannot fail: name uniqueness already holds by construction.
func (s FieldSet) ToValue() value.Value {
	entries := make([]value.MapEntry, len(s.fields))
	for i, f := range s.fields {
		entries[i] = value.MapEntry{Name: f.Name, Value: f.Value}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return value.FromMap(entries...)
}

// Equal reports whether two sets hold the same fields, ignoring order.
func Equal(a, b FieldSet) bool {
	return value.Equal(a.ToValue(), b.ToValue())
}
