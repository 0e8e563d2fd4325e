// Package response assembles well-formed top-level GraphQL responses.
//
// A response is a Map value whose keys are drawn from "data", "errors"
// and "extensions". The constructors encode the shape rules directly:
// Success carries data and no errors; Failed carries data (possibly
// null, when execution started but broke partway) together with a
// non-empty error list; Aborted carries errors only, with no data key at
// all, for failures before execution began. A serializer handed a
// Response value may rely on this shape without re-checking it.
package response

import (
	"fmt"

	fieldset "github.com/hanpama/responsegraph/internal/fieldset"
	value "github.com/hanpama/responsegraph/internal/value"
)

const (
	keyData       value.Name = "data"
	keyErrors     value.Name = "errors"
	keyExtensions value.Name = "extensions"
	keyMessage    value.Name = "message"
	keyLocations  value.Name = "locations"
	keyLine       value.Name = "line"
	keyColumn     value.Name = "column"
)

// Location is a 1-indexed position in the source query text.
type Location struct {
	Line   int
	Column int
}

// Error is one entry of the response "errors" list.
type Error struct {
	Message   string
	Locations []Location
}

// ToValue renders the error as a Map with a "message" key and, when
// locations are present, a "locations" list of line/column maps.
func (e Error) ToValue() value.Value {
	entries := []value.MapEntry{
		{Name: keyMessage, Value: value.FromString(e.Message)},
	}
	if len(e.Locations) > 0 {
		locs := make([]value.Value, len(e.Locations))
		for i, loc := range e.Locations {
			locs[i] = value.FromMap(
				value.MapEntry{Name: keyLine, Value: value.FromInt(int32(loc.Line))},
				value.MapEntry{Name: keyColumn, Value: value.FromInt(int32(loc.Column))},
			)
		}
		entries = append(entries, value.MapEntry{Name: keyLocations, Value: value.FromList(locs...)})
	}
	return value.FromMap(entries...)
}

// Response is a top-level response value. Use the constructors; the zero
// Response is not meaningful.
type Response struct {
	v value.Value
}

// Success returns a response for an execution that completed without
// errors: {"data": data}.
func Success(data value.Value) Response {
	return Response{v: value.FromMap(
		value.MapEntry{Name: keyData, Value: data},
	)}
}

// Failed returns a response for an execution that started and recorded
// at least one error. data stays present (pass value.Null() when the
// whole operation failed partway) and the errors list is non-empty by
// the signature.
func Failed(data value.Value, err Error, more ...Error) Response {
	return Response{v: value.FromMap(
		value.MapEntry{Name: keyData, Value: data},
		value.MapEntry{Name: keyErrors, Value: errorList(err, more)},
	)}
}

// Aborted returns a response for a request that failed before execution
// began (syntax, validation or request errors). The data key is absent
// entirely, not null.
func Aborted(err Error, more ...Error) Response {
	return Response{v: value.FromMap(
		value.MapEntry{Name: keyErrors, Value: errorList(err, more)},
	)}
}

func errorList(first Error, rest []Error) value.Value {
	items := make([]value.Value, 0, 1+len(rest))
	items = append(items, first.ToValue())
	for _, e := range rest {
		items = append(items, e.ToValue())
	}
	return value.FromList(items...)
}

// WithExtensions returns a copy of r with the given fields under the
// "extensions" key, replacing any previous extensions.
func (r Response) WithExtensions(ext fieldset.FieldSet) Response {
	entries := make([]value.MapEntry, 0, 3)
	for _, e := range r.v.Entries() {
		if e.Name != keyExtensions {
			entries = append(entries, e)
		}
	}
	entries = append(entries, value.MapEntry{Name: keyExtensions, Value: ext.ToValue()})
	return Response{v: value.FromMap(entries...)}
}

// Value returns the underlying Map for serialization.
func (r Response) Value() value.Value { return r.v }

// Validate checks an arbitrary value against the response shape rules:
// a Map with keys drawn from data/errors/extensions; errors, when
// present, a non-empty list of error maps each carrying a string message
// and optionally well-formed locations; extensions, when present, a map;
// and at least one of data or errors present. Whether an absent data key
// is legitimate depends on when the failure happened, which a value
// alone cannot show, so that rule stays with the constructors.
func Validate(v value.Value) error {
	if v.Kind() != value.KindMap {
		return fmt.Errorf("response must be a map, got %s", v.Kind())
	}
	for _, e := range v.Entries() {
		switch e.Name {
		case keyData, keyErrors, keyExtensions:
		default:
			return fmt.Errorf("unexpected top-level key %q", string(e.Name))
		}
	}
	_, hasData := v.Get(keyData)
	errs, hasErrors := v.Get(keyErrors)
	if !hasData && !hasErrors {
		return fmt.Errorf("response carries neither data nor errors")
	}
	if hasErrors {
		if errs.Kind() != value.KindList {
			return fmt.Errorf("errors must be a list, got %s", errs.Kind())
		}
		if errs.Len() == 0 {
			return fmt.Errorf("errors list must not be empty")
		}
		for i := 0; i < errs.Len(); i++ {
			if err := validateError(errs.Item(i)); err != nil {
				return fmt.Errorf("errors[%d]: %w", i, err)
			}
		}
	}
	if ext, ok := v.Get(keyExtensions); ok && ext.Kind() != value.KindMap {
		return fmt.Errorf("extensions must be a map, got %s", ext.Kind())
	}
	return nil
}

func validateError(v value.Value) error {
	if v.Kind() != value.KindMap {
		return fmt.Errorf("must be a map, got %s", v.Kind())
	}
	msg, ok := v.Get(keyMessage)
	if !ok {
		return fmt.Errorf("missing message")
	}
	if msg.Kind() != value.KindString {
		return fmt.Errorf("message must be a string, got %s", msg.Kind())
	}
	locs, ok := v.Get(keyLocations)
	if !ok {
		return nil
	}
	if locs.Kind() != value.KindList {
		return fmt.Errorf("locations must be a list, got %s", locs.Kind())
	}
	for i := 0; i < locs.Len(); i++ {
		loc := locs.Item(i)
		if loc.Kind() != value.KindMap {
			return fmt.Errorf("locations[%d] must be a map, got %s", i, loc.Kind())
		}
		for _, key := range []value.Name{keyLine, keyColumn} {
			n, ok := loc.Get(key)
			if !ok {
				return fmt.Errorf("locations[%d] missing %s", i, string(key))
			}
			if n.Kind() != value.KindInt {
				return fmt.Errorf("locations[%d].%s must be an integer, got %s", i, string(key), n.Kind())
			}
			if n.Int() < 1 {
				return fmt.Errorf("locations[%d].%s must be 1-indexed, got %d", i, string(key), n.Int())
			}
		}
	}
	return nil
}
