package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBoolean
	KindString
	KindEnum
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindEnum:
		return "Enum"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// Value is the closed union of everything that can appear in a response.
// A Value holds exactly one variant, selected by Kind. The zero Value is
// Null. Values are immutable once constructed; the payload accessors are
// meaningful only for the matching Kind and return the zero payload
// otherwise.
//
// Every consumer that switches over Kind (serializers, Compare) must
// handle all eight variants; adding a variant means updating each of them.
type Value struct {
	kind    Kind
	i       int32
	f       float64
	b       bool
	s       string // String payload, or the Enum name
	list    []Value
	entries []MapEntry
}

// MapEntry is one key/value pair of a Map value.
type MapEntry struct {
	Name  Name
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// FromInt returns an Int value.
func FromInt(i int32) Value { return Value{kind: KindInt, i: i} }

// FromFloat returns a Float value.
func FromFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// FromBoolean returns a Boolean value.
func FromBoolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

// FromString returns a String value.
func FromString(s string) Value { return Value{kind: KindString, s: s} }

// FromEnum returns an Enum value carrying the given name. Enum
// construction is always explicit; no generic conversion produces one.
func FromEnum(n Name) Value { return Value{kind: KindEnum, s: string(n)} }

// FromList returns a List value of the given items. The items are copied
// so later changes to the argument slice do not leak in.
func FromList(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindList, list: copied}
}

// FromMap returns a Map value with the given entries in the given order.
// The entry names must be unique; building from a FieldSet guarantees
// that, and callers constructing entries by hand are responsible for it.
func FromMap(entries ...MapEntry) Value {
	copied := make([]MapEntry, len(entries))
	copy(copied, entries)
	return Value{kind: KindMap, entries: copied}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the Int payload.
func (v Value) Int() int32 { return v.i }

// Float returns the Float payload.
func (v Value) Float() float64 { return v.f }

// Boolean returns the Boolean payload.
func (v Value) Boolean() bool { return v.b }

// Text returns the String payload.
func (v Value) Text() string { return v.s }

// Enum returns the Enum payload.
func (v Value) Enum() Name { return Name(v.s) }

// Len returns the number of items of a List or entries of a Map.
func (v Value) Len() int {
	if v.kind == KindMap {
		return len(v.entries)
	}
	return len(v.list)
}

// List returns a copy of the List items.
func (v Value) List() []Value {
	copied := make([]Value, len(v.list))
	copy(copied, v.list)
	return copied
}

// Item returns the i-th item of a List.
func (v Value) Item(i int) Value { return v.list[i] }

// Entries returns a copy of the Map entries in stored order.
func (v Value) Entries() []MapEntry {
	copied := make([]MapEntry, len(v.entries))
	copy(copied, v.entries)
	return copied
}

// Get looks up a Map entry by name.
func (v Value) Get(name Name) (Value, bool) {
	for _, e := range v.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return Value{}, false
}

// String renders a compact literal form, for error messages and tests.
func (v Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindInt:
		sb.WriteString(strconv.FormatInt(int64(v.i), 10))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindEnum:
		sb.WriteString(v.s)
	case KindList:
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.render(sb)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(string(e.Name))
			sb.WriteString(": ")
			e.Value.render(sb)
		}
		sb.WriteByte('}')
	}
}
