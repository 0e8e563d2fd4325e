package value

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/types/known/structpb"
)

// ToValuer is implemented by any type that can represent itself as a
// Value. The Value union itself is closed; this interface is the open
// side of the design, letting resolvers and error formatters bring their
// own domain types into a response.
type ToValuer interface {
	ToValue() Value
}

// ToValue returns v itself, so Value participates in the generic
// conversions as the identity.
func (v Value) ToValue() Value { return v }

// Scalar adapters so plain Go scalars can flow through FromSlice and
// FromStringMap. Each converts without coercion to the matching variant.
type (
	Int     int32
	Float   float64
	Boolean bool
	String  string
)

func (i Int) ToValue() Value     { return FromInt(int32(i)) }
func (f Float) ToValue() Value   { return FromFloat(float64(f)) }
func (b Boolean) ToValue() Value { return FromBoolean(bool(b)) }
func (s String) ToValue() Value  { return FromString(string(s)) }

// FromSlice converts element-wise to a List, preserving order.
func FromSlice[T ToValuer](items []T) Value {
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = item.ToValue()
	}
	return Value{kind: KindList, list: out}
}

// FromStringMap converts each value and reuses the keys as Names
// directly, without validating them. Entries are stored in key order so
// the result is deterministic for any input map.
func FromStringMap[T ToValuer](m map[string]T) Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]MapEntry, len(keys))
	for i, k := range keys {
		entries[i] = MapEntry{Name: Name(k), Value: m[k].ToValue()}
	}
	return Value{kind: KindMap, entries: entries}
}

// FromProto converts a protobuf Struct value. Numbers always become
// Float, since structpb carries only doubles; struct keys must be valid
// Names. A nil value converts to Null.
func FromProto(v *structpb.Value) (Value, error) {
	if v == nil {
		return Null(), nil
	}
	switch pv := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return Null(), nil
	case *structpb.Value_NumberValue:
		return FromFloat(pv.NumberValue), nil
	case *structpb.Value_StringValue:
		return FromString(pv.StringValue), nil
	case *structpb.Value_BoolValue:
		return FromBoolean(pv.BoolValue), nil
	case *structpb.Value_ListValue:
		items := pv.ListValue.GetValues()
		out := make([]Value, len(items))
		for i, item := range items {
			cv, err := FromProto(item)
			if err != nil {
				return Value{}, err
			}
			out[i] = cv
		}
		return Value{kind: KindList, list: out}, nil
	case *structpb.Value_StructValue:
		fields := pv.StructValue.GetFields()
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]MapEntry, len(keys))
		for i, k := range keys {
			name, err := MakeName(k)
			if err != nil {
				return Value{}, fmt.Errorf("struct key: %w", err)
			}
			cv, err := FromProto(fields[k])
			if err != nil {
				return Value{}, err
			}
			entries[i] = MapEntry{Name: name, Value: cv}
		}
		return Value{kind: KindMap, entries: entries}, nil
	default:
		return Value{}, fmt.Errorf("unsupported proto value kind %T", pv)
	}
}
