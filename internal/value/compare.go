package value

import (
	"math"
	"sort"
	"strings"
)

// Compare defines a total order over all values: variant rank first
// (Null < Int < Float < Boolean < String < Enum < List < Map), then the
// payload within a variant. Lists compare lexicographically by element.
// Maps compare by their key/value pairs in key order, so two maps with
// the same pairs are equal regardless of insertion order.
//
// There is no cross-variant coercion: FromInt(1) and FromFloat(1) are
// distinct and ordered by rank.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindNull:
		return 0
	case KindInt:
		return compareOrdered(a.i, b.i)
	case KindFloat:
		return compareFloats(a.f, b.f)
	case KindBoolean:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case KindString, KindEnum:
		return strings.Compare(a.s, b.s)
	case KindList:
		return compareLists(a.list, b.list)
	case KindMap:
		return compareMaps(a.entries, b.entries)
	default:
		return 0
	}
}

// Equal reports structural equality: Compare(a, b) == 0.
func Equal(a, b Value) bool { return Compare(a, b) == 0 }

func compareOrdered[T int32 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFloats keeps the order total on NaN inputs, which a.f < b.f
// alone would not: NaN sorts before every other float and equals only
// NaN.
func compareFloats(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	}
	return compareOrdered(a, b)
}

func compareLists(a, b []Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareOrdered(int32(len(a)), int32(len(b)))
}

func compareMaps(a, b []MapEntry) int {
	as := sortedByName(a)
	bs := sortedByName(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := strings.Compare(string(as[i].Name), string(bs[i].Name)); c != 0 {
			return c
		}
		if c := Compare(as[i].Value, bs[i].Value); c != 0 {
			return c
		}
	}
	return compareOrdered(int32(len(as)), int32(len(bs)))
}

func sortedByName(entries []MapEntry) []MapEntry {
	out := make([]MapEntry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
