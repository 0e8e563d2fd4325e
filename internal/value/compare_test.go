package value

import (
	"math"
	"testing"
)

func TestCompareVariantRank(t *testing.T) {
	// Null < Int < Float < Boolean < String < Enum < List < Map.
	ordered := []Value{
		Null(),
		FromInt(1000),
		FromFloat(-5),
		FromBoolean(false),
		FromString(""),
		FromEnum("A"),
		FromList(),
		FromMap(),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Fatalf("Compare(%s, %s) = %d, want %d", ordered[i].Kind(), ordered[j].Kind(), got, want)
			}
		}
	}
}

func TestComparePayloads(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want int
	}{
		{"int", FromInt(1), FromInt(2), -1},
		{"int equal", FromInt(3), FromInt(3), 0},
		{"float", FromFloat(2.5), FromFloat(1.5), 1},
		{"bool", FromBoolean(false), FromBoolean(true), -1},
		{"string", FromString("a"), FromString("b"), -1},
		{"enum", FromEnum("RED"), FromEnum("BLUE"), 1},
		{"list lexicographic", FromList(FromInt(1), FromInt(2)), FromList(FromInt(1), FromInt(3)), -1},
		{"list prefix shorter", FromList(FromInt(1)), FromList(FromInt(1), FromInt(0)), -1},
		{"heterogeneous list by rank", FromList(FromInt(9)), FromList(FromString("a")), -1},
		{"map by key", FromMap(MapEntry{Name: "a", Value: FromInt(1)}), FromMap(MapEntry{Name: "b", Value: FromInt(1)}), -1},
		{"map by value", FromMap(MapEntry{Name: "a", Value: FromInt(1)}), FromMap(MapEntry{Name: "a", Value: FromInt(2)}), -1},
		{"map subset shorter", FromMap(), FromMap(MapEntry{Name: "a", Value: Null()}), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Fatalf("Compare = %d, want %d", got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Fatalf("Compare reversed = %d, want %d", got, -tc.want)
			}
		})
	}
}

func TestMapEqualityIgnoresInsertionOrder(t *testing.T) {
	a := FromMap(
		MapEntry{Name: "x", Value: FromInt(1)},
		MapEntry{Name: "y", Value: FromInt(2)},
	)
	b := FromMap(
		MapEntry{Name: "y", Value: FromInt(2)},
		MapEntry{Name: "x", Value: FromInt(1)},
	)
	if !Equal(a, b) {
		t.Fatalf("maps with same pairs must be equal regardless of order")
	}
	if Compare(a, b) != 0 {
		t.Fatalf("Compare must agree with Equal")
	}
}

func TestCompareNaNFloats(t *testing.T) {
	nan := FromFloat(math.NaN())

	// NaN sorts before every other float, including -Inf, and the order
	// stays antisymmetric.
	for _, other := range []Value{
		FromFloat(math.Inf(-1)),
		FromFloat(-1),
		FromFloat(0),
		FromFloat(1),
		FromFloat(2),
		FromFloat(math.Inf(1)),
	} {
		if got := Compare(nan, other); got != -1 {
			t.Fatalf("Compare(NaN, %s) = %d, want -1", other, got)
		}
		if got := Compare(other, nan); got != 1 {
			t.Fatalf("Compare(%s, NaN) = %d, want 1", other, got)
		}
		if Equal(nan, other) {
			t.Fatalf("NaN must not equal %s", other)
		}
	}

	if !Equal(nan, FromFloat(math.NaN())) {
		t.Fatalf("NaN must compare equal to NaN")
	}
}

func TestNoCrossVariantEquality(t *testing.T) {
	if Equal(FromInt(1), FromFloat(1)) {
		t.Fatalf("Integer must never compare equal to Float")
	}
	if Equal(FromString("A"), FromEnum("A")) {
		t.Fatalf("String must never compare equal to Enum")
	}
}
