package response

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	fieldset "github.com/hanpama/responsegraph/internal/fieldset"
	value "github.com/hanpama/responsegraph/internal/value"
)

func TestSuccessShape(t *testing.T) {
	data := value.FromMap(
		value.MapEntry{Name: "user", Value: value.FromMap(
			value.MapEntry{Name: "id", Value: value.FromInt(1)},
		)},
	)
	got := Success(data).Value()

	want := value.FromMap(value.MapEntry{Name: "data", Value: data})
	require.True(t, value.Equal(got, want), "got %v", got)
	_, hasErrors := got.Get("errors")
	require.False(t, hasErrors, "success response must not carry an errors key")
	require.NoError(t, Validate(got))
}

func TestAbortedShape(t *testing.T) {
	got := Aborted(Error{
		Message:   `Cannot query field "x"`,
		Locations: []Location{{Line: 2, Column: 5}},
	}).Value()

	want := value.FromMap(
		value.MapEntry{Name: "errors", Value: value.FromList(
			value.FromMap(
				value.MapEntry{Name: "message", Value: value.FromString(`Cannot query field "x"`)},
				value.MapEntry{Name: "locations", Value: value.FromList(
					value.FromMap(
						value.MapEntry{Name: "line", Value: value.FromInt(2)},
						value.MapEntry{Name: "column", Value: value.FromInt(5)},
					),
				)},
			),
		)},
	)
	require.True(t, value.Equal(got, want), "got %v", got)
	// A failure before execution must omit data entirely, not null it.
	_, hasData := got.Get("data")
	require.False(t, hasData, "aborted response must have no data key")
	require.NoError(t, Validate(got))
}

func TestFailedShapeKeepsDataAndErrors(t *testing.T) {
	data := value.FromMap(
		value.MapEntry{Name: "user", Value: value.Null()},
	)
	got := Failed(data, Error{Message: "boom"}).Value()

	d, hasData := got.Get("data")
	require.True(t, hasData)
	require.True(t, value.Equal(d, data))

	errs, hasErrors := got.Get("errors")
	require.True(t, hasErrors)
	require.Equal(t, value.KindList, errs.Kind())
	require.Equal(t, 1, errs.Len())
	require.NoError(t, Validate(got))
}

func TestFailedWithNullData(t *testing.T) {
	got := Failed(value.Null(), Error{Message: "collapsed"}).Value()
	d, hasData := got.Get("data")
	require.True(t, hasData, "execution started, so data stays present")
	require.True(t, d.IsNull())
	require.NoError(t, Validate(got))
}

func TestErrorWithoutLocations(t *testing.T) {
	ev := Error{Message: "plain"}.ToValue()
	_, hasLocs := ev.Get("locations")
	require.False(t, hasLocs, "empty locations must be omitted, not an empty list")
}

func TestWithExtensions(t *testing.T) {
	ext, err := fieldset.FromList([]fieldset.Field{
		{Name: "traceId", Value: value.FromString("abc")},
	})
	require.NoError(t, err)

	got := Success(value.FromMap()).WithExtensions(ext).Value()
	e, ok := got.Get("extensions")
	require.True(t, ok)
	require.Equal(t, value.KindMap, e.Kind())
	tid, ok := e.Get("traceId")
	require.True(t, ok)
	require.Equal(t, "abc", tid.Text())
	require.NoError(t, Validate(got))

	// Replacing extensions does not duplicate the key.
	again := Success(value.FromMap()).WithExtensions(ext).WithExtensions(ext).Value()
	require.NoError(t, Validate(again))
}

func TestValidateRejectsMalformedShapes(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want string
	}{
		{"non-map", value.FromInt(1), "must be a map"},
		{"unknown key", value.FromMap(value.MapEntry{Name: "payload", Value: value.Null()}), "unexpected top-level key"},
		{"neither data nor errors", value.FromMap(), "neither data nor errors"},
		{
			"empty errors list",
			value.FromMap(value.MapEntry{Name: "errors", Value: value.FromList()}),
			"must not be empty",
		},
		{
			"errors not a list",
			value.FromMap(value.MapEntry{Name: "errors", Value: value.FromMap()}),
			"errors must be a list",
		},
		{
			"error missing message",
			value.FromMap(value.MapEntry{Name: "errors", Value: value.FromList(value.FromMap())}),
			"missing message",
		},
		{
			"location zero-indexed",
			value.FromMap(value.MapEntry{Name: "errors", Value: value.FromList(value.FromMap(
				value.MapEntry{Name: "message", Value: value.FromString("m")},
				value.MapEntry{Name: "locations", Value: value.FromList(value.FromMap(
					value.MapEntry{Name: "line", Value: value.FromInt(0)},
					value.MapEntry{Name: "column", Value: value.FromInt(1)},
				))},
			))}),
			"1-indexed",
		},
		{
			"extensions not a map",
			value.FromMap(
				value.MapEntry{Name: "data", Value: value.Null()},
				value.MapEntry{Name: "extensions", Value: value.FromList()},
			),
			"extensions must be a map",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.v)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFromGQLError(t *testing.T) {
	_, err := parser.ParseQuery(&ast.Source{Input: "{ broken"})
	require.Error(t, err)
	var ge *gqlerror.Error
	require.ErrorAs(t, err, &ge)

	re := FromGQLError(ge)
	require.NotEmpty(t, re.Message)
	require.NotEmpty(t, re.Locations)
	require.GreaterOrEqual(t, re.Locations[0].Line, 1)
	require.GreaterOrEqual(t, re.Locations[0].Column, 1)

	resp := Aborted(re).Value()
	require.NoError(t, Validate(resp))
	_, hasData := resp.Get("data")
	require.False(t, hasData)
}
