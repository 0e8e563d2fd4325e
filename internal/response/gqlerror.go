package response

import (
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// FromGQLError adapts a gqlparser error into a response Error, keeping
// any 1-indexed source positions.
func FromGQLError(err *gqlerror.Error) Error {
	out := Error{Message: err.Message}
	for _, loc := range err.Locations {
		out.Locations = append(out.Locations, Location{Line: loc.Line, Column: loc.Column})
	}
	return out
}

// FromGQLErrorList adapts a gqlparser error list.
func FromGQLErrorList(list gqlerror.List) []Error {
	out := make([]Error, len(list))
	for i, err := range list {
		out[i] = FromGQLError(err)
	}
	return out
}
