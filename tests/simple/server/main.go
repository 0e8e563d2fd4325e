// Command server runs a small demo gateway backed by an in-memory user
// catalog. Each top-level field is produced by its own builder and the
// builders' outputs are merged with fieldset.Unions, so an alias
// collision surfaces as a response error instead of a silent overwrite.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/hanpama/responsegraph/internal/eventbus"
	"github.com/hanpama/responsegraph/internal/fieldset"
	"github.com/hanpama/responsegraph/internal/language"
	"github.com/hanpama/responsegraph/internal/otel"
	"github.com/hanpama/responsegraph/internal/response"
	"github.com/hanpama/responsegraph/internal/server"
	"github.com/hanpama/responsegraph/internal/value"
)

type user struct {
	ID    int32
	Name  string
	Email string
	Role  value.Name
}

type demoResolver struct {
	users map[int32]user
}

func newDemoResolver() *demoResolver {
	return &demoResolver{users: map[int32]user{
		1: {ID: 1, Name: "Ada", Email: "ada@example.com", Role: "ADMIN"},
		2: {ID: 2, Name: "Grace", Email: "grace@example.com", Role: "MEMBER"},
	}}
}

func (u user) ToValue() value.Value {
	return value.FromMap(
		value.MapEntry{Name: "id", Value: value.FromInt(u.ID)},
		value.MapEntry{Name: "name", Value: value.FromString(u.Name)},
		value.MapEntry{Name: "email", Value: value.FromString(u.Email)},
		value.MapEntry{Name: "role", Value: value.FromEnum(u.Role)},
	)
}

func (r *demoResolver) Resolve(ctx context.Context, doc *language.QueryDocument, operationName string, variables map[string]any) server.Result {
	opDef := doc.Operations.ForName(operationName)
	if opDef == nil {
		opDef = doc.Operations[0]
	}

	var errs []response.Error
	sets := make([]fieldset.FieldSet, 0, len(opDef.SelectionSet))
	for _, sel := range opDef.SelectionSet {
		field, ok := sel.(*language.Field)
		if !ok {
			continue
		}
		alias := field.Alias
		if alias == "" {
			alias = field.Name
		}
		fv, err := r.resolveField(field)
		if err != nil {
			errs = append(errs, response.Error{
				Message:   err.Error(),
				Locations: []response.Location{{Line: field.Position.Line, Column: field.Position.Column}},
			})
			fv = value.Null()
		}
		sets = append(sets, fieldset.Singleton(fieldset.Field{Name: value.Name(alias), Value: fv}))
	}

	data, err := fieldset.Unions(sets...)
	if err != nil {
		errs = append(errs, response.Error{Message: fmt.Sprintf("internal: %v", err)})
		return server.Result{Data: value.Null(), Errors: errs}
	}
	return server.Result{Data: data.ToValue(), Errors: errs}
}

func (r *demoResolver) resolveField(field *language.Field) (value.Value, error) {
	switch field.Name {
	case "hello":
		return value.FromString("world"), nil
	case "users":
		users := make([]value.Value, 0, len(r.users))
		for id := int32(1); int(id) <= len(r.users); id++ {
			users = append(users, r.users[id].ToValue())
		}
		return value.FromList(users...), nil
	case "user":
		for _, arg := range field.Arguments {
			if arg.Name == "id" {
				var id int32
				if _, err := fmt.Sscanf(arg.Value.Raw, "%d", &id); err == nil {
					if u, ok := r.users[id]; ok {
						return u.ToValue(), nil
					}
				}
				return value.Null(), nil
			}
		}
		return value.Value{}, fmt.Errorf("user requires an id argument")
	default:
		return value.Value{}, fmt.Errorf("Cannot query field %q", field.Name)
	}
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	pretty := flag.Bool("pretty", false, "Pretty-print JSON responses")
	otelEndpoint := flag.String("otel.endpoint", "", "OTLP collector endpoint")
	flag.Parse()

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(*otelEndpoint, "responsegraph-demo")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	var opts []server.Option
	if *pretty {
		opts = append(opts, server.WithPretty())
	}
	h, err := server.New(newDemoResolver(), opts...)
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", h)

	log.Printf("GraphQL demo listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
