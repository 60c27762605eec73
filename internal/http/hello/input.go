package hello

import "github.com/danielgtaylor/huma/v2"

// GetInput carries the optional name query parameter.
//
// Huma treats an empty query value as unset, so presence is resolved from the
// raw query string: ?name= yields an empty name, no parameter yields none.
// The Name tag only documents the parameter; Resolve sets the value.
type GetInput struct {
	Name    string `query:"name" doc:"Name to include in the greeting" example:"Ferris"`
	present bool
}

// Resolve implements huma.Resolver.
func (i *GetInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	i.Name, i.present = lookupQuery(u.RawQuery, "name")
	return nil
}

// name returns the requested name, or nil when the parameter was absent.
func (i *GetInput) name() *string {
	if !i.present {
		return nil
	}
	n := i.Name
	return &n
}
