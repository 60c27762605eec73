// Package api builds the Huma API shared by the server and handler tests.
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/banner-server/internal/platform/respond"
)

// Config returns the Huma configuration for this service.
//
// Documentation, OpenAPI and schema routes are disabled so every path other
// than the registered operations reaches the 404 fallback. CreateHooks is
// cleared to keep the $schema link out of response bodies: /echo must return
// exactly what it received.
func Config(title, version string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	cfg.CreateHooks = nil
	return cfg
}

// New installs the shared error renderer and mounts a Huma API on router.
func New(router chi.Router, title, version string) huma.API {
	respond.Install()
	return humachi.New(router, Config(title, version))
}
