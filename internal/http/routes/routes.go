package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/banner-server/internal/http/echo"
	"github.com/janisto/banner-server/internal/http/health"
	"github.com/janisto/banner-server/internal/http/hello"
	"github.com/janisto/banner-server/internal/http/root"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	root.Register(api)
	health.Register(api)
	hello.Register(api)
	echo.Register(api)
}
