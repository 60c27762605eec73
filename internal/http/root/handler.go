// Package root serves the plain-text banner at "/".
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/banner-server/internal/platform/logging"
)

// Banner is the literal body returned by GET /.
const Banner = "🚀 Super Fast Rust Server!"

const contentType = "text/plain; charset=utf-8"

// Output is a raw text response.
type Output struct {
	ContentType string `header:"Content-Type"`
	Body        []byte `contentType:"text/plain"`
}

// Register wires the banner route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-banner",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Server banner",
	}, handler)
}

func handler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "banner get", zap.String("path", "/"))
	return &Output{ContentType: contentType, Body: []byte(Banner)}, nil
}
