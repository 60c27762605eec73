// Package hello serves the greeting endpoint.
package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/banner-server/internal/platform/logging"
)

// Register wires the hello route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Greeting with an optional name",
	}, getHandler)
}

func getHandler(ctx context.Context, input *GetInput) (*GetOutput, error) {
	name := input.name()
	applog.LogInfo(ctx, "hello get", zap.String("path", "/hello"), zap.Bool("named", name != nil))
	return &GetOutput{Body: Greeting{Message: Message, Name: name}}, nil
}
