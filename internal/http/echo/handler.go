// Package echo reflects a posted payload back to the caller.
package echo

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/banner-server/internal/platform/logging"
)

// Register wires the echo route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "post-echo",
		Method:      http.MethodPost,
		Path:        "/echo",
		Summary:     "Echo a message",
	}, handler)
}

func handler(ctx context.Context, input *Input) (*Output, error) {
	applog.LogInfo(ctx, "echo post", zap.String("path", "/echo"), zap.Int("messageBytes", len(input.Body.Message)))
	return &Output{Body: Payload{Message: input.Body.Message}}, nil
}
