// Package health serves the liveness endpoint.
package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/banner-server/internal/platform/logging"
	"github.com/janisto/banner-server/internal/platform/timeutil"
)

// Register wires the health route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
	}, handler)
}

func handler(ctx context.Context, _ *struct{}) (*Output, error) {
	applog.LogInfo(ctx, "health check", zap.String("path", "/health"))
	return &Output{Body: Status{Status: StatusOK, Timestamp: timeutil.NowUnix()}}, nil
}
