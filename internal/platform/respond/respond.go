package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/banner-server/internal/platform/logging"
)

const (
	msgNotFound          = "The requested resource was not found"
	msgInternalServerErr = "internal server error"
)

// ErrorBody is the payload of every error response. It doubles as the
// huma.StatusError returned by the framework once Install has run.
type ErrorBody struct {
	Title   string   `json:"error" doc:"Short error summary" example:"Not found"`
	Message string   `json:"message" doc:"Human-readable error description" example:"The requested resource was not found"`
	Details []string `json:"details,omitempty" doc:"Individual request issues, when known"`
	status  int
}

func (e *ErrorBody) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Title
}

// GetStatus implements huma.StatusError.
func (e *ErrorBody) GetStatus() int {
	return e.status
}

// NewError builds an ErrorBody whose title is derived from the status code.
func NewError(status int, msg string, details ...string) *ErrorBody {
	return &ErrorBody{
		Title:   statusTitle(status),
		Message: messageOrDefault(status, msg),
		Details: details,
		status:  status,
	}
}

var installOnce sync.Once

// Install replaces Huma's error factories so framework errors (body parsing,
// validation, negotiation) render as ErrorBody. Validation failures are
// reported as 400 rather than Huma's default 422. Safe to call repeatedly.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return statusError(context.Background(), status, msg, errs)
		}
		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			ctx := context.Background()
			if hctx != nil {
				ctx = hctx.Context()
			}
			return statusError(ctx, status, msg, errs)
		}
	})
}

// Write serializes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteError logs and renders an ErrorBody for the given status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, errs ...error) {
	body := statusError(r.Context(), status, msg, errs)
	if err := Write(w, body.GetStatus(), body); err != nil {
		applog.LogError(r.Context(), "failed to write error response", err)
	}
}

// NotFoundHandler is the fallback for unmatched paths and unmatched methods.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, msgNotFound)
	}
}

// Recoverer converts panics into a 500 ErrorBody. If the handler already
// started the response, the partial response is left untouched.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				var err error
				switch v := rec.(type) {
				case error:
					err = v
				default:
					err = fmt.Errorf("%v", v)
				}
				err = fmt.Errorf("%w\n%s", err, debug.Stack())
				if rw.wroteHeader {
					applog.LogError(r.Context(), "panic after response started", err)
					return
				}
				WriteError(w, r, http.StatusInternalServerError, msgInternalServerErr, err)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// responseWriter records whether the response has been started.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func statusError(ctx context.Context, status int, msg string, errs []error) *ErrorBody {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}
	// Server-side causes stay in the logs.
	var details []string
	if status < 500 {
		details = detailsFromErrors(errs)
	}
	body := NewError(status, msg, details...)
	logWithStatus(ctx, body, joinErrors(errs))
	return body
}

func detailsFromErrors(errs []error) []string {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		detail := err.Error()
		var detailer huma.ErrorDetailer
		if errors.As(err, &detailer) {
			if d := detailer.ErrorDetail(); d != nil {
				detail = d.Message
				if d.Location != "" {
					detail = d.Location + ": " + d.Message
				}
			}
		}
		details = append(details, detail)
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

// statusTitle renders the status text in sentence case, e.g. "Not found".
func statusTitle(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return fmt.Sprintf("HTTP %d", status)
	}
	return text[:1] + strings.ToLower(text[1:])
}

func messageOrDefault(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	return fmt.Sprintf("HTTP %d", status)
}

// logWithStatus logs client errors at warn and server errors at error.
// Statuses below 400 are not logged; Huma builds a zero-status error at
// registration time to derive the error schema.
func logWithStatus(ctx context.Context, body *ErrorBody, err error) {
	fields := []zap.Field{
		zap.Int("status", body.status),
		zap.String("title", body.Title),
		zap.String("detail", body.Message),
	}
	if len(body.Details) > 0 {
		fields = append(fields, zap.Strings("details", body.Details))
	}
	switch {
	case body.status >= 500:
		applog.LogError(ctx, "request failed", err, fields...)
	case body.status >= 400:
		if err != nil {
			fields = append(fields, zap.NamedError("cause", err))
		}
		applog.LogWarn(ctx, "request rejected", fields...)
	}
}
