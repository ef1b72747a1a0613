package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
	"github.com/phrazzld/eazybank-api/internal/redact"
)

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// now is replaced in tests.
var now = time.Now

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithStatus writes a dto.ResponseDto whose statusCode mirrors the HTTP status.
func RespondWithStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, dto.ResponseDto{
		StatusCode: strconv.Itoa(status),
		StatusMsg:  message,
	})
}

func newErrorResponse(r *http.Request, status int, message string) dto.ErrorResponseDto {
	return dto.ErrorResponseDto{
		APIPath:      "uri=" + r.URL.Path,
		ErrorCode:    status,
		ErrorMessage: message,
		ErrorTime:    now().UTC(),
		TraceID:      GetTraceID(r.Context()),
	}
}

// RespondWithError writes a dto.ErrorResponseDto with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := newErrorResponse(r, status, message)

	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", body.TraceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, body)
}

// RespondWithErrorAndLog writes an error response carrying userMessage and
// logs err after redaction. The raw error never reaches the client.
//
// Log level strategy:
//   - 5xx errors: ERROR
//   - 4xx errors: DEBUG, or WARN with WithElevatedLogLevel
//   - 429 Too Many Requests: WARN
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	body := newErrorResponse(r, status, userMessage)

	logAttrs := []slog.Attr{
		slog.String("trace_id", body.TraceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", redact.String(userMessage)),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).
		LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, body)
}
