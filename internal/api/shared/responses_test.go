package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozenTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func freezeTime(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return frozenTime }
	t.Cleanup(func() { now = prev })
}

// captureDefaultLogger swaps slog.Default for a debug-level text logger
// writing into the returned builder.
func captureDefaultLogger(t *testing.T) *strings.Builder {
	t.Helper()
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	oldLogger := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(oldLogger) })
	return &logBuf
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "response dto",
			status:       http.StatusCreated,
			data:         dto.ResponseDto{StatusCode: "201", StatusMsg: "Loan created successfully"},
			expectedBody: `{"statusCode":"201","statusMsg":"Loan created successfully"}`,
		},
		{
			name:         "empty response",
			status:       http.StatusOK,
			data:         map[string]interface{}{},
			expectedBody: `{}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody+"\n", w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	logBuf := captureDefaultLogger(t)

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/update", nil)
	w := httptest.NewRecorder()

	RespondWithStatus(w, req, http.StatusExpectationFailed, "Update operation failed")

	assert.Equal(t, http.StatusExpectationFailed, w.Code)
	var body dto.ResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "417", body.StatusCode)
	assert.Equal(t, "Update operation failed", body.StatusMsg)
}

func TestRespondWithError(t *testing.T) {
	freezeTime(t)
	ctx := context.WithValue(context.Background(), TraceIDKey, "test-trace-id")
	req := httptest.NewRequest(http.MethodGet, "/api/fetch", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response dto.ErrorResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "uri=/api/fetch", response.APIPath)
	assert.Equal(t, http.StatusBadRequest, response.ErrorCode)
	assert.Equal(t, "Invalid request", response.ErrorMessage)
	assert.True(t, frozenTime.Equal(response.ErrorTime))
	assert.Equal(t, "test-trace-id", response.TraceID)
}

func TestRespondWithErrorNoTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Not found")

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "Not found", raw["errorMessage"])
	assert.NotContains(t, raw, "traceId")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		message          string
		err              error
		expectedLogLevel string
		elevateLogLevel  bool
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			message:          "An unexpected error occurred",
			err:              errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error with default log level",
			statusCode:       http.StatusBadRequest,
			message:          "Bad request",
			err:              errors.New("invalid input"),
			expectedLogLevel: "DEBUG",
		},
		{
			name:             "client error with elevated log level",
			statusCode:       http.StatusBadRequest,
			message:          "Bad request elevated",
			err:              errors.New("invalid input requiring attention"),
			expectedLogLevel: "WARN",
			elevateLogLevel:  true,
		},
		{
			name:             "rate limiting error",
			statusCode:       http.StatusTooManyRequests,
			message:          "Too many requests",
			err:              errors.New("rate limit exceeded"),
			expectedLogLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), TraceIDKey, "test-trace-id")
			req := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
			w := httptest.NewRecorder()
			logBuf := captureDefaultLogger(t)

			if tc.elevateLogLevel {
				RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err, WithElevatedLogLevel())
			} else {
				RespondWithErrorAndLog(w, req, tc.statusCode, tc.message, tc.err)
			}

			assert.Equal(t, tc.statusCode, w.Code)

			var response dto.ErrorResponseDto
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.message, response.ErrorMessage)
			assert.Equal(t, "test-trace-id", response.TraceID)
			assert.NotContains(t, w.Body.String(), tc.err.Error())

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, "level="+tc.expectedLogLevel)
			assert.Contains(t, logOutput, "trace_id=test-trace-id")
			assert.Contains(t, logOutput, "error_type=")
		})
	}
}

func TestRespondWithErrorAndLog_RedactsMobileNumbers(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/create", nil)
	w := httptest.NewRecorder()
	logBuf := captureDefaultLogger(t)

	RespondWithErrorAndLog(w, req, http.StatusBadRequest,
		"Loan already exists for mobile number: 4354437687",
		errors.New("loan already exists for 4354437687"))

	assert.NotContains(t, logBuf.String(), "4354437687")
	assert.Contains(t, w.Body.String(), "4354437687", "the client still sees its own number")
}

func TestWithElevatedLogLevel(t *testing.T) {
	opts := responseOptions{}
	WithElevatedLogLevel()(&opts)
	assert.True(t, opts.elevateLogLevel)
}
