// Package api handles incoming HTTP requests for the accounts, loans and
// cards services. Handlers validate query parameters and bodies, call the
// services in internal/service, and translate their results into
// dto.ResponseDto or dto.ErrorResponseDto bodies. Routing lives in cmd/server.
package api
