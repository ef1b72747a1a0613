package shared

import (
	"encoding/json"
	"net/http"

	"github.com/phrazzld/eazybank-api/internal/dto"
)

// validate understands the custom transfer-object tags.
var validate = dto.NewValidator()

// DecodeJSON decodes the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates v. A type with its own Validate method is
// trusted to check itself; anything else goes through the struct tags.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}

// ValidateVar validates a single value against a tag, for query parameters.
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
