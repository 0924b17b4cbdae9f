package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rpupo63/portfolio-backend/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeBody reads and decodes a JSON request body into dst, then runs
// schema validation. All failures come back as 422 ApiErrs so nothing
// structurally invalid reaches a service.
func decodeBody(r *http.Request, dst any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewMalformedPayloadError(err)
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(dst); err != nil {
		return errs.NewInvalidJSONError(err)
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]
			return errs.NewValidationFieldError(first.Field(), "failed on the '"+first.Tag()+"' rule")
		}
		return errs.NewValidationError(err.Error())
	}

	return nil
}
