package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrUnwrapsSentinels(t *testing.T) {
	err := NewNotFound("project")

	assert.True(t, IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Contains(t, err.Error(), "project")
}

func TestGetFullErrorIncludesCauses(t *testing.T) {
	cause := errors.New("socket closed")
	err := NewInternalErrorWithCause("store failure", cause)

	full := err.GetFullError()
	assert.Contains(t, full, "store failure")
	assert.Contains(t, full, "socket closed")
}

func TestValidationErrorsAre422(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, NewValidationFieldError("email", "not an email").StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, NewInvalidJSONError(errors.New("bad")).StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, NewMalformedPayloadError(errors.New("bad")).StatusCode)
}

func TestNewDatabaseErrorClassifiesDriverFailures(t *testing.T) {
	notFound := NewDatabaseError("find", "project", errors.New("mongo: no documents in result"))
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)

	connection := NewDatabaseError("find", "projects", errors.New("server selection error: timed out"))
	assert.Equal(t, http.StatusInternalServerError, connection.StatusCode)
	assert.True(t, errors.Is(connection, ErrDatabaseConnection))

	generic := NewDatabaseError("create", "contact", errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
	assert.True(t, errors.Is(generic, ErrDatabaseQuery))
}
