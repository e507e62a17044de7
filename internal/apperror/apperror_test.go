package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{Invalid("bad field %q", "email"), http.StatusBadRequest},
		{NotFound("Order not found"), http.StatusNotFound},
		{Conflict("Email already registered"), http.StatusConflict},
		{Unauthorized("Invalid credentials"), http.StatusUnauthorized},
		{Forbidden("Access forbidden"), http.StatusForbidden},
		{Internal(errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode(), tc.err.Message())
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Internal(cause)

	assert.Equal(t, "Something went wrong", err.Message())
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("fetch order: %w", NotFound("Order not found"))

	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestFrom(t *testing.T) {
	orig := Conflict("Product already exists")
	assert.Same(t, orig, From(orig))

	coerced := From(errors.New("constraint violation"))
	assert.Equal(t, KindInternal, coerced.Kind())
	assert.Equal(t, "Something went wrong", coerced.Message())
}
