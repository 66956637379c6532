package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := NotFound(KindClass, "66e4d7b17a12f9dbf8123abc")

	assert.EqualError(t, err, "class 66e4d7b17a12f9dbf8123abc not found")
	assert.True(t, IsNotFound(err))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, KindClass, nf.Kind)
}

func TestNotFoundWrapped(t *testing.T) {
	err := fmt.Errorf("locating target: %w", NotFound(KindResource, "abc"))
	assert.True(t, IsNotFound(err))
}

func TestInvalidID(t *testing.T) {
	err := InvalidID("zzz")

	assert.EqualError(t, err, `invalid id "zzz"`)
	assert.True(t, IsInvalidID(err))
	assert.False(t, IsNotFound(err))
}

func TestValidation(t *testing.T) {
	err := Validation("unknown role %q", "janitor")

	assert.EqualError(t, err, `unknown role "janitor"`)
	assert.True(t, IsValidation(err))
	assert.False(t, IsInvalidID(err))
}

func TestSentinels(t *testing.T) {
	assert.True(t, errors.Is(fmt.Errorf("sign-up: %w", ErrDuplicateEmail), ErrDuplicateEmail))
	assert.False(t, IsNotFound(ErrInvalidCredentials))
}
