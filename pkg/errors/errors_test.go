package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config")

	assert.Equal(t, ErrCodeConfigInvalid, err.Code)
	assert.Equal(t, SeverityError, err.Severity)
	assert.Contains(t, err.Error(), "MHGE2002")
	assert.Contains(t, err.Error(), "bad config")
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, ErrCodeFileOperation, "write failed")

	require.NotNil(t, err)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "disk full")

	assert.Nil(t, Wrap(nil, ErrCodeFileOperation, "nothing"))
}

func TestWrapInheritsContext(t *testing.T) {
	inner := New(ErrCodeDerivation, "bad value").WithContext("patient_id", "PAT_000001")
	outer := Wrap(inner, ErrCodeInternal, "generation failed")

	assert.Equal(t, "PAT_000001", outer.Context["patient_id"])
}

func TestIsComparesByCode(t *testing.T) {
	err := New(ErrCodeValidationFailed, "one message")
	target := New(ErrCodeValidationFailed, "another message")

	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(err, New(ErrCodeInternal, "other")))
}

func TestConstructors(t *testing.T) {
	cfgErr := ConfigError("patient count must be positive", "patients")
	assert.Equal(t, ErrCodeConfigInvalid, cfgErr.Code)
	assert.Equal(t, SeverityCritical, cfgErr.Severity)
	assert.Equal(t, "patients", cfgErr.Context["field"])

	derivErr := DerivationError("age out of bounds", 72)
	assert.Equal(t, ErrCodeDerivation, derivErr.Code)
	assert.Equal(t, 72, derivErr.Context["value"])

	fileErr := FileError("cannot create", "/tmp/x", fmt.Errorf("permission denied"))
	assert.Equal(t, ErrCodeFileOperation, fileErr.Code)
	assert.Equal(t, "/tmp/x", fileErr.Context["path"])
}
