package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config file not found", "Run 'padd init' to create one")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Contains(t, err.Error(), "✗ Config file not found")
	assert.Contains(t, err.Error(), "Run 'padd init' to create one")
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "Failed to reach Pi-hole")

	assert.Equal(t, ErrAPI, err.Code)
	assert.Contains(t, err.Error(), "Failed to reach Pi-hole")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("no such file")
	err := WrapWithCode(cause, ErrRender, "Missing font asset", "Reinstall the fonts directory")

	assert.Equal(t, ErrRender, err.Code)
	assert.Contains(t, err.Error(), "Missing font asset")
	assert.Contains(t, err.Error(), "no such file")
	assert.Contains(t, err.Error(), "Reinstall the fonts directory")
}

func TestIsCode(t *testing.T) {
	err := New(ErrDisplay, "Panel refresh failed", "")

	assert.True(t, IsCode(err, ErrDisplay))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrDisplay))
	assert.False(t, IsCode(errors.New("plain"), ErrDisplay))
}

func TestIsCode_Wrapped(t *testing.T) {
	inner := New(ErrAPI, "Stats fetch failed", "")
	outer := WrapWithCode(inner, ErrDisplay, "Redraw aborted", "")

	// errors.As finds the outermost structured error
	assert.True(t, IsCode(outer, ErrDisplay))
}
