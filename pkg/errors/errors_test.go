// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/cmdhelp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_argument_error",
			code:    errors.ErrInvalidArgument,
			message: "command must not be nil",
			wantStr: "[INVALID_ARGUMENT] command must not be nil",
		},
		{
			name:    "unknown_section_error",
			code:    errors.ErrUnknownSection,
			message: "no section named footer",
			wantStr: "[UNKNOWN_SECTION] no section named footer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrCommandNotFound, "no command %q under %s", "inner", "outer")
	assert.Equal(t, `no command "inner" under outer`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrWrite, "writing help")

		assert.Equal(t, errors.ErrWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[WRITE] writing help: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTreeParse, "bad arity").
		WithDetail("path", "/tmp/tree.yaml").
		WithDetail("value", "2..1")

	assert.Equal(t, "/tmp/tree.yaml", err.Details["path"])
	assert.Equal(t, "2..1", errors.GetErrorDetails(err)["value"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidArgument, "error 1")
	err2 := errors.New(errors.ErrInvalidArgument, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrUnsupportedSymbol, "x"), errors.ErrUnsupportedSymbol, true},
		{"different_code", errors.New(errors.ErrUnsupportedSymbol, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrConfigLoad, "load"), errors.ErrConfigLoad, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrInternal, false},
		{"nil_error", nil, errors.ErrInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrTopicLoad, errors.GetErrorCode(errors.New(errors.ErrTopicLoad, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrTreeLoad, "cannot read tree file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var inner *errors.Error
	require.True(t, stderrors.As(configErr.Unwrap(), &inner))
	assert.Equal(t, errors.ErrTreeLoad, inner.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
