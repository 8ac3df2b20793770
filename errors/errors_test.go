// nolint:forbidigo,depguard // This test file needs the standard errors package for testing the custom errors package
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomError(t *testing.T) {
	err := New(ERR_NOT_FOUND, "checkpoint not found")
	require.NotNil(t, err)
	require.Equal(t, ERR_NOT_FOUND, err.code)
	require.Equal(t, "checkpoint not found", err.message)

	secondErr := New(ERR_INVALID_ARGUMENT, "[Checkpoints][%s] bad table: ", "main", err)
	thirdErr := New(ERR_CONFIGURATION_INTEGRITY, "[Genesis][%s] mismatch: ", "main", secondErr)
	anotherErr := New(ERR_CONFIGURATION_INTEGRITY, "another integrity failure")
	fourthErr := New(ERR_PROCESSING, "older error: ", thirdErr)
	fifthErr := New(ERR_INVALID_NETWORK_SELECTION, "selection failed", fourthErr)

	require.True(t, anotherErr.Is(thirdErr))
	require.True(t, fourthErr.Is(New(ERR_CONFIGURATION_INTEGRITY, "")))
	require.True(t, fourthErr.Is(ErrConfigurationIntegrity))

	require.True(t, fourthErr.Is(err))
	require.True(t, fifthErr.Is(thirdErr))
	require.True(t, fifthErr.Is(err))

	require.False(t, anotherErr.Is(fourthErr))
	require.False(t, fifthErr.Is(ErrConfiguration))
}

func TestNewFormatsParams(t *testing.T) {
	err := New(ERR_INVALID_ARGUMENT, "height %d is below %d", 5, 10)
	require.Equal(t, "height 5 is below 10", err.Message())
	require.Nil(t, err.WrappedErr())
}

func TestNewWithUnknownCode(t *testing.T) {
	err := New(ERR(999), "whatever")
	require.Equal(t, "invalid error code", err.Message())
	require.Equal(t, ERR(999), err.Code())
}

func TestFmtErrorCustomError(t *testing.T) {
	err := New(ERR_NOT_FOUND, "resource not found")

	fmtError := fmt.Errorf("error: %w", err)
	secondErr := New(ERR_INVALID_ARGUMENT, "[Select][%s] failed: ", "test", fmtError)

	// a fmt wrapped error loses its code when wrapped again
	require.False(t, secondErr.Is(err))

	altErr := New(ERR_INVALID_ARGUMENT, "invalid argument", err)
	require.True(t, secondErr.Is(altErr))
}

func TestErrorIsStandardError(t *testing.T) {
	stdErr := fmt.Errorf("cannot decode hex")
	err := NewProcessingError("failed to parse public key", stdErr)

	require.True(t, Is(err, stdErr))
	require.True(t, Is(err, ErrProcessing))
	require.False(t, Is(err, ErrConfiguration))
}

func TestErrorString(t *testing.T) {
	err := New(ERR_CONFIGURATION, "rpc password missing")
	assert.Equal(t, "Error: CONFIGURATION (error code: 5), Message: rpc password missing", err.Error())

	wrapped := New(ERR_INVALID_NETWORK_SELECTION, "outer", err)
	assert.Contains(t, wrapped.Error(), "Wrapped err: Error: CONFIGURATION")

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Equal(t, ERR_UNKNOWN, nilErr.Code())
	assert.Equal(t, "", nilErr.Message())
	assert.Nil(t, nilErr.Unwrap())
}

func TestErrorData(t *testing.T) {
	err := NewConfigurationIntegrityError("genesis hash mismatch for %s", "main")
	err.SetData("network", "main")
	err.SetData("expected", "b4e5b279")

	require.Equal(t, "main", err.GetData("network"))
	require.Equal(t, "b4e5b279", err.GetData("expected"))
	require.Nil(t, err.GetData("missing"))
	require.Contains(t, err.Error(), "network:main")

	encoded := err.Data().EncodeErrorData()
	require.JSONEq(t, `{"network":"main","expected":"b4e5b279"}`, string(encoded))

	var data *ErrData
	require.True(t, AsData(New(ERR_PROCESSING, "outer", err), &data))
	require.Equal(t, "main", data.GetData("network"))
}

func TestAs(t *testing.T) {
	inner := NewInvalidNetworkSelectionError("unknown network kind 9")
	outer := fmt.Errorf("startup: %w", inner)

	var tErr *Error
	require.True(t, As(outer, &tErr))
	require.Equal(t, ERR_INVALID_NETWORK_SELECTION, tErr.Code())

	require.True(t, errors.Is(outer, ErrInvalidNetworkSelection))
}

func TestJoin(t *testing.T) {
	require.Nil(t, Join(nil, nil))

	err := Join(NewNotFoundError("a"), nil, NewConfigurationError("b"))
	require.Contains(t, err.Error(), "Message: a, ")
	require.Contains(t, err.Error(), "Message: b")
}

func TestERRString(t *testing.T) {
	assert.Equal(t, "CONFIGURATION_INTEGRITY", ERR_CONFIGURATION_INTEGRITY.String())
	assert.Equal(t, "42", ERR(42).String())
	assert.Equal(t, ERR_NOT_FOUND, *ERR_NOT_FOUND.Enum())

	for value, name := range ERR_name {
		assert.Equal(t, value, ERR_value[name])
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		fatal         bool
		configuration bool
	}{
		{"nil", nil, false, false},
		{"integrity", NewConfigurationIntegrityError("bad genesis"), true, false},
		{"selection", NewInvalidNetworkSelectionError("not selected"), true, false},
		{"wrapped selection", fmt.Errorf("boot: %w", NewInvalidNetworkSelectionError("x")), true, false},
		{"configuration", NewConfigurationError("no rpc password"), false, true},
		{"plain", fmt.Errorf("plain"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fatal, IsFatalConfigurationError(tt.err))
			assert.Equal(t, tt.configuration, IsConfigurationError(tt.err))
		})
	}
}
