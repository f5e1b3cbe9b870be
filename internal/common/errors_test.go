package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid argument", InvalidArgumentError("bad input"), codes.InvalidArgument, "bad input"},
		{"invalid argument formatted", InvalidArgumentErrorf("row %d is bad", 7), codes.InvalidArgument, "row 7 is bad"},
		{"not found", NotFoundError("no such job"), codes.NotFound, "no such job"},
		{"internal", InternalError("boom"), codes.Internal, "boom"},
		{"internal formatted", InternalErrorf("stage %s failed", "drawings"), codes.Internal, "stage drawings failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	assert.Contains(t, err.Error(), "CONFIG_ERROR")
	assert.Contains(t, err.Error(), "DB_URL is required")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	cause := errors.New("connection refused")
	wrapped := WrapError(cause, "open database")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "open database")
}
