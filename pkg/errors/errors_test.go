package errors

import (
	stderr "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	sentinel := New("some sentinel")
	cause := stderr.New("root cause")

	wrapped := sentinel.Wrap(cause)
	require.NotNil(t, wrapped)
	assert.Equal(t, "some sentinel", wrapped.Error())
	assert.Equal(t, cause, wrapped.Unwrap())

	// wrapping must not mutate the sentinel
	assert.Nil(t, sentinel.Unwrap())
}

func TestIs(t *testing.T) {
	sentinel := New("some sentinel")
	cause := stderr.New("root cause")

	wrapped := sentinel.Wrap(cause)
	assert.True(t, stderr.Is(wrapped, sentinel))
	assert.True(t, stderr.Is(wrapped, cause))
	assert.False(t, stderr.Is(wrapped, New("some other sentinel")))

	// descriptive outer error carrying a sentinel
	outer := New("tag \"v1\" already exists").Wrap(sentinel.Wrap(cause))
	assert.True(t, stderr.Is(outer, sentinel))
	assert.True(t, stderr.Is(outer, cause))
	assert.Equal(t, "tag \"v1\" already exists", outer.Error())
}

func TestInteropWithStdWrapping(t *testing.T) {
	sentinel := New("some sentinel")
	err := fmt.Errorf("extra context: %w", sentinel.Wrap(stderr.New("cause")))
	assert.True(t, Is(err, sentinel))

	var asErr *Error
	require.True(t, As(err, &asErr))
	assert.Equal(t, "some sentinel", asErr.Error())
}

func TestNilReceiver(t *testing.T) {
	var e *Error
	assert.Nil(t, e.Wrap(stderr.New("x")))
	assert.Nil(t, e.Unwrap())
}
