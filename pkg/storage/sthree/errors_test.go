package sthree

import (
	stderr "errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"

	"github.com/dsgibbons/lance/pkg/errors"
	"github.com/dsgibbons/lance/pkg/storage/status"
	"github.com/stretchr/testify/assert"
)

func requestFailure(code string, statusCode int) error {
	return awserr.NewRequestFailure(awserr.New(code, "message", nil), statusCode, "req-1")
}

func TestToSentinelErrors(t *testing.T) {
	assert.NoError(t, toSentinelErrors(nil))

	for _, tc := range []struct {
		in       error
		expected error
	}{
		{requestFailure("NotFound", 404), status.ErrNotExists},
		{requestFailure("PreconditionFailed", 412), status.ErrExists},
		{requestFailure("AccessDenied", 403), status.ErrForbidden},
		{requestFailure("Unauthorized", 401), status.ErrUnauthorized},
		{requestFailure("InternalError", 500), status.ErrStorageAPI},
		{awserr.New("NoSuchKey", "message", nil), status.ErrNotExists},
		{awserr.New("PreconditionFailed", "message", nil), status.ErrExists},
		{awserr.New("SomethingElse", "message", nil), status.ErrStorageAPI},
	} {
		err := toSentinelErrors(tc.in)
		assert.Truef(t, errors.Is(err, tc.expected), "expected %v for %v, got %v", tc.expected, tc.in, err)
	}

	// non-AWS errors pass through
	plain := stderr.New("dial tcp: timeout")
	assert.Equal(t, plain, toSentinelErrors(plain))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(requestFailure("NotFound", 404)))
	assert.True(t, isNotFound(awserr.New("NoSuchKey", "message", nil)))
	assert.False(t, isNotFound(requestFailure("InternalError", 500)))
	assert.False(t, isNotFound(stderr.New("other")))
}
