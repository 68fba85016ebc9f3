package gcs

import (
	"testing"

	gcsStorage "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"

	"github.com/dsgibbons/lance/pkg/errors"
	"github.com/dsgibbons/lance/pkg/storage/status"
	"github.com/stretchr/testify/assert"
)

func TestToSentinelErrors(t *testing.T) {
	assert.NoError(t, toSentinelErrors(nil))

	assert.True(t, errors.Is(
		toSentinelErrors(gcsStorage.ErrObjectNotExist),
		status.ErrNotExists))

	for code, expected := range map[int]error{
		401: status.ErrUnauthorized,
		403: status.ErrForbidden,
		404: status.ErrNotFound,
		412: status.ErrExists,
		500: status.ErrStorageAPI,
	} {
		err := toSentinelErrors(&googleapi.Error{Code: code})
		assert.Truef(t, errors.Is(err, expected), "expected %v for code %d, got %v", expected, code, err)
	}

	err := toSentinelErrors(&googleapi.Error{Code: 400, Body: "the bucket is not valid"})
	assert.True(t, errors.Is(err, status.ErrInvalidResource))
}
