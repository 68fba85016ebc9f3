package gcs

import (
	"strings"

	gcsStorage "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"

	"github.com/dsgibbons/lance/pkg/storage/status"
)

func apiErrors(err *googleapi.Error) error {
	switch err.Code {
	case 400:
		if strings.Contains(err.Body, "bucket is not valid") {
			return status.ErrInvalidResource.Wrap(err)
		}
		return status.ErrStorageAPI.Wrap(err)
	case 401:
		return status.ErrUnauthorized.Wrap(err)
	case 403:
		return status.ErrForbidden.Wrap(err)
	case 404:
		return status.ErrNotFound.Wrap(err)
	case 412:
		// precondition failure on a DoesNotExist conditional write
		return status.ErrExists.Wrap(err)
	default:
		return status.ErrStorageAPI.Wrap(err)
	}
}

func toSentinelErrors(err error) error {
	// return sentinel errors defined by the status package
	if err == nil {
		return nil
	}
	if err == gcsStorage.ErrObjectNotExist {
		return status.ErrNotExists.Wrap(err)
	}
	if typedErr, isGoogle := err.(*googleapi.Error); isGoogle {
		return apiErrors(typedErr)
	}
	if strings.Contains(err.Error(), "object doesn't exist") {
		return status.ErrNotExists.Wrap(err)
	}
	if strings.Contains(err.Error(), "conditionNotMet") || strings.Contains(err.Error(), "Precondition Failed") {
		return status.ErrExists.Wrap(err)
	}
	return err
}
