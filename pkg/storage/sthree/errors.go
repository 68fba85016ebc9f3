package sthree

import (
	"github.com/aws/aws-sdk-go/aws/awserr"

	"github.com/dsgibbons/lance/pkg/storage/status"
)

func isNotFound(err error) bool {
	if rerr, ok := err.(awserr.RequestFailure); ok {
		return rerr.StatusCode() == 404
	}
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == "NotFound" || aerr.Code() == "NoSuchKey"
	}
	return false
}

func toSentinelErrors(err error) error {
	// return sentinel errors defined by the status package
	if err == nil {
		return nil
	}
	if rerr, ok := err.(awserr.RequestFailure); ok {
		switch rerr.StatusCode() {
		case 401:
			return status.ErrUnauthorized.Wrap(err)
		case 403:
			return status.ErrForbidden.Wrap(err)
		case 404:
			return status.ErrNotExists.Wrap(err)
		case 412:
			// precondition failure on an If-None-Match conditional put
			return status.ErrExists.Wrap(err)
		}
		return status.ErrStorageAPI.Wrap(err)
	}
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case "NotFound", "NoSuchKey":
			return status.ErrNotExists.Wrap(err)
		case "PreconditionFailed":
			return status.ErrExists.Wrap(err)
		}
		return status.ErrStorageAPI.Wrap(err)
	}
	return err
}
