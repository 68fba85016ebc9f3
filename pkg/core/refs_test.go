package core

import (
	"testing"

	"github.com/dsgibbons/lance/pkg/core/status"
	"github.com/dsgibbons/lance/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidRef(t *testing.T) {
	for _, name := range []string{
		"deeply/nested/ref",
		"nested/ref.extension",
		"ref",
		"ref.extension",
		"ref_with_underscores",
	} {
		assert.NoErrorf(t, CheckValidRef(name), "expected %q to be a valid ref", name)
	}
}

func TestCheckInvalidRef(t *testing.T) {
	for _, name := range []string{
		"",
		"../ref",
		".ref",
		"/ref",
		"@",
		"nested//ref",
		`nested\ref`,
		"ref*",
		"ref.lock",
		"ref/",
		"ref?",
		"ref@{ref",
		"ref[",
		"ref^",
		"~/ref",
		"ref.",
		"ref name",
		"ref:colon",
		"ref\x07bell",
	} {
		err := CheckValidRef(name)
		require.Errorf(t, err, "expected %q to be an invalid ref", name)
		assert.Truef(t, errors.Is(err, status.ErrInvalidRef), "expected an invalid-ref error for %q, got %v", name, err)
	}
}

func TestCheckInvalidRefMessages(t *testing.T) {
	// the violated rule is part of the user-visible message
	err := CheckValidRef("")
	require.EqualError(t, err, "ref cannot be empty")

	err = CheckValidRef("ref.lock")
	require.Contains(t, err.Error(), ".lock")

	err = CheckValidRef("nested//ref")
	require.Contains(t, err.Error(), "slash")
}
