package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/dsgibbons/lance/pkg/core/status"
	"github.com/dsgibbons/lance/pkg/errors"
	"github.com/dsgibbons/lance/pkg/model"
	"github.com/dsgibbons/lance/pkg/storage"
	storagestatus "github.com/dsgibbons/lance/pkg/storage/status"
)

const maxTagsPerPage = 1000

// wrapped produces a descriptive error carrying one of the taxonomy
// sentinels, so callers can branch with errors.Is while humans still get the
// resource identifier.
func wrapped(sentinel *errors.Error, cause error, format string, args ...interface{}) error {
	return errors.New(fmt.Sprintf(format, args...)).Wrap(sentinel.Wrap(cause))
}

// tagStore is the persistence adapter for tag records: it maps tag names to
// paths under a dataset root and performs point reads, conditional writes,
// deletes and enumeration against the backing object store.
type tagStore struct {
	store storage.Store
	root  string
}

// readTag fetches and decodes one tag object with a whole-object read.
func (t tagStore) readTag(ctx context.Context, name string) (model.TagContents, error) {
	pth := model.GetPathToTag(t.root, name)
	buffer, err := storage.ReadObject(ctx, t.store, pth)
	if err != nil {
		if errors.Is(err, storagestatus.ErrNotExists) || errors.Is(err, storagestatus.ErrNotFound) {
			return model.TagContents{}, wrapped(status.ErrRefNotFound, err, "tag %q has no record at %q", name, pth)
		}
		return model.TagContents{}, wrapped(status.ErrIO, err, "reading tag %q at %q", name, pth)
	}
	var contents model.TagContents
	if !utf8.Valid(buffer) {
		return model.TagContents{}, wrapped(status.ErrParse, nil, "tag object at %q is not valid UTF-8", pth)
	}
	if err := json.Unmarshal(buffer, &contents); err != nil {
		return model.TagContents{}, wrapped(status.ErrParse, err, "tag object at %q is not a valid tag record", pth)
	}
	return contents, nil
}

// listTags enumerates every tag object under the tags prefix and decodes
// each one. A decode failure aborts the whole enumeration.
func (t tagStore) listTags(ctx context.Context) (model.TagSet, error) {
	prefix := model.GetPathPrefixToTags(t.root)
	tags := make(model.TagSet)
	pageToken := ""
	for {
		keys, next, err := t.store.KeysPrefix(ctx, pageToken, prefix, "", maxTagsPerPage)
		if err != nil {
			return nil, wrapped(status.ErrIO, err, "enumerating tags under %q", prefix)
		}
		for _, key := range keys {
			name, err := model.TagNameFromPath(t.root, key)
			if err != nil {
				return nil, wrapped(status.ErrParse, err, "unexpected object under tags prefix %q", prefix)
			}
			contents, err := t.readTag(ctx, name)
			if err != nil {
				// a concurrent deleter may have removed the object
				// between enumeration and read
				if errors.Is(err, status.ErrRefNotFound) {
					continue
				}
				return nil, err
			}
			tags[name] = contents
		}
		if next == "" {
			break
		}
		pageToken = next
	}
	return tags, nil
}

// writeIfAbsent persists a tag record with an atomic create-if-absent write.
// An existing record surfaces as a ref conflict.
func (t tagStore) writeIfAbsent(ctx context.Context, name string, contents model.TagContents) error {
	pth := model.GetPathToTag(t.root, name)
	buffer, err := json.Marshal(contents)
	if err != nil {
		return wrapped(status.ErrIO, err, "serializing tag %q", name)
	}
	if err := t.store.Put(ctx, pth, bytes.NewReader(buffer), storage.NoOverWrite); err != nil {
		if errors.Is(err, storagestatus.ErrExists) {
			return wrapped(status.ErrRefConflict, err, "tag %q already exists at %q", name, pth)
		}
		return wrapped(status.ErrIO, err, "writing tag %q at %q", name, pth)
	}
	return nil
}

// deleteTag removes a tag record. A missing record surfaces as ref-not-found,
// including when a concurrent deleter got there first.
func (t tagStore) deleteTag(ctx context.Context, name string) error {
	pth := model.GetPathToTag(t.root, name)
	if err := t.store.Delete(ctx, pth); err != nil {
		if errors.Is(err, storagestatus.ErrNotExists) || errors.Is(err, storagestatus.ErrNotFound) {
			return wrapped(status.ErrRefNotFound, err, "tag %q has no record at %q", name, pth)
		}
		return wrapped(status.ErrIO, err, "deleting tag %q at %q", name, pth)
	}
	return nil
}
