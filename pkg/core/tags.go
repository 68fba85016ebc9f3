package core

import (
	"context"

	"github.com/dsgibbons/lance/pkg/core/status"
	"github.com/dsgibbons/lance/pkg/model"
	"go.uber.org/zap"
)

// Tag operations on a dataset.
//
// A tag is a human-chosen name bound to exactly one committed dataset
// version, analogous to tags in git. Examples: latest, production.
//
// Repointing a tag is deliberately not a single operation: callers delete
// then recreate, and a crash between the two steps leaves the tag absent,
// which is a defined degraded state rather than a corrupting one. None of
// these operations retry on failure: only the caller knows whether retrying
// is safe for its intent.

// ListTags enumerates all tags currently persisted for this dataset.
//
// The listing reflects durable state: mutations in flight from other writers
// may or may not be visible. It does not update the handle's snapshot, see
// RefreshTags.
func (d *Dataset) ListTags(ctx context.Context) (model.TagSet, error) {
	tags, err := d.tagStore().listTags(ctx)
	if err != nil {
		return nil, err
	}
	d.l.Debug("listed tags", zap.String("root", d.root), zap.Int("count", len(tags)))
	return tags, nil
}

// RefreshTags hydrates the handle's tag snapshot from storage and returns it.
func (d *Dataset) RefreshTags(ctx context.Context) (model.TagSet, error) {
	tags, err := d.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	d.installTags(tags)
	return tags, nil
}

// GetTag fetches the persisted contents of one tag.
func (d *Dataset) GetTag(ctx context.Context, name string) (model.TagContents, error) {
	if err := CheckValidRef(name); err != nil {
		return model.TagContents{}, err
	}
	return d.tagStore().readTag(ctx, name)
}

// CreateTag binds a name to a committed dataset version.
//
// The name is validated before any I/O, then the target version is resolved
// against the dataset history, and the record is persisted with an atomic
// create-if-absent write: of two concurrent creators for the same unused
// name, exactly one succeeds and the other observes a ref conflict.
//
// On success the handle's snapshot is replaced by a new TagSet value equal to
// the prior set plus the new entry, and that value is returned.
func (d *Dataset) CreateTag(ctx context.Context, name string, version uint64) (model.TagSet, error) {
	if err := CheckValidRef(name); err != nil {
		return nil, err
	}

	manifestSize, err := d.resolveVersion(ctx, version)
	if err != nil {
		return nil, err
	}

	contents := model.TagContents{
		Version:      version,
		ManifestSize: manifestSize,
	}
	if err := d.tagStore().writeIfAbsent(ctx, name, contents); err != nil {
		return nil, err
	}

	tags := d.updateTags(func(current model.TagSet) model.TagSet {
		return current.With(name, contents)
	})
	d.l.Debug("created tag",
		zap.String("root", d.root),
		zap.String("tag", name),
		zap.Uint64("version", version),
		zap.Uint64("manifestSize", manifestSize))
	return tags, nil
}

// DeleteTag removes the binding for a name.
//
// Deleting a tag that does not exist reports ref-not-found, including when a
// concurrent deleter removed it between the existence check and the delete.
//
// On success the handle's snapshot is replaced by a new TagSet value equal to
// the prior set minus the entry, and that value is returned.
func (d *Dataset) DeleteTag(ctx context.Context, name string) (model.TagSet, error) {
	store := d.tagStore()
	pth := model.GetPathToTag(d.root, name)
	has, err := d.metaStore.Has(ctx, pth)
	if err != nil {
		return nil, wrapped(status.ErrIO, err, "checking tag %q at %q", name, pth)
	}
	if !has {
		return nil, wrapped(status.ErrRefNotFound, nil, "tag %q has no record at %q", name, pth)
	}

	if err := store.deleteTag(ctx, name); err != nil {
		return nil, err
	}

	tags := d.updateTags(func(current model.TagSet) model.TagSet {
		return current.Without(name)
	})
	d.l.Debug("deleted tag", zap.String("root", d.root), zap.String("tag", name))
	return tags, nil
}
