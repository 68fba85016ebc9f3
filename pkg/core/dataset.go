package core

import (
	"context"
	"sync/atomic"

	"github.com/dsgibbons/lance/pkg/core/status"
	"github.com/dsgibbons/lance/pkg/errors"
	"github.com/dsgibbons/lance/pkg/model"
	"github.com/dsgibbons/lance/pkg/storage"
	storagestatus "github.com/dsgibbons/lance/pkg/storage/status"
	"go.uber.org/zap"
)

// Dataset is a handle on one dataset root within a metadata store.
//
// The handle owns the current tag snapshot: successful tag mutations build a
// brand-new TagSet value and install it with an atomic compare-and-swap, so a
// reader either sees the previous snapshot or the next one, never a partial
// update, and concurrent mutations of distinct names all land in the
// installed set. No in-process lock serializes tag operations: correctness
// under concurrent creators of the same name is delegated to the backing
// store's create-if-absent primitive.
type Dataset struct {
	metaStore storage.Store
	root      string
	l         *zap.Logger
	tags      atomic.Pointer[model.TagSet]
}

// NewDataset builds a dataset handle with options
func NewDataset(opts ...DatasetOption) *Dataset {
	d := &Dataset{
		l: zap.NewNop(),
	}
	for _, apply := range opts {
		apply(d)
	}
	empty := make(model.TagSet)
	d.tags.Store(&empty)
	return d
}

// MetaStore yields the metadata store backing this dataset
func (d *Dataset) MetaStore() storage.Store {
	return d.metaStore
}

// Root yields the dataset root path within the metadata store
func (d *Dataset) Root() string {
	return d.root
}

// Tags returns the current tag snapshot without touching storage.
func (d *Dataset) Tags() model.TagSet {
	return *d.tags.Load()
}

// installTags replaces the snapshot wholesale, for hydration from durable
// state.
func (d *Dataset) installTags(tags model.TagSet) {
	d.tags.Store(&tags)
}

// updateTags derives the next snapshot from the current one and installs it
// with a compare-and-swap, retrying on contention so concurrent mutations of
// distinct names all survive in the installed set.
func (d *Dataset) updateTags(apply func(model.TagSet) model.TagSet) model.TagSet {
	for {
		current := d.tags.Load()
		next := apply(*current)
		if d.tags.CompareAndSwap(current, &next) {
			return next
		}
	}
}

func (d *Dataset) tagStore() tagStore {
	return tagStore{store: d.metaStore, root: d.root}
}

// resolveVersion resolves a committed version to the byte size of its
// manifest, or reports that the version does not exist in this dataset's
// history.
func (d *Dataset) resolveVersion(ctx context.Context, version uint64) (uint64, error) {
	pth := model.GetPathToManifest(d.root, version)
	if attrStore, ok := d.metaStore.(storage.StoreAttributes); ok {
		attrs, err := attrStore.GetAttr(ctx, pth)
		if err != nil {
			return 0, d.versionLookupError(version, pth, err)
		}
		return uint64(attrs.Size), nil
	}
	buffer, err := storage.ReadObject(ctx, d.metaStore, pth)
	if err != nil {
		return 0, d.versionLookupError(version, pth, err)
	}
	return uint64(len(buffer)), nil
}

func (d *Dataset) versionLookupError(version uint64, pth string, err error) error {
	if errors.Is(err, storagestatus.ErrNotExists) || errors.Is(err, storagestatus.ErrNotFound) {
		return wrapped(status.ErrVersionNotFound, err, "version %d is not in the dataset history (no manifest at %q)", version, pth)
	}
	return wrapped(status.ErrIO, err, "resolving version %d at %q", version, pth)
}
