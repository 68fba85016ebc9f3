package core

import (
	"github.com/dsgibbons/lance/pkg/storage"
	"go.uber.org/zap"
)

// DatasetOption sets options on a dataset handle
type DatasetOption func(*Dataset)

// MetaStore sets the metadata store backing the dataset
func MetaStore(store storage.Store) DatasetOption {
	return func(d *Dataset) {
		d.metaStore = store
	}
}

// Root sets the dataset root path within the metadata store
func Root(root string) DatasetOption {
	return func(d *Dataset) {
		d.root = root
	}
}

// Logger sets a logger on the dataset handle
func Logger(l *zap.Logger) DatasetOption {
	return func(d *Dataset) {
		if l != nil {
			d.l = l
		}
	}
}
