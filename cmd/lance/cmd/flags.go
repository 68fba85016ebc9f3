package cmd

import (
	"context"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/spf13/afero"

	"github.com/dsgibbons/lance/pkg/core"
	"github.com/dsgibbons/lance/pkg/dlogger"
	"github.com/dsgibbons/lance/pkg/storage"
	"github.com/dsgibbons/lance/pkg/storage/gcs"
	"github.com/dsgibbons/lance/pkg/storage/localfs"
	"github.com/dsgibbons/lance/pkg/storage/sthree"
)

var (
	datasetLocation string
	logLevel        string

	// flags shared by the tag subcommands
	tagName    string
	tagVersion uint64
)

// bucketAndRoot splits "scheme://bucket/some/root" into bucket and root.
func bucketAndRoot(location string) (string, string) {
	trimmed := strings.SplitN(location, "://", 2)[1]
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// datasetStore resolves the --dataset flag to a store and a root path
// within it.
func datasetStore(ctx context.Context) (storage.Store, string, error) {
	switch {
	case strings.HasPrefix(datasetLocation, "gs://"):
		bucket, root := bucketAndRoot(datasetLocation)
		store, err := gcs.New(ctx, bucket, config.Credential, gcs.Logger(dlogger.MustGetLogger(logLevel)))
		return store, root, err
	case strings.HasPrefix(datasetLocation, "s3://"):
		bucket, root := bucketAndRoot(datasetLocation)
		return sthree.New(sthree.Bucket(bucket)), root, nil
	default:
		return localfs.New(afero.NewBasePathFs(afero.NewOsFs(), datasetLocation)), "", nil
	}
}

// initDataset builds a dataset handle from the persistent flags.
func initDataset(ctx context.Context) (*core.Dataset, error) {
	if datasetLocation == "" {
		logFatalln("--dataset is required (or set a default in the config file)")
	}
	store, root, err := datasetStore(ctx)
	if err != nil {
		return nil, err
	}
	l := dlogger.MustGetLogger(logLevel)
	if logLevel == dlogger.LogLevelDebug {
		store = storage.Instrument(opentracing.GlobalTracer(), l, store)
	}
	return core.NewDataset(
		core.MetaStore(store),
		core.Root(root),
		core.Logger(l),
	), nil
}
