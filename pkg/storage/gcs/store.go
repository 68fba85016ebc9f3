// Package gcs implements datasets on Google Cloud Storage
package gcs

import (
	"context"
	"io"

	gcsStorage "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/dsgibbons/lance/pkg/storage"
	"github.com/dsgibbons/lance/pkg/storage/status"
	"go.uber.org/zap"
)

type gcs struct {
	client         *gcsStorage.Client
	readOnlyClient *gcsStorage.Client
	bucket         string
	l              *zap.Logger
}

// Option to the gcs store
type Option func(*gcs)

// Logger sets a logger on the gcs store
func Logger(l *zap.Logger) Option {
	return func(g *gcs) {
		if l != nil {
			g.l = l
		}
	}
}

// New builds a new storage object from a bucket string
func New(ctx context.Context, bucket string, credentialFile string, opts ...Option) (storage.Store, error) {
	googleStore := new(gcs)
	googleStore.bucket = bucket
	googleStore.l = zap.NewNop()
	for _, apply := range opts {
		apply(googleStore)
	}

	readOnly := []option.ClientOption{option.WithScopes(gcsStorage.ScopeReadOnly)}
	fullControl := []option.ClientOption{option.WithScopes(gcsStorage.ScopeFullControl)}
	if credentialFile != "" {
		readOnly = append(readOnly, option.WithCredentialsFile(credentialFile))
		fullControl = append(fullControl, option.WithCredentialsFile(credentialFile))
	}

	var err error
	googleStore.readOnlyClient, err = gcsStorage.NewClient(ctx, readOnly...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	googleStore.client, err = gcsStorage.NewClient(ctx, fullControl...)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return googleStore, nil
}

func (g *gcs) String() string {
	return "gcs://" + g.bucket
}

func (g *gcs) Has(ctx context.Context, objectName string) (bool, error) {
	_, err := g.readOnlyClient.Bucket(g.bucket).Object(objectName).Attrs(ctx)
	if err != nil {
		if err == gcsStorage.ErrObjectNotExist {
			return false, nil
		}
		return false, toSentinelErrors(err)
	}
	return true, nil
}

func (g *gcs) Get(ctx context.Context, objectName string) (io.ReadCloser, error) {
	objectReader, err := g.readOnlyClient.Bucket(g.bucket).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, toSentinelErrors(err)
	}
	return objectReader, nil
}

// gcsReaderAt adapts ranged reads on an object to io.ReaderAt
type gcsReaderAt struct {
	ctx    context.Context
	object *gcsStorage.ObjectHandle
}

func (r gcsReaderAt) ReadAt(p []byte, offset int64) (int, error) {
	rdr, err := r.object.NewRangeReader(r.ctx, offset, int64(len(p)))
	if err != nil {
		return 0, toSentinelErrors(err)
	}
	defer rdr.Close()
	return io.ReadFull(rdr, p)
}

func (g *gcs) GetAt(ctx context.Context, objectName string) (io.ReaderAt, error) {
	return gcsReaderAt{
		ctx:    ctx,
		object: g.readOnlyClient.Bucket(g.bucket).Object(objectName),
	}, nil
}

func (g *gcs) GetAttr(ctx context.Context, objectName string) (storage.Attributes, error) {
	attrs, err := g.readOnlyClient.Bucket(g.bucket).Object(objectName).Attrs(ctx)
	if err != nil {
		return storage.Attributes{}, toSentinelErrors(err)
	}
	return storage.Attributes{
		Created: attrs.Created,
		Updated: attrs.Updated,
		Size:    attrs.Size,
	}, nil
}

func (g *gcs) Put(ctx context.Context, objectName string, reader io.Reader, doesNotExist bool) error {
	object := g.client.Bucket(g.bucket).Object(objectName)
	if doesNotExist {
		// the generation precondition makes the write an atomic
		// create-if-absent: concurrent writers race server-side and
		// exactly one Close() succeeds
		object = object.If(gcsStorage.Conditions{DoesNotExist: true})
	}
	writer := object.NewWriter(ctx)
	_, err := io.Copy(writer, reader)
	if err != nil {
		_ = writer.Close()
		return toSentinelErrors(err)
	}
	if err = writer.Close(); err != nil {
		g.l.Debug("gcs put failed on close", zap.String("key", objectName), zap.Error(err))
		return toSentinelErrors(err)
	}
	return nil
}

func (g *gcs) Delete(ctx context.Context, objectName string) error {
	return toSentinelErrors(g.client.Bucket(g.bucket).Object(objectName).Delete(ctx))
}

func (g *gcs) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	pageToken := ""
	for {
		ks, next, err := g.KeysPrefix(ctx, pageToken, "", "", defaultPageSize)
		if err != nil {
			return nil, err
		}
		keys = append(keys, ks...)
		if next == "" {
			break
		}
		pageToken = next
	}
	return keys, nil
}

const defaultPageSize = 1000

func (g *gcs) KeysPrefix(ctx context.Context, pageToken, prefix, delimiter string, count int) ([]string, string, error) {
	itr := g.readOnlyClient.Bucket(g.bucket).Objects(ctx, &gcsStorage.Query{
		Prefix:    prefix,
		Delimiter: delimiter,
	})

	objects := make([]*gcsStorage.ObjectAttrs, 0, count)
	pager := iterator.NewPager(itr, count, pageToken)
	next, err := pager.NextPage(&objects)
	if err != nil {
		return nil, "", toSentinelErrors(err)
	}
	keys := make([]string, 0, len(objects))
	for _, attrs := range objects {
		if attrs.Name != "" {
			keys = append(keys, attrs.Name)
		} else if attrs.Prefix != "" {
			keys = append(keys, attrs.Prefix)
		}
	}
	return keys, next, nil
}

func (g *gcs) Clear(context.Context) error {
	return status.ErrNotImplemented
}
