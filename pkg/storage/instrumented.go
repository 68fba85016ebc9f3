package storage

import (
	"context"
	"io"
	"strings"

	"github.com/dsgibbons/lance/pkg/storage/status"
	opentracing "github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Instrument decorates a store with tracing spans and debug logging on
// every round trip.
func Instrument(tr opentracing.Tracer, l *zap.Logger, store Store) Store {
	return &instrumentedStore{
		tr:    tr,
		store: store,
		l:     l.With(zap.String("store", store.String())),
	}
}

type instrumentedStore struct {
	store Store
	tr    opentracing.Tracer
	l     *zap.Logger
}

func (i *instrumentedStore) opName(name string) string {
	return strings.Join([]string{"storage", i.String(), name}, ".")
}

func (i *instrumentedStore) spanFromContext(ctx context.Context, name string) opentracing.Span {
	parent := opentracing.SpanFromContext(ctx)
	if parent != nil {
		return i.tr.StartSpan(name, opentracing.ChildOf(parent.Context()))
	}
	return i.tr.StartSpan(name)
}

func (i *instrumentedStore) Has(ctx context.Context, key string) (bool, error) {
	span := i.spanFromContext(ctx, i.opName("Has"))
	defer span.Finish()
	i.l.Debug("storage has", zap.String("key", key))

	return i.store.Has(ctx, key)
}

func (i *instrumentedStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	span := i.spanFromContext(ctx, i.opName("Get"))
	defer span.Finish()
	i.l.Debug("storage get", zap.String("key", key))

	return i.store.Get(ctx, key)
}

func (i *instrumentedStore) Put(ctx context.Context, key string, rdr io.Reader, doesNotExist bool) error {
	span := i.spanFromContext(ctx, i.opName("Put"))
	defer span.Finish()
	i.l.Debug("storage put", zap.String("key", key), zap.Bool("exclusive", doesNotExist))

	return i.store.Put(ctx, key, rdr, doesNotExist)
}

func (i *instrumentedStore) Delete(ctx context.Context, key string) error {
	span := i.spanFromContext(ctx, i.opName("Delete"))
	defer span.Finish()
	i.l.Debug("storage delete", zap.String("key", key))

	return i.store.Delete(ctx, key)
}

func (i *instrumentedStore) Keys(ctx context.Context) ([]string, error) {
	span := i.spanFromContext(ctx, i.opName("Keys"))
	defer span.Finish()
	i.l.Debug("storage keys")

	return i.store.Keys(ctx)
}

func (i *instrumentedStore) KeysPrefix(ctx context.Context, pageToken, prefix, delimiter string, count int) ([]string, string, error) {
	span := i.spanFromContext(ctx, i.opName("KeysPrefix"))
	defer span.Finish()
	i.l.Debug("storage keys with prefix", zap.String("prefix", prefix))

	return i.store.KeysPrefix(ctx, pageToken, prefix, delimiter, count)
}

func (i *instrumentedStore) Clear(ctx context.Context) error {
	span := i.spanFromContext(ctx, i.opName("Clear"))
	defer span.Finish()
	i.l.Debug("storage clear")

	return i.store.Clear(ctx)
}

func (i *instrumentedStore) GetAttr(ctx context.Context, key string) (Attributes, error) {
	span := i.spanFromContext(ctx, i.opName("GetAttr"))
	defer span.Finish()
	i.l.Debug("storage get attributes", zap.String("key", key))

	if attrStore, ok := i.store.(StoreAttributes); ok {
		return attrStore.GetAttr(ctx, key)
	}
	return Attributes{}, status.ErrNotSupported
}

func (i *instrumentedStore) GetAt(ctx context.Context, key string) (io.ReaderAt, error) {
	span := i.spanFromContext(ctx, i.opName("GetAt"))
	defer span.Finish()
	i.l.Debug("storage get offset reader", zap.String("key", key))

	if atStore, ok := i.store.(StoreGetAt); ok {
		return atStore.GetAt(ctx, key)
	}
	return nil, status.ErrNotSupported
}

func (i *instrumentedStore) String() string {
	return i.store.String()
}
