package storage

import (
	"context"
	"io"
	"time"
)

const (
	// NoOverWrite means a Put fails if the object already exists
	NoOverWrite = true

	// OverWrite means a Put replaces any existing object
	OverWrite = false
)

// Store implementations know how to read, write and enumerate objects on
// some path-addressed backend.
//
// Typically this is something file system-like. Examples are S3, GCS, local FS.
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader, bool) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
	KeysPrefix(ctx context.Context, pageToken, prefix, delimiter string, count int) ([]string, string, error)
	Clear(context.Context) error
}

// Attributes of an object on storage, as reported by the backend.
type Attributes struct {
	Created time.Time
	Updated time.Time
	Size    int64
}

// StoreAttributes is the extended interface for backends which can stat an
// object without fetching its content.
type StoreAttributes interface {
	Store
	GetAttr(context.Context, string) (Attributes, error)
}

// StoreGetAt is the extended interface for backends supporting random access
// reads on an object.
type StoreGetAt interface {
	Store
	GetAt(context.Context, string) (io.ReaderAt, error)
}

// PipeIO copies the reader to the writer, returning the number of bytes written
func PipeIO(writer io.Writer, reader io.Reader) (n int64, err error) {
	pr, pw := io.Pipe()
	errC := make(chan error, 1)
	go func() {
		defer pw.Close()
		_, err := io.Copy(pw, reader)
		errC <- err
	}()
	written, err := io.Copy(writer, pr)
	if err != nil {
		// unblock the pumping goroutine before reporting the failure
		_ = pr.CloseWithError(err)
		<-errC
		return 0, err
	}
	if err = <-errC; err != nil {
		return 0, err
	}
	return written, nil
}

// ReadObject fetches a whole object into memory: it stats the object for its
// size when the backend supports it, then reads the full byte range.
func ReadObject(ctx context.Context, store Store, key string) ([]byte, error) {
	if at, ok := store.(StoreGetAt); ok {
		attrStore, sized := store.(StoreAttributes)
		if sized {
			attrs, err := attrStore.GetAttr(ctx, key)
			if err != nil {
				return nil, err
			}
			rdr, err := at.GetAt(ctx, key)
			if err != nil {
				return nil, err
			}
			buffer := make([]byte, attrs.Size)
			if _, err = rdr.ReadAt(buffer, 0); err != nil && err != io.EOF {
				return nil, err
			}
			return buffer, nil
		}
	}
	rdr, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	return io.ReadAll(rdr)
}
