// Package localfs implements datasets on a local file system
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dsgibbons/lance/pkg/storage"
	"github.com/dsgibbons/lance/pkg/storage/status"
	"github.com/spf13/afero"
)

// New creates a new local file system backed storage model
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewBasePathFs(afero.NewOsFs(), filepath.Join(".lance", "objects"))
	}
	return &localFS{
		fs: fs,
	}
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !fi.IsDir(), nil
}

type localReader struct {
	objectReader io.ReadCloser
}

func (r localReader) WriteTo(writer io.Writer) (n int64, err error) {
	return storage.PipeIO(writer, r.objectReader)
}

func (r localReader) Close() error {
	return r.objectReader.Close()
}

func (r localReader) Read(p []byte) (n int, err error) {
	return r.objectReader.Read(p)
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, status.ErrNotExists
	}
	t, err := l.fs.Open(key)
	if err != nil {
		return nil, err
	}
	return localReader{
		objectReader: t,
	}, nil
}

func (l *localFS) GetAt(ctx context.Context, key string) (io.ReaderAt, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, status.ErrNotExists
	}
	return l.fs.Open(key)
}

func (l *localFS) GetAttr(ctx context.Context, key string) (storage.Attributes, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return storage.Attributes{}, status.ErrNotExists
		}
		return storage.Attributes{}, err
	}
	if fi.IsDir() {
		return storage.Attributes{}, status.ErrNotExists
	}
	return storage.Attributes{
		Updated: fi.ModTime(),
		Size:    fi.Size(),
	}, nil
}

func (l *localFS) Put(ctx context.Context, key string, source io.Reader, doesNotExist bool) error {
	dir := filepath.Dir(key)
	if dir != "" {
		if err := l.fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("ensuring directories for %q: %v", key, err)
		}
	}
	flag := os.O_CREATE | os.O_WRONLY | os.O_SYNC
	if doesNotExist {
		// O_EXCL makes create-if-absent atomic at the file system level
		flag |= os.O_EXCL
	} else {
		flag |= os.O_TRUNC
	}
	target, err := l.fs.OpenFile(key, flag, 0600)
	if err != nil {
		if doesNotExist && os.IsExist(err) {
			return status.ErrExists.Wrap(err)
		}
		return fmt.Errorf("create record for %q: %v", key, err)
	}
	if wt, ok := source.(io.WriterTo); ok {
		_, err = wt.WriteTo(target)
	} else {
		_, err = storage.PipeIO(target, source)
	}
	if err != nil {
		_ = target.Close()
		return fmt.Errorf("write record for %q: %v", key, err)
	}
	return target.Close()
}

func (l *localFS) Delete(ctx context.Context, key string) error {
	has, err := l.Has(ctx, key)
	if err != nil {
		return err
	}
	if !has {
		return status.ErrNotExists
	}
	if err := l.fs.Remove(key); err != nil {
		if os.IsNotExist(err) {
			return status.ErrNotExists.Wrap(err)
		}
		return fmt.Errorf("removing %q: %v", key, err)
	}
	return nil
}

func (l *localFS) Keys(ctx context.Context) ([]string, error) {
	const root = "."
	var res []string
	e := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root || info.IsDir() {
			return nil
		}
		res = append(res, filepath.ToSlash(path))
		return nil
	})
	if e != nil {
		return nil, e
	}
	return res, nil
}

// KeysPrefix emulates paged prefix listing on top of a full walk. The page
// token is the last key of the previous page.
func (l *localFS) KeysPrefix(ctx context.Context, pageToken, prefix, delimiter string, count int) ([]string, string, error) {
	if delimiter != "" {
		return nil, "", status.ErrNotSupported
	}
	all, err := l.Keys(ctx)
	if err != nil {
		return nil, "", err
	}
	sort.Strings(all)
	res := make([]string, 0, count)
	for _, k := range all {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if pageToken != "" && k <= pageToken {
			continue
		}
		res = append(res, k)
		if count > 0 && len(res) == count {
			return res, k, nil
		}
	}
	return res, "", nil
}

func (l *localFS) Clear(ctx context.Context) error {
	return l.fs.RemoveAll("/")
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}
