package localfs

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/dsgibbons/lance/pkg/errors"
	"github.com/dsgibbons/lance/pkg/storage"
	"github.com/dsgibbons/lance/pkg/storage/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) storage.Store {
	t.Helper()
	fs := afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())
	bs := New(fs)

	ctx := context.Background()
	require.NoError(t, bs.Put(ctx, "sixteentons", strings.NewReader("this is the text"), storage.OverWrite))
	require.NoError(t, bs.Put(ctx, "nested/seventeentons", strings.NewReader("this is the text for another thing"), storage.OverWrite))
	return bs
}

func TestHas(t *testing.T) {
	bs := setupStore(t)

	has, err := bs.Has(context.Background(), "sixteentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "nested/seventeentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "fifteentons")
	require.NoError(t, err)
	require.False(t, has)
}

func TestGet(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))

	_, err = bs.Get(context.Background(), "fifteentons")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotExists))
}

// openFailFs stats fine but refuses to open, like a permission change
// between the two calls.
type openFailFs struct {
	afero.Fs
	err error
}

func (f openFailFs) Open(_ string) (afero.File, error) {
	return nil, f.err
}

func TestGetOpenFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "sixteentons", []byte("this is the text"), 0600))
	bs := New(openFailFs{Fs: fs, err: os.ErrPermission})

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))
	// no half-built reader alongside the error
	assert.Nil(t, rdr)
}

func TestGetAt(t *testing.T) {
	bs := setupStore(t)

	rdr, err := bs.(storage.StoreGetAt).GetAt(context.Background(), "sixteentons")
	require.NoError(t, err)
	buffer := make([]byte, 4)
	_, err = rdr.ReadAt(buffer, 8)
	require.NoError(t, err)
	assert.Equal(t, "the ", string(buffer))
}

func TestGetAttr(t *testing.T) {
	bs := setupStore(t)

	attrs, err := bs.(storage.StoreAttributes).GetAttr(context.Background(), "sixteentons")
	require.NoError(t, err)
	assert.EqualValues(t, len("this is the text"), attrs.Size)

	_, err = bs.(storage.StoreAttributes).GetAttr(context.Background(), "fifteentons")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotExists))
}

func TestPutExclusive(t *testing.T) {
	bs := setupStore(t)
	ctx := context.Background()

	content := bytes.NewBufferString("here is some more text")
	require.NoError(t, bs.Put(ctx, "eighteentons", content, storage.NoOverWrite))

	// second exclusive put on the same key fails distinguishably
	err := bs.Put(ctx, "eighteentons", bytes.NewBufferString("stomp"), storage.NoOverWrite)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrExists), "expected exists-already, got %v", err)

	// the original content is intact
	rdr, err := bs.Get(ctx, "eighteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	assert.Equal(t, "here is some more text", string(b))

	// non-exclusive put still overwrites
	require.NoError(t, bs.Put(ctx, "eighteentons", bytes.NewBufferString("replaced"), storage.OverWrite))
}

func TestDelete(t *testing.T) {
	bs := setupStore(t)
	ctx := context.Background()

	require.NoError(t, bs.Delete(ctx, "sixteentons"))

	err := bs.Delete(ctx, "sixteentons")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotExists), "expected not-exists, got %v", err)
}

func TestKeys(t *testing.T) {
	bs := setupStore(t)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Contains(t, keys, "sixteentons")
	assert.Contains(t, keys, "nested/seventeentons")
}

func TestKeysPrefix(t *testing.T) {
	bs := setupStore(t)
	ctx := context.Background()

	for _, key := range []string{"pre/a", "pre/b", "pre/c", "other/x"} {
		require.NoError(t, bs.Put(ctx, key, strings.NewReader(key), storage.OverWrite))
	}

	keys, next, err := bs.KeysPrefix(ctx, "", "pre/", "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"pre/a", "pre/b"}, keys)
	require.NotEmpty(t, next)

	keys, next, err = bs.KeysPrefix(ctx, next, "pre/", "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"pre/c"}, keys)
	assert.Empty(t, next)
}

func TestReadObject(t *testing.T) {
	bs := setupStore(t)

	b, err := storage.ReadObject(context.Background(), bs, "sixteentons")
	require.NoError(t, err)
	assert.Equal(t, "this is the text", string(b))
}
