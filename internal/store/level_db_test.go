package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allen1211/kvput/pkg/common"
)

func strp(s string) *string { return &s }
func i32p(i int32) *int32   { return &i }
func u32p(u uint32) *uint32 { return &u }

func makeMemStore(t *testing.T) (*LevelStore, *time.Time) {
	lvs, err := OpenMemStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = lvs.Close() })

	now := time.Unix(1_700_000_000, 0)
	lvs.SetClock(func() time.Time { return now })
	return lvs, &now
}

func TestPutGetGeneration(t *testing.T) {
	lvs, _ := makeMemStore(t)
	key := common.NewKey("test", strp("demo"), "k1")

	gen, err := lvs.Put(key, []byte("v1"), common.WriteMeta{})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), gen)

	gen, err = lvs.Put(key, []byte("v2"), common.WriteMeta{})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), gen)

	entry, meta, err := lvs.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), entry.Bins)
	assert.Equal(t, uint32(2), meta.Gen)
	assert.Equal(t, int32(-1), meta.TTL)
}

func TestPutGenerationCheck(t *testing.T) {
	lvs, _ := makeMemStore(t)
	key := common.NewKey("test", strp("demo"), "k1")

	_, err := lvs.Put(key, []byte("v"), common.WriteMeta{Gen: u32p(1)})
	assert.Equal(t, common.ErrGeneration, err)

	gen, err := lvs.Put(key, []byte("v"), common.WriteMeta{Gen: u32p(0)})
	require.NoError(t, err)
	require.Equal(t, uint32(1), gen)

	_, err = lvs.Put(key, []byte("v"), common.WriteMeta{Gen: u32p(5)})
	assert.Equal(t, common.ErrGeneration, err)

	gen, err = lvs.Put(key, []byte("v"), common.WriteMeta{Gen: u32p(1)})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), gen)
}

func TestGetMissing(t *testing.T) {
	lvs, _ := makeMemStore(t)
	_, _, err := lvs.Get(common.NewKey("test", nil, "nope"))
	assert.Equal(t, common.ErrNoKey, err)
}

func TestTTLExpiry(t *testing.T) {
	lvs, now := makeMemStore(t)
	key := common.NewKey("test", strp("demo"), "short")

	_, err := lvs.Put(key, []byte("v"), common.WriteMeta{TTL: i32p(10)})
	require.NoError(t, err)

	_, meta, err := lvs.Get(key)
	require.NoError(t, err)
	assert.Equal(t, int32(10), meta.TTL)

	*now = now.Add(9 * time.Second)
	_, meta, err = lvs.Get(key)
	require.NoError(t, err)
	assert.Equal(t, int32(1), meta.TTL)

	*now = now.Add(time.Second)
	_, _, err = lvs.Get(key)
	assert.Equal(t, common.ErrNoKey, err)

	// an expired record starts again from generation 1
	gen, err := lvs.Put(key, []byte("v"), common.WriteMeta{})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), gen)
}

func TestDefaultTTL(t *testing.T) {
	lvs, _ := makeMemStore(t)
	lvs.SetDefaultTTL("test", 60)
	key := common.NewKey("test", nil, "k")

	_, err := lvs.Put(key, []byte("v"), common.WriteMeta{})
	require.NoError(t, err)
	_, meta, err := lvs.Get(key)
	require.NoError(t, err)
	assert.Equal(t, int32(60), meta.TTL)

	_, err = lvs.Put(key, []byte("v"), common.WriteMeta{TTL: i32p(-1)})
	require.NoError(t, err)
	_, meta, err = lvs.Get(key)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), meta.TTL)

	_, err = lvs.Put(key, []byte("v"), common.WriteMeta{TTL: i32p(-2)})
	assert.Equal(t, common.ErrParam, err)
}

func TestInvalidKey(t *testing.T) {
	lvs, _ := makeMemStore(t)
	_, err := lvs.Put(common.NewKey("", nil, "k"), []byte("v"), common.WriteMeta{})
	assert.Equal(t, common.ErrParam, err)
	_, err = lvs.Put(common.NewKey("test", strp("a\x00b"), "k"), []byte("v"), common.WriteMeta{})
	assert.Equal(t, common.ErrParam, err)
}

func TestCount(t *testing.T) {
	lvs, now := makeMemStore(t)
	for i := 0; i < 5; i++ {
		_, err := lvs.Put(common.NewKey("test", strp("demo"), string(rune('a'+i))), []byte("v"), common.WriteMeta{})
		require.NoError(t, err)
	}
	_, err := lvs.Put(common.NewKey("test", strp("demo2"), "x"), []byte("v"), common.WriteMeta{})
	require.NoError(t, err)
	_, err = lvs.Put(common.NewKey("test", nil, "y"), []byte("v"), common.WriteMeta{})
	require.NoError(t, err)
	_, err = lvs.Put(common.NewKey("test", strp("demo"), "ttl"), []byte("v"), common.WriteMeta{TTL: i32p(1)})
	require.NoError(t, err)

	n, err := lvs.Count("test", strp("demo"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	*now = now.Add(time.Minute)
	n, err = lvs.Count("test", strp("demo"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = lvs.Count("test", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLevelStoreReopen(t *testing.T) {
	dir := t.TempDir()
	key := common.NewKey("test", strp("demo"), "persisted")

	lvs, err := MakeLevelStore(dir)
	require.NoError(t, err)
	_, err = lvs.Put(key, []byte("v"), common.WriteMeta{})
	require.NoError(t, err)
	require.NoError(t, lvs.Close())

	lvs, err = MakeLevelStore(dir)
	require.NoError(t, err)
	defer lvs.Close()
	entry, meta, err := lvs.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), entry.Bins)
	assert.Equal(t, uint32(1), meta.Gen)
}
