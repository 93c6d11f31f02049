// Package store keeps records in goleveldb with per-record generation and expiry.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/allen1211/kvput/pkg/common"
	"github.com/allen1211/kvput/pkg/common/utils"
)

const keySep = "\x00"

type LevelStore struct {
	mu 		sync.Mutex
	db		*leveldb.DB
	path	string

	defaultTTL	map[string]int32
	now			func() time.Time
}

func MakeLevelStore(path string) (*LevelStore, error) {
	options := opt.Options {
		WriteBuffer: 4096 * 1024,
	}
	db, err := leveldb.OpenFile(path, &options)
	if err != nil {
		return nil, err
	}
	return newLevelStore(db, path), nil
}

// OpenMemStore keeps everything in memory; the data is gone after Close.
func OpenMemStore() (*LevelStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return newLevelStore(db, ""), nil
}

func newLevelStore(db *leveldb.DB, path string) *LevelStore {
	return &LevelStore{
		db: db,
		path: path,
		defaultTTL: map[string]int32{},
		now: time.Now,
	}
}

// SetDefaultTTL sets the TTL applied to writes in namespace that leave TTL unset or 0.
// A default of 0 means such records never expire.
func (lvs *LevelStore) SetDefaultTTL(namespace string, ttl int32) {
	lvs.mu.Lock()
	lvs.defaultTTL[namespace] = ttl
	lvs.mu.Unlock()
}

func (lvs *LevelStore) SetClock(now func() time.Time) {
	lvs.mu.Lock()
	lvs.now = now
	lvs.mu.Unlock()
}

func dbKey(key common.Key) ([]byte, error) {
	if key.Namespace == "" || strings.Contains(key.Namespace, keySep) ||
		strings.Contains(key.SetName(), keySep) || strings.Contains(key.UserKey, keySep) {
		return nil, common.ErrParam
	}
	return []byte(key.Namespace + keySep + key.SetName() + keySep + key.UserKey), nil
}

func setPrefix(namespace string, set *string) []byte {
	k := common.NewKey(namespace, set, "")
	return []byte(k.Namespace + keySep + k.SetName() + keySep)
}

// load returns the live entry under k, or nil if there is none or it has expired.
func (lvs *LevelStore) load(k []byte, now int64) (*Entry, error) {
	data, err := lvs.db.Get(k, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	entry := new(Entry)
	if err := utils.MsgpDecode(data, entry); err != nil {
		return nil, err
	}
	if entry.Expired(now) {
		return nil, nil
	}
	return entry, nil
}

func (lvs *LevelStore) voidTime(namespace string, ttl *int32, now int64) (int64, error) {
	var t int32
	if ttl != nil {
		t = *ttl
	}
	if t == 0 {
		t = lvs.defaultTTL[namespace]
		if t == 0 {
			return 0, nil
		}
	}
	switch {
	case t == -1:
		return 0, nil
	case t < -1:
		return 0, common.ErrParam
	default:
		return now + int64(t), nil
	}
}

// Put stores bins under key and returns the record's new generation. When meta.Gen is
// set it must equal the current generation, 0 for a record that does not exist.
func (lvs *LevelStore) Put(key common.Key, bins []byte, meta common.WriteMeta) (uint32, error) {
	k, err := dbKey(key)
	if err != nil {
		return 0, err
	}

	lvs.mu.Lock()
	defer lvs.mu.Unlock()

	now := lvs.now().Unix()
	curr, err := lvs.load(k, now)
	if err != nil {
		return 0, err
	}
	var gen uint32
	if curr != nil {
		gen = curr.Gen
	}
	if meta.Gen != nil && *meta.Gen != gen {
		return 0, common.ErrGeneration
	}

	voidTime, err := lvs.voidTime(key.Namespace, meta.TTL, now)
	if err != nil {
		return 0, err
	}

	entry := &Entry{Gen: gen + 1, VoidTime: voidTime, Bins: bins}
	data, err := utils.MsgpEncode(entry)
	if err != nil {
		return 0, err
	}
	if err := lvs.db.Put(k, data, nil); err != nil {
		return 0, err
	}
	return entry.Gen, nil
}

// Get returns the live entry under key, or common.ErrNoKey.
func (lvs *LevelStore) Get(key common.Key) (*Entry, common.RecordMeta, error) {
	k, err := dbKey(key)
	if err != nil {
		return nil, common.RecordMeta{}, err
	}

	lvs.mu.Lock()
	defer lvs.mu.Unlock()

	now := lvs.now().Unix()
	entry, err := lvs.load(k, now)
	if err != nil {
		return nil, common.RecordMeta{}, err
	}
	if entry == nil {
		return nil, common.RecordMeta{}, common.ErrNoKey
	}
	return entry, common.RecordMeta{Gen: entry.Gen, TTL: entry.TTL(now)}, nil
}

// Count returns the number of live records in namespace and set.
func (lvs *LevelStore) Count(namespace string, set *string) (int, error) {
	lvs.mu.Lock()
	now := lvs.now().Unix()
	lvs.mu.Unlock()

	iter := lvs.db.NewIterator(util.BytesPrefix(setPrefix(namespace, set)), nil)
	defer iter.Release()

	n := 0
	entry := new(Entry)
	for iter.First(); iter.Valid(); iter.Next() {
		if err := utils.MsgpDecode(iter.Value(), entry); err != nil {
			return 0, err
		}
		if !entry.Expired(now) {
			n++
		}
	}
	return n, iter.Error()
}

func (lvs *LevelStore) Close() error {
	return lvs.db.Close()
}
