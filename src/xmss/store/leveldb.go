// MIT License
//
// Copyright (c) 2024 sphinx-core
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// go/src/xmss/store/leveldb.go
package store

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// counterKey is the single key under which LevelDBStore keeps the
// next-unused-leaf-index counter. One LevelDBStore instance backs
// exactly one XMSS private key, so no further namespacing is needed.
var counterKey = []byte("xmss/next-leaf-index")

// LevelDBStore durably reserves leaf indices: ReserveUnusedLeafIndex
// persists the advanced counter with a synchronous write before
// returning, so a crash immediately after a successful reservation
// can never cause the same index to be handed out again (the
// write-ahead reservation invariant every durable LeafStore must
// honor). Backed by a single monotonic counter key in a goleveldb
// database rather than a JSON keystore file.
type LevelDBStore struct {
	mu    sync.Mutex
	db    *leveldb.DB
	limit uint32
}

// NewLevelDBStore opens (or creates) a LevelDB database at path and
// wraps it as a LeafStore bounded to limit = 2^h indices.
func NewLevelDBStore(path string, limit uint32) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("xmss/store: open leveldb at %s: %w", path, err)
	}
	return &LevelDBStore{db: db, limit: limit}, nil
}

// ReserveUnusedLeafIndex reads the current counter, fails closed if
// the index space is exhausted, and otherwise writes back counter+1
// with fsync before returning counter as the caller's reserved index.
func (s *LevelDBStore) ReserveUnusedLeafIndex() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.readCounter()
	if err != nil {
		return 0, err
	}
	if next >= s.limit {
		return 0, ErrExhausted
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, next+1)
	if err := s.db.Put(counterKey, buf, &opt.WriteOptions{Sync: true}); err != nil {
		return 0, fmt.Errorf("xmss/store: persist leaf reservation: %w", err)
	}

	return next, nil
}

func (s *LevelDBStore) readCounter() (uint32, error) {
	v, err := s.db.Get(counterKey, nil)
	if err == leveldb.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("xmss/store: read leaf counter: %w", err)
	}
	return binary.BigEndian.Uint32(v), nil
}

func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
