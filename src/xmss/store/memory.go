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

// go/src/xmss/store/memory.go
package store

import "sync/atomic"

// MemoryStore reserves leaf indices from an in-process atomic
// counter. It satisfies LeafStore's atomicity and uniqueness
// requirements but not durability: a process crash loses the
// counter, and restarting from the same master seed will replay
// already-used indices. Suitable for tests and ephemeral keys only;
// use LevelDBStore where durability matters.
type MemoryStore struct {
	next  uint32
	limit uint32
}

// NewMemoryStore returns a MemoryStore that will hand out indices
// [0, limit) starting from 0.
func NewMemoryStore(limit uint32) *MemoryStore {
	return &MemoryStore{limit: limit}
}

func (m *MemoryStore) ReserveUnusedLeafIndex() (uint32, error) {
	i := atomic.AddUint32(&m.next, 1) - 1
	if i >= m.limit {
		return 0, ErrExhausted
	}
	return i, nil
}

func (m *MemoryStore) Close() error { return nil }
