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

// go/src/xmss/store/store.go
package store

import "errors"

// ErrExhausted is returned by ReserveUnusedLeafIndex once every index
// in [0, 2^h) has been handed out.
var ErrExhausted = errors.New("xmss/store: leaf index space exhausted")

// LeafStore is the leaf-index reservation contract: ReserveUnusedLeafIndex
// must atomically advance a counter and return
// a value never previously returned for the lifetime of the key,
// across all concurrent signers sharing it. If the store is durable,
// the reservation must be made persistent before the call returns
// (write-ahead reservation) — this is the single most
// safety-critical invariant of the system, since a reused leaf index
// breaks the one-time-signature security of every WOTS+ key it
// touches.
type LeafStore interface {
	// ReserveUnusedLeafIndex returns the next unused leaf index in
	// [0, 2^h), or ErrExhausted once all of them are taken.
	ReserveUnusedLeafIndex() (uint32, error)

	// Close releases any resources (file handles, connections) held
	// by the store.
	Close() error
}
