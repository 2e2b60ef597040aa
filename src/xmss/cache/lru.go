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

// go/src/xmss/cache/lru.go
package cache

import "sync"

// Node is a doubly linked list node for the LRU cache.
type Node struct {
	key   string
	value []byte
	prev  *Node
	next  *Node
}

// LRU is a fixed-capacity, thread-safe cache of PRF bitmask outputs
// keyed by (seed, ADRS bytes). Adapted from spxhash/hash's LRUCache:
// same doubly-linked-list-plus-map eviction, generalized from a
// uint64 key to an opaque string key since the chaining function
// derives cache keys from raw address bytes rather than a single
// hashed integer.
type LRU struct {
	capacity int
	mu       sync.Mutex
	entries  map[string]*Node
	head     *Node
	tail     *Node
}

// New initializes a new LRU cache with the given capacity.
func New(capacity int) *LRU {
	return &LRU{
		capacity: capacity,
		entries:  make(map[string]*Node, capacity),
	}
}

// Get retrieves a value from the cache.
func (l *LRU) Get(key string) ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if node, found := l.entries[key]; found {
		l.moveToFront(node)
		return node.value, true
	}
	return nil, false
}

// Put inserts a value into the cache, evicting the least recently
// used entry if the cache is at capacity.
func (l *LRU) Put(key string, value []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if node, found := l.entries[key]; found {
		node.value = value
		l.moveToFront(node)
		return
	}

	node := &Node{key: key, value: value}
	l.entries[key] = node

	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}

	if len(l.entries) > l.capacity {
		l.evict()
	}
}

func (l *LRU) evict() {
	if l.tail == nil {
		return
	}
	delete(l.entries, l.tail.key)
	l.tail = l.tail.prev
	if l.tail != nil {
		l.tail.next = nil
	}
}

func (l *LRU) moveToFront(node *Node) {
	if node == l.head {
		return
	}
	if node.prev != nil {
		node.prev.next = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	if node == l.tail {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = l.head
	l.head.prev = node
	l.head = node
}
