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

// go/src/xmss/hash.go
package xmss

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/sphinx-core/xmss/src/xmss/cache"
	"golang.org/x/crypto/sha3"
)

// HashProvider is the one cryptographic primitive this engine treats
// as an external collaborator: given a hash name it returns a fresh
// incremental hasher producing exactly outputSize(name) bytes on
// Sum(nil). HashOps is built entirely on top of this interface.
type HashProvider interface {
	// New returns a fresh hasher for the named function, or false if
	// the provider does not support it.
	New(name string) (hash.Hash, bool)
	// OutputSize returns the digest length in bytes for the named
	// function, or 0 if unsupported.
	OutputSize(name string) int
}

// SHA2Provider implements HashProvider over stdlib crypto/sha256 and
// crypto/sha512.
type SHA2Provider struct{}

func (SHA2Provider) New(name string) (hash.Hash, bool) {
	switch name {
	case HashSHA2_256:
		return sha256.New(), true
	case HashSHA2_512:
		return sha512.New(), true
	default:
		return nil, false
	}
}

func (SHA2Provider) OutputSize(name string) int {
	switch name {
	case HashSHA2_256:
		return sha256.Size
	case HashSHA2_512:
		return sha512.Size
	default:
		return 0
	}
}

// shakeHash adapts sha3's variable-output ShakeHash to the stdlib
// hash.Hash interface (fixed Sum length = outSize) so HashOps can
// treat SHAKE128/256 uniformly with the SHA2 family.
type shakeHash struct {
	sha3.ShakeHash
	outSize int
}

func (s *shakeHash) Sum(b []byte) []byte {
	clone := s.Clone()
	out := make([]byte, s.outSize)
	clone.Read(out)
	return append(b, out...)
}

func (s *shakeHash) Size() int { return s.outSize }

// SHAKEProvider implements HashProvider over golang.org/x/crypto/sha3.
type SHAKEProvider struct{}

func (SHAKEProvider) New(name string) (hash.Hash, bool) {
	switch name {
	case HashSHAKE128:
		return &shakeHash{ShakeHash: sha3.NewShake128(), outSize: 32}, true
	case HashSHAKE256:
		return &shakeHash{ShakeHash: sha3.NewShake256(), outSize: 64}, true
	default:
		return nil, false
	}
}

func (SHAKEProvider) OutputSize(name string) int {
	switch name {
	case HashSHAKE128:
		return 32
	case HashSHAKE256:
		return 64
	default:
		return 0
	}
}

// MultiProvider dispatches to the first sub-provider that supports
// the requested name; used to expose both SHA2Provider and
// SHAKEProvider under one HashProvider without forcing callers to
// pick in advance.
type MultiProvider []HashProvider

func (m MultiProvider) New(name string) (hash.Hash, bool) {
	for _, p := range m {
		if h, ok := p.New(name); ok {
			return h, true
		}
	}
	return nil, false
}

func (m MultiProvider) OutputSize(name string) int {
	for _, p := range m {
		if n := p.OutputSize(name); n != 0 {
			return n
		}
	}
	return 0
}

// DefaultHashProvider returns a provider supporting every hash name
// in the OID table.
func DefaultHashProvider() HashProvider {
	return MultiProvider{SHA2Provider{}, SHAKEProvider{}}
}

// domain separation prefixes for F, H, H_msg, PRF.
const (
	domainF     = 0
	domainH     = 1
	domainHMsg  = 2
	domainPRF   = 3
)

// HashOps provides the four keyed functions F, H, H_msg, PRF. One
// instance should be used per thread: the incremental H_msg state is
// not safe to share across goroutines.
type HashOps struct {
	n        int
	hashName string
	provider HashProvider
	bitmasks *cache.LRU

	hMsg hash.Hash // incremental state for H_msg, nil until hMsgInit
}

// NewHashOps constructs a HashOps for the given parameters and
// provider. Returns ErrHashUnavailable if the provider does not
// support params.HashName.
func NewHashOps(params Params, provider HashProvider) (*HashOps, error) {
	if _, ok := provider.New(params.HashName); !ok {
		return nil, fmt.Errorf("%w: %s", ErrHashUnavailable, params.HashName)
	}
	if provider.OutputSize(params.HashName) != params.N {
		return nil, fmt.Errorf("xmss: hash %s produces %d-byte digests, params require %d",
			params.HashName, provider.OutputSize(params.HashName), params.N)
	}
	return &HashOps{
		n:        params.N,
		hashName: params.HashName,
		provider: provider,
		bitmasks: cache.New(1024),
	}, nil
}

func (h *HashOps) rawHash(prefix byte, parts ...[]byte) []byte {
	hasher, _ := h.provider.New(h.hashName)
	hasher.Write(toByte(uint64(prefix), h.n))
	for _, p := range parts {
		hasher.Write(p)
	}
	return hasher.Sum(nil)
}

// F computes Hash(toByte(0,n) || key || m) for an n-byte m.
func (h *HashOps) F(key, m []byte) []byte {
	return h.rawHash(domainF, key, m)
}

// H computes Hash(toByte(1,n) || key || m) for a 2n-byte m.
func (h *HashOps) H(key, m []byte) []byte {
	return h.rawHash(domainH, key, m)
}

// PRF computes Hash(toByte(3,n) || key || m) for a 32-byte m
// (typically an ADRS). Every output is cached by (key, m) since chain()
// and treeHash() repeatedly re-derive the same bitmasks and keys across
// neighboring ADRS states during key generation. WOTS+ secret elements
// are derived through rawHash instead, so they never enter the cache.
func (h *HashOps) PRF(key, m []byte) []byte {
	cacheKey := hex.EncodeToString(key) + ":" + hex.EncodeToString(m)
	if v, ok := h.bitmasks.Get(cacheKey); ok {
		out := make([]byte, len(v))
		copy(out, v)
		return out
	}
	out := h.rawHash(domainPRF, key, m)
	cached := make([]byte, len(out))
	copy(cached, out)
	h.bitmasks.Put(cacheKey, cached)
	return out
}

// HMsgInit opens an incremental H_msg computation, prepending
// toByte(2,n) || r || root || idx to the stream.
func (h *HashOps) HMsgInit(r, root, idx []byte) {
	hasher, _ := h.provider.New(h.hashName)
	hasher.Write(toByte(domainHMsg, h.n))
	hasher.Write(r)
	hasher.Write(root)
	hasher.Write(idx)
	h.hMsg = hasher
}

// HMsgUpdate streams additional message bytes into the open H_msg
// computation. HMsgInit must have been called first.
func (h *HashOps) HMsgUpdate(p []byte) {
	h.hMsg.Write(p)
}

// HMsgFinal finalizes and returns the n-byte H_msg digest, clearing
// the incremental state.
func (h *HashOps) HMsgFinal() []byte {
	out := h.hMsg.Sum(nil)
	h.hMsg = nil
	return out
}

// N returns the element size in bytes this HashOps was built for.
func (h *HashOps) N() int { return h.n }
