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

// go/src/xmss/privatekey.go
package xmss

import (
	"fmt"

	"github.com/sphinx-core/xmss/src/xmss/store"
)

// PublicKey is the (OID, root, SEED) triple published by a key holder
// and used by verifiers to recompute H_msg and the authentication
// path root.
type PublicKey struct {
	Oid    Oid
	Root   []byte
	Seed   []byte
}

// PrivateKey is the XMSS private key: a master seed S_XMSS from which
// every WOTS+ private key is derived on demand, a PRF seed SK_PRF used
// only to derandomize the per-signature nonce r, a public SEED used
// for every bitmask/key derivation, the precomputed Merkle root, and a
// leaf-index reservation store shared by every signer built on top of
// this key. No WOTS+ private key or authentication path is ever
// stored; everything is regenerated from S_XMSS on each signature.
type PrivateKey struct {
	params     Params
	masterSeed []byte // S_XMSS
	skPrf      []byte // SK_PRF
	publicSeed []byte // SEED
	root       []byte

	provider HashProvider
	leaves   store.LeafStore
}

// NewPrivateKey builds a PrivateKey from its three seeds, validating
// their lengths against params.N, and computes the Merkle root over
// the full 2^h-leaf tree. leaves supplies leaf-index reservation;
// pass store.NewMemoryStore() for a single-process, non-durable key,
// or a durable store for production use.
func NewPrivateKey(params Params, masterSeed, skPrf, publicSeed []byte, provider HashProvider, leaves store.LeafStore) (*PrivateKey, error) {
	if len(masterSeed) != params.N || len(skPrf) != params.N || len(publicSeed) != params.N {
		return nil, fmt.Errorf("xmss: seed length mismatch: want %d bytes, got S_XMSS=%d SK_PRF=%d SEED=%d",
			params.N, len(masterSeed), len(skPrf), len(publicSeed))
	}

	sk := &PrivateKey{
		params:     params,
		masterSeed: append([]byte(nil), masterSeed...),
		skPrf:      append([]byte(nil), skPrf...),
		publicSeed: append([]byte(nil), publicSeed...),
		provider:   provider,
		leaves:     leaves,
	}

	h, err := NewHashOps(params, provider)
	if err != nil {
		return nil, err
	}
	sk.root = treeHash(h, sk.newLeafGenerator(h), sk.publicSeed, 0, uint32(params.TreeHeight), NewAddress())

	return sk, nil
}

// XMSSParameters returns the parameter set this key was constructed
// with.
func (sk *PrivateKey) XMSSParameters() Params { return sk.params }

// Root returns the Merkle tree root (the public key's binding value).
func (sk *PrivateKey) Root() []byte { return append([]byte(nil), sk.root...) }

// PublicSeed returns SEED, the public per-key randomization seed.
func (sk *PrivateKey) PublicSeed() []byte { return append([]byte(nil), sk.publicSeed...) }

// PublicKey returns the publishable (OID, root, SEED) triple.
func (sk *PrivateKey) PublicKey() PublicKey {
	return PublicKey{Oid: sk.params.Oid, Root: sk.Root(), Seed: sk.PublicSeed()}
}

// PRF evaluates PRF(SK_PRF, m) using the caller's HashOps. Used by the
// signer to derandomize the per-signature nonce r = PRF(SK_PRF,
// toByte(i, 32)).
func (sk *PrivateKey) PRF(h *HashOps, m []byte) []byte {
	return h.PRF(sk.skPrf, m)
}

// ReserveUnusedLeafIndex atomically hands out the next unused leaf
// index, or ErrLeafExhausted once the key's 2^h indices are all spent.
// This is the single safety-critical operation of the whole engine:
// callers must never sign with an index this call did not return.
func (sk *PrivateKey) ReserveUnusedLeafIndex() (uint32, error) {
	i, err := sk.leaves.ReserveUnusedLeafIndex()
	if err != nil {
		return 0, fmt.Errorf("%w", ErrLeafExhausted)
	}
	limit := uint32(1) << uint(sk.params.TreeHeight)
	if i >= limit {
		return 0, ErrLeafExhausted
	}
	return i, nil
}

// WotsPrivateKeyAt derives the WOTS+ private key for leaf i directly
// from S_XMSS; no intermediate state is cached or stored.
func (sk *PrivateKey) WotsPrivateKeyAt(h *HashOps, i uint32) WotsKeysig {
	return wotsKeygen(h, sk.params, sk.masterSeed, i, NewAddress())
}

// TreeHash exposes the stack-based treeHash algorithm over this key's
// own leaf generator, for callers (principally the
// signer, building authentication paths) that need an arbitrary
// subtree root.
func (sk *PrivateKey) TreeHash(h *HashOps, start, targetHeight uint32, adrs Address) []byte {
	return treeHash(h, sk.newLeafGenerator(h), sk.publicSeed, start, targetHeight, adrs)
}

// BuildAuthPath returns the length-h authentication path for leaf
// index i.
func (sk *PrivateKey) BuildAuthPath(h *HashOps, i uint32) [][]byte {
	return buildAuthPath(h, sk.params, sk.newLeafGenerator(h), sk.publicSeed, i, NewAddress())
}

// newLeafGenerator returns the leafGenerator closure wiring
// wotsKeygen -> wotsPublicKeyFromPrivate -> ltree for this key's
// master seed and public seed, shared by the root computation above,
// TreeHash, and BuildAuthPath.
func (sk *PrivateKey) newLeafGenerator(h *HashOps) leafGenerator {
	return func(leafIndex uint32) []byte {
		otsAdrs := NewAddress()
		otsAdrs.SetOTSAddress(leafIndex)
		priv := wotsKeygen(h, sk.params, sk.masterSeed, leafIndex, otsAdrs)
		pub := wotsPublicKeyFromPrivate(h, sk.params, priv, otsAdrs, sk.publicSeed)
		return ltree(h, sk.params, pub, leafIndex, NewAddress(), sk.publicSeed)
	}
}

// Zeroize overwrites the key's secret material in place. Callers
// should invoke this once a PrivateKey is no longer needed; Go has no
// destructors, so this is advisory rather than guaranteed (the
// runtime may have already copied these slices during GC or prior
// calls).
func (sk *PrivateKey) Zeroize() {
	zero(sk.masterSeed)
	zero(sk.skPrf)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
