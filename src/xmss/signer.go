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

// go/src/xmss/signer.go
package xmss

import (
	"errors"
	"time"

	"github.com/sphinx-core/xmss/src/log"
)

// Signer is a one-shot XMSS signature operation: Update() feeds
// message bytes incrementally into H_msg, and Sign() finalizes them
// into a Signature, reserving a fresh leaf index from the underlying
// private key's store the first time either method is called.
//
// A Signer is not safe for concurrent use, and must not be reused
// for a second message after Sign() returns: construct a new one.
type Signer struct {
	key     *PrivateKey
	h       *HashOps
	metrics *Metrics

	leafIdx     uint32
	randomizer  []byte
	initialized bool
}

// NewSigner builds a Signer over key using a fresh HashOps from
// provider. metrics may be nil to disable instrumentation.
func NewSigner(key *PrivateKey, provider HashProvider, metrics *Metrics) (*Signer, error) {
	h, err := NewHashOps(key.XMSSParameters(), provider)
	if err != nil {
		return nil, err
	}
	return &Signer{key: key, h: h, metrics: metrics}, nil
}

// Update streams additional message bytes into the pending signature.
// The first call (on any Signer) reserves this operation's leaf index
// and opens the incremental H_msg computation.
func (s *Signer) Update(msg []byte) error {
	if err := s.initialize(); err != nil {
		return err
	}
	s.h.HMsgUpdate(msg)
	return nil
}

// Sign finalizes the message accumulated via Update (or none, for an
// empty message) into a complete Signature. rng is accepted for
// interface symmetry with the construction's randomized-verification
// style callers but is never read: signing is fully derandomized from
// SK_PRF, so a caller's Rng cannot influence it.
func (s *Signer) Sign(rng Rng) (*Signature, error) {
	start := time.Now()
	sig, err := s.sign()
	if s.metrics != nil {
		oid := string(s.key.XMSSParameters().Oid)
		s.metrics.SignLatency.WithLabelValues(oid).Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.SignErrorCount.WithLabelValues(oid, errReason(err)).Inc()
		} else {
			s.metrics.SignCount.WithLabelValues(oid).Inc()
		}
	}
	return sig, err
}

func (s *Signer) sign() (*Signature, error) {
	if err := s.initialize(); err != nil {
		return nil, err
	}

	msgHash := s.h.HMsgFinal()
	sig := s.generateTreeSignature(msgHash)
	s.initialized = false

	logger.Debugf("xmss: signed with leaf %d under %s", s.leafIdx, s.key.XMSSParameters().Oid)
	return sig, nil
}

// generateTreeSignature is Algorithm 11, treeSig: build the
// authentication path for this operation's leaf, then derive and sign
// with the WOTS+ private key at that same leaf.
func (s *Signer) generateTreeSignature(msgHash []byte) *Signature {
	authPath := s.key.BuildAuthPath(s.h, s.leafIdx)

	otsAdrs := NewAddress()
	otsAdrs.SetOTSAddress(s.leafIdx)

	priv := s.key.WotsPrivateKeyAt(s.h, s.leafIdx)
	wotsSig := wotsSign(s.h, s.key.XMSSParameters(), msgHash, priv, otsAdrs, s.key.PublicSeed())

	return &Signature{
		Index:    s.leafIdx,
		R:        s.randomizer,
		WotsSig:  wotsSig,
		AuthPath: authPath,
	}
}

// initialize is idempotent: the first call reserves a leaf index,
// derives the per-signature randomizer r = PRF(SK_PRF,
// toByte(leaf_idx, 32)), and opens H_msg with toByte(2, n) ||
// r || root || toByte(leaf_idx, n).
func (s *Signer) initialize() error {
	if s.initialized {
		return nil
	}

	i, err := s.key.ReserveUnusedLeafIndex()
	if err != nil {
		return err
	}
	s.leafIdx = i

	if s.metrics != nil {
		oid := string(s.key.XMSSParameters().Oid)
		limit := uint64(1) << uint(s.key.XMSSParameters().TreeHeight)
		remaining := limit - uint64(i) - 1
		s.metrics.LeavesRemaining.WithLabelValues(oid).Set(float64(remaining))
	}

	s.randomizer = s.key.PRF(s.h, toByte(uint64(i), 32))

	idx := toByte(uint64(i), s.key.XMSSParameters().N)
	s.h.HMsgInit(s.randomizer, s.key.Root(), idx)
	s.initialized = true
	return nil
}

func errReason(err error) string {
	if errors.Is(err, ErrLeafExhausted) {
		return "leaf_exhausted"
	}
	return "other"
}
