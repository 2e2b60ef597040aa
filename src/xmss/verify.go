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

// go/src/xmss/verify.go
package xmss

import "bytes"

// Verify checks sig against msg under pub, recomputing the Merkle
// root from the WOTS+ public key recovered from sig.WotsSig and
// walking sig.AuthPath up to the root (RFC 8391 Algorithm 13,
// XMSS_rootFromSig). It returns false — never an error — on any
// mismatch, including a malformed auth path length, since a verifier
// must treat "doesn't verify" and "can't even parse" identically to
// callers deciding whether to trust a signature.
//
// Not part of the construction's signing hot path; verification is a
// cold, stateless read path callers invoke independently of a Signer.
func Verify(h *HashOps, params Params, pub PublicKey, msg []byte, sig *Signature) bool {
	if len(sig.AuthPath) != params.TreeHeight || len(sig.WotsSig) != params.Len {
		return false
	}

	idx := toByte(uint64(sig.Index), params.N)
	h.HMsgInit(sig.R, pub.Root, idx)
	h.HMsgUpdate(msg)
	msgHash := h.HMsgFinal()

	otsAdrs := NewAddress()
	otsAdrs.SetOTSAddress(sig.Index)
	pkOts, err := WotsPublicKeyFromSignature(h, params, msgHash, sig.WotsSig, otsAdrs, pub.Seed)
	if err != nil {
		return false
	}

	node := ltree(h, params, pkOts, sig.Index, NewAddress(), pub.Seed)

	hashTreeAdrs := NewAddress()
	hashTreeAdrs.SetType(AddressHashTree)
	treeIndex := sig.Index
	for k := 0; k < params.TreeHeight; k++ {
		hashTreeAdrs.SetTreeHeight(uint32(k))
		level := sig.Index >> uint(k)
		if level%2 == 0 {
			treeIndex /= 2
			hashTreeAdrs.SetTreeIndex(treeIndex)
			node = randHash(h, node, sig.AuthPath[k], &hashTreeAdrs, pub.Seed)
		} else {
			treeIndex = (treeIndex - 1) / 2
			hashTreeAdrs.SetTreeIndex(treeIndex)
			node = randHash(h, sig.AuthPath[k], node, &hashTreeAdrs, pub.Seed)
		}
	}

	return bytes.Equal(node, pub.Root)
}
