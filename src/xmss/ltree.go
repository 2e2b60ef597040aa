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

// go/src/xmss/ltree.go
package xmss

// randHash folds two n-byte siblings into their parent:
// H(k, (left xor bm_L) || (right xor bm_R)) where k, bm_L, bm_R are
// all PRF(seed, adrs) at key_and_mask 0, 1, 2 respectively.
func randHash(h *HashOps, left, right []byte, adrs *Address, seed []byte) []byte {
	adrs.SetKeyMaskMode(KeyMask(0))
	key := h.PRF(seed, addrBytes(adrs))

	adrs.SetKeyMaskMode(KeyMask(1))
	bmLeft := h.PRF(seed, addrBytes(adrs))

	adrs.SetKeyMaskMode(KeyMask(2))
	bmRight := h.PRF(seed, addrBytes(adrs))

	maskedLeft := make([]byte, len(left))
	copy(maskedLeft, left)
	xorInto(maskedLeft, bmLeft)

	maskedRight := make([]byte, len(right))
	copy(maskedRight, right)
	xorInto(maskedRight, bmRight)

	m := append(maskedLeft, maskedRight...)
	return h.H(key, m)
}

// ltree compresses a length-len WOTS+ public key for leafIndex into a
// single n-byte leaf value by iterated randHash, halving the active
// prefix each round and carrying an odd trailing element up
// unchanged. adrs carries the common layer/tree fields from the
// caller; its type and type-specific words are overwritten here.
func ltree(h *HashOps, params Params, pk WotsKeysig, leafIndex uint32, adrs Address, seed []byte) []byte {
	adrs.SetType(AddressLTree)
	adrs.SetLTreeAddress(leafIndex)

	nodes := cloneKeysig(pk)
	length := len(nodes)
	height := uint32(0)

	for length > 1 {
		adrs.SetTreeHeight(height)
		half := length / 2
		for i := 0; i < half; i++ {
			adrs.SetTreeIndex(uint32(i))
			nodes[i] = randHash(h, nodes[2*i], nodes[2*i+1], &adrs, seed)
		}
		if length%2 == 1 {
			nodes[half] = nodes[length-1]
			length = half + 1
		} else {
			length = half
		}
		height++
	}
	return nodes[0]
}
