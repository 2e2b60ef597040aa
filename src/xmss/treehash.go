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

// go/src/xmss/treehash.go
package xmss

import "fmt"

// leafGenerator produces the public leaf (ltree-compressed WOTS+
// public key) for a given leaf index. treeHash is parameterized over
// this rather than a concrete private key so it stays independently
// testable and so a parallel worker can supply its own HashOps while
// sharing the same master seed.
type leafGenerator func(leafIndex uint32) []byte

// treeHash computes the Merkle node at height targetHeight whose
// left-most leaf index is start. Precondition: start
// mod 2^targetHeight == 0; violating it is a programmer error, not a
// recoverable one, so it panics rather than threading an error
// through every recursive call. adrs supplies the common layer/tree
// fields; its type and type-specific words are overwritten.
func treeHash(h *HashOps, gen leafGenerator, seed []byte, start uint32, targetHeight uint32, adrs Address) []byte {
	span := uint32(1) << targetHeight
	if start%span != 0 {
		panic(fmt.Sprintf("xmss: treeHash start %d not aligned to height %d", start, targetHeight))
	}

	// Stack of (node, height) pairs, combining equal-height siblings
	// as they become available: the standard stack-based treeHash
	// that avoids materializing the whole subtree.
	type frame struct {
		node   []byte
		height uint32
	}
	stack := make([]frame, 0, targetHeight+1)

	hashTreeAdrs := adrs
	hashTreeAdrs.SetType(AddressHashTree)

	for i := uint32(0); i < span; i++ {
		node := gen(start + i)
		height := uint32(0)

		for len(stack) > 0 && stack[len(stack)-1].height == height {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			leftmost := (start + i) &^ ((uint32(1) << (height + 1)) - 1)
			treeIndex := leftmost >> (height + 1)
			hashTreeAdrs.SetTreeHeight(height)
			hashTreeAdrs.SetTreeIndex(treeIndex)
			node = randHash(h, top.node, node, &hashTreeAdrs, seed)
			height++
		}
		stack = append(stack, frame{node: node, height: height})
	}

	return stack[0].node
}

// buildAuthPath returns the length-h sequence of sibling nodes on the
// path from leaf leafIndex to the root: auth[j] =
// treeHash((leafIndex / 2^j) xor 1) * 2^j, j, adrs).
func buildAuthPath(h *HashOps, params Params, gen leafGenerator, seed []byte, leafIndex uint32, adrs Address) [][]byte {
	auth := make([][]byte, params.TreeHeight)
	for j := 0; j < params.TreeHeight; j++ {
		k := (leafIndex/(uint32(1)<<uint(j)) ^ 1)
		auth[j] = treeHash(h, gen, seed, k*(uint32(1)<<uint(j)), uint32(j), adrs)
	}
	return auth
}
