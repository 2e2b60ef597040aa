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

// go/src/xmss/address.go
package xmss

import (
	"encoding/binary"
	"fmt"
)

// AddressType discriminates the three ADRS layouts of the construction.
// Setting the type zeros the four type-specific words, which is the
// invariant that eliminates the class of bugs where a type-specific
// field is read while the address is in the wrong type.
type AddressType uint32

const (
	AddressOTSHash  AddressType = 0
	AddressLTree    AddressType = 1
	AddressHashTree AddressType = 2
)

// KeyMask selects between the keyed-hash key and the per-step bitmask
// within the chaining function.
type KeyMask uint32

const (
	KeyMode  KeyMask = 0
	MaskMode KeyMask = 1
)

// Address is the 32-byte structured address threaded through every
// hash invocation: eight big-endian 32-bit words, laid out per type.
// It is cheap to copy by value and must never be aliased across
// goroutines.
type Address struct {
	layer uint32
	tree  uint64
	typ   AddressType
	// w4..w7 hold the four type-specific words. Their meaning depends
	// on typ: (ots, chain, hash, keyMask) for OTSHash; (ltree, height,
	// index, keyMask) for LTree; (0, height, index, keyMask) for
	// HashTree.
	w4, w5, w6, w7 uint32
}

// NewAddress returns a zeroed OTS_Hash_Address, the construction's
// default starting state.
func NewAddress() Address {
	return Address{typ: AddressOTSHash}
}

// Type returns the current discriminant.
func (a *Address) Type() AddressType { return a.typ }

// SetType transitions the address to a new type, zeroing the four
// type-specific words as the standard requires.
func (a *Address) SetType(t AddressType) {
	a.typ = t
	a.w4, a.w5, a.w6, a.w7 = 0, 0, 0, 0
}

// SetLayerAddress sets the (common) layer address word. XMSS proper
// always uses layer 0; this field exists for XMSS^MT compatibility of
// the wire layout even though multi-tree XMSS is a non-goal here.
func (a *Address) SetLayerAddress(l uint32) { a.layer = l }

// SetTreeAddress sets the (common) 64-bit tree address.
func (a *Address) SetTreeAddress(t uint64) { a.tree = t }

// SetOTSAddress sets the OTS key-pair index. Valid only when
// Type() == AddressOTSHash.
func (a *Address) SetOTSAddress(i uint32) {
	a.mustBeType(AddressOTSHash, "SetOTSAddress")
	a.w4 = i
}

// OTSAddress reads back the OTS key-pair index.
func (a *Address) OTSAddress() uint32 {
	a.mustBeType(AddressOTSHash, "OTSAddress")
	return a.w4
}

// SetChainAddress sets the WOTS+ chain index j. Valid only for
// AddressOTSHash.
func (a *Address) SetChainAddress(j uint32) {
	a.mustBeType(AddressOTSHash, "SetChainAddress")
	a.w5 = j
}

// SetHashAddress sets the chain step index i used inside chain().
// Valid only for AddressOTSHash.
func (a *Address) SetHashAddress(i uint32) {
	a.mustBeType(AddressOTSHash, "SetHashAddress")
	a.w6 = i
}

// SetLTreeAddress sets the leaf index compressed by ltree. Valid only
// for AddressLTree.
func (a *Address) SetLTreeAddress(i uint32) {
	a.mustBeType(AddressLTree, "SetLTreeAddress")
	a.w4 = i
}

// SetTreeHeight sets the height within an ltree or Merkle subtree.
// Valid for AddressLTree and AddressHashTree.
func (a *Address) SetTreeHeight(h uint32) {
	a.mustBeEither(AddressLTree, AddressHashTree, "SetTreeHeight")
	a.w5 = h
}

// TreeHeight reads back the height set by SetTreeHeight.
func (a *Address) TreeHeight() uint32 {
	a.mustBeEither(AddressLTree, AddressHashTree, "TreeHeight")
	return a.w5
}

// SetTreeIndex sets the position within the current level. Valid for
// AddressLTree and AddressHashTree.
func (a *Address) SetTreeIndex(idx uint32) {
	a.mustBeEither(AddressLTree, AddressHashTree, "SetTreeIndex")
	a.w6 = idx
}

// TreeIndex reads back the position set by SetTreeIndex.
func (a *Address) TreeIndex() uint32 {
	a.mustBeEither(AddressLTree, AddressHashTree, "TreeIndex")
	return a.w6
}

// SetKeyMaskMode selects Key_Mode or Mask_Mode. Common to all three
// address types.
func (a *Address) SetKeyMaskMode(m KeyMask) { a.w7 = uint32(m) }

// Bytes encodes the address as its 32-byte big-endian representation.
func (a Address) Bytes() [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint32(out[0:4], a.layer)
	binary.BigEndian.PutUint64(out[4:12], a.tree)
	binary.BigEndian.PutUint32(out[12:16], uint32(a.typ))
	binary.BigEndian.PutUint32(out[16:20], a.w4)
	binary.BigEndian.PutUint32(out[20:24], a.w5)
	binary.BigEndian.PutUint32(out[24:28], a.w6)
	binary.BigEndian.PutUint32(out[28:32], a.w7)
	return out
}

func (a *Address) mustBeType(t AddressType, op string) {
	if a.typ != t {
		panic(fmt.Sprintf("xmss: %s requires address type %d, have %d", op, t, a.typ))
	}
}

func (a *Address) mustBeEither(t1, t2 AddressType, op string) {
	if a.typ != t1 && a.typ != t2 {
		panic(fmt.Sprintf("xmss: %s requires address type %d or %d, have %d", op, t1, t2, a.typ))
	}
}
