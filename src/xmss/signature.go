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

// go/src/xmss/signature.go
package xmss

import (
	"encoding/binary"
	"fmt"
)

// Signature is one XMSS signature: the leaf index it was produced
// under, the randomizer r, the WOTS+ one-time signature over that
// leaf, and the authentication path binding the leaf to the root.
type Signature struct {
	Index    uint32
	R        []byte
	WotsSig  WotsKeysig
	AuthPath [][]byte
}

// MarshalBinary encodes the signature as index(4 bytes, big-endian)
// || r(n bytes) || wots_sig(len*n bytes) || auth_path(h*n bytes).
func (s *Signature) MarshalBinary() ([]byte, error) {
	n := len(s.R)
	out := make([]byte, 0, 4+n+len(s.WotsSig)*n+len(s.AuthPath)*n)

	var idxBuf [4]byte
	binary.BigEndian.PutUint32(idxBuf[:], s.Index)
	out = append(out, idxBuf[:]...)
	out = append(out, s.R...)
	for _, e := range s.WotsSig {
		out = append(out, e...)
	}
	for _, e := range s.AuthPath {
		out = append(out, e...)
	}
	return out, nil
}

// ParseSignature decodes a wire-format signature for the given
// parameters, returning ErrInvalidSignatureLength if data is not
// exactly 4 + n + len*n + h*n bytes.
func ParseSignature(params Params, data []byte) (*Signature, error) {
	n := params.N
	want := 4 + n + params.Len*n + params.TreeHeight*n
	if len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignatureLength, len(data), want)
	}

	sig := &Signature{
		Index: binary.BigEndian.Uint32(data[0:4]),
	}
	offset := 4

	sig.R = append([]byte(nil), data[offset:offset+n]...)
	offset += n

	sig.WotsSig = make(WotsKeysig, params.Len)
	for i := range sig.WotsSig {
		sig.WotsSig[i] = append([]byte(nil), data[offset:offset+n]...)
		offset += n
	}

	sig.AuthPath = make([][]byte, params.TreeHeight)
	for i := range sig.AuthPath {
		sig.AuthPath[i] = append([]byte(nil), data[offset:offset+n]...)
		offset += n
	}

	return sig, nil
}
