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

// go/src/xmss/params.go
package xmss

import (
	"fmt"
	"math"
)

// Oid identifies one of the parameter sets from
// draft-irtf-cfrg-xmss-hash-based-signatures. Each OID uniquely
// determines n, w, tree height and hash function.
type Oid string

// Supported parameter sets: hash in {SHA2-256, SHA2-512, SHAKE128,
// SHAKE256} x tree height in {10, 16, 20}.
const (
	OidXMSSSHA2_10_256  Oid = "XMSS-SHA2_10_256"
	OidXMSSSHA2_16_256  Oid = "XMSS-SHA2_16_256"
	OidXMSSSHA2_20_256  Oid = "XMSS-SHA2_20_256"
	OidXMSSSHA2_10_512  Oid = "XMSS-SHA2_10_512"
	OidXMSSSHA2_16_512  Oid = "XMSS-SHA2_16_512"
	OidXMSSSHA2_20_512  Oid = "XMSS-SHA2_20_512"
	OidXMSSSHAKE_10_256 Oid = "XMSS-SHAKE128_10_256"
	OidXMSSSHAKE_16_256 Oid = "XMSS-SHAKE128_16_256"
	OidXMSSSHAKE_20_256 Oid = "XMSS-SHAKE128_20_256"
	OidXMSSSHAKE_10_512 Oid = "XMSS-SHAKE256_10_512"
	OidXMSSSHAKE_16_512 Oid = "XMSS-SHAKE256_16_512"
	OidXMSSSHAKE_20_512 Oid = "XMSS-SHAKE256_20_512"
)

// HashSHA2_256, HashSHA2_512, HashSHAKE128, HashSHAKE256 name the
// underlying hash primitives a HashProvider may support.
const (
	HashSHA2_256  = "SHA2-256"
	HashSHA2_512  = "SHA2-512"
	HashSHAKE128  = "SHAKE128"
	HashSHAKE256  = "SHAKE256"
)

// Params carries the immutable parameters of one XMSS instance:
// element size n, Winternitz parameter w, derived WOTS+ chain counts,
// tree height, and the underlying hash function name. Params is safe
// to share across goroutines and across signers.
type Params struct {
	Oid        Oid
	N          int // element size in bytes (hash output length)
	W          int // Winternitz parameter
	Len1       int // number of base-w message digits
	Len2       int // number of base-w checksum digits
	Len        int // Len1 + Len2, total WOTS+ chain count
	TreeHeight int // h
	HashName   string
}

// oidTable enumerates the exact set of supported OIDs. n is 32 bytes
// for the *_256 variants (SHA2-256 / SHAKE128 derived outputs) and 64
// bytes for the *_512 variants (SHA2-512 / SHAKE256), per RFC 8391
// table 1. w is fixed at 16 for every standard parameter set.
var oidTable = map[Oid]struct {
	n, h     int
	hashName string
}{
	OidXMSSSHA2_10_256:  {32, 10, HashSHA2_256},
	OidXMSSSHA2_16_256:  {32, 16, HashSHA2_256},
	OidXMSSSHA2_20_256:  {32, 20, HashSHA2_256},
	OidXMSSSHA2_10_512:  {64, 10, HashSHA2_512},
	OidXMSSSHA2_16_512:  {64, 16, HashSHA2_512},
	OidXMSSSHA2_20_512:  {64, 20, HashSHA2_512},
	OidXMSSSHAKE_10_256: {32, 10, HashSHAKE128},
	OidXMSSSHAKE_16_256: {32, 16, HashSHAKE128},
	OidXMSSSHAKE_20_256: {32, 20, HashSHAKE128},
	OidXMSSSHAKE_10_512: {64, 10, HashSHAKE256},
	OidXMSSSHAKE_16_512: {64, 16, HashSHAKE256},
	OidXMSSSHAKE_20_512: {64, 20, HashSHAKE256},
}

// LookupParams resolves an OID to its Params, deriving len_1/len_2/len
// from (n, w) via the standard ceil/floor-log2 formula; n varies with
// the OID.
func LookupParams(oid Oid) (Params, error) {
	entry, ok := oidTable[oid]
	if !ok {
		return Params{}, fmt.Errorf("%w: %s", ErrInvalidOid, oid)
	}

	const w = 16
	logW := math.Log2(float64(w))
	len1 := int(math.Ceil(float64(8*entry.n) / logW))
	checksumBits := math.Log2(float64(len1 * (w - 1)))
	len2 := int(math.Floor(checksumBits/logW)) + 1

	return Params{
		Oid:        oid,
		N:          entry.n,
		W:          w,
		Len1:       len1,
		Len2:       len2,
		Len:        len1 + len2,
		TreeHeight: entry.h,
		HashName:   entry.hashName,
	}, nil
}

// toByte is the big-endian k-byte representation of x, per the
// construction's toByte(x, k) primitive.
func toByte(x uint64, k int) []byte {
	out := make([]byte, k)
	for i := k - 1; i >= 0 && x != 0; i-- {
		out[i] = byte(x)
		x >>= 8
	}
	return out
}
