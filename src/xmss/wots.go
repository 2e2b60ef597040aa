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

// go/src/xmss/wots.go
package xmss

import (
	"fmt"
	"math"
)

// WotsKeysig is an ordered length-len sequence of n-byte elements:
// the shape shared by a WOTS+ private key, public key, and signature
// (design note: model the recovery result and the real public key as
// one shape with two constructors, rather than two conflated types).
type WotsKeysig [][]byte

// cloneKeysig deep-copies a WotsKeysig so callers can mutate the
// result without aliasing the input.
func cloneKeysig(in WotsKeysig) WotsKeysig {
	out := make(WotsKeysig, len(in))
	for i, e := range in {
		out[i] = append([]byte(nil), e...)
	}
	return out
}

// baseW unpacks X into outLen base-w digits, reading bits from the
// most-significant side (Algorithm 1).
func baseW(x []byte, w, outLen int) []int {
	logW := int(math.Log2(float64(w)))
	digits := make([]int, outLen)
	var in, total, bits int
	for i := 0; i < outLen; i++ {
		if bits == 0 {
			total = int(x[in])
			in++
			bits = 8
		}
		bits -= logW
		digits[i] = (total >> uint(bits)) & (w - 1)
	}
	return digits
}

// appendChecksum computes the WOTS+ checksum over the len_1 message
// digits and appends its len_2 base-w digits, producing the full
// length-len digit string b.
func appendChecksum(msgDigits []int, params Params) []int {
	checksum := 0
	for _, d := range msgDigits {
		checksum += (params.W - 1) - d
	}

	logW := int(math.Log2(float64(params.W)))
	shift := (8 - ((params.Len2 * logW) % 8)) % 8
	checksum <<= uint(shift)

	checksumBytes := int(math.Ceil(float64(params.Len2*logW) / 8))
	csBuf := make([]byte, checksumBytes)
	v := checksum
	for i := checksumBytes - 1; i >= 0; i-- {
		csBuf[i] = byte(v)
		v >>= 8
	}

	checksumDigits := baseW(csBuf, params.W, params.Len2)
	return append(append([]int(nil), msgDigits...), checksumDigits...)
}

// messageDigits decomposes a message digest into its full length-len
// base-w digit string (message digits plus checksum digits).
func messageDigits(msgHash []byte, params Params) []int {
	msgDigits := baseW(msgHash, params.W, params.Len1)
	return appendChecksum(msgDigits, params)
}

// wotsKeygen derives the WOTS+ private key for one leaf directly from
// the master seed via PRF: element j of leaf i is
// PRF(S_XMSS, ADRS{type=OTS, ots_address=i, chain_address=j,
// hash_address=0, key_and_mask=0}). No private tree is ever
// materialized.
func wotsKeygen(h *HashOps, params Params, masterSeed []byte, leafIndex uint32, adrs Address) WotsKeysig {
	adrs.SetType(AddressOTSHash)
	adrs.SetOTSAddress(leafIndex)

	priv := make(WotsKeysig, params.Len)
	for j := 0; j < params.Len; j++ {
		adrs.SetChainAddress(uint32(j))
		adrs.SetHashAddress(0)
		adrs.SetKeyMaskMode(KeyMode)
		// rawHash, not PRF: secret elements must not enter the PRF cache.
		priv[j] = h.rawHash(domainPRF, masterSeed, addrBytes(&adrs))
	}
	return priv
}

// wotsPublicKeyFromPrivate computes the WOTS+ public key for a
// private key at the given ADRS: pk[j] = chain(priv[j], 0, w-1, ...).
func wotsPublicKeyFromPrivate(h *HashOps, params Params, priv WotsKeysig, adrs Address, seed []byte) WotsKeysig {
	pub := make(WotsKeysig, params.Len)
	for j := range priv {
		adrs.SetChainAddress(uint32(j))
		pub[j] = chain(h, params, priv[j], 0, uint32(params.W-1), &adrs, seed)
	}
	return pub
}

// wotsSign computes the WOTS+ signature of msgHash under priv:
// sigma[j] = chain(priv[j], 0, b[j], ADRS, seed) for each chain.
func wotsSign(h *HashOps, params Params, msgHash []byte, priv WotsKeysig, adrs Address, seed []byte) WotsKeysig {
	digits := messageDigits(msgHash, params)
	sig := make(WotsKeysig, params.Len)
	for j := 0; j < params.Len; j++ {
		adrs.SetChainAddress(uint32(j))
		sig[j] = chain(h, params, priv[j], 0, uint32(digits[j]), &adrs, seed)
	}
	return sig
}

// WotsPublicKeyFromSignature recovers a WOTS+ public key from a
// message and signature (Algorithm 6, WOTS_pkFromSig): pk[j] =
// chain(sigma[j], b[j], w-1-b[j], ADRS, seed). Exposed for verifier
// use.
func WotsPublicKeyFromSignature(h *HashOps, params Params, msgHash []byte, sig WotsKeysig, adrs Address, seed []byte) (WotsKeysig, error) {
	if len(sig) != params.Len {
		return nil, fmt.Errorf("%w: got %d elements, want %d", ErrInvalidSignatureLength, len(sig), params.Len)
	}

	digits := messageDigits(msgHash, params)
	pub := make(WotsKeysig, params.Len)
	for j := 0; j < params.Len; j++ {
		adrs.SetChainAddress(uint32(j))
		steps := uint32(params.W-1-digits[j])
		pub[j] = chain(h, params, sig[j], uint32(digits[j]), steps, &adrs, seed)
	}
	return pub, nil
}
