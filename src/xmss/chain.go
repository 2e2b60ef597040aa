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

// go/src/xmss/chain.go
package xmss

// chain implements Algorithm 2, the WOTS+ chaining function: it
// iterates F, steps times, starting at position start, mixing in a
// per-step bitmask derived from PRF(seed, adrs). x is left unmodified;
// the result is returned in a new slice.
//
// The loop additionally clamps the step index at w-1 (it runs only
// while i < w): a correct caller never requests steps beyond w-1, but
// the clamp is retained as a defensive domain invariant rather than
// removed.
func chain(h *HashOps, params Params, x []byte, start, steps uint32, adrs *Address, seed []byte) []byte {
	result := make([]byte, len(x))
	copy(result, x)

	limit := uint32(params.W) - 1
	for i := start; i < start+steps && i <= limit; i++ {
		adrs.SetHashAddress(i)

		adrs.SetKeyMaskMode(MaskMode)
		bitmask := h.PRF(seed, addrBytes(adrs))
		xorInto(result, bitmask)

		adrs.SetKeyMaskMode(KeyMode)
		key := h.PRF(seed, addrBytes(adrs))
		result = h.F(key, result)
	}
	return result
}

func addrBytes(a *Address) []byte {
	b := a.Bytes()
	return b[:]
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
