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

// go/src/xmss/rand.go
package xmss

import "crypto/rand"

// Rng supplies randomness for key creation only (fresh S_XMSS,
// SK_PRF, SEED). Signing itself is fully derandomized from SK_PRF and
// never touches an Rng, so a compromised or misbehaving Rng cannot
// weaken an already-created key's signatures.
type Rng interface {
	// Read fills p with random bytes, returning an error if the
	// source is exhausted or unavailable.
	Read(p []byte) (int, error)
}

// CryptoRand is the default Rng, backed by crypto/rand.Reader.
type CryptoRand struct{}

func (CryptoRand) Read(p []byte) (int, error) {
	return rand.Read(p)
}

// GenerateSeeds draws fresh S_XMSS, SK_PRF and SEED values of n bytes
// each from r, for use with NewPrivateKey.
func GenerateSeeds(r Rng, n int) (masterSeed, skPrf, publicSeed []byte, err error) {
	buf := make([]byte, 3*n)
	if _, err := r.Read(buf); err != nil {
		return nil, nil, nil, err
	}
	return buf[:n], buf[n : 2*n], buf[2*n : 3*n], nil
}
