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

// go/src/xmss/errors.go
package xmss

import "errors"

// Sentinel errors surfaced by the signing engine. Callers unwrap with
// errors.Is; nothing here is retried internally.
var (
	// ErrLeafExhausted is returned when a private key has no unused
	// leaf indices left (all 2^h have been reserved).
	ErrLeafExhausted = errors.New("xmss: leaf index space exhausted")

	// ErrInvalidOid is returned when a parameter OID is not in the
	// supported table.
	ErrInvalidOid = errors.New("xmss: unknown parameter OID")

	// ErrInvalidSignatureLength is returned during WOTS+ public-key
	// recovery when the signature does not have len*n bytes.
	ErrInvalidSignatureLength = errors.New("xmss: invalid WOTS+ signature length")

	// ErrHashUnavailable is returned at signer construction when the
	// requested hash name is not provided by the injected HashProvider.
	ErrHashUnavailable = errors.New("xmss: requested hash function unavailable")

	// ErrNotInitialized names a sign() call in a state the construction
	// does not allow. No function in this package returns it:
	// initialize() is idempotent and either succeeds or returns
	// ErrLeafExhausted.
	ErrNotInitialized = errors.New("xmss: signer not initialized")
)
