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

// go/src/xmss/metrics_test.go
package xmss

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_LeavesRemainingTracksReservations(t *testing.T) {
	k := newFixedKey(t, 1<<10)
	m := NewMetrics()
	oid := string(k.XMSSParameters().Oid)
	capacity := uint64(1) << uint(k.XMSSParameters().TreeHeight)

	sign := func() {
		signer, err := NewSigner(k, DefaultHashProvider(), m)
		if err != nil {
			t.Fatal(err)
		}
		if err := signer.Update([]byte("m")); err != nil {
			t.Fatal(err)
		}
		if _, err := signer.Sign(CryptoRand{}); err != nil {
			t.Fatal(err)
		}
	}

	sign()
	if got, want := testutil.ToFloat64(m.LeavesRemaining.WithLabelValues(oid)), float64(capacity-1); got != want {
		t.Errorf("LeavesRemaining after 1st reservation = %v, want %v", got, want)
	}

	sign()
	if got, want := testutil.ToFloat64(m.LeavesRemaining.WithLabelValues(oid)), float64(capacity-2); got != want {
		t.Errorf("LeavesRemaining after 2nd reservation = %v, want %v", got, want)
	}
}
