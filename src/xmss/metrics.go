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

// go/src/xmss/metrics.go
package xmss

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instrumentation for a signing engine:
// how many signatures it has issued, how many leaves it has left, and
// how long signing takes. Deliberately narrow (no verification
// metrics here — verification is stateless and cheap enough that
// callers instrument it themselves).
type Metrics struct {
	SignCount       *prometheus.CounterVec
	SignLatency     *prometheus.HistogramVec
	SignErrorCount  *prometheus.CounterVec
	LeavesRemaining *prometheus.GaugeVec // set by Signer on each successful leaf reservation
}

// NewMetrics initializes Prometheus metrics for an XMSS signer,
// labeled by parameter OID so a process holding several keys reports
// them distinctly.
func NewMetrics() *Metrics {
	return &Metrics{
		SignCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xmss_sign_count",
				Help: "Number of signatures produced",
			},
			[]string{"oid"},
		),
		SignLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xmss_sign_latency_seconds",
				Help:    "Latency of sign() calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"oid"},
		),
		SignErrorCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xmss_sign_error_count",
				Help: "Number of sign() calls that failed",
			},
			[]string{"oid", "reason"},
		),
		LeavesRemaining: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "xmss_leaves_remaining",
				Help: "Unused leaf indices left in the private key",
			},
			[]string{"oid"},
		),
	}
}

// Register registers every collector with reg.
func (m *Metrics) Register(reg *prometheus.Registry) error {
	for _, c := range []prometheus.Collector{m.SignCount, m.SignLatency, m.SignErrorCount, m.LeavesRemaining} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
