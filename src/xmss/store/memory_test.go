package store

import (
	"errors"
	"testing"
)

func TestMemoryStoreSequentialReservation(t *testing.T) {
	s := NewMemoryStore(3)
	for want := uint32(0); want < 3; want++ {
		got, err := s.ReserveUnusedLeafIndex()
		if err != nil {
			t.Fatalf("reservation %d: %v", want, err)
		}
		if got != want {
			t.Fatalf("reservation %d returned %d", want, got)
		}
	}
	if _, err := s.ReserveUnusedLeafIndex(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestMemoryStoreConcurrentReservationsAreUnique(t *testing.T) {
	const n = 200
	s := NewMemoryStore(n)

	results := make(chan uint32, n)
	for i := 0; i < n; i++ {
		go func() {
			idx, err := s.ReserveUnusedLeafIndex()
			if err != nil {
				t.Error(err)
				return
			}
			results <- idx
		}()
	}

	seen := make(map[uint32]bool, n)
	for i := 0; i < n; i++ {
		idx := <-results
		if seen[idx] {
			t.Fatalf("leaf index %d reserved more than once", idx)
		}
		seen[idx] = true
	}
}
