package xmss

import (
	"bytes"
	"testing"

	"github.com/sphinx-core/xmss/src/xmss/store"
)

func fixedSeeds(n int) (masterSeed, skPrf, publicSeed []byte) {
	masterSeed = make([]byte, n)
	skPrf = make([]byte, n)
	publicSeed = make([]byte, n)
	for i := range skPrf {
		skPrf[i] = 1
	}
	for i := range publicSeed {
		publicSeed[i] = 2
	}
	return
}

func TestNewPrivateKeyRejectsBadSeedLength(t *testing.T) {
	params, err := LookupParams(OidXMSSSHA2_10_256)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewPrivateKey(params, make([]byte, 1), make([]byte, params.N), make([]byte, params.N),
		DefaultHashProvider(), store.NewMemoryStore(1<<uint(params.TreeHeight)))
	if err == nil {
		t.Fatal("expected an error constructing a key with a wrong-length master seed")
	}
}

func TestPrivateKeyRootDeterministic(t *testing.T) {
	params, err := LookupParams(OidXMSSSHA2_10_256)
	if err != nil {
		t.Fatal(err)
	}
	masterSeed, skPrf, publicSeed := fixedSeeds(params.N)

	k1, err := NewPrivateKey(params, masterSeed, skPrf, publicSeed, DefaultHashProvider(), store.NewMemoryStore(1<<uint(params.TreeHeight)))
	if err != nil {
		t.Fatal(err)
	}
	k2, err := NewPrivateKey(params, masterSeed, skPrf, publicSeed, DefaultHashProvider(), store.NewMemoryStore(1<<uint(params.TreeHeight)))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(k1.Root(), k2.Root()) {
		t.Error("two keys built from identical seeds must produce identical roots")
	}
	if len(k1.Root()) != params.N {
		t.Errorf("root length = %d, want %d", len(k1.Root()), params.N)
	}
}

func TestReserveUnusedLeafIndexExhaustion(t *testing.T) {
	params, err := LookupParams(OidXMSSSHA2_10_256)
	if err != nil {
		t.Fatal(err)
	}
	masterSeed, skPrf, publicSeed := fixedSeeds(params.N)
	const limit = 4
	k, err := NewPrivateKey(params, masterSeed, skPrf, publicSeed, DefaultHashProvider(), store.NewMemoryStore(limit))
	if err != nil {
		t.Fatal(err)
	}

	for i := uint32(0); i < limit; i++ {
		idx, err := k.ReserveUnusedLeafIndex()
		if err != nil {
			t.Fatalf("reservation %d: unexpected error %v", i, err)
		}
		if idx != i {
			t.Fatalf("reservation %d returned index %d, want %d", i, idx, i)
		}
	}

	if _, err := k.ReserveUnusedLeafIndex(); err == nil {
		t.Fatal("expected ErrLeafExhausted after exhausting the leaf index space")
	}
}
