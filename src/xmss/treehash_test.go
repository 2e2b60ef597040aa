package xmss

import "testing"

func TestTreeHashHeightZeroReturnsLeaf(t *testing.T) {
	h, params := newTestHashOps(t)
	seed := make([]byte, params.N)

	gen := func(i uint32) []byte {
		leaf := make([]byte, params.N)
		leaf[0] = byte(i + 1)
		return leaf
	}

	got := treeHash(h, gen, seed, 3, 0, NewAddress())
	want := gen(3)
	if string(got) != string(want) {
		t.Errorf("treeHash at height 0 should return the raw leaf: got %x, want %x", got, want)
	}
}

func TestTreeHashMatchesManualRandHashAtHeightOne(t *testing.T) {
	h, params := newTestHashOps(t)
	seed := make([]byte, params.N)

	gen := func(i uint32) []byte {
		leaf := make([]byte, params.N)
		leaf[0] = byte(i + 1)
		return leaf
	}

	got := treeHash(h, gen, seed, 0, 1, NewAddress())

	adrs := NewAddress()
	adrs.SetType(AddressHashTree)
	adrs.SetTreeHeight(0)
	adrs.SetTreeIndex(0)
	want := randHash(h, gen(0), gen(1), &adrs, seed)

	if string(got) != string(want) {
		t.Errorf("treeHash(height=1) = %x, want randHash(leaf0,leaf1) = %x", got, want)
	}
}

func TestTreeHashPanicsOnMisalignedStart(t *testing.T) {
	h, params := newTestHashOps(t)
	seed := make([]byte, params.N)
	gen := func(i uint32) []byte { return make([]byte, params.N) }

	defer func() {
		if recover() == nil {
			t.Fatal("treeHash should panic when start is not aligned to 2^targetHeight")
		}
	}()
	treeHash(h, gen, seed, 1, 2, NewAddress())
}

func TestBuildAuthPathLength(t *testing.T) {
	h, params := newTestHashOps(t)
	seed := make([]byte, params.N)
	gen := func(i uint32) []byte {
		leaf := make([]byte, params.N)
		leaf[0] = byte(i)
		return leaf
	}

	auth := buildAuthPath(h, params, gen, seed, 0, NewAddress())
	if len(auth) != params.TreeHeight {
		t.Fatalf("buildAuthPath returned %d nodes, want %d", len(auth), params.TreeHeight)
	}
	for j, node := range auth {
		if len(node) != params.N {
			t.Errorf("auth path node %d has length %d, want %d", j, len(node), params.N)
		}
	}
}
