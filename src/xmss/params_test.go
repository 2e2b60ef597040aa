package xmss

import (
	"errors"
	"testing"
)

func TestLookupParamsKnownOids(t *testing.T) {
	cases := []struct {
		oid            Oid
		n, w, len1, len2, length, height int
		hashName       string
	}{
		{OidXMSSSHA2_10_256, 32, 16, 64, 3, 67, 10, HashSHA2_256},
		{OidXMSSSHA2_16_256, 32, 16, 64, 3, 67, 16, HashSHA2_256},
		{OidXMSSSHA2_20_256, 32, 16, 64, 3, 67, 20, HashSHA2_256},
		{OidXMSSSHA2_10_512, 64, 16, 128, 3, 131, 10, HashSHA2_512},
		{OidXMSSSHAKE_10_256, 32, 16, 64, 3, 67, 10, HashSHAKE128},
		{OidXMSSSHAKE_10_512, 64, 16, 128, 3, 131, 10, HashSHAKE256},
	}

	for _, c := range cases {
		p, err := LookupParams(c.oid)
		if err != nil {
			t.Fatalf("LookupParams(%s): %v", c.oid, err)
		}
		if p.N != c.n || p.W != c.w || p.Len1 != c.len1 || p.Len2 != c.len2 ||
			p.Len != c.length || p.TreeHeight != c.height || p.HashName != c.hashName {
			t.Errorf("LookupParams(%s) = %+v, want n=%d w=%d len1=%d len2=%d len=%d h=%d hash=%s",
				c.oid, p, c.n, c.w, c.len1, c.len2, c.length, c.height, c.hashName)
		}
	}
}

func TestLookupParamsUnknownOid(t *testing.T) {
	_, err := LookupParams(Oid("not-a-real-oid"))
	if !errors.Is(err, ErrInvalidOid) {
		t.Fatalf("expected ErrInvalidOid, got %v", err)
	}
}

func TestToByte(t *testing.T) {
	cases := []struct {
		x    uint64
		k    int
		want []byte
	}{
		{0, 4, []byte{0, 0, 0, 0}},
		{1, 4, []byte{0, 0, 0, 1}},
		{256, 2, []byte{1, 0}},
		{0, 32, make([]byte, 32)},
	}
	for _, c := range cases {
		got := toByte(c.x, c.k)
		if len(got) != len(c.want) {
			t.Fatalf("toByte(%d,%d) length = %d, want %d", c.x, c.k, len(got), len(c.want))
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("toByte(%d,%d) = %x, want %x", c.x, c.k, got, c.want)
				break
			}
		}
	}
}
