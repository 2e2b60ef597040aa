package xmss

import "testing"

func TestHashDomainSeparation(t *testing.T) {
	h, params := newTestHashOps(t)
	key := make([]byte, params.N)
	m := make([]byte, params.N)
	for i := range m {
		m[i] = byte(i)
	}

	f := h.F(key, m)
	prf := h.PRF(key, m)
	if string(f) == string(prf) {
		t.Error("F and PRF must differ on identical inputs (domain separation)")
	}
}

func TestPRFDeterministic(t *testing.T) {
	h, params := newTestHashOps(t)
	key := make([]byte, params.N)
	m := make([]byte, 32)
	a := h.PRF(key, m)
	b := h.PRF(key, m)
	if string(a) != string(b) {
		t.Error("PRF must be deterministic for identical (key, m)")
	}
}

func TestHMsgIncremental(t *testing.T) {
	h, params := newTestHashOps(t)
	r := make([]byte, params.N)
	root := make([]byte, params.N)
	idx := make([]byte, params.N)

	h.HMsgInit(r, root, idx)
	h.HMsgUpdate([]byte("hello "))
	h.HMsgUpdate([]byte("world"))
	incremental := h.HMsgFinal()

	h.HMsgInit(r, root, idx)
	h.HMsgUpdate([]byte("hello world"))
	oneShot := h.HMsgFinal()

	if string(incremental) != string(oneShot) {
		t.Error("HMsgUpdate split across two calls must match one contiguous call")
	}
}

func TestSHAKEProviderOutputSizes(t *testing.T) {
	p := SHAKEProvider{}
	if p.OutputSize(HashSHAKE128) != 32 {
		t.Errorf("SHAKE128 output size = %d, want 32", p.OutputSize(HashSHAKE128))
	}
	if p.OutputSize(HashSHAKE256) != 64 {
		t.Errorf("SHAKE256 output size = %d, want 64", p.OutputSize(HashSHAKE256))
	}
	h, ok := p.New(HashSHAKE256)
	if !ok {
		t.Fatal("SHAKEProvider should support SHAKE256")
	}
	h.Write([]byte("test"))
	if len(h.Sum(nil)) != 64 {
		t.Errorf("SHAKE256 Sum length = %d, want 64", len(h.Sum(nil)))
	}
}

func TestNewHashOpsRejectsUnsupportedHash(t *testing.T) {
	params := Params{N: 32, HashName: "not-a-hash"}
	_, err := NewHashOps(params, DefaultHashProvider())
	if err == nil {
		t.Fatal("expected error constructing HashOps with an unsupported hash name")
	}
}
