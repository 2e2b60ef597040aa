package xmss

import "testing"

// TestVerify_AcceptsGenuineSignature: for any message and leaf, a
// signature produced by Sign must verify against the signer's public
// root.
func TestVerify_AcceptsGenuineSignature(t *testing.T) {
	k := newFixedKey(t, 1<<10)
	pub := k.PublicKey()

	for _, msg := range [][]byte{nil, []byte("a"), []byte("a longer message entirely")} {
		signer, err := NewSigner(k, DefaultHashProvider(), nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := signer.Update(msg); err != nil {
			t.Fatal(err)
		}
		sig, err := signer.Sign(CryptoRand{})
		if err != nil {
			t.Fatal(err)
		}

		h, err := NewHashOps(k.XMSSParameters(), DefaultHashProvider())
		if err != nil {
			t.Fatal(err)
		}
		if !Verify(h, k.XMSSParameters(), pub, msg, sig) {
			t.Errorf("Verify failed for message %q signed at leaf %d", msg, sig.Index)
		}
	}
}

// TestVerify_RejectsTamperedSignature: altering any single byte of
// the encoded signature must make verification return false.
func TestVerify_RejectsTamperedSignature(t *testing.T) {
	k := newFixedKey(t, 1<<10)
	pub := k.PublicKey()
	params := k.XMSSParameters()

	signer, err := NewSigner(k, DefaultHashProvider(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := signer.Update(nil); err != nil {
		t.Fatal(err)
	}
	sig, err := signer.Sign(CryptoRand{})
	if err != nil {
		t.Fatal(err)
	}

	raw, err := sig.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	for _, pos := range []int{0, 4, len(raw) / 2, len(raw) - 1} {
		mutated := append([]byte(nil), raw...)
		mutated[pos] ^= 0x01
		mutatedSig, err := ParseSignature(params, mutated)
		if err != nil {
			t.Fatalf("ParseSignature on mutated byte %d: %v", pos, err)
		}

		h, err := NewHashOps(params, DefaultHashProvider())
		if err != nil {
			t.Fatal(err)
		}
		if Verify(h, params, pub, nil, mutatedSig) {
			t.Errorf("Verify should fail after flipping byte %d", pos)
		}
	}
}
