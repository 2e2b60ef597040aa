package xmss

import "testing"

// TestBaseW_UnpacksMostSignificantNibbleFirst: X = 0x12 0x34,
// out_len=4, w=16 must unpack to digits [1,2,3,4].
func TestBaseW_UnpacksMostSignificantNibbleFirst(t *testing.T) {
	digits := baseW([]byte{0x12, 0x34}, 16, 4)
	want := []int{1, 2, 3, 4}
	if len(digits) != len(want) {
		t.Fatalf("baseW returned %d digits, want %d", len(digits), len(want))
	}
	for i := range want {
		if digits[i] != want[i] {
			t.Errorf("baseW digit %d = %d, want %d", i, digits[i], want[i])
		}
	}
}

// TestAppendChecksum_EncodesComplementSum: the checksum over
// [1,2,3,4] with w=16, len2=3 must encode to [0,3,2], giving a final
// digit string of [1,2,3,4,0,3,2].
func TestAppendChecksum_EncodesComplementSum(t *testing.T) {
	params := Params{W: 16, Len1: 4, Len2: 3}
	got := appendChecksum([]int{1, 2, 3, 4}, params)
	want := []int{1, 2, 3, 4, 0, 3, 2}
	if len(got) != len(want) {
		t.Fatalf("appendChecksum returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("appendChecksum digit %d = %d, want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestWotsSignAndRecoverPublicKeyMatch(t *testing.T) {
	params, err := LookupParams(OidXMSSSHA2_10_256)
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewHashOps(params, DefaultHashProvider())
	if err != nil {
		t.Fatal(err)
	}

	seed := make([]byte, params.N)
	masterSeed := make([]byte, params.N)
	for i := range masterSeed {
		masterSeed[i] = byte(i)
	}

	adrs := NewAddress()
	priv := wotsKeygen(h, params, masterSeed, 0, adrs)
	pub := wotsPublicKeyFromPrivate(h, params, priv, adrs, seed)

	msgHash := make([]byte, params.N)
	for i := range msgHash {
		msgHash[i] = byte(255 - i)
	}

	sig := wotsSign(h, params, msgHash, priv, adrs, seed)
	recovered, err := WotsPublicKeyFromSignature(h, params, msgHash, sig, adrs, seed)
	if err != nil {
		t.Fatalf("WotsPublicKeyFromSignature: %v", err)
	}

	if len(recovered) != len(pub) {
		t.Fatalf("recovered pk has %d elements, want %d", len(recovered), len(pub))
	}
	for i := range pub {
		if string(recovered[i]) != string(pub[i]) {
			t.Errorf("recovered pk element %d does not match generated public key", i)
		}
	}
}

func TestWotsPublicKeyFromSignatureRejectsBadLength(t *testing.T) {
	params, err := LookupParams(OidXMSSSHA2_10_256)
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewHashOps(params, DefaultHashProvider())
	if err != nil {
		t.Fatal(err)
	}
	_, err = WotsPublicKeyFromSignature(h, params, make([]byte, params.N), WotsKeysig{}, NewAddress(), make([]byte, params.N))
	if err == nil {
		t.Fatal("expected ErrInvalidSignatureLength for an empty signature")
	}
}
