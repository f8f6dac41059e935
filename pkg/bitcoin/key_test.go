package bitcoin

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestKey(t *testing.T) {
	pk := "619c335025c7f4012e556c2a58b2506e30b8511b53ade95ea316fd8c3286feb9"

	data, err := hex.DecodeString(pk)
	if err != nil {
		t.Fatal(err)
	}

	key, err := KeyS256FromBytes(data, TestNet)
	if err != nil {
		t.Fatal(err)
	}

	wif := "92KuV1Mtf9jTttTrw1yawobsa9uCZGbfpambH8H1Y7KfdDxxc4d"

	if key.String() != wif {
		t.Errorf("WIF encode: got %s, want %s", key.String(), wif)
	}

	reverseKey, err := DecodeKeyString(wif)
	if err != nil {
		t.Fatal(err)
	}

	if reverseKey.Network() != TestNet {
		t.Errorf("Wrong WIF network decoded")
	}

	if !bytes.Equal(reverseKey.Bytes(), key.Bytes()) {
		t.Errorf("WIF decode: got %x, want %x", reverseKey.Bytes(), key.Bytes())
	}
}

func TestSignVerify(t *testing.T) {
	key, err := GenerateKeyS256(TestNet)
	if err != nil {
		t.Fatal(err)
	}

	hash := DoubleSha256([]byte("rate observation payload"))

	sigData, err := key.Sign(hash)
	if err != nil {
		t.Fatal(err)
	}

	sig, err := DecodeSignatureBytes(sigData)
	if err != nil {
		t.Fatal(err)
	}

	if !sig.Verify(hash, key.PublicKey()) {
		t.Errorf("Signature did not verify under signing key")
	}

	other, err := GenerateKeyS256(TestNet)
	if err != nil {
		t.Fatal(err)
	}

	if sig.Verify(hash, other.PublicKey()) {
		t.Errorf("Signature verified under wrong key")
	}

	badHash := DoubleSha256([]byte("different payload"))
	if sig.Verify(badHash, key.PublicKey()) {
		t.Errorf("Signature verified for wrong hash")
	}
}

func TestAddressPKH(t *testing.T) {
	key, err := GenerateKeyS256(MainNet)
	if err != nil {
		t.Fatal(err)
	}

	address, err := NewAddressFromPublicKey(key.PublicKey(), MainNet)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeAddress(address.String())
	if err != nil {
		t.Fatalf("Failed to decode address %s : %s", address.String(), err)
	}

	if !decoded.Equal(address) {
		t.Errorf("Address round trip: got %s, want %s", decoded.String(), address.String())
	}

	if decoded.Network() != MainNet {
		t.Errorf("Wrong address network decoded")
	}

	hash, err := key.PublicKey().Hash()
	if err != nil {
		t.Fatal(err)
	}

	if !decoded.PKH().Equal(hash) {
		t.Errorf("Address PKH: got %s, want %s", decoded.PKH(), hash)
	}
}
