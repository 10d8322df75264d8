package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec"

	"github.com/mvault/mvault/errors"
)

// Address derivation must match the reference implementations bit-for-bit,
// so signatures produced off-band recover to the expected identity. The
// expected value is the widely published address of the private key 1.
func TestPubKeyAddressReference(t *testing.T) {
	one := make([]byte, 32)
	one[31] = 1
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), one)

	got := PubKeyAddress(key.PubKey())
	want, err := hex.DecodeString("7e5f4552091a69125d5dfcb7b8c2659029395bdf")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equals(want) {
		t.Fatalf("want %X, got %s", want, got)
	}
}

func TestSignRecoverRoundTrip(t *testing.T) {
	key := PrivateKeyFromSeed([]byte("test-seed"))
	digest := Keccak256([]byte("payload"))

	sig, err := key.Sign(digest)
	if err != nil {
		t.Fatal(err)
	}

	addr, err := RecoverAddress(digest, sig)
	if err != nil {
		t.Fatal(err)
	}
	if !addr.Equals(key.Address()) {
		t.Fatalf("recovered %s, signer is %s", addr, key.Address())
	}

	// A different digest recovers a different (or no) identity.
	other := Keccak256([]byte("other payload"))
	if addr, err := RecoverAddress(other, sig); err == nil && addr.Equals(key.Address()) {
		t.Fatal("signature must not verify against another digest")
	}
}

func TestRecoverAddressMalformed(t *testing.T) {
	key := PrivateKeyFromSeed([]byte("malformed"))
	digest := Keccak256([]byte("payload"))
	sig, err := key.Sign(digest)
	if err != nil {
		t.Fatal(err)
	}

	cases := map[string]struct {
		hash []byte
		sig  Signature
	}{
		"short digest": {
			hash: digest[:16],
			sig:  sig,
		},
		"recovery id out of range": {
			hash: digest,
			sig:  Signature{R: sig.R, S: sig.S, V: 4},
		},
		"zero signature": {
			hash: digest,
			sig:  Signature{},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, err := RecoverAddress(tc.hash, tc.sig); !errors.ErrSignature.Is(err) {
				t.Fatalf("want a signature error, got %+v", err)
			}
		})
	}
}

func TestParseSignature(t *testing.T) {
	key := GenPrivateKey()
	digest := Keccak256([]byte("serialize me"))
	sig, err := key.Sign(digest)
	if err != nil {
		t.Fatal(err)
	}

	again, err := ParseSignature(sig.compact())
	if err != nil {
		t.Fatal(err)
	}
	if again != sig {
		t.Fatalf("round trip changed the signature: %v != %v", again, sig)
	}

	if _, err := ParseSignature([]byte("too short")); !errors.ErrSignature.Is(err) {
		t.Fatalf("want a signature error, got %+v", err)
	}
}

func TestDeterministicSeed(t *testing.T) {
	a := PrivateKeyFromSeed([]byte("seed"))
	b := PrivateKeyFromSeed([]byte("seed"))
	if !a.Address().Equals(b.Address()) {
		t.Fatal("same seed must derive the same key")
	}
	c := PrivateKeyFromSeed([]byte("another seed"))
	if a.Address().Equals(c.Address()) {
		t.Fatal("different seeds must derive different keys")
	}
}
