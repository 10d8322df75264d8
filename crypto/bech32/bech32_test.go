package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestBech32EncodeDecode(t *testing.T) {
	payload, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}

	enc, err := Encode("vlt", payload)
	if err != nil {
		t.Fatal(err)
	}

	hrp, got, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if hrp != "vlt" {
		t.Fatalf("want vlt prefix, got %q", hrp)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: %x", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode("not a bech32 string"); err == nil {
		t.Fatal("expected an error")
	}
}
