package crypto

import (
	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/sha3"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
)

const (
	// HashSize is the only digest length signatures are created over.
	HashSize = 32

	// compactSigSize is the serialized form of a recoverable signature:
	// one header byte followed by the R and S scalars.
	compactSigSize = 65

	// compactSigMagic is the header offset of an uncompressed-key
	// compact signature, as produced by the reference secp256k1
	// implementations.
	compactSigMagic = 27
)

// Signature is a recoverable secp256k1 signature over a HashSize digest.
// V is the recovery id and must be in the [0, 3] range. Signatures in this
// form can be produced off-band by any standard-compliant signer and still
// recover to the same address here.
type Signature struct {
	R [32]byte
	S [32]byte
	V uint8
}

// compact returns the header-first serialized form understood by the
// underlying curve implementation.
func (s Signature) compact() []byte {
	raw := make([]byte, compactSigSize)
	raw[0] = compactSigMagic + s.V
	copy(raw[1:33], s.R[:])
	copy(raw[33:], s.S[:])
	return raw
}

// ParseSignature deserializes a header-first 65 byte compact signature.
func ParseSignature(raw []byte) (Signature, error) {
	var sig Signature
	if len(raw) != compactSigSize {
		return sig, errors.ErrSignature.Newf("compact signature must be %d bytes, got %d", compactSigSize, len(raw))
	}
	if raw[0] < compactSigMagic {
		return sig, errors.ErrSignature.Newf("invalid header byte %d", raw[0])
	}
	sig.V = raw[0] - compactSigMagic
	copy(sig.R[:], raw[1:33])
	copy(sig.S[:], raw[33:])
	return sig, nil
}

// RecoverAddress returns the address of the signer that produced given
// signature over given digest. It is deterministic and side-effect free.
// A malformed signature or digest is rejected with a signature error.
func RecoverAddress(hash []byte, sig Signature) (mvault.Address, error) {
	if len(hash) != HashSize {
		return nil, errors.ErrSignature.Newf("digest must be %d bytes, got %d", HashSize, len(hash))
	}
	if sig.V > 3 {
		return nil, errors.ErrSignature.Newf("recovery id out of range: %d", sig.V)
	}
	pub, _, err := btcec.RecoverCompact(btcec.S256(), sig.compact(), hash)
	if err != nil {
		return nil, errors.Wrap(errors.ErrSignature, err.Error())
	}
	return PubKeyAddress(pub), nil
}

// PubKeyAddress derives the address of a public key: the last
// mvault.AddressLength bytes of the keccak-256 digest of the uncompressed
// curve point, without the format prefix. This reproduces the addressing
// used by off-band signers bit-for-bit.
func PubKeyAddress(pub *btcec.PublicKey) mvault.Address {
	raw := pub.SerializeUncompressed()
	digest := Keccak256(raw[1:])
	return mvault.Address(digest[HashSize-mvault.AddressLength:])
}

// Keccak256 computes the legacy keccak-256 digest of the concatenation of
// all given byte slices.
func Keccak256(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

// PrivateKey wraps a secp256k1 private key with signing that produces
// recoverable signatures.
type PrivateKey struct {
	key *btcec.PrivateKey
}

// GenPrivateKey returns a random new private key.
func GenPrivateKey() *PrivateKey {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		panic(err)
	}
	return &PrivateKey{key: key}
}

// PrivateKeyFromSeed will deterministically generate a private key from a
// given seed. Use if you have a strong source of external randomness, or
// for deterministic keys in test cases.
func PrivateKeyFromSeed(seed []byte) *PrivateKey {
	digest := Keccak256(seed)
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), digest)
	return &PrivateKey{key: key}
}

// Sign returns a recoverable signature over the given digest.
func (k *PrivateKey) Sign(hash []byte) (Signature, error) {
	if len(hash) != HashSize {
		return Signature{}, errors.ErrSignature.Newf("digest must be %d bytes, got %d", HashSize, len(hash))
	}
	raw, err := btcec.SignCompact(btcec.S256(), k.key, hash, false)
	if err != nil {
		return Signature{}, errors.Wrap(errors.ErrSignature, err.Error())
	}
	return ParseSignature(raw)
}

// PublicKey returns the corresponding public key.
func (k *PrivateKey) PublicKey() *btcec.PublicKey {
	return k.key.PubKey()
}

// Address returns the address of the corresponding public key.
func (k *PrivateKey) Address() mvault.Address {
	return PubKeyAddress(k.PublicKey())
}
