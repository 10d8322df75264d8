package multisig

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
	"github.com/mvault/mvault/crypto"
	"github.com/mvault/mvault/errors"
)

// TransactionIDLength is the size of a transaction content hash.
const TransactionIDLength = crypto.HashSize

// TransactionID is the content hash identifying a transaction. It is
// computed deterministically from the (destination, value, payload, nonce)
// tuple, so resubmitting identical parameters always yields the same ID.
//
// Off-band confirmations are signatures over this digest.
type TransactionID []byte

// Equals checks if two transaction IDs are the same.
func (id TransactionID) Equals(other TransactionID) bool {
	return bytes.Equal(id, other)
}

// Validate returns an error if the ID is not the valid size.
func (id TransactionID) Validate() error {
	if len(id) != TransactionIDLength {
		return errors.ErrInput.Newf("transaction id: %X", []byte(id))
	}
	return nil
}

// String returns a human readable hex representation.
func (id TransactionID) String() string {
	if len(id) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(id))
}

// newTransactionID computes the content hash of a transaction tuple. The
// encoding is unambiguous: fixed-size fields first, the variable length
// ticker is length-prefixed, the payload is last.
func newTransactionID(destination mvault.Address, value coin.Coin, payload []byte, nonce uint64) TransactionID {
	var fixed [8 * 4]byte
	binary.BigEndian.PutUint64(fixed[0:], uint64(value.Whole))
	binary.BigEndian.PutUint64(fixed[8:], uint64(value.Fractional))
	binary.BigEndian.PutUint64(fixed[16:], uint64(len(value.Ticker)))
	binary.BigEndian.PutUint64(fixed[24:], nonce)

	digest := crypto.Keccak256(
		destination,
		fixed[:],
		[]byte(value.Ticker),
		payload,
	)
	return TransactionID(digest)
}
