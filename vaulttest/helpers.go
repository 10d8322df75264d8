// Package vaulttest provides deterministic fixtures and test doubles for
// exercising the vault in tests.
package vaulttest

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/crypto"
)

var serial int64

// NewAddress returns a unique, valid address. Addresses created by this
// function are never equal to each other or to a key-derived address.
func NewAddress() mvault.Address {
	n := atomic.AddInt64(&serial, 1)
	addr := make(mvault.Address, mvault.AddressLength)
	copy(addr, "seq:")
	binary.BigEndian.PutUint64(addr[mvault.AddressLength-8:], uint64(n))
	return addr
}

// NewAddresses returns n unique addresses.
func NewAddresses(n int) []mvault.Address {
	res := make([]mvault.Address, n)
	for i := range res {
		res[i] = NewAddress()
	}
	return res
}

// NewKey returns a unique deterministic private key. Use it when a test
// needs signatures that recover to a known address.
func NewKey() *crypto.PrivateKey {
	n := atomic.AddInt64(&serial, 1)
	return crypto.PrivateKeyFromSeed([]byte(fmt.Sprintf("vaulttest-key-%d", n)))
}

// NewKeys returns n unique deterministic private keys.
func NewKeys(n int) []*crypto.PrivateKey {
	res := make([]*crypto.PrivateKey, n)
	for i := range res {
		res[i] = NewKey()
	}
	return res
}

// KeyAddresses returns the addresses of all given keys, in order.
func KeyAddresses(keys []*crypto.PrivateKey) []mvault.Address {
	res := make([]mvault.Address, len(keys))
	for i, k := range keys {
		res[i] = k.Address()
	}
	return res
}
