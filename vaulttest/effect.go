package vaulttest

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
)

// Invocation records one external effect performed by the engine.
type Invocation struct {
	Destination mvault.Address
	Value       coin.Coin
	Payload     []byte
}

// EffectRecorder satisfies the engine's Effector interface and remembers
// every successful invocation. Set Err to make all invocations fail; a
// failing invocation is not recorded, matching the all-or-nothing
// contract.
//
// This package must not import the engine itself so that the engine's own
// tests can use these fixtures.
type EffectRecorder struct {
	Invocations []Invocation
	Err         error
}

// Invoke implements the Effector interface.
func (r *EffectRecorder) Invoke(destination mvault.Address, value coin.Coin, payload []byte) error {
	if r.Err != nil {
		return r.Err
	}
	r.Invocations = append(r.Invocations, Invocation{
		Destination: destination,
		Value:       value,
		Payload:     payload,
	})
	return nil
}
