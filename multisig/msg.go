package multisig

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/errors"
)

const (
	pathAddOwnerMsg       = "multisig/add_owner"
	pathRemoveOwnerMsg    = "multisig/remove_owner"
	pathUpdateRequiredMsg = "multisig/update_required"
)

// Msg is a governance message carried as the payload of a transaction
// whose destination is the vault's own address. It is applied through the
// standard quorum pipeline at execution time; there is no direct entry
// point into the owner registry.
type Msg interface {
	Path() string
	Validate() error
}

// AddOwnerMsg registers a new owner.
type AddOwnerMsg struct {
	Owner mvault.Address
}

var _ Msg = (*AddOwnerMsg)(nil)

// Path fulfills the Msg interface to allow routing.
func (*AddOwnerMsg) Path() string {
	return pathAddOwnerMsg
}

// Validate enforces the owner address is well formed.
func (m *AddOwnerMsg) Validate() error {
	if m.Owner.IsEmpty() {
		return errors.ErrMsg.New("null owner")
	}
	return errors.Wrap(m.Owner.Validate(), "owner")
}

// RemoveOwnerMsg removes a registered owner. If the quorum threshold would
// exceed the shrunk owner count, it is lowered automatically.
type RemoveOwnerMsg struct {
	Owner mvault.Address
}

var _ Msg = (*RemoveOwnerMsg)(nil)

// Path fulfills the Msg interface to allow routing.
func (*RemoveOwnerMsg) Path() string {
	return pathRemoveOwnerMsg
}

// Validate enforces the owner address is well formed.
func (m *RemoveOwnerMsg) Validate() error {
	if m.Owner.IsEmpty() {
		return errors.ErrMsg.New("null owner")
	}
	return errors.Wrap(m.Owner.Validate(), "owner")
}

// UpdateRequiredMsg changes the quorum threshold.
type UpdateRequiredMsg struct {
	Required uint32
}

var _ Msg = (*UpdateRequiredMsg)(nil)

// Path fulfills the Msg interface to allow routing.
func (*UpdateRequiredMsg) Path() string {
	return pathUpdateRequiredMsg
}

// Validate enforces threshold boundaries that do not depend on the current
// owner count. The upper bound is checked against the owner set when the
// message is applied.
func (m *UpdateRequiredMsg) Validate() error {
	if m.Required == 0 {
		return errors.Wrap(ErrInvalidQuorum, "required must be greater than 0")
	}
	return nil
}

// EncodeMsg serializes a governance message for use as a transaction
// payload.
func EncodeMsg(msg Msg) ([]byte, error) {
	if msg == nil {
		return nil, errors.ErrMsg.New("nil message")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	raw, err := codec.MarshalBinaryBare(msg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return raw, nil
}

// DecodeMsg deserializes a governance message from a transaction payload.
func DecodeMsg(payload []byte) (Msg, error) {
	var msg Msg
	if err := codec.UnmarshalBinaryBare(payload, &msg); err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "malformed governance payload: %s", err)
	}
	return msg, nil
}
