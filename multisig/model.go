package multisig

import (
	"github.com/tendermint/go-amino"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
	"github.com/mvault/mvault/errors"
)

// To avoid burning CPU on quorum scans, this is the maximum number of
// owners allowed to be registered at once.
const maxOwners = 100

// codec serializes every record persisted by the vault, and the governance
// message envelope carried by self-targeted transactions.
var codec = amino.NewCodec()

func init() {
	codec.RegisterInterface((*Msg)(nil), nil)
	codec.RegisterConcrete(&AddOwnerMsg{}, "multisig/add_owner", nil)
	codec.RegisterConcrete(&RemoveOwnerMsg{}, "multisig/remove_owner", nil)
	codec.RegisterConcrete(&UpdateRequiredMsg{}, "multisig/update_required", nil)
}

// Transaction is a proposed action awaiting or having received quorum
// approval. It is owned exclusively by the vault's store; the Executed
// flag transitions false to true at most once and is committed before the
// external effect runs.
type Transaction struct {
	Destination mvault.Address
	Value       coin.Coin
	Payload     []byte
	Nonce       uint64
	Executed    bool
}

// ID returns the content hash identifying this transaction.
func (t *Transaction) ID() TransactionID {
	return newTransactionID(t.Destination, t.Value, t.Payload, t.Nonce)
}

// Validate ensures the transaction tuple can be proposed.
func (t *Transaction) Validate() error {
	if t.Destination.IsEmpty() {
		return errors.Wrap(ErrNullDestination, "destination")
	}
	if err := t.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !t.Value.IsZero() {
		if err := t.Value.Validate(); err != nil {
			return errors.Wrap(err, "value")
		}
		if !t.Value.IsNonNegative() {
			return errors.ErrMsg.New("negative value")
		}
	}
	return nil
}

// Clone provides an independent copy of a transaction.
func (t *Transaction) Clone() *Transaction {
	payload := make([]byte, len(t.Payload))
	copy(payload, t.Payload)
	dest := make(mvault.Address, len(t.Destination))
	copy(dest, t.Destination)
	return &Transaction{
		Destination: dest,
		Value:       t.Value.Clone(),
		Payload:     payload,
		Nonce:       t.Nonce,
		Executed:    t.Executed,
	}
}

// ownerRecord is the persisted form of the owner set.
type ownerRecord struct {
	Owners   []mvault.Address
	Required uint32
}

// OwnerSet holds the registered owners and the quorum threshold. Owners
// are kept both as an ordered sequence (for enumeration and quorum scans)
// and as an index (for constant time membership tests). The two structures
// always agree: every entry of the sequence has its position recorded in
// the index and nothing else is in the index.
//
// Removal swaps the last element into the removed slot, so enumeration
// order is not preserved across removals.
type OwnerSet struct {
	owners   []mvault.Address
	index    map[string]int
	required uint32
}

// newOwnerSet validates and indexes a genesis owner configuration.
func newOwnerSet(owners []mvault.Address, required uint32) (*OwnerSet, error) {
	switch n := len(owners); {
	case n == 0:
		return nil, errors.Wrap(ErrInvalidQuorum, "no owners")
	case n > maxOwners:
		return nil, errors.ErrMsg.Newf("too many owners: %d", n)
	}

	s := &OwnerSet{
		index: make(map[string]int, len(owners)),
	}
	for _, o := range owners {
		if err := o.Validate(); err != nil {
			return nil, errors.Wrapf(err, "owner %s", o)
		}
		if o.IsEmpty() {
			return nil, errors.ErrInput.New("null owner")
		}
		if err := s.Add(o); err != nil {
			return nil, err
		}
	}
	if err := s.SetRequired(required); err != nil {
		return nil, err
	}
	return s, nil
}

// Contains returns true iff given identity is a current owner.
func (s *OwnerSet) Contains(o mvault.Address) bool {
	_, ok := s.index[string(o)]
	return ok
}

// Len returns the number of registered owners.
func (s *OwnerSet) Len() int {
	return len(s.owners)
}

// Required returns the quorum threshold.
func (s *OwnerSet) Required() uint32 {
	return s.required
}

// Owners returns a copy of the ordered owner sequence.
func (s *OwnerSet) Owners() []mvault.Address {
	res := make([]mvault.Address, len(s.owners))
	for i, o := range s.owners {
		cp := make(mvault.Address, len(o))
		copy(cp, o)
		res[i] = cp
	}
	return res
}

// Add registers a new owner at the end of the sequence.
func (s *OwnerSet) Add(o mvault.Address) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if s.Contains(o) {
		return errors.Wrapf(ErrDuplicateOwner, "owner %s", o)
	}
	if len(s.owners) >= maxOwners {
		return errors.ErrState.Newf("too many owners: %d", len(s.owners)+1)
	}
	s.index[string(o)] = len(s.owners)
	s.owners = append(s.owners, o)
	return nil
}

// Remove deletes an owner, swapping the last element into its slot. If the
// quorum threshold exceeds the shrunk owner count it is lowered to the new
// count, so the set never becomes impossible to satisfy. Removing the last
// owner is rejected as it would leave the vault dead.
func (s *OwnerSet) Remove(o mvault.Address) error {
	pos, ok := s.index[string(o)]
	if !ok {
		return errors.Wrapf(ErrUnknownOwner, "owner %s", o)
	}
	if len(s.owners) == 1 {
		return errors.Wrap(ErrInvalidQuorum, "cannot remove the last owner")
	}

	last := len(s.owners) - 1
	moved := s.owners[last]
	s.owners[pos] = moved
	s.index[string(moved)] = pos
	s.owners = s.owners[:last]
	delete(s.index, string(o))

	if s.required > uint32(len(s.owners)) {
		s.required = uint32(len(s.owners))
	}
	return nil
}

// SetRequired updates the quorum threshold, enforcing
// 1 <= required <= owner count.
func (s *OwnerSet) SetRequired(required uint32) error {
	if required < 1 || required > uint32(len(s.owners)) {
		return errors.Wrapf(ErrInvalidQuorum, "%d of %d", required, len(s.owners))
	}
	s.required = required
	return nil
}

// record returns the persisted form of the set.
func (s *OwnerSet) record() *ownerRecord {
	return &ownerRecord{
		Owners:   s.Owners(),
		Required: s.required,
	}
}

// ownerSetFromRecord rebuilds the indexed set from its persisted form.
func ownerSetFromRecord(rec *ownerRecord) (*OwnerSet, error) {
	return newOwnerSet(rec.Owners, rec.Required)
}
