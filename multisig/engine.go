package multisig

import (
	"encoding/binary"

	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
	"github.com/mvault/mvault/crypto"
	"github.com/mvault/mvault/errors"
)

// Effector performs the external effect of an executed transaction:
// invoke the destination identity with the given value and payload. An
// implementation must be all-or-nothing: when it returns an error it must
// have left no partial effect behind, as the engine will mark the
// transaction pending again.
//
// The effect may call back into the vault. Such re-entrant calls observe
// the triggering transaction as already executed.
type Effector interface {
	Invoke(destination mvault.Address, value coin.Coin, payload []byte) error
}

// EffectorFunc turns a plain function into an Effector.
type EffectorFunc func(destination mvault.Address, value coin.Coin, payload []byte) error

var _ Effector = EffectorFunc(nil)

// Invoke calls the wrapped function.
func (fn EffectorFunc) Invoke(destination mvault.Address, value coin.Coin, payload []byte) error {
	return fn(destination, value, payload)
}

// Storage layout. Single-value records are amino encoded, the submission
// counter is a big-endian uint64. Confirmation flags are one key per
// (transaction, owner) pair.
var (
	ownersKey  = []byte("_owners")
	balanceKey = []byte("_balance")
	countKey   = []byte("_txcount")
)

func transactionKey(id TransactionID) []byte {
	return append([]byte("tx:"), id...)
}

func indexKey(n uint64) []byte {
	key := make([]byte, 4+8)
	copy(key, "txi:")
	binary.BigEndian.PutUint64(key[4:], n)
	return key
}

// confirmKey is unambiguous without separators because both the
// transaction ID and the owner address are fixed size.
func confirmKey(id TransactionID, owner mvault.Address) []byte {
	key := make([]byte, 0, 3+TransactionIDLength+mvault.AddressLength)
	key = append(key, "cf:"...)
	key = append(key, id...)
	return append(key, owner...)
}

// Vault is the authorization and execution engine. It exclusively owns all
// state in its store; callers mutate it only through the methods below.
// The host must serialize all state-mutating calls.
type Vault struct {
	db      mvault.CacheableKVStore
	address mvault.Address
	ticker  string
	effect  Effector
	log     *EventLog
}

// NewVault initializes a vault with the genesis owner set and quorum
// threshold, backed by the given store. The address is the vault's own
// identity: transactions targeting it are dispatched into the owner
// registry instead of the external effect.
func NewVault(
	db mvault.CacheableKVStore,
	address mvault.Address,
	ticker string,
	effect Effector,
	owners []mvault.Address,
	required uint32,
) (*Vault, error) {
	if err := address.Validate(); err != nil {
		return nil, errors.Wrap(err, "vault address")
	}
	if address.IsEmpty() {
		return nil, errors.ErrInput.New("null vault address")
	}
	if !coin.IsCC(ticker) {
		return nil, errors.ErrCurrency.Newf("invalid ticker: %s", ticker)
	}
	if effect == nil {
		return nil, errors.ErrInput.New("nil effector")
	}

	set, err := newOwnerSet(owners, required)
	if err != nil {
		return nil, err
	}

	if has, err := db.Has(ownersKey); err != nil {
		return nil, errors.Wrap(err, "store")
	} else if has {
		return nil, errors.ErrState.New("vault already initialized")
	}

	cache := db.CacheWrap()
	if err := saveOwners(cache, set); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := saveBalance(cache, coin.NewCoin(0, 0, ticker)); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "commit genesis state")
	}

	return &Vault{
		db:      db,
		address: address,
		ticker:  ticker,
		effect:  effect,
		log:     NewEventLog(),
	}, nil
}

// OpenVault attaches to a store that already carries vault state, for
// example after a process restart on a persistent backend.
func OpenVault(
	db mvault.CacheableKVStore,
	address mvault.Address,
	ticker string,
	effect Effector,
) (*Vault, error) {
	if err := address.Validate(); err != nil {
		return nil, errors.Wrap(err, "vault address")
	}
	if !coin.IsCC(ticker) {
		return nil, errors.ErrCurrency.Newf("invalid ticker: %s", ticker)
	}
	if effect == nil {
		return nil, errors.ErrInput.New("nil effector")
	}
	if _, err := loadOwners(db); err != nil {
		return nil, err
	}
	return &Vault{
		db:      db,
		address: address,
		ticker:  ticker,
		effect:  effect,
		log:     NewEventLog(),
	}, nil
}

// Address returns the vault's own identity.
func (v *Vault) Address() mvault.Address {
	return v.address
}

// Events returns the vault's observable notification log.
func (v *Vault) Events() *EventLog {
	return v.log
}

// Submit proposes a transaction and confirms it as the caller. Submitting
// an identical tuple again returns the existing transaction ID and only
// records the additional confirmation.
func (v *Vault) Submit(caller mvault.Address, destination mvault.Address, value coin.Coin, payload []byte, nonce uint64) (TransactionID, error) {
	set, err := loadOwners(v.db)
	if err != nil {
		return nil, err
	}
	if !set.Contains(caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}

	id, err := v.ensureTransaction(destination, value, payload, nonce)
	if err != nil {
		return nil, err
	}
	return id, v.confirmOwner(caller, id)
}

// SubmitBySignatures proposes a transaction and confirms it from off-band
// signatures. The caller needs no authority of its own: every signature
// must recover to a current owner or the whole call fails before any state
// change.
func (v *Vault) SubmitBySignatures(destination mvault.Address, value coin.Coin, payload []byte, nonce uint64, sigs []crypto.Signature) (TransactionID, error) {
	tx := &Transaction{
		Destination: destination,
		Value:       value,
		Payload:     payload,
		Nonce:       nonce,
	}
	if err := v.validateProposal(tx); err != nil {
		return nil, err
	}
	id := tx.ID()

	set, err := loadOwners(v.db)
	if err != nil {
		return nil, err
	}
	signers, err := recoverSigners(set, id, sigs)
	if err != nil {
		return nil, err
	}

	if _, err := v.ensureTransaction(destination, value, payload, nonce); err != nil {
		return nil, err
	}
	return id, v.confirmSigners(signers, id)
}

// Confirm records the caller's approval of a transaction and executes it
// if this reaches the quorum. Confirming an executed transaction is
// accepted and recorded but has no further effect.
func (v *Vault) Confirm(caller mvault.Address, id TransactionID) error {
	set, err := loadOwners(v.db)
	if err != nil {
		return err
	}
	if !set.Contains(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}
	return v.confirmOwner(caller, id)
}

// ConfirmBySignatures records approvals recovered from off-band
// signatures. The whole batch is validated before any confirmation is
// recorded: one signature recovering to a non-owner rejects the entire
// call. Within a valid batch, re-confirming is harmless.
func (v *Vault) ConfirmBySignatures(id TransactionID, sigs []crypto.Signature) error {
	tx, err := getTransaction(v.db, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}

	set, err := loadOwners(v.db)
	if err != nil {
		return err
	}
	signers, err := recoverSigners(set, id, sigs)
	if err != nil {
		return err
	}
	return v.confirmSigners(signers, id)
}

// Revoke withdraws the caller's confirmation of a pending transaction.
func (v *Vault) Revoke(caller mvault.Address, id TransactionID) error {
	set, err := loadOwners(v.db)
	if err != nil {
		return err
	}
	if !set.Contains(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", caller)
	}

	tx, err := getTransaction(v.db, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}

	key := confirmKey(id, caller)
	if has, err := v.db.Has(key); err != nil {
		return errors.Wrap(err, "store")
	} else if !has {
		return errors.Wrapf(ErrNotConfirmed, "owner %s", caller)
	}
	if tx.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "transaction %s", id)
	}
	if err := v.db.Delete(key); err != nil {
		return errors.Wrap(err, "store")
	}
	v.log.emit(RevocationEvent{ID: id, Owner: caller})
	return nil
}

// Execute retries the execution of a pending transaction. Anyone may
// trigger it; authorization comes from the recorded confirmations. It is a
// no-op success when the quorum is not met.
func (v *Vault) Execute(id TransactionID) error {
	tx, err := getTransaction(v.db, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}
	if tx.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "transaction %s", id)
	}
	return v.maybeExecute(id)
}

// Deposit accepts bare value with no accompanying call. It is not a
// governed transaction: no quorum is required and only a notification is
// emitted.
func (v *Vault) Deposit(from mvault.Address, amount coin.Coin) error {
	if err := from.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.ErrMsg.New("deposit must be positive")
	}
	if amount.Ticker != v.ticker {
		return errors.ErrCurrency.Newf("deposit in %s, vault pools %s", amount.Ticker, v.ticker)
	}

	balance, err := loadBalance(v.db, v.ticker)
	if err != nil {
		return err
	}
	balance, err = balance.Add(amount)
	if err != nil {
		return err
	}
	if err := saveBalance(v.db, balance); err != nil {
		return err
	}
	v.log.emit(DepositEvent{From: from, Amount: amount})
	return nil
}

// ------------------------------------------------------------------
// queries

// IsOwner returns true iff given identity is a current owner.
func (v *Vault) IsOwner(addr mvault.Address) (bool, error) {
	set, err := loadOwners(v.db)
	if err != nil {
		return false, err
	}
	return set.Contains(addr), nil
}

// Owners returns the ordered owner sequence.
func (v *Vault) Owners() ([]mvault.Address, error) {
	set, err := loadOwners(v.db)
	if err != nil {
		return nil, err
	}
	return set.Owners(), nil
}

// RequiredSignatures returns the quorum threshold.
func (v *Vault) RequiredSignatures() (uint32, error) {
	set, err := loadOwners(v.db)
	if err != nil {
		return 0, err
	}
	return set.Required(), nil
}

// Balance returns the pooled value.
func (v *Vault) Balance() (coin.Coin, error) {
	return loadBalance(v.db, v.ticker)
}

// Transaction returns a copy of the stored transaction record.
func (v *Vault) Transaction(id TransactionID) (*Transaction, error) {
	tx, err := getTransaction(v.db, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}
	return tx.Clone(), nil
}

// TransactionCount returns the number of distinct submitted transactions.
func (v *Vault) TransactionCount() (uint64, error) {
	return loadCount(v.db)
}

// IsExecuted returns the executed flag of a transaction.
func (v *Vault) IsExecuted(id TransactionID) (bool, error) {
	tx, err := getTransaction(v.db, id)
	if err != nil {
		return false, err
	}
	if tx == nil {
		return false, errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}
	return tx.Executed, nil
}

// IsConfirmed returns true iff the number of current owners with a
// recorded confirmation reaches the quorum threshold.
func (v *Vault) IsConfirmed(id TransactionID) (bool, error) {
	set, err := loadOwners(v.db)
	if err != nil {
		return false, err
	}
	return v.quorumReached(set, id)
}

// ConfirmationCount returns how many current owners confirmed the
// transaction. Confirmations of since-removed owners do not count.
func (v *Vault) ConfirmationCount(id TransactionID) (uint32, error) {
	tx, err := getTransaction(v.db, id)
	if err != nil {
		return 0, err
	}
	if tx == nil {
		return 0, errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}

	set, err := loadOwners(v.db)
	if err != nil {
		return 0, err
	}
	var count uint32
	for _, owner := range set.owners {
		has, err := v.db.Has(confirmKey(id, owner))
		if err != nil {
			return 0, errors.Wrap(err, "store")
		}
		if has {
			count++
		}
	}
	return count, nil
}

// HasConfirmed returns true iff given owner has a confirmation recorded
// for the transaction.
func (v *Vault) HasConfirmed(id TransactionID, owner mvault.Address) (bool, error) {
	has, err := v.db.Has(confirmKey(id, owner))
	if err != nil {
		return false, errors.Wrap(err, "store")
	}
	return has, nil
}

// ListPending returns the IDs of all transactions not yet executed, in
// submission order.
func (v *Vault) ListPending() ([]TransactionID, error) {
	return v.listTransactions(false)
}

// ListExecuted returns the IDs of all executed transactions, in submission
// order.
func (v *Vault) ListExecuted() ([]TransactionID, error) {
	return v.listTransactions(true)
}

func (v *Vault) listTransactions(executed bool) ([]TransactionID, error) {
	count, err := loadCount(v.db)
	if err != nil {
		return nil, err
	}
	var res []TransactionID
	for n := uint64(0); n < count; n++ {
		raw, err := v.db.Get(indexKey(n))
		if err != nil {
			return nil, errors.Wrap(err, "store")
		}
		if raw == nil {
			return nil, errors.ErrDatabase.Newf("submission index %d missing", n)
		}
		id := TransactionID(raw)
		tx, err := getTransaction(v.db, id)
		if err != nil {
			return nil, err
		}
		if tx == nil {
			return nil, errors.ErrDatabase.Newf("transaction %s missing", id)
		}
		if tx.Executed == executed {
			res = append(res, id)
		}
	}
	return res, nil
}

// ------------------------------------------------------------------
// internals

// validateProposal runs all proposal checks that do not touch the store.
func (v *Vault) validateProposal(tx *Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if !tx.Value.IsZero() && tx.Value.Ticker != v.ticker {
		return errors.ErrCurrency.Newf("value in %s, vault pools %s", tx.Value.Ticker, v.ticker)
	}
	if tx.Destination.Equals(v.address) && !tx.Value.IsZero() {
		return errors.ErrMsg.New("governance transaction cannot carry value")
	}
	return nil
}

// ensureTransaction creates the transaction record on first submission
// and appends it to the submission order. Re-submitting an identical tuple
// is a no-op returning the existing ID.
func (v *Vault) ensureTransaction(destination mvault.Address, value coin.Coin, payload []byte, nonce uint64) (TransactionID, error) {
	tx := &Transaction{
		Destination: destination,
		Value:       value,
		Payload:     payload,
		Nonce:       nonce,
	}
	if err := v.validateProposal(tx); err != nil {
		return nil, err
	}
	id := tx.ID()

	existing, err := getTransaction(v.db, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return id, nil
	}

	count, err := loadCount(v.db)
	if err != nil {
		return nil, err
	}

	cache := v.db.CacheWrap()
	if err := putTransaction(cache, tx); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Set(indexKey(count), id); err != nil {
		cache.Discard()
		return nil, errors.Wrap(err, "store")
	}
	if err := saveCount(cache, count+1); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "commit submission")
	}
	v.log.emit(SubmissionEvent{ID: id})
	return id, nil
}

// confirmOwner records a single owner confirmation through the direct
// path. The caller must have checked ownership already.
func (v *Vault) confirmOwner(owner mvault.Address, id TransactionID) error {
	tx, err := getTransaction(v.db, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}

	key := confirmKey(id, owner)
	if has, err := v.db.Has(key); err != nil {
		return errors.Wrap(err, "store")
	} else if has {
		return errors.Wrapf(ErrDuplicateConfirmation, "owner %s", owner)
	}
	if err := v.db.Set(key, []byte{1}); err != nil {
		return errors.Wrap(err, "store")
	}
	v.log.emit(ConfirmationEvent{ID: id, Owner: owner})

	// A confirmation recorded after execution is accepted but inert.
	if tx.Executed {
		return nil
	}
	return v.maybeExecute(id)
}

// recoverSigners resolves every signature of a batch to a current owner.
// This is the all-or-nothing precondition of the off-band path: any
// failure rejects the entire batch before a single confirmation is
// recorded.
func recoverSigners(set *OwnerSet, id TransactionID, sigs []crypto.Signature) ([]mvault.Address, error) {
	if len(sigs) == 0 {
		return nil, errors.ErrMsg.New("no signatures")
	}
	signers := make([]mvault.Address, 0, len(sigs))
	for i, sig := range sigs {
		addr, err := crypto.RecoverAddress(id, sig)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		if !set.Contains(addr) {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "signature %d recovers to non-owner %s", i, addr)
		}
		signers = append(signers, addr)
	}
	return signers, nil
}

// confirmSigners records confirmations for all recovered identities.
// Re-confirming is harmless here, both within a batch and across calls.
func (v *Vault) confirmSigners(signers []mvault.Address, id TransactionID) error {
	tx, err := getTransaction(v.db, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}

	for _, owner := range signers {
		key := confirmKey(id, owner)
		has, err := v.db.Has(key)
		if err != nil {
			return errors.Wrap(err, "store")
		}
		if has {
			continue
		}
		if err := v.db.Set(key, []byte{1}); err != nil {
			return errors.Wrap(err, "store")
		}
		v.log.emit(ConfirmationEvent{ID: id, Owner: owner})
	}

	if tx.Executed {
		return nil
	}
	return v.maybeExecute(id)
}

// quorumReached scans the current owner sequence, short-circuiting once
// the threshold is met. The scan order is not observable by callers.
func (v *Vault) quorumReached(set *OwnerSet, id TransactionID) (bool, error) {
	var count uint32
	for _, owner := range set.owners {
		has, err := v.db.Has(confirmKey(id, owner))
		if err != nil {
			return false, errors.Wrap(err, "store")
		}
		if has {
			count++
			if count >= set.required {
				return true, nil
			}
		}
	}
	return false, nil
}

// maybeExecute performs the external effect if the quorum is met. The
// executed flag and the balance movement are committed strictly before the
// effect is invoked, so a re-entrant call triggered by the effect observes
// the transaction as executed. A failed effect rolls the execution attempt
// back: the transaction stays pending with all confirmations intact.
func (v *Vault) maybeExecute(id TransactionID) error {
	set, err := loadOwners(v.db)
	if err != nil {
		return err
	}
	reached, err := v.quorumReached(set, id)
	if err != nil {
		return err
	}
	if !reached {
		return nil
	}

	tx, err := getTransaction(v.db, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.Wrapf(errors.ErrNotFound, "transaction %s", id)
	}
	if tx.Executed {
		return nil
	}

	selfTargeted := tx.Destination.Equals(v.address)
	moveValue := !selfTargeted && tx.Value.IsPositive()

	cache := v.db.CacheWrap()
	tx.Executed = true
	if err := putTransaction(cache, tx); err != nil {
		cache.Discard()
		return err
	}
	if moveValue {
		balance, err := loadBalance(cache, v.ticker)
		if err != nil {
			cache.Discard()
			return err
		}
		remaining, err := balance.Subtract(tx.Value)
		if err != nil {
			cache.Discard()
			return err
		}
		if !remaining.IsNonNegative() {
			cache.Discard()
			v.log.emit(ExecutionFailureEvent{ID: id})
			return errors.Wrapf(ErrEffect, "insufficient funds: have %s, need %s", balance, tx.Value)
		}
		if err := saveBalance(cache, remaining); err != nil {
			cache.Discard()
			return err
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "commit execution")
	}

	var effErr error
	if selfTargeted {
		effErr = v.applyGovernance(tx)
	} else if effErr = v.effect.Invoke(tx.Destination, tx.Value, tx.Payload); effErr != nil {
		effErr = errors.Wrapf(ErrEffect, "%s", effErr)
	}

	if effErr != nil {
		if err := v.rollbackExecution(id, tx.Value, moveValue); err != nil {
			return err
		}
		v.log.emit(ExecutionFailureEvent{ID: id})
		return effErr
	}

	v.log.emit(ExecutionEvent{ID: id})
	return nil
}

// rollbackExecution undoes the execution attempt of a transaction whose
// effect failed: the executed flag is cleared and any moved value is
// returned to the pool.
func (v *Vault) rollbackExecution(id TransactionID, value coin.Coin, moveValue bool) error {
	tx, err := getTransaction(v.db, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.ErrDatabase.Newf("transaction %s missing during rollback", id)
	}

	cache := v.db.CacheWrap()
	tx.Executed = false
	if err := putTransaction(cache, tx); err != nil {
		cache.Discard()
		return err
	}
	if moveValue {
		balance, err := loadBalance(cache, v.ticker)
		if err != nil {
			cache.Discard()
			return err
		}
		balance, err = balance.Add(value)
		if err != nil {
			cache.Discard()
			return err
		}
		if err := saveBalance(cache, balance); err != nil {
			cache.Discard()
			return err
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "commit rollback")
	}
	return nil
}

// applyGovernance dispatches a self-targeted transaction's payload into
// the owner registry's privileged entry points. This is the only path
// reaching them, so governance enjoys the same quorum and atomicity
// guarantees as fund transfers.
func (v *Vault) applyGovernance(tx *Transaction) error {
	msg, err := DecodeMsg(tx.Payload)
	if err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	set, err := loadOwners(v.db)
	if err != nil {
		return err
	}

	switch m := msg.(type) {
	case *AddOwnerMsg:
		if err := set.Add(m.Owner); err != nil {
			return err
		}
		if err := v.commitOwners(set); err != nil {
			return err
		}
		v.log.emit(OwnerAddedEvent{Owner: m.Owner})
		return nil
	case *RemoveOwnerMsg:
		before := set.Required()
		if err := set.Remove(m.Owner); err != nil {
			return err
		}
		if err := v.commitOwners(set); err != nil {
			return err
		}
		v.log.emit(OwnerRemovedEvent{Owner: m.Owner})
		if set.Required() != before {
			v.log.emit(RequiredChangeEvent{Required: set.Required()})
		}
		return nil
	case *UpdateRequiredMsg:
		if err := set.SetRequired(m.Required); err != nil {
			return err
		}
		if err := v.commitOwners(set); err != nil {
			return err
		}
		v.log.emit(RequiredChangeEvent{Required: set.Required()})
		return nil
	default:
		return errors.ErrMsg.Newf("unknown governance message %T", msg)
	}
}

func (v *Vault) commitOwners(set *OwnerSet) error {
	cache := v.db.CacheWrap()
	if err := saveOwners(cache, set); err != nil {
		cache.Discard()
		return err
	}
	return errors.Wrap(cache.Write(), "commit owners")
}

// ------------------------------------------------------------------
// record persistence

func loadOwners(db mvault.ReadOnlyKVStore) (*OwnerSet, error) {
	raw, err := db.Get(ownersKey)
	if err != nil {
		return nil, errors.Wrap(err, "store")
	}
	if raw == nil {
		return nil, errors.ErrState.New("vault not initialized")
	}
	var rec ownerRecord
	if err := codec.UnmarshalBinaryBare(raw, &rec); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "owner record: %s", err)
	}
	return ownerSetFromRecord(&rec)
}

func saveOwners(db mvault.KVStore, set *OwnerSet) error {
	raw, err := codec.MarshalBinaryBare(set.record())
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "owner record: %s", err)
	}
	return errors.Wrap(db.Set(ownersKey, raw), "store")
}

func loadBalance(db mvault.ReadOnlyKVStore, ticker string) (coin.Coin, error) {
	raw, err := db.Get(balanceKey)
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "store")
	}
	if raw == nil {
		return coin.NewCoin(0, 0, ticker), nil
	}
	var balance coin.Coin
	if err := codec.UnmarshalBinaryBare(raw, &balance); err != nil {
		return coin.Coin{}, errors.Wrapf(errors.ErrDatabase, "balance record: %s", err)
	}
	return balance, nil
}

func saveBalance(db mvault.KVStore, balance coin.Coin) error {
	raw, err := codec.MarshalBinaryBare(balance)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "balance record: %s", err)
	}
	return errors.Wrap(db.Set(balanceKey, raw), "store")
}

func getTransaction(db mvault.ReadOnlyKVStore, id TransactionID) (*Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	raw, err := db.Get(transactionKey(id))
	if err != nil {
		return nil, errors.Wrap(err, "store")
	}
	if raw == nil {
		return nil, nil
	}
	var tx Transaction
	if err := codec.UnmarshalBinaryBare(raw, &tx); err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "transaction record: %s", err)
	}
	return &tx, nil
}

func putTransaction(db mvault.KVStore, tx *Transaction) error {
	raw, err := codec.MarshalBinaryBare(tx)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "transaction record: %s", err)
	}
	return errors.Wrap(db.Set(transactionKey(tx.ID()), raw), "store")
}

func loadCount(db mvault.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(countKey)
	if err != nil {
		return 0, errors.Wrap(err, "store")
	}
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.ErrDatabase.Newf("submission counter: %X", raw)
	}
	return binary.BigEndian.Uint64(raw), nil
}

func saveCount(db mvault.KVStore, count uint64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, count)
	return errors.Wrap(db.Set(countKey, raw), "store")
}
