package multisig

import (
	"github.com/mvault/mvault"
	"github.com/mvault/mvault/coin"
)

// Event is a notification appended to the vault's observable log. Each
// concrete event carries the identity or transaction it refers to.
type Event interface {
	event()
}

// SubmissionEvent notifies about a newly proposed transaction.
type SubmissionEvent struct {
	ID TransactionID
}

// ConfirmationEvent notifies about an owner confirming a transaction.
type ConfirmationEvent struct {
	ID    TransactionID
	Owner mvault.Address
}

// RevocationEvent notifies about an owner withdrawing a confirmation.
type RevocationEvent struct {
	ID    TransactionID
	Owner mvault.Address
}

// ExecutionEvent notifies about a transaction effect performed
// successfully.
type ExecutionEvent struct {
	ID TransactionID
}

// ExecutionFailureEvent notifies about a failed execution attempt. The
// transaction stays pending.
type ExecutionFailureEvent struct {
	ID TransactionID
}

// DepositEvent notifies about bare value received by the vault.
type DepositEvent struct {
	From   mvault.Address
	Amount coin.Coin
}

// OwnerAddedEvent notifies about a new owner registration.
type OwnerAddedEvent struct {
	Owner mvault.Address
}

// OwnerRemovedEvent notifies about an owner removal.
type OwnerRemovedEvent struct {
	Owner mvault.Address
}

// RequiredChangeEvent notifies about a quorum threshold change.
type RequiredChangeEvent struct {
	Required uint32
}

func (SubmissionEvent) event()       {}
func (ConfirmationEvent) event()     {}
func (RevocationEvent) event()       {}
func (ExecutionEvent) event()        {}
func (ExecutionFailureEvent) event() {}
func (DepositEvent) event()          {}
func (OwnerAddedEvent) event()       {}
func (OwnerRemovedEvent) event()     {}
func (RequiredChangeEvent) event()   {}

// EventLog is the append-only notification log of a vault. Subscribers
// are invoked synchronously in subscription order; the host serializes all
// vault operations, so no locking is needed.
type EventLog struct {
	events []Event
	subs   []func(Event)
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Subscribe registers a callback invoked for every event appended after
// this call.
func (l *EventLog) Subscribe(fn func(Event)) {
	l.subs = append(l.subs, fn)
}

// Events returns a copy of all events appended so far, oldest first.
func (l *EventLog) Events() []Event {
	res := make([]Event, len(l.events))
	copy(res, l.events)
	return res
}

// emit appends an event and fans it out to subscribers. Events are
// appended only after the state change they describe is committed.
func (l *EventLog) emit(ev Event) {
	l.events = append(l.events, ev)
	for _, fn := range l.subs {
		fn(ev)
	}
}
