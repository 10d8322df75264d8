package multisig

import (
	"github.com/mvault/mvault/errors"
)

// Error codes 1100-1110 are reserved for this package.
var (
	// ErrDuplicateOwner is returned when registering an owner that is
	// already a member of the owner set.
	ErrDuplicateOwner = errors.Register(1100, "owner already registered")

	// ErrUnknownOwner is returned when removing an identity that is not
	// a member of the owner set.
	ErrUnknownOwner = errors.Register(1101, "unknown owner")

	// ErrInvalidQuorum is returned when the required signature count is
	// outside the [1, owner count] range.
	ErrInvalidQuorum = errors.Register(1102, "quorum out of range")

	// ErrNullDestination is returned when a transaction targets the
	// null identity.
	ErrNullDestination = errors.Register(1103, "null destination")

	// ErrDuplicateConfirmation is returned when an owner confirms the
	// same transaction twice through the direct path.
	ErrDuplicateConfirmation = errors.Register(1104, "already confirmed")

	// ErrNotConfirmed is returned when revoking a confirmation that was
	// never recorded.
	ErrNotConfirmed = errors.Register(1105, "not confirmed")

	// ErrAlreadyExecuted is returned when an executed transaction is
	// executed or revoked again.
	ErrAlreadyExecuted = errors.Register(1106, "already executed")

	// ErrEffect is returned when the external effect of an execution
	// fails. The transaction stays pending and can be retried.
	ErrEffect = errors.Register(1107, "external effect failed")
)
