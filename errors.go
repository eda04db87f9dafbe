package fund

import "errors"

// Error kinds returned by ledger operations. Callers match them with
// errors.Is; every failure leaves the ledger state unchanged.
var (
	// ErrUnauthorized reports a caller lacking the required role, or the
	// required relation to the target (e.g. not the proposal's manager).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound reports a reference to a proposal or identity that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateIdentity reports an attempt to register an identity that
	// already holds the role. Rates are immutable, re-registration is
	// never allowed.
	ErrDuplicateIdentity = errors.New("identity already registered")

	// ErrAlreadySecured reports a vote on a proposal that already secured.
	ErrAlreadySecured = errors.New("proposal already secured")

	// ErrAlreadyVoted reports a repeated vote from the same investor.
	ErrAlreadyVoted = errors.New("investor already voted")

	// ErrNotSecured reports a revenue operation on an unsecured proposal.
	ErrNotSecured = errors.New("proposal not secured")

	// ErrNothingToDistribute reports a distribution with no undistributed
	// revenue.
	ErrNothingToDistribute = errors.New("nothing to distribute")

	// ErrInvalidAmount reports a zero or negative amount where a strictly
	// positive one is required.
	ErrInvalidAmount = errors.New("invalid amount")
)
