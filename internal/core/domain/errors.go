package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Absence is not in this list on purpose: an empty transcript or a
// missing summary is a normal outcome carried in the result payload,
// never an error value.
var (
	// ErrInvalidInput indicates a missing or empty required field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingCredential indicates the upstream API key is not configured.
	// This is an operator problem, fatal for the operation.
	ErrMissingCredential = errors.New("missing API credential")

	// ErrUpstreamRejected indicates the upstream provider declined the
	// request (not found, forbidden, or quota). The wrapped message carries
	// the specific sub-reason when the response makes one derivable.
	ErrUpstreamRejected = errors.New("upstream rejected request")

	// ErrUpstreamUnavailable indicates a transport-level failure reaching
	// the upstream provider. Retry policy, if any, belongs to the caller.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrPersistence indicates the summary store's backing medium rejected
	// a read or write.
	ErrPersistence = errors.New("persistence failure")
)
