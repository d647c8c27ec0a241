package application

import "errors"

var (
	// ErrEmailTaken means a registration collided with an existing
	// account, either in the pre-insert check or at the schema constraint.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound means no account exists for the given email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrBadCredentials means the account exists but the password did
	// not match. Handlers must not surface the distinction between this
	// and ErrUserNotFound to the client.
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrForbidden means the identity failed an authorization predicate.
	// It carries no detail about which predicate failed.
	ErrForbidden = errors.New("access denied")
	// ErrNotFound means a looked-up cafe or comment target is absent.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName means a cafe submission reused an existing name.
	ErrDuplicateName = errors.New("cafe name already taken")
	// ErrDeliveryFailed means the contact relay could not hand the
	// message off. The message is not retried or stored.
	ErrDeliveryFailed = errors.New("message delivery failed")
)
