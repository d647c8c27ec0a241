package application

// Predicate is a boolean test over an Identity used to gate an action.
type Predicate func(Identity) bool

// IsAuthenticated passes for any identity bound to a user.
func IsAuthenticated() Predicate {
	return func(id Identity) bool { return !id.IsAnonymous() }
}

// IsAdmin passes only for the designated admin identity. By convention
// the admin is the first-ever-registered user (id 1); the id comes from
// configuration so tests and deployments can move it.
func IsAdmin(adminID int64) Predicate {
	return func(id Identity) bool { return !id.IsAnonymous() && id.UserID == adminID }
}

// Authorize permits an action only if the identity satisfies the
// predicate. Handlers call this before touching storage; a Forbidden
// result must short-circuit the request with no partial mutation.
func Authorize(id Identity, p Predicate) error {
	if !p(id) {
		return ErrForbidden
	}
	return nil
}
