package application

// Identity is the resolved notion of who is making a request: a specific
// user id, or Anonymous when no valid session is bound.
type Identity struct {
	UserID int64
	Email  string
	Name   string
}

// Anonymous is the distinguished identity for unauthenticated requests.
var Anonymous = Identity{}

func (i Identity) IsAnonymous() bool {
	return i.UserID == 0
}
