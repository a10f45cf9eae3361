package services

// Identity is the resolved caller the auth middleware hands to every
// service call: a stable user id plus the encoded role set. Credential
// verification happened upstream; the services trust this value.
type Identity struct {
	UserID uint
	Roles  string
}
