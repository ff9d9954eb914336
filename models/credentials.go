package models

// Credentials holds the username/password pair used for the credential login
// path. They are kept in memory only for the lifetime of the session so the
// client can re-authenticate transparently after the token is invalidated;
// they are never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
