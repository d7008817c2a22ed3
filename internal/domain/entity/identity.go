package entity

// Identity is the verified caller behind a Firebase ID token.
type Identity struct {
	UID   string
	Admin bool
}
