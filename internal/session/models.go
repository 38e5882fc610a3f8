package session

import (
	"time"

	"github.com/dmitrijs2005/pocketauth/internal/cryptox"
)

// Storage keys.
const (
	UsersKey   = "@users"
	SessionKey = "@currentUser"
)

// Account is one registered identity. New accounts carry an argon2id salt,
// verifier and the cost they were made with; Password is only set on records
// written by older versions of the app, which stored it in plain text.
type Account struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password,omitempty"`
	Salt     []byte          `json:"salt,omitempty"`
	Verifier []byte          `json:"verifier,omitempty"`
	KDF      *cryptox.Params `json:"kdf,omitempty"`
}

// Session is the signed-in identity. It never contains credentials.
type Session struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Token      string    `json:"token"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

// State of the single session slot.
type State int

const (
	// StateUnknown holds until RestoreSession has run.
	StateUnknown State = iota
	// StateAnonymous means nobody is signed in.
	StateAnonymous
	// StateAuthenticated means a Session is current.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return "invalid"
}
