package auth

import "errors"

var (
	errUnknownEmail  = errors.New("unknown email")
	errWrongPassword = errors.New("wrong password")
)

// Identity is a verified admin identity.
type Identity struct {
	Email string
	Name  string
}

// CredentialVerifier checks a credential pair. Implementations can back onto
// anything from a static config pair to a real identity provider without the
// route layer changing.
type CredentialVerifier interface {
	Verify(email, password string) (*Identity, error)
}

// LoginDTO is the request body for credential login.
type LoginDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
