package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/amadeudias/blog-core/internal/config"
	sessionpkg "github.com/amadeudias/blog-core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

// devIdentity is the mocked identity used by the development auto-login.
const devIdentityEmail = "admin@example.com"

// StaticVerifier verifies against the credential pair from config. The
// configured password may be plaintext or a bcrypt hash.
type StaticVerifier struct {
	email    string
	password string
}

func NewStaticVerifier(admin config.AdminConfig) *StaticVerifier {
	return &StaticVerifier{email: admin.Email, password: admin.Password}
}

func (v *StaticVerifier) Verify(email, password string) (*Identity, error) {
	if !strings.EqualFold(email, v.email) {
		return nil, errUnknownEmail
	}
	if strings.HasPrefix(v.password, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(v.password), []byte(password)); err != nil {
			return nil, errWrongPassword
		}
	} else if subtle.ConstantTimeCompare([]byte(v.password), []byte(password)) != 1 {
		return nil, errWrongPassword
	}
	return &Identity{Email: v.email, Name: "Admin"}, nil
}

// Service issues and revokes sessions against the in-memory registry.
type Service struct {
	verifier CredentialVerifier
	sessions *sessionpkg.Registry
}

func NewService(verifier CredentialVerifier, sessions *sessionpkg.Registry) *Service {
	return &Service{verifier: verifier, sessions: sessions}
}

// Login verifies the credential pair and issues a 24h session.
func (s *Service) Login(email, password, ip, ua string) (string, error) {
	identity, err := s.verifier.Verify(email, password)
	if err != nil {
		return "", err
	}
	token, _, err := s.sessions.Issue(identity.Email, ip, ua, sessionpkg.DefaultTTL)
	return token, err
}

// DevLogin issues a 1h session for the mocked development identity without
// checking credentials. Only wired up in development mode.
func (s *Service) DevLogin(ip, ua string) (string, error) {
	token, _, err := s.sessions.Issue(devIdentityEmail, ip, ua, sessionpkg.DevTTL)
	return token, err
}

// Logout revokes the session bound to the token.
func (s *Service) Logout(sessionID string) {
	s.sessions.Revoke(sessionID)
}

// Session returns the live session, or nil.
func (s *Service) Session(sessionID string) *sessionpkg.Session {
	return s.sessions.Get(sessionID)
}
