// Package auth validates credentials against a flat JSON user file and
// issues signed bearer tokens.
package auth

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/thanhmai/journal/internal/config"
	"github.com/thanhmai/journal/internal/entities"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameInvalid    = errors.New("username must be 3-64 characters, alphanumeric and underscore/hyphen only")
)

// Result is returned by Login and Register: the public user plus a signed
// bearer token.
type Result struct {
	User  entities.PublicUser
	Token string
}

// Service handles authentication and registration.
type Service struct {
	users  *UserStore
	secret []byte
	config config.Auth
}

// NewService creates an authentication service over a user store.
func NewService(users *UserStore, secret []byte, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		secret: secret,
		config: cfg,
	}
}

// Login checks a username/password pair and issues a token. The username
// match is exact and case-sensitive. Failures are uniformly
// ErrInvalidCredentials so callers cannot probe which usernames exist.
func (s *Service) Login(username, password string) (*Result, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.checkCredential(password, user); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.result(user), nil
}

// Register creates a new account with the "user" role. Admin accounts are
// never created here; they are seeded directly into the user file.
func (s *Service) Register(username, password string) (*Result, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrUsernameInvalid
	}

	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.User{
		Username:     username,
		PasswordHash: hash,
		Role:         entities.UserRoleUser,
	}
	if err := s.users.Append(user); err != nil {
		return nil, err
	}

	return s.result(&user), nil
}

// VerifyAdminToken reports whether token is a valid, unexpired token for an
// admin. The token must also carry the literal "role:admin" claim in its
// readable prefix, which VerifyToken guarantees for admin claims.
func (s *Service) VerifyAdminToken(token string) error {
	claims, err := VerifyToken(token, s.secret)
	if err != nil {
		return err
	}
	if claims.Role != entities.UserRoleAdmin {
		return ErrInvalidToken
	}
	return nil
}

func (s *Service) checkCredential(password string, user *entities.User) error {
	if user.PasswordHash != "" {
		return CheckPassword(password, user.PasswordHash)
	}
	return CheckLegacyPassword(password, user.Password)
}

func (s *Service) result(user *entities.User) *Result {
	ttl := s.config.TokenTTL
	if ttl <= 0 {
		ttl = 720 * time.Hour
	}
	return &Result{
		User:  user.Public(),
		Token: SignToken(user.Username, user.Role, ttl, s.secret),
	}
}
