package auth

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/stormcreate/stormblog/internal/repository"
	"github.com/stormcreate/stormblog/model"
)

var (
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrNoActiveSession   = errors.New("no active session")
	ErrEmailInUse        = errors.New("email already registered")
	ErrInvalidToken      = errors.New("invalid session token")
)

// Session is the authenticated-identity context for a page visit. It is
// carried in the signed token, not stored server-side.
type Session struct {
	UserID      string
	Email       string
	DisplayName string
	AvatarURL   string
}

// Service implements the session operations over the identity store.
type Service struct {
	users  *repository.UserRepository
	secret []byte
	bus    *Bus
}

func NewService(users *repository.UserRepository, secret []byte) *Service {
	return &Service{users: users, secret: secret, bus: NewBus()}
}

// Observe registers a session-transition listener. The callback fires
// immediately with the current state and again on every sign-in or
// sign-out until the handle is cancelled.
func (s *Service) Observe(fn func(*Session)) *Subscription {
	return s.bus.Subscribe(fn)
}

// Secret is the signing key, shared with the token middleware.
func (s *Service) Secret() []byte { return s.secret }

func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredential
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredential
	}
	return s.establish(user)
}

// SignUp creates the identity first and applies the display name as a
// second step. If that second step fails the account still exists in a
// partially-initialized state; there is no rollback, and the caller
// gets a working session either way.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*Session, string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.users.UpdateProfile(ctx, user.ID, displayName, ""); err != nil {
		log.Printf("set display name for %s: %v", email, err)
	} else {
		user.DisplayName = displayName
	}
	return s.establish(user)
}

// SignOut only publishes the transition; the token itself is discarded
// by clearing the cookie at the HTTP layer.
func (s *Service) SignOut() {
	s.bus.Publish(nil)
}

func (s *Service) UpdateDisplayName(ctx context.Context, sess *Session, displayName string) error {
	if sess == nil {
		return ErrNoActiveSession
	}
	id, err := bson.ObjectIDFromHex(sess.UserID)
	if err != nil {
		return ErrNoActiveSession
	}
	if err := s.users.UpdateProfile(ctx, id, displayName, ""); err != nil {
		return err
	}
	sess.DisplayName = displayName
	return nil
}

func (s *Service) establish(user *model.User) (*Session, string, error) {
	sess := &Session{
		UserID:      user.ID.Hex(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}
	token, err := IssueToken(s.secret, sess)
	if err != nil {
		return nil, "", err
	}
	s.bus.Publish(sess)
	return sess, token, nil
}
