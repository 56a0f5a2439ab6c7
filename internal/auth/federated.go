package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// TelegramIdentity is the payload the Telegram login widget hands to
// its registered auth callback.
type TelegramIdentity struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
	PhotoURL  string
}

// DisplayName assembles the visible name the way the widget presents
// it: first+last, falling back to the username, then a generic label.
func (t TelegramIdentity) DisplayName() string {
	parts := make([]string, 0, 2)
	if t.FirstName != "" {
		parts = append(parts, t.FirstName)
	}
	if t.LastName != "" {
		parts = append(parts, t.LastName)
	}
	if name := strings.Join(parts, " "); name != "" {
		return name
	}
	if t.Username != "" {
		return t.Username
	}
	return "Telegram User"
}

// SyntheticCredential maps a Telegram numeric id to a deterministic
// local credential: the same id always yields the same email/password
// pair, so re-authentication is idempotent. The password is an HMAC of
// the id under the app secret, never stored or shown anywhere.
func SyntheticCredential(id int64, secret []byte) (email, password string) {
	email = fmt.Sprintf("%d@telegram.stormcreate.app", id)
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "telegram:%d", id)
	password = hex.EncodeToString(mac.Sum(nil))
	return email, password
}

// FederatedSignIn signs in with the synthetic credential, provisioning
// a fresh identity when it is unknown, then applies the external
// profile (name, avatar) as a second phase. The two phases are not
// transactional: a failure after provisioning leaves an account
// without profile metadata until the next federated sign-in, which
// re-applies the profile anyway.
func (s *Service) FederatedSignIn(ctx context.Context, ident TelegramIdentity) (*Session, string, error) {
	email, password := SyntheticCredential(ident.ID, s.secret)

	sess, token, err := s.SignIn(ctx, email, password)
	if errors.Is(err, ErrInvalidCredential) {
		sess, token, err = s.SignUp(ctx, email, password, ident.DisplayName())
	}
	if err != nil {
		return nil, "", err
	}

	if id, idErr := bson.ObjectIDFromHex(sess.UserID); idErr == nil {
		if err := s.users.UpdateProfile(ctx, id, ident.DisplayName(), ident.PhotoURL); err != nil {
			log.Printf("apply telegram profile for %s: %v", email, err)
		} else {
			sess.DisplayName = ident.DisplayName()
			if ident.PhotoURL != "" {
				sess.AvatarURL = ident.PhotoURL
			}
		}
	}

	// Re-issue so the token carries the refreshed profile.
	token, err = IssueToken(s.secret, sess)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}
