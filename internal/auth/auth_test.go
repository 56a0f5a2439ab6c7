package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticCredentialIsDeterministic(t *testing.T) {
	secret := []byte("test-secret")

	email1, pass1 := SyntheticCredential(42, secret)
	email2, pass2 := SyntheticCredential(42, secret)
	assert.Equal(t, email1, email2)
	assert.Equal(t, pass1, pass2)
	assert.Equal(t, "42@telegram.stormcreate.app", email1)

	_, passOther := SyntheticCredential(43, secret)
	assert.NotEqual(t, pass1, passOther)

	_, passOtherSecret := SyntheticCredential(42, []byte("another"))
	assert.NotEqual(t, pass1, passOtherSecret)
}

func TestTelegramDisplayName(t *testing.T) {
	full := TelegramIdentity{FirstName: "Ada", LastName: "Lovelace", Username: "ada"}
	assert.Equal(t, "Ada Lovelace", full.DisplayName())

	firstOnly := TelegramIdentity{FirstName: "Ada", Username: "ada"}
	assert.Equal(t, "Ada", firstOnly.DisplayName())

	usernameOnly := TelegramIdentity{Username: "ada"}
	assert.Equal(t, "ada", usernameOnly.DisplayName())

	assert.Equal(t, "Telegram User", TelegramIdentity{}.DisplayName())
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	sess := &Session{
		UserID:      "507f1f77bcf86cd799439011",
		Email:       "ada@example.com",
		DisplayName: "Ada",
		AvatarURL:   "https://example.com/a.png",
	}

	token, err := IssueToken(secret, sess)
	require.NoError(t, err)

	got, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("secret-a"), &Session{UserID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = ParseToken([]byte("secret-b"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken([]byte("secret-a"), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBusDeliversCurrentStateOnSubscribe(t *testing.T) {
	bus := NewBus()

	var seen []*Session
	bus.Subscribe(func(s *Session) { seen = append(seen, s) })
	require.Len(t, seen, 1)
	assert.Nil(t, seen[0], "signed-out state is delivered immediately")

	sess := &Session{UserID: "u1", Email: "a@b.c"}
	bus.Publish(sess)
	require.Len(t, seen, 2)
	assert.Same(t, sess, seen[1])
	assert.Same(t, sess, bus.Current())

	// A late subscriber sees the already-published state right away.
	var late *Session
	bus.Subscribe(func(s *Session) { late = s })
	assert.Same(t, sess, late)
}

func TestBusCancelStopsDelivery(t *testing.T) {
	bus := NewBus()

	calls := 0
	sub := bus.Subscribe(func(*Session) { calls++ })
	assert.Equal(t, 1, calls)

	sub.Cancel()
	bus.Publish(&Session{UserID: "u1"})
	assert.Equal(t, 1, calls)

	// Cancelling one handle leaves other subscribers attached.
	other := 0
	bus.Subscribe(func(*Session) { other++ })
	bus.Publish(nil)
	assert.Equal(t, 2, other)
	assert.Nil(t, bus.Current())
}
