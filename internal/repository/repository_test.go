package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/stormcreate/stormblog/model"
)

func TestToggleMemberRoundTrip(t *testing.T) {
	likes := []string{}

	likes1, state := ToggleMember(likes, "u1")
	assert.True(t, state)
	assert.Equal(t, []string{"u1"}, likes1)

	likes2, state := ToggleMember(likes1, "u1")
	assert.False(t, state)
	assert.Empty(t, likes2)
}

func TestToggleMemberPreservesOthers(t *testing.T) {
	likes := []string{"a", "b", "c"}

	removed, state := ToggleMember(likes, "b")
	assert.False(t, state)
	assert.Equal(t, []string{"a", "c"}, removed)
	// The input slice is never mutated.
	assert.Equal(t, []string{"a", "b", "c"}, likes)

	added, state := ToggleMember(likes, "d")
	assert.True(t, state)
	assert.Equal(t, []string{"a", "b", "c", "d"}, added)
}

func TestFilterByText(t *testing.T) {
	posts := []model.Post{
		{Title: "Cache lines in Go", Content: "notes"},
		{Title: "Unrelated", Content: "but mentions a CACHE here"},
		{Title: "Nothing", Content: "to see"},
	}

	got := FilterByText(posts, "cache")
	require.Len(t, got, 2)
	assert.Equal(t, "Cache lines in Go", got[0].Title)
	assert.Equal(t, "Unrelated", got[1].Title)

	// Empty query keeps the input as-is.
	assert.Len(t, FilterByText(posts, ""), 3)

	// Every excluded post genuinely fails the predicate.
	assert.Empty(t, FilterByText(posts, "zebra"))

	// The match is a literal substring, not a stem: "caching" does not
	// contain "cache".
	stemmed := []model.Post{{Title: "Caching strategies", Content: "notes"}}
	assert.Empty(t, FilterByText(stemmed, "cache"))
}

func TestNilBackendDegradesReadsAndFailsWrites(t *testing.T) {
	posts := NewPostRepository(nil)

	assert.Empty(t, posts.List(t.Context(), 10, "", ""))

	p, err := posts.Get(t.Context(), bson.ObjectID{1})
	assert.NoError(t, err)
	assert.Nil(t, p)

	_, err = posts.Create(t.Context(), &model.Post{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	_, _, err = posts.ToggleLike(t.Context(), bson.ObjectID{1}, "u1")
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	users := NewUserRepository(nil)
	_, err = users.FindByEmail(t.Context(), "a@b.c")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}
