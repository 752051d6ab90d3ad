package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdeevm/storyhub/internal/client/models"
)

func TestSession_Discard_TouchesEveryCollection(t *testing.T) {
	sess := signedInSession(t)
	s := story("s1", "x")
	sess.Stories.Add(s)
	sess.User.OwnStories.Add(s)
	sess.User.Favorites.Add(s)
	sess.Stories.Add(story("s2", "kept"))

	sess.Discard("s1")

	assert.False(t, sess.Stories.ContainsID("s1"))
	assert.False(t, sess.User.OwnStories.ContainsID("s1"))
	assert.False(t, sess.User.Favorites.ContainsID("s1"))
	assert.True(t, sess.Stories.ContainsID("s2"))
}

func TestSession_Discard_Anonymous(t *testing.T) {
	sess := NewSession()
	sess.Stories.Add(story("s1", "x"))

	sess.Discard("s1")
	assert.Equal(t, 0, sess.Stories.Len())
}

func TestSession_Replace_OnlyWhereIDPresent(t *testing.T) {
	sess := signedInSession(t)
	old := story("s1", "Old")
	sess.Stories.Add(old)
	sess.User.OwnStories.Add(old)
	// not a favorite

	sess.Replace(story("s1", "New"))

	got, _ := sess.Stories.ByID("s1")
	assert.Equal(t, "New", got.Title)
	got, _ = sess.User.OwnStories.ByID("s1")
	assert.Equal(t, "New", got.Title)
	assert.False(t, sess.User.IsFavorite("s1"), "replace never adds to a collection")
}

func TestSession_SignedIn(t *testing.T) {
	sess := NewSession()
	assert.False(t, sess.SignedIn())
	sess.User = &models.User{Username: "alice"}
	assert.True(t, sess.SignedIn())
}
