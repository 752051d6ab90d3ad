package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsFavorite(t *testing.T) {
	u := &User{
		Username:   "alice",
		Favorites:  NewStoryList([]Story{{StoryID: "fav1"}}),
		OwnStories: NewStoryList([]Story{{StoryID: "own1"}}),
	}

	assert.True(t, u.IsFavorite("fav1"))
	assert.False(t, u.IsFavorite("own1"), "own stories are not favorites by themselves")
	assert.False(t, u.IsFavorite("unknown"))
}
