package models

import "time"

// User is the signed-in user: identity, bearer token, and the two story
// collections the service keeps per user. Favorites and OwnStories are
// independent; a story may appear in both, in one, or in neither.
//
// Token is an opaque bearer credential. It must never be logged.
type User struct {
	Username  string
	Name      string
	CreatedAt time.Time
	Token     string

	Favorites  *StoryList
	OwnStories *StoryList
}

// IsFavorite reports whether the story with the given id is currently marked
// as a favorite. Purely local, no network.
func (u *User) IsFavorite(storyID string) bool {
	return u.Favorites.ContainsID(storyID)
}
