// Package services contains the application services of the client: session
// state, authentication, and story/favorite operations against the remote
// service.
package services

import (
	"errors"

	"github.com/avdeevm/storyhub/internal/client/models"
)

// ErrNotSignedIn is returned by operations that need an authenticated user
// when the session is anonymous.
var ErrNotSignedIn = errors.New("not signed in")

// Session is the state loaded for one run of the client: the signed-in user
// (nil while anonymous) and the story list currently on screen. It is passed
// explicitly to every operation that touches it; there is no ambient global.
//
// Session is not safe for concurrent use. All operations run sequentially
// on the interactive flow.
type Session struct {
	User    *models.User
	Stories *models.StoryList
}

func NewSession() *Session {
	return &Session{Stories: models.NewStoryList(nil)}
}

// SignedIn reports whether a user is attached to the session.
func (s *Session) SignedIn() bool {
	return s.User != nil
}

// lists returns every local collection that may hold a story.
func (s *Session) lists() []*models.StoryList {
	lists := []*models.StoryList{s.Stories}
	if s.User != nil {
		lists = append(lists, s.User.OwnStories, s.User.Favorites)
	}
	return lists
}

// Discard removes the story with the given id from every local collection.
// All mutations that drop a story go through here so the loaded list, the
// user's own stories, and the favorites never disagree about an id.
func (s *Session) Discard(storyID string) {
	for _, l := range s.lists() {
		l.RemoveByID(storyID)
	}
}

// Replace swaps the stored story for an updated value in every collection
// that currently holds its id. Collections that never held the story are
// left untouched, so an edited story stays a favorite only if it already
// was one.
func (s *Session) Replace(story models.Story) {
	for _, l := range s.lists() {
		if l.ContainsID(story.StoryID) {
			l.RemoveByID(story.StoryID)
			l.Add(story)
		}
	}
}
