// Package models defines the story and user types the client works with.
package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ErrInvalidURL is returned by Story.Host when the story URL cannot be
// parsed as an absolute URL.
var ErrInvalidURL = errors.New("invalid story url")

// Story is a single posted link: title, author, URL, submitter, timestamp.
// The id is assigned by the server. A Story value is never mutated in place;
// an edit produces a new value that replaces the old one by id.
type Story struct {
	StoryID   string
	Title     string
	Author    string
	URL       string
	Username  string
	CreatedAt time.Time
}

// Host returns the host component of the story URL, for display next to the
// title ("example.com"). Fails with ErrInvalidURL when the URL is not an
// absolute parseable URL.
func (s Story) Host() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, s.URL)
	}
	return u.Host, nil
}

// StoryDraft carries the user-supplied fields of a new or edited story.
// No client-side validation is done; the server is authoritative.
type StoryDraft struct {
	Title  string
	Author string
	URL    string
}

// StoryList is an ordered collection of stories. Order is the server return
// order for fetched lists and append order for additions. A list holds at
// most one story per id.
type StoryList struct {
	Stories []Story
}

func NewStoryList(stories []Story) *StoryList {
	return &StoryList{Stories: stories}
}

// Add appends a story at the end of the list.
func (l *StoryList) Add(s Story) {
	l.Stories = append(l.Stories, s)
}

// RemoveByID drops the story with the given id, if present. The backing
// slice is rebuilt by filtering, never patched in place.
func (l *StoryList) RemoveByID(storyID string) {
	filtered := make([]Story, 0, len(l.Stories))
	for _, s := range l.Stories {
		if s.StoryID != storyID {
			filtered = append(filtered, s)
		}
	}
	l.Stories = filtered
}

// ContainsID reports whether a story with the given id is in the list.
func (l *StoryList) ContainsID(storyID string) bool {
	_, ok := l.ByID(storyID)
	return ok
}

// ByID returns the story with the given id.
func (l *StoryList) ByID(storyID string) (Story, bool) {
	for _, s := range l.Stories {
		if s.StoryID == storyID {
			return s, true
		}
	}
	return Story{}, false
}

// Len returns the number of stories in the list.
func (l *StoryList) Len() int {
	return len(l.Stories)
}
