package services

import (
	"context"
	"fmt"

	"github.com/avdeevm/storyhub/internal/client/api"
	"github.com/avdeevm/storyhub/internal/client/models"
	"github.com/avdeevm/storyhub/internal/logging"
)

// StoryService performs story and favorite operations. Remote failures are
// propagated to the caller unchanged; there are no retries.
//
// Contract:
//   - FetchAll: load the full story list in server order.
//   - Add: create a story; local append happens only after the server
//     confirms, so there is nothing to roll back.
//   - Delete: remove a story and drop its id from every local collection.
//   - Edit: patch a story; the new value replaces the old one everywhere
//     the old id was present.
//   - AddFavorite/RemoveFavorite: the local collection is updated before
//     the remote call. On remote failure the error is returned with the
//     local change still applied; the caller must revert or re-fetch.
type StoryService interface {
	FetchAll(ctx context.Context) (*models.StoryList, error)
	Add(ctx context.Context, sess *Session, draft models.StoryDraft) (models.Story, error)
	Delete(ctx context.Context, sess *Session, storyID string) error
	Edit(ctx context.Context, sess *Session, storyID string, draft models.StoryDraft) (models.Story, error)
	AddFavorite(ctx context.Context, sess *Session, story models.Story) error
	RemoveFavorite(ctx context.Context, sess *Session, storyID string) error
}

type storyService struct {
	client api.Client
	log    logging.Logger
}

func NewStoryService(client api.Client, log logging.Logger) StoryService {
	return &storyService{client: client, log: log}
}

func (s *storyService) FetchAll(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.client.Stories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching stories: %w", err)
	}
	return models.NewStoryList(stories), nil
}

func (s *storyService) Add(ctx context.Context, sess *Session, draft models.StoryDraft) (models.Story, error) {
	if !sess.SignedIn() {
		return models.Story{}, ErrNotSignedIn
	}

	story, err := s.client.AddStory(ctx, sess.User.Token, draft)
	if err != nil {
		return models.Story{}, fmt.Errorf("adding story: %w", err)
	}

	sess.Stories.Add(story)
	sess.User.OwnStories.Add(story)
	s.log.Info(ctx, "story added", "storyId", story.StoryID)
	return story, nil
}

func (s *storyService) Delete(ctx context.Context, sess *Session, storyID string) error {
	if !sess.SignedIn() {
		return ErrNotSignedIn
	}

	if err := s.client.RemoveStory(ctx, sess.User.Token, storyID); err != nil {
		return fmt.Errorf("deleting story: %w", err)
	}

	sess.Discard(storyID)
	s.log.Info(ctx, "story deleted", "storyId", storyID)
	return nil
}

func (s *storyService) Edit(ctx context.Context, sess *Session, storyID string, draft models.StoryDraft) (models.Story, error) {
	if !sess.SignedIn() {
		return models.Story{}, ErrNotSignedIn
	}

	story, err := s.client.UpdateStory(ctx, sess.User.Token, storyID, draft)
	if err != nil {
		return models.Story{}, fmt.Errorf("editing story: %w", err)
	}

	sess.Replace(story)
	s.log.Info(ctx, "story edited", "storyId", story.StoryID)
	return story, nil
}

func (s *storyService) AddFavorite(ctx context.Context, sess *Session, story models.Story) error {
	if !sess.SignedIn() {
		return ErrNotSignedIn
	}

	// Local first. The remote call may still fail, in which case the caller
	// holds a favorite the server does not know about and must reconcile.
	if !sess.User.Favorites.ContainsID(story.StoryID) {
		sess.User.Favorites.Add(story)
	}

	if err := s.client.AddFavorite(ctx, sess.User.Token, sess.User.Username, story.StoryID); err != nil {
		return fmt.Errorf("favoriting story: %w", err)
	}
	return nil
}

func (s *storyService) RemoveFavorite(ctx context.Context, sess *Session, storyID string) error {
	if !sess.SignedIn() {
		return ErrNotSignedIn
	}

	sess.User.Favorites.RemoveByID(storyID)

	if err := s.client.RemoveFavorite(ctx, sess.User.Token, sess.User.Username, storyID); err != nil {
		return fmt.Errorf("unfavoriting story: %w", err)
	}
	return nil
}
