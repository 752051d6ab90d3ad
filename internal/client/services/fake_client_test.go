package services

import (
	"context"

	"github.com/avdeevm/storyhub/internal/client/models"
)

// fakeClient implements api.Client for unit tests.
type fakeClient struct {
	// results / behavior
	StoriesRet []models.Story
	StoriesErr error

	AddStoryRet models.Story
	AddStoryErr error

	RemoveStoryErr error

	UpdateStoryRet models.Story
	UpdateStoryErr error

	SignupRet *models.User
	SignupErr error

	LoginRet *models.User
	LoginErr error

	ProfileRet *models.User
	ProfileErr error

	AddFavoriteErr    error
	RemoveFavoriteErr error

	// recorded arguments
	LastToken    string
	LastDraft    models.StoryDraft
	LastStoryID  string
	LastUsername string
	LastPassword string
	LastName     string

	FavoriteCalls []string // "add:<id>" / "remove:<id>"
}

func (f *fakeClient) Stories(ctx context.Context) ([]models.Story, error) {
	return f.StoriesRet, f.StoriesErr
}

func (f *fakeClient) AddStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error) {
	f.LastToken, f.LastDraft = token, draft
	return f.AddStoryRet, f.AddStoryErr
}

func (f *fakeClient) RemoveStory(ctx context.Context, token, storyID string) error {
	f.LastToken, f.LastStoryID = token, storyID
	return f.RemoveStoryErr
}

func (f *fakeClient) UpdateStory(ctx context.Context, token, storyID string, draft models.StoryDraft) (models.Story, error) {
	f.LastToken, f.LastStoryID, f.LastDraft = token, storyID, draft
	return f.UpdateStoryRet, f.UpdateStoryErr
}

func (f *fakeClient) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	f.LastUsername, f.LastPassword, f.LastName = username, password, name
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.LastUsername, f.LastPassword = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Profile(ctx context.Context, token, username string) (*models.User, error) {
	f.LastToken, f.LastUsername = token, username
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	f.LastToken, f.LastUsername = token, username
	f.FavoriteCalls = append(f.FavoriteCalls, "add:"+storyID)
	return f.AddFavoriteErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	f.LastToken, f.LastUsername = token, username
	f.FavoriteCalls = append(f.FavoriteCalls, "remove:"+storyID)
	return f.RemoveFavoriteErr
}
