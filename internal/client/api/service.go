// Package api talks to the remote story-sharing service over HTTP+JSON.
// It exposes the fixed server wire contract as typed operations and maps
// transport and status failures to the sentinel errors in errors.go.
package api

import (
	"context"

	"github.com/avdeevm/storyhub/internal/client/models"
)

// Client is the surface of the remote service the rest of the client
// depends on. All calls are sequential; callers never issue two requests
// concurrently against the same session.
type Client interface {
	// Stories fetches the full story list, unauthenticated, in server order.
	Stories(ctx context.Context) ([]models.Story, error)

	// AddStory posts a new story. The server assigns id, username and
	// timestamp, which come back in the returned story.
	AddStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error)

	// RemoveStory deletes a story the token's user owns.
	RemoveStory(ctx context.Context, token, storyID string) error

	// UpdateStory patches an owned story and returns the updated value.
	UpdateStory(ctx context.Context, token, storyID string, draft models.StoryDraft) (models.Story, error)

	// Signup creates an account and returns the new user with its token.
	Signup(ctx context.Context, username, password, name string) (*models.User, error)

	// Login authenticates and returns the user with its token.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// Profile fetches a user by name with an already-held token. The token
	// is set on the returned user.
	Profile(ctx context.Context, token, username string) (*models.User, error)

	// AddFavorite marks a story as a favorite of the token's user.
	AddFavorite(ctx context.Context, token, username, storyID string) error

	// RemoveFavorite unmarks a favorite.
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
