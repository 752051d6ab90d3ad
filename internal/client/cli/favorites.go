package cli

import (
	"context"
	"log"
)

// Fav marks a story from the loaded list as a favorite. The local mark is
// applied before the server call; if the server call fails, the mark is
// reverted so local and server state do not silently diverge.
func (a *App) Fav(ctx context.Context, storyID string) error {
	story, ok := a.sess.Stories.ByID(storyID)
	if !ok {
		printlnFn("Unknown story id:", storyID)
		return nil
	}

	// Record the state before the optimistic change: reverting means going
	// back to it, not blindly undoing. The story may already be a favorite.
	wasFavorite := a.sess.SignedIn() && a.sess.User.IsFavorite(storyID)

	if err := a.storyService.AddFavorite(ctx, a.sess, story); err != nil {
		log.Printf("favorite not saved: %v", err)
		if a.sess.SignedIn() && !wasFavorite {
			a.sess.User.Favorites.RemoveByID(storyID)
		}
		return err
	}

	printlnFn("Favorited", storyID)
	return nil
}

// Unfav unmarks a favorite, reverting the local removal when the server
// call fails.
func (a *App) Unfav(ctx context.Context, storyID string) error {
	// Keep the story value around so a failed remote call can restore it.
	story, ok := a.sess.Stories.ByID(storyID)
	if !ok && a.sess.SignedIn() {
		story, ok = a.sess.User.Favorites.ByID(storyID)
	}

	// Only a story that actually was a favorite gets restored on failure;
	// unfavoriting a non-favorite is a local no-op with nothing to revert.
	wasFavorite := a.sess.SignedIn() && a.sess.User.IsFavorite(storyID)

	if err := a.storyService.RemoveFavorite(ctx, a.sess, storyID); err != nil {
		log.Printf("favorite not removed: %v", err)
		if wasFavorite && ok && !a.sess.User.Favorites.ContainsID(storyID) {
			a.sess.User.Favorites.Add(story)
		}
		return err
	}

	printlnFn("Unfavorited", storyID)
	return nil
}

// Favorites shows the session user's favorites.
func (a *App) Favorites(ctx context.Context) error {
	if !a.sess.SignedIn() {
		printlnFn("Sign in first.")
		return nil
	}
	a.printStories(a.sess.User.Favorites)
	return nil
}
