package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avdeevm/storyhub/internal/client/models"
)

// List fetches the full story list from the server and replaces the loaded
// session list.
func (a *App) List(ctx context.Context) error {
	list, err := a.storyService.FetchAll(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.sess.Stories = list
	a.printStories(list)
	return nil
}

// Submit prompts for the story fields and posts a new story.
func (a *App) Submit(ctx context.Context) error {
	draft, err := a.inputDraft(models.StoryDraft{})
	if err != nil {
		return err
	}

	story, err := a.storyService.Add(ctx, a.sess, draft)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Submitted %q as %s", story.Title, story.StoryID))
	return nil
}

// Delete removes an own story. On success the id disappears from the loaded
// list, own stories, and favorites alike.
func (a *App) Delete(ctx context.Context, storyID string) error {
	if err := a.storyService.Delete(ctx, a.sess, storyID); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn("Deleted", storyID)
	return nil
}

// Edit prompts for replacement fields (prefilled defaults come from the
// loaded list when the story is known) and patches an own story.
func (a *App) Edit(ctx context.Context, storyID string) error {
	current, _ := a.sess.Stories.ByID(storyID)
	draft, err := a.inputDraft(models.StoryDraft{Title: current.Title, Author: current.Author, URL: current.URL})
	if err != nil {
		return err
	}

	story, err := a.storyService.Edit(ctx, a.sess, storyID, draft)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Updated %q", story.Title))
	return nil
}

// Mine shows the session user's own stories.
func (a *App) Mine(ctx context.Context) error {
	if !a.sess.SignedIn() {
		printlnFn("Sign in first.")
		return nil
	}
	a.printStories(a.sess.User.OwnStories)
	return nil
}

// inputDraft collects the three story fields. An empty answer keeps the
// corresponding default (used by Edit).
func (a *App) inputDraft(defaults models.StoryDraft) (models.StoryDraft, error) {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return models.StoryDraft{}, err
	}
	author, err := getSimpleText(a.reader, "Enter author", os.Stdout)
	if err != nil {
		return models.StoryDraft{}, err
	}
	url, err := getSimpleText(a.reader, "Enter url", os.Stdout)
	if err != nil {
		return models.StoryDraft{}, err
	}

	draft := defaults
	if title != "" {
		draft.Title = title
	}
	if author != "" {
		draft.Author = author
	}
	if url != "" {
		draft.URL = url
	}
	return draft, nil
}

// printStories renders a list, marking favorites of the session user with
// an asterisk.
func (a *App) printStories(list *models.StoryList) {
	if list.Len() == 0 {
		printlnFn("(no stories)")
		return
	}
	for _, s := range list.Stories {
		host, err := s.Host()
		if err != nil {
			host = "invalid url"
		}
		marker := " "
		if a.sess.SignedIn() && a.sess.User.IsFavorite(s.StoryID) {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s (%s) by %s", marker, s.StoryID, s.Title, host, s.Author))
	}
}
