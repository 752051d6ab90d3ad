package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/avdeevm/storyhub/internal/client/api"
	"github.com/avdeevm/storyhub/internal/client/config"
	"github.com/avdeevm/storyhub/internal/client/services"
	"github.com/avdeevm/storyhub/internal/client/session"
	"github.com/avdeevm/storyhub/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services together and carries the session for one run of
// the client.
type App struct {
	config       *config.Config
	authService  services.AuthService
	storyService services.StoryService
	sess         *services.Session
	reader       *bufio.Reader
	log          logging.Logger
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing session store: %w", err)
	}

	apiClient := api.NewHTTPClient(c.BaseURL)

	return &App{
		config:       c,
		authService:  services.NewAuthService(apiClient, db, log),
		storyService: services.NewStoryService(apiClient, log),
		sess:         services.NewSession(),
		reader:       bufio.NewReader(os.Stdin),
		log:          log,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.sess.SignedIn()
}

// getStatus renders the prompt decoration: "(alice)" when signed in.
func (a *App) getStatus() string {
	if a.sess.SignedIn() {
		return fmt.Sprintf("(%s) ", a.sess.User.Username)
	}
	return ""
}

// Run restores the previous session if possible, loads the story list, and
// hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.authService.Close(ctx) }()

	printlnFn("Welcome to StoryHub CLI (type 'help' for commands)")

	if user := a.authService.Restore(ctx); user != nil {
		a.sess.User = user
		printlnFn(fmt.Sprintf("Welcome back, %s!", user.Username))
	}

	// Page-load behavior: show the current stories right away. A failure
	// here is not fatal; the user can retry with "list".
	if err := a.List(ctx); err != nil {
		a.log.Warn(ctx, "initial story fetch failed", "err", err)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
