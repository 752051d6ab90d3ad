package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Submit(ctx context.Context) error
	Delete(ctx context.Context, storyID string) error
	Edit(ctx context.Context, storyID string) error
	Fav(ctx context.Context, storyID string) error
	Unfav(ctx context.Context, storyID string) error
	Favorites(ctx context.Context) error
	Mine(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the StoryHub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers log
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("storyhub %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		needsID := func() (string, bool) {
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "<storyId>")
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, submit, edit <id>, delete <id>, fav <id>, unfav <id>, favorites, mine, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, list, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "delete":
			if id, ok := needsID(); ok {
				_ = a.Delete(ctx, id)
			}

		case "edit":
			if id, ok := needsID(); ok {
				_ = a.Edit(ctx, id)
			}

		case "fav":
			if id, ok := needsID(); ok {
				_ = a.Fav(ctx, id)
			}

		case "unfav":
			if id, ok := needsID(); ok {
				_ = a.Unfav(ctx, id)
			}

		case "favorites":
			_ = a.Favorites(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
