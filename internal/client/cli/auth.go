package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avdeevm/storyhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a username, full name, and password, and creates a new
// account. On success the new user becomes the session user. The password
// byte slice is wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your full name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Signup(ctx, username, password, name)
	if err != nil {
		log.Printf("Signup unsuccessful: %s", err.Error())
		return err
	}

	a.sess.User = user
	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return nil
}

// Login prompts for credentials and authenticates. On success the user
// becomes the session user. The password byte slice is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, username, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.sess.User = user
	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Username))
	return nil
}

// Logout forgets the stored credentials and drops the session user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.ClearSession(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.sess.User = nil
	printlnFn("Logged out.")
	return nil
}
