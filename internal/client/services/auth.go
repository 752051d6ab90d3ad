package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avdeevm/storyhub/internal/client/api"
	"github.com/avdeevm/storyhub/internal/client/models"
	"github.com/avdeevm/storyhub/internal/client/session"
	"github.com/avdeevm/storyhub/internal/dbx"
	"github.com/avdeevm/storyhub/internal/logging"
)

// AuthService manages account creation, login, and session restore.
//
// Contract:
//   - Signup/Login: authenticate against the server, persist the session
//     credentials locally, and return the user. Errors propagate.
//   - Restore: best-effort resume of the previous session. Never fails;
//     any problem means an anonymous start.
//   - ClearSession: wipe the stored credentials (logout).
//   - Close: release the local store.
type AuthService interface {
	Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error)
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Restore(ctx context.Context) *models.User
	ClearSession(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote Client and
// the local sqlite credential store.
type authService struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger
}

func NewAuthService(client api.Client, db *sql.DB, log logging.Logger) AuthService {
	return &authService{client: client, db: db, log: log}
}

func (a *authService) repo() session.Repository {
	return session.NewSQLiteRepository(a.db)
}

func (a *authService) Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	user, err := a.client.Signup(ctx, username, string(password), name)
	if err != nil {
		return nil, fmt.Errorf("signup error: %w", err)
	}

	if err := a.saveSession(ctx, user); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	user, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, user); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

// saveSession persists the credentials needed to resume the session later,
// in a single transaction.
func (a *authService) saveSession(ctx context.Context, user *models.User) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, session.KeyToken, []byte(user.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyUsername, []byte(user.Username))
	})
}

// Restore tries to resume the previous session from the credential store.
// It runs unattended at startup and must never block the prompt, so every
// failure — missing credentials, an expired token, a dead network, a token
// the server no longer accepts — results in an anonymous session (nil).
func (a *authService) Restore(ctx context.Context) *models.User {
	repo := a.repo()

	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil || len(token) == 0 {
		return nil
	}
	username, err := repo.Get(ctx, session.KeyUsername)
	if err != nil || len(username) == 0 {
		return nil
	}

	if tokenExpired(string(token)) {
		a.log.Info(ctx, "stored token expired, starting anonymous", "username", string(username))
		return nil
	}

	user, err := a.client.Profile(ctx, string(token), string(username))
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "username", string(username), "err", err)
		return nil
	}
	return user
}

// tokenExpired reports whether the stored bearer token carries an exp claim
// in the past. The signature is not checked here; the server remains the
// authority and rejects anything else that is wrong with the token.
func tokenExpired(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		// Not a JWT; let the server decide.
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}

// ClearSession wipes the stored credentials (logout).
func (a *authService) ClearSession(ctx context.Context) error {
	return a.repo().Clear(ctx)
}

// Close releases the local credential store.
func (a *authService) Close(ctx context.Context) error {
	return a.db.Close()
}
