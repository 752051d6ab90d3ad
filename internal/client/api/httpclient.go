package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/avdeevm/storyhub/internal/client/models"
)

// HTTPClient implements Client against the REST endpoints of the service.
//
// No retries and no client-side timeout: failures are mapped and returned to
// the caller unchanged, and the interactive caller is the retry mechanism.
type HTTPClient struct {
	baseURL string
	hc      *http.Client

	// newRequestID generates the X-Request-Id correlation header.
	// Swappable in tests.
	newRequestID func() string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:      trimTrailingSlash(baseURL),
		hc:           &http.Client{},
		newRequestID: uuid.NewString,
	}
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// Wire DTOs. The JSON shapes are fixed by the server; exported results are
// always models values.

type storyPayload struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p storyPayload) toModel() models.Story {
	return models.Story{
		StoryID:   p.StoryID,
		Title:     p.Title,
		Author:    p.Author,
		URL:       p.URL,
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
	}
}

func toModels(payloads []storyPayload) []models.Story {
	stories := make([]models.Story, 0, len(payloads))
	for _, p := range payloads {
		stories = append(stories, p.toModel())
	}
	return stories
}

type userPayload struct {
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	Favorites []storyPayload `json:"favorites"`
	// The server calls the authored list "stories".
	Stories []storyPayload `json:"stories"`
}

func (p userPayload) toModel(token string) *models.User {
	return &models.User{
		Username:   p.Username,
		Name:       p.Name,
		CreatedAt:  p.CreatedAt,
		Token:      token,
		Favorites:  models.NewStoryList(toModels(p.Favorites)),
		OwnStories: models.NewStoryList(toModels(p.Stories)),
	}
}

type draftPayload struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

type tokenBody struct {
	Token string `json:"token"`
}

type storyBody struct {
	Token string       `json:"token"`
	Story draftPayload `json:"story"`
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one request: marshals body (if any), sets headers, sends, and
// either decodes a 2xx response into out or maps the failure to a sentinel.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", c.newRequestID())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrServer, err)
	}
	return nil
}

// mapStatus translates a non-2xx response into a sentinel error, attaching
// the server's message when the body carries one.
func (c *HTTPClient) mapStatus(resp *http.Response) error {
	var sentinel error
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		sentinel = ErrValidation
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		sentinel = ErrNotFound
	default:
		sentinel = ErrServer
	}

	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Error.Message != "" {
		return fmt.Errorf("%w: %s (%s)", sentinel, eb.Error.Message, resp.Status)
	}
	return fmt.Errorf("%w: %s", sentinel, resp.Status)
}

func (c *HTTPClient) Stories(ctx context.Context) ([]models.Story, error) {
	var out struct {
		Stories []storyPayload `json:"stories"`
	}
	if err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &out); err != nil {
		return nil, err
	}
	return toModels(out.Stories), nil
}

func (c *HTTPClient) AddStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error) {
	body := storyBody{
		Token: token,
		Story: draftPayload{Author: draft.Author, Title: draft.Title, URL: draft.URL},
	}
	var out struct {
		Story storyPayload `json:"story"`
	}
	if err := c.do(ctx, http.MethodPost, "/stories", nil, body, &out); err != nil {
		return models.Story{}, err
	}
	return out.Story.toModel(), nil
}

func (c *HTTPClient) RemoveStory(ctx context.Context, token, storyID string) error {
	path := "/stories/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodDelete, path, nil, tokenBody{Token: token}, nil)
}

func (c *HTTPClient) UpdateStory(ctx context.Context, token, storyID string, draft models.StoryDraft) (models.Story, error) {
	body := storyBody{
		Token: token,
		Story: draftPayload{Author: draft.Author, Title: draft.Title, URL: draft.URL},
	}
	path := "/stories/" + url.PathEscape(storyID)
	var out struct {
		Story storyPayload `json:"story"`
	}
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &out); err != nil {
		return models.Story{}, err
	}
	return out.Story.toModel(), nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	body := struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Name     string `json:"name"`
		} `json:"user"`
	}{}
	body.User.Username = username
	body.User.Password = password
	body.User.Name = name

	var out struct {
		User  userPayload `json:"user"`
		Token string      `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/signup", nil, body, &out); err != nil {
		return nil, err
	}
	return out.User.toModel(out.Token), nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	body := struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"user"`
	}{}
	body.User.Username = username
	body.User.Password = password

	var out struct {
		User  userPayload `json:"user"`
		Token string      `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &out); err != nil {
		return nil, err
	}
	return out.User.toModel(out.Token), nil
}

func (c *HTTPClient) Profile(ctx context.Context, token, username string) (*models.User, error) {
	path := "/users/" + url.PathEscape(username)
	query := url.Values{"token": []string{token}}

	var out struct {
		User userPayload `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return out.User.toModel(token), nil
}

func (c *HTTPClient) favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	return c.do(ctx, http.MethodPost, c.favoritePath(username, storyID), nil, tokenBody{Token: token}, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	return c.do(ctx, http.MethodDelete, c.favoritePath(username, storyID), nil, tokenBody{Token: token}, nil)
}
