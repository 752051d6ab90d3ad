package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeevm/storyhub/internal/client/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL)
}

func decodeBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(out))
}

func TestStories_ReturnsServerOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stories", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"stories":[
			{"storyId":"b","title":"second","author":"x","url":"https://b.example","username":"u","createdAt":"2024-01-02T00:00:00Z"},
			{"storyId":"a","title":"first","author":"y","url":"https://a.example","username":"u","createdAt":"2024-01-01T00:00:00Z"}
		]}`))
	})

	stories, err := c.Stories(context.Background())
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "b", stories[0].StoryID, "order must match the server response")
	assert.Equal(t, "second", stories[0].Title)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), stories[0].CreatedAt)
}

func TestAddStory_SendsTokenAndDraft(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stories", r.URL.Path)

		var body struct {
			Token string `json:"token"`
			Story struct {
				Author string `json:"author"`
				Title  string `json:"title"`
				URL    string `json:"url"`
			} `json:"story"`
		}
		decodeBody(t, r, &body)
		assert.Equal(t, "tok-1", body.Token)
		assert.Equal(t, "Alice", body.Story.Author)
		assert.Equal(t, "Hello", body.Story.Title)
		assert.Equal(t, "https://example.com", body.Story.URL)

		_, _ = w.Write([]byte(`{"story":{"storyId":"s1","title":"Hello","author":"Alice","url":"https://example.com","username":"alice","createdAt":"2024-03-01T10:00:00Z"}}`))
	})

	story, err := c.AddStory(context.Background(), "tok-1", models.StoryDraft{Title: "Hello", Author: "Alice", URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "s1", story.StoryID, "id is server-assigned")
	assert.Equal(t, "alice", story.Username, "username is server-assigned")
}

func TestRemoveStory_DeleteWithTokenBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/stories/s1", r.URL.Path)

		var body struct {
			Token string `json:"token"`
		}
		decodeBody(t, r, &body)
		assert.Equal(t, "tok-1", body.Token)

		_, _ = w.Write([]byte(`{"message":"Story deleted"}`))
	})

	require.NoError(t, c.RemoveStory(context.Background(), "tok-1", "s1"))
}

func TestUpdateStory_PatchReturnsNewValue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/stories/s1", r.URL.Path)
		_, _ = w.Write([]byte(`{"story":{"storyId":"s1","title":"New","author":"Alice","url":"https://example.com","username":"alice","createdAt":"2024-03-01T10:00:00Z"}}`))
	})

	story, err := c.UpdateStory(context.Background(), "tok-1", "s1", models.StoryDraft{Title: "New", Author: "Alice", URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "New", story.Title)
}

func TestSignup_BuildsUserWithToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signup", r.URL.Path)

		var body struct {
			User struct {
				Username string `json:"username"`
				Password string `json:"password"`
				Name     string `json:"name"`
			} `json:"user"`
		}
		decodeBody(t, r, &body)
		assert.Equal(t, "alice", body.User.Username)
		assert.Equal(t, "pw123", body.User.Password)
		assert.Equal(t, "Alice A", body.User.Name)

		_, _ = w.Write([]byte(`{"user":{"username":"alice","name":"Alice A","createdAt":"2024-03-01T10:00:00Z","favorites":[],"stories":[]},"token":"tok-new"}`))
	})

	user, err := c.Signup(context.Background(), "alice", "pw123", "Alice A")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "tok-new", user.Token)
	assert.Equal(t, 0, user.Favorites.Len())
	assert.Equal(t, 0, user.OwnStories.Len())
}

func TestLogin_SeedsCollectionsFromResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"user":{"username":"alice","name":"Alice A","createdAt":"2024-03-01T10:00:00Z",
			"favorites":[{"storyId":"f1","title":"fav","author":"x","url":"https://f.example","username":"bob","createdAt":"2024-01-01T00:00:00Z"}],
			"stories":[{"storyId":"o1","title":"own","author":"Alice","url":"https://o.example","username":"alice","createdAt":"2024-01-01T00:00:00Z"}]},
			"token":"tok-login"}`))
	})

	user, err := c.Login(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "tok-login", user.Token)
	assert.True(t, user.IsFavorite("f1"))
	assert.True(t, user.OwnStories.ContainsID("o1"))
}

func TestProfile_PassesTokenAsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/alice", r.URL.Path)
		assert.Equal(t, "tok-1", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"user":{"username":"alice","name":"Alice A","createdAt":"2024-03-01T10:00:00Z","favorites":[],"stories":[]}}`))
	})

	user, err := c.Profile(context.Background(), "tok-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", user.Token, "the held token is set on the restored user")
}

func TestFavoriteEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		var body struct {
			Token string `json:"token"`
		}
		decodeBody(t, r, &body)
		assert.Equal(t, "tok-1", body.Token)
		_, _ = w.Write([]byte(`{}`))
	})

	ctx := context.Background()

	require.NoError(t, c.AddFavorite(ctx, "tok-1", "alice", "s1"))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/users/alice/favorites/s1", gotPath)

	require.NoError(t, c.RemoveFavorite(ctx, "tok-1", "alice", "s1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/users/alice/favorites/s1", gotPath)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
	}

	for _, tc := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
		})

		_, err := c.Stories(context.Background())
		require.ErrorIs(t, err, tc.want, "status %d", tc.status)
		assert.Contains(t, err.Error(), "nope", "server message is kept")
	}
}

func TestTransportFailure_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewHTTPClient(srv.URL)
	_, err := c.Stories(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMalformedSuccessBody_MapsToServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	})

	_, err := c.Stories(context.Background())
	require.ErrorIs(t, err, ErrServer)
}
