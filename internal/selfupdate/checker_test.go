package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/abhisek/examly/releases/latest", r.URL.Path)
		w.WriteHeader(status)
		if status == http.StatusOK {
			fmt.Fprintf(w, `{"tag_name":%q}`, tag)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.2.0", http.StatusOK)
	c := NewChecker(WithAPIBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.2.0", res.LatestVersion)
	assert.Equal(t, "v1.1.0", res.CurrentVersion)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.1.0", http.StatusOK)
	c := NewChecker(WithAPIBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.False(t, res.UpdateAvailable)
}

func TestCheck_NewerLocalBuild(t *testing.T) {
	srv := releaseServer(t, "v1.1.0", http.StatusOK)
	c := NewChecker(WithAPIBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, res.UpdateAvailable)
}

func TestCheck_TagWithoutVPrefix(t *testing.T) {
	srv := releaseServer(t, "1.2.0", http.StatusOK)
	c := NewChecker(WithAPIBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker()

	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)

	_, err = c.Check(context.Background(), &CheckInput{Version: ""})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_HTTPError(t *testing.T) {
	srv := releaseServer(t, "", http.StatusNotFound)
	c := NewChecker(WithAPIBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCheck_InvalidTag(t *testing.T) {
	srv := releaseServer(t, "not-a-version", http.StatusOK)
	c := NewChecker(WithAPIBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid version")
}
