package selfupdate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerFor(t *testing.T, status int, body string) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewChecker(WithReleaseURL(srv.URL))
}

func TestCheck_UpdateAvailable(t *testing.T) {
	c := checkerFor(t, http.StatusOK, `{"tag_name":"v1.2.0"}`)

	result, err := c.Check(t.Context(), "v1.1.0")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	c := checkerFor(t, http.StatusOK, `{"tag_name":"v1.1.0"}`)

	result, err := c.Check(t.Context(), "1.1.0")
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_DevBuildRejected(t *testing.T) {
	c := checkerFor(t, http.StatusOK, `{"tag_name":"v1.1.0"}`)

	_, err := c.Check(t.Context(), "(devel)")
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_FeedErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"empty tag", http.StatusOK, `{"tag_name":""}`},
		{"not semver", http.StatusOK, `{"tag_name":"latest"}`},
		{"broken json", http.StatusOK, `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := checkerFor(t, tt.status, tt.body)
			_, err := c.Check(t.Context(), "v1.0.0")
			require.Error(t, err)
		})
	}
}
