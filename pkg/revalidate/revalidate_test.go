package revalidate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturnsNilWhenUnconfigured(t *testing.T) {
	assert.Nil(t, New("", "secret"))
	assert.NotNil(t, New("http://localhost/revalidate", "secret"))
}

func TestContentChangedPostsWebhook(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := New(srv.URL, "hook-secret")
	n.ContentChanged("projects")

	assert.Equal(t, map[string]string{
		"secret": "hook-secret",
		"entity": "projects",
	}, got)
}

// A failing endpoint is logged, never propagated; the mutation already
// committed.
func TestContentChangedSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := New(srv.URL, "hook-secret")
	n.ContentChanged("skills")
}
