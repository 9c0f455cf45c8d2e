package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"foodgram-admin/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func testConfig(baseURL string) utils.BackendConfig {
	return utils.BackendConfig{
		BaseURL:   baseURL,
		AdminPath: "/api/admin",
		Timeout:   5 * time.Second,
	}
}

func TestClient_Get(t *testing.T) {
	t.Run("attaches bearer token and request id", func(t *testing.T) {
		var gotAuth, gotRequestID, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRequestID = r.Header.Get("X-Request-ID")
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data": {"userId": "u-1"}, "message": "ok"}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), staticToken("tok-123"), zap.NewNop())

		var out struct {
			UserID string `json:"userId"`
		}
		err := client.Get(context.Background(), "/users/u-1", nil, &out)

		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
		assert.NotEmpty(t, gotRequestID)
		assert.Equal(t, "/api/admin/users/u-1", gotPath)
		assert.Equal(t, "u-1", out.UserID)
	})

	t.Run("no authorization header when logged out", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"data": null}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), staticToken(""), zap.NewNop())

		err := client.Get(context.Background(), "/users", nil, nil)

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("error response carries backend message verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "User not found"}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), staticToken("tok"), zap.NewNop())

		err := client.Get(context.Background(), "/users/missing", nil, nil)

		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.EqualError(t, err, "User not found")
	})

	t.Run("error response without message falls back to status text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), staticToken("tok"), zap.NewNop())

		err := client.Get(context.Background(), "/users", nil, nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
		assert.EqualError(t, err, "Internal Server Error")
	})

	t.Run("unreachable backend wraps transport error", func(t *testing.T) {
		client := NewClient(testConfig("http://127.0.0.1:1"), staticToken("tok"), zap.NewNop())

		err := client.Get(context.Background(), "/users", nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend unreachable")
		assert.Equal(t, 0, StatusOf(err))
	})
}

func TestClient_UnauthorizedHook(t *testing.T) {
	t.Run("fires on every 401", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Session expired"}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), staticToken("stale"), zap.NewNop())

		fired := 0
		client.SetUnauthorizedHook(func() { fired++ })

		err := client.Get(context.Background(), "/users", nil, nil)
		require.Error(t, err)
		assert.True(t, IsUnauthorized(err))
		assert.EqualError(t, err, "Session expired")
		assert.Equal(t, 1, fired)

		err = client.Delete(context.Background(), "/users/u-1", nil)
		require.Error(t, err)
		assert.Equal(t, 2, fired)
	})

	t.Run("does not fire on other statuses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message": "Forbidden"}`))
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), staticToken("tok"), zap.NewNop())

		fired := 0
		client.SetUnauthorizedHook(func() { fired++ })

		err := client.Get(context.Background(), "/users", nil, nil)
		require.Error(t, err)
		assert.Equal(t, 0, fired)
	})
}

func TestClient_Patch(t *testing.T) {
	var gotMethod, gotQuery string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"data": {"userId": "u-1", "status": "suspended"}}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), staticToken("tok"), zap.NewNop())

	query := url.Values{}
	query.Set("status", "suspended")

	var out struct {
		Status string `json:"status"`
	}
	err := client.Patch(context.Background(), "/users/u-1/status", query, &out)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "status=suspended", gotQuery)
	assert.Empty(t, gotBody)
	assert.Equal(t, "suspended", out.Status)
}
