package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/api"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/config"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/db"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository/dao"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	gdb, err := db.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(gdb))
	require.NoError(t, dao.Seed(gdb))

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:8080",
			Port:               "8080",
			JWTSigningKey:      "test-signing-key",
			AllowedCORSDomains: "*",
		},
		Gin: &config.GinConfig{
			Mode: "test",
		},
	}

	return api.NewServer(conf, gdb)
}

func login(t *testing.T, s *api.Server, username, password string) string {
	t.Helper()

	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func doRequest(s *api.Server, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

func TestServer_Healthcheck(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestServer_Login(t *testing.T) {
	s := newTestServer(t)

	t.Run("valid credentials", func(t *testing.T) {
		token := login(t, s, "admin", "admin")
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_Authentication(t *testing.T) {
	s := newTestServer(t)

	t.Run("no token", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/sponsors", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/sponsors", "not-a-token", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := login(t, s, "jan", "test")
		w := doRequest(s, http.MethodGet, "/api/v1/sponsors", token, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestServer_AdminOnlyRoutes(t *testing.T) {
	s := newTestServer(t)
	adminToken := login(t, s, "admin", "admin")
	memberToken := login(t, s, "jan", "test")

	t.Run("member is refused", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/stats/overview", memberToken, "")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = doRequest(s, http.MethodPost, "/api/v1/assignments/reset", memberToken, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin reads the overview", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/stats/overview", adminToken, "")
		require.Equal(t, http.StatusOK, w.Code)

		var overview struct {
			TotalSponsors     int     `json:"total_sponsors"`
			AssignedSponsors  int     `json:"assigned_sponsors"`
			TotalRaisedAmount float64 `json:"total_raised_amount"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
		assert.Equal(t, 5, overview.TotalSponsors)
		assert.Equal(t, 4, overview.AssignedSponsors)
		assert.Equal(t, 1250.0, overview.TotalRaisedAmount)
	})

	t.Run("admin resets progress", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/assignments/reset", adminToken, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			ResetCount int `json:"reset_count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.ResetCount)
	})
}

func TestServer_SponsorFlow(t *testing.T) {
	s := newTestServer(t)
	adminToken := login(t, s, "admin", "admin")

	t.Run("assign then fetch the active assignment", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/sponsors/5/assign", adminToken,
			`{"user_id":"6","amount_pledged":1200}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doRequest(s, http.MethodGet, "/api/v1/sponsors/5/assignment", adminToken, "")
		require.Equal(t, http.StatusOK, w.Code)

		var assignment struct {
			UserID string `json:"user_id"`
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assignment))
		assert.Equal(t, "6", assignment.UserID)
		assert.Equal(t, "assigned", assignment.Status)
	})

	t.Run("double assign conflicts", func(t *testing.T) {
		w := doRequest(s, http.MethodPost, "/api/v1/sponsors/5/assign", adminToken,
			`{"user_id":"2","amount_pledged":0}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown sponsor is a 404", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/sponsors/404", adminToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("filtered listing", func(t *testing.T) {
		w := doRequest(s, http.MethodGet, "/api/v1/sponsors?search=bakkerij", adminToken, "")
		require.Equal(t, http.StatusOK, w.Code)

		var sponsors []struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sponsors))
		require.Len(t, sponsors, 1)
		assert.Equal(t, "Bakkerij Jansen", sponsors[0].Name)
	})
}
