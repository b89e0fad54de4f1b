package system

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/auth"
	"github.com/pbxops/server/internal/pbx"
	"github.com/pbxops/server/pbxops/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystemRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tm, err := auth.NewTokenManager("test-secret-key-for-testing")
	require.NoError(t, err)

	token, err := tm.Generate(&users.User{
		ID:       "user-123",
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api")
	RegisterRoutes(api, tm, pbx.NewClient())

	return router, token
}

func fetchInfo(router *gin.Engine, token string, body gin.H) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body) //nolint:errcheck // test fixture

	req := httptest.NewRequest(http.MethodPost, "/api/system/fetch-info", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestFetchInfo_RequiresAuth(t *testing.T) {
	router, _ := newSystemRouter(t)

	w := fetchInfo(router, "", gin.H{
		"systemUrl": "https://pbx.example.com",
		"username":  "admin",
		"password":  "pw",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFetchInfo_MissingCredentials(t *testing.T) {
	router, token := newSystemRouter(t)

	w := fetchInfo(router, token, gin.H{"systemUrl": "https://pbx.example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing credentials")
}

func TestFetchInfo_LiveSystem(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/SystemStatus", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Version": "18.0.7.100", "MaxSimCalls": "16SC", "ExtensionCount": 12}`))
	}))
	defer upstream.Close()

	router, token := newSystemRouter(t)

	w := fetchInfo(router, token, gin.H{
		"systemUrl": upstream.URL,
		"username":  "admin",
		"password":  "pw",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp FetchInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Simulated)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "18.0.7.100", resp.Data.Version)
	assert.Equal(t, 12, resp.Data.UserCount)
}

func TestFetchInfo_UnreachableFallsBackToSimulation(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // deployment is down

	router, token := newSystemRouter(t)

	w := fetchInfo(router, token, gin.H{
		"systemUrl": upstream.URL,
		"username":  "admin",
		"password":  "pw",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp FetchInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Simulated)
	require.NotNil(t, resp.Data)
	assert.NotEmpty(t, resp.Data.Version)
	assert.Len(t, resp.Data.Hardware, 2)
}
