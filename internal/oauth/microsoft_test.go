package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func microsoftVerifierFor(server *httptest.Server) *MicrosoftVerifier {
	v := NewMicrosoftVerifier()
	v.Endpoint = server.URL
	v.Client = server.Client()

	return v
}

func TestMicrosoftVerify_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "ms-sub-7",
			"displayName": "Bob Jones",
			"mail": "bob@example.com",
			"userPrincipalName": "bob_example.com#EXT#@tenant.onmicrosoft.com"
		}`))
	}))
	defer server.Close()

	ident, err := microsoftVerifierFor(server).Verify(context.Background(), "token-abc")

	require.NoError(t, err)
	assert.Equal(t, "microsoft", ident.Provider)
	assert.Equal(t, "ms-sub-7", ident.Subject)
	assert.Equal(t, "bob@example.com", ident.Email)
	assert.Equal(t, "Bob Jones", ident.Name)
}

func TestMicrosoftVerify_FallsBackToPrincipalName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "ms-sub-7", "displayName": "Bob", "userPrincipalName": "bob@outlook.com"}`))
	}))
	defer server.Close()

	ident, err := microsoftVerifierFor(server).Verify(context.Background(), "token-abc")

	require.NoError(t, err)
	assert.Equal(t, "bob@outlook.com", ident.Email)
}

func TestMicrosoftVerify_RejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": "InvalidAuthenticationToken"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := microsoftVerifierFor(server).Verify(context.Background(), "bad-token")

	assert.ErrorIs(t, err, ErrAssertionRejected)
}

func TestMicrosoftVerify_ProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := microsoftVerifierFor(server).Verify(context.Background(), "token-abc")

	assert.ErrorIs(t, err, ErrProviderUnreachable)
}
