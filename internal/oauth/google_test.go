package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func googleVerifierFor(server *httptest.Server) *GoogleVerifier {
	v := NewGoogleVerifier("client-id-123")
	v.Endpoint = server.URL
	v.Client = server.Client()

	return v
}

func TestGoogleVerify_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-abc", r.URL.Query().Get("id_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"aud": "client-id-123",
			"sub": "sub-42",
			"email": "alice@example.com",
			"email_verified": "true",
			"name": "Alice",
			"picture": "https://example.com/alice.png"
		}`))
	}))
	defer server.Close()

	ident, err := googleVerifierFor(server).Verify(context.Background(), "token-abc")

	require.NoError(t, err)
	assert.Equal(t, "google", ident.Provider)
	assert.Equal(t, "sub-42", ident.Subject)
	assert.Equal(t, "alice@example.com", ident.Email)
	assert.Equal(t, "Alice", ident.Name)
}

func TestGoogleVerify_AudienceMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"aud": "someone-elses-app", "sub": "sub-42", "email": "alice@example.com"}`))
	}))
	defer server.Close()

	_, err := googleVerifierFor(server).Verify(context.Background(), "token-abc")

	assert.ErrorIs(t, err, ErrAssertionRejected)
}

func TestGoogleVerify_RejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid_token"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := googleVerifierFor(server).Verify(context.Background(), "bad-token")

	assert.ErrorIs(t, err, ErrAssertionRejected)
}

func TestGoogleVerify_ProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before the call, so the request fails

	_, err := googleVerifierFor(server).Verify(context.Background(), "token-abc")

	assert.ErrorIs(t, err, ErrProviderUnreachable)
}

func TestGoogleVerify_EmptyToken(t *testing.T) {
	_, err := NewGoogleVerifier("client-id-123").Verify(context.Background(), "")

	assert.ErrorIs(t, err, ErrAssertionRejected)
}
