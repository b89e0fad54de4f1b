package oauth

import (
	"errors"
	"net/http"
	"time"
)

var (
	// ErrAssertionRejected means the provider examined the assertion and
	// refused it (bad signature, wrong audience, expired, revoked).
	ErrAssertionRejected = errors.New("identity provider rejected the assertion")

	// ErrProviderUnreachable means the verification call itself failed
	// (network error, timeout, provider outage).
	ErrProviderUnreachable = errors.New("identity provider unreachable")
)

// Identity is the subject extracted from a verified provider assertion.
type Identity struct {
	Provider string
	Subject  string
	Email    string
	Name     string
	Picture  string
}

// verification calls are short and user-facing; fail fast
const verifyTimeout = 10 * time.Second

func defaultClient() *http.Client {
	return &http.Client{Timeout: verifyTimeout}
}
