package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const graphProfileURL = "https://graph.microsoft.com/v1.0/me"

// MicrosoftVerifier validates Microsoft access tokens by fetching the
// caller's profile from the Graph API. A token Graph accepts proves the
// assertion; the profile supplies the subject id and email.
type MicrosoftVerifier struct {
	Endpoint string
	Client   *http.Client
}

// creates a Microsoft access token verifier
func NewMicrosoftVerifier() *MicrosoftVerifier {
	return &MicrosoftVerifier{
		Endpoint: graphProfileURL,
		Client:   defaultClient(),
	}
}

type graphProfile struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
}

// Verify fetches the Graph profile with the caller-supplied access token.
func (v *MicrosoftVerifier) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: empty access token", ErrAssertionRejected)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build graph request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: graph returned %d", ErrAssertionRejected, resp.StatusCode)
	}

	var profile graphProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode graph response: %w", err)
	}

	if profile.ID == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrAssertionRejected)
	}

	email := profile.Mail
	if email == "" {
		// personal accounts often have no Mail attribute
		email = profile.UserPrincipalName
	}

	return &Identity{
		Provider: "microsoft",
		Subject:  profile.ID,
		Email:    email,
		Name:     profile.DisplayName,
	}, nil
}
