package sfcrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/natserract/sfcrm/pkg/config"
	"go.uber.org/zap"
)

// getAccessToken returns the configured access token. Without one it runs the
// client-credentials flow once and keeps the token for later calls of this
// client.
func (s *Salesforce) getAccessToken(ctx context.Context) (string, error) {
	s.tokenCache.mu.Lock()
	defer s.tokenCache.mu.Unlock()

	if s.tokenCache.accessToken != "" {
		return s.tokenCache.accessToken, nil
	}

	if !s.config.HasClientCredentials() {
		return "", &config.MissingError{Name: "SF_ACCESS_TOKEN"}
	}

	s.logger.Info("No access token configured, authenticating with client credentials")
	authResp, err := s.Authenticate(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}
	if authResp.AccessToken == "" {
		return "", fmt.Errorf("token response has no access_token")
	}

	s.tokenCache.accessToken = authResp.AccessToken
	return authResp.AccessToken, nil
}

// Authenticate retrieves an OAuth access token using the client-credentials
// grant.
func (s *Salesforce) Authenticate(ctx context.Context) (*AuthResponse, error) {
	tokenURL := s.config.TokenURL()
	s.logger.Info("Authenticating with Salesforce", zap.String("url", tokenURL))

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {s.config.ClientID},
		"client_secret": {s.config.ClientSecret},
	}

	headers := map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	}

	resp, err := s.httpClient.Post(ctx, tokenURL, headers, form)
	if err != nil {
		s.logger.Error("Authentication request failed", zap.Error(err), zap.String("url", tokenURL))
		return nil, fmt.Errorf("token request failed: %w", err)
	}

	var authResp AuthResponse
	if err := json.Unmarshal(resp.Body, &authResp); err != nil {
		s.logger.Error("Failed to parse authentication response", zap.Error(err))
		return nil, fmt.Errorf("failed to parse authentication response: %w", err)
	}
	authResp.Raw = json.RawMessage(resp.Body)

	s.logger.Info("Successfully authenticated",
		zap.String("token_type", authResp.TokenType),
		zap.String("instance_url", authResp.InstanceURL))

	return &authResp, nil
}
