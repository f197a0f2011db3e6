package kroger

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aislefinder/backend/internal/domain"
	"github.com/aislefinder/backend/internal/retry"
	"github.com/tidwall/gjson"
)

const (
	tokenScope = "product.compact"

	// tokenSafetyMargin is subtracted from the reported token lifetime so a
	// token is never used while it could expire mid-request
	tokenSafetyMargin = 60 * time.Second
)

// TokenProvider exchanges client credentials for a bearer token and caches
// it until its margin-adjusted expiry. Each provider instance owns exactly
// one token slot; refresh is serialized behind a mutex so concurrent runs
// sharing an instance never race on a redundant exchange.
type TokenProvider struct {
	httpClient   *http.Client
	authURL      string
	clientID     string
	clientSecret string
	retryPolicy  retry.Policy
	debug        bool

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenProvider creates a token provider for the Kroger OAuth2
// client-credentials flow
func NewTokenProvider(clientID, clientSecret, authURL string) *TokenProvider {
	return &TokenProvider{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		authURL:      authURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		retryPolicy:  retry.DefaultPolicy(),
	}
}

// SetDebug enables or disables debug logging
func (p *TokenProvider) SetDebug(enabled bool) {
	p.debug = enabled
}

// SetRetryPolicy overrides the default retry policy for the exchange call
func (p *TokenProvider) SetRetryPolicy(policy retry.Policy) {
	p.retryPolicy = policy
}

// Token returns a valid bearer token, reusing the cached one while it is
// still inside the safety margin. A missing secret or rejected credentials
// is fatal and never retried.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.expiry) {
		return p.token, nil
	}

	if p.clientSecret == "" {
		return "", domain.ErrMissingCredentials
	}

	grant, err := retry.Do(ctx, p.retryPolicy, p.exchange)
	if err != nil {
		return "", err
	}

	p.token = grant.token
	p.expiry = grant.expiry
	if p.debug {
		log.Printf("[KROGER] Token refreshed, valid until %s", p.expiry.Format(time.RFC3339))
	}
	return p.token, nil
}

type tokenGrant struct {
	token  string
	expiry time.Time
}

// exchange performs one credential exchange against the token endpoint
func (p *TokenProvider) exchange(ctx context.Context) (tokenGrant, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", tokenScope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return tokenGrant{}, retry.Permanent(fmt.Errorf("failed to create token request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+basicAuth(p.clientID, p.clientSecret))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return tokenGrant{}, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return tokenGrant{}, fmt.Errorf("%w: reading token response: %v", domain.ErrCatalogAPIFailure, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return tokenGrant{}, retry.Permanent(fmt.Errorf("%w: status %d", domain.ErrAuthFailed, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return tokenGrant{}, fmt.Errorf("%w: token endpoint status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
	}

	accessToken := gjson.GetBytes(body, "access_token").String()
	expiresIn := gjson.GetBytes(body, "expires_in").Int()
	if accessToken == "" || expiresIn <= 0 {
		// Malformed response shape counts as transient
		return tokenGrant{}, fmt.Errorf("%w: token response missing access_token", domain.ErrCatalogAPIFailure)
	}

	return tokenGrant{
		token:  accessToken,
		expiry: time.Now().Add(time.Duration(expiresIn)*time.Second - tokenSafetyMargin),
	}, nil
}

func basicAuth(clientID, clientSecret string) string {
	return base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
}
