// Package chat integrates with the external chat provider that hosts
// one-to-one conversations and video calls for the app.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lingopal/internal/middleware"
	"lingopal/internal/observability"
)

// User is the provider-side representation of an application user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Provider issues chat access tokens and mirrors user profiles to the
// provider so they render correctly inside conversations.
type Provider interface {
	UpsertUser(ctx context.Context, user User) error
	CreateToken(userID string) (string, error)
	Enabled() bool
}

// streamProvider talks to a Stream-style chat API: tokens are minted locally
// with the API secret, profile sync is a server-side REST call.
type streamProvider struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
	tokenTTL   time.Duration
}

// Config holds the provider credentials and endpoint.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string
	TokenTTL  time.Duration
}

// NewProvider returns a chat provider for the given credentials, or a
// disabled no-op provider when the secret is not configured.
func NewProvider(cfg Config) Provider {
	if cfg.APIKey == "" || cfg.APISecret == "" {
		middleware.Logger.Warn("Chat provider credentials not configured, chat features disabled")
		return disabledProvider{}
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &streamProvider{
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		baseURL:   cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		tokenTTL: ttl,
	}
}

// CreateToken mints a provider token bound to the given user ID. The token is
// signed locally with the API secret, no network call is made.
func (p *streamProvider) CreateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(p.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.apiSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign chat token: %w", err)
	}
	return signed, nil
}

// UpsertUser mirrors the user's profile to the provider. Callers treat
// failures as non-fatal: the account still works, the chat profile is just
// synced again on the next update.
func (p *streamProvider) UpsertUser(ctx context.Context, user User) error {
	ctx, span := observability.TraceOutboundCall(ctx, "chat_provider", "upsert_user")
	defer span.End()

	payload := map[string]any{
		"users": map[string]User{user.ID: user},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode chat user: %w", err)
	}

	serverToken, err := p.serverToken()
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/users?api_key=%s", p.baseURL, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", serverToken)
	req.Header.Set("Stream-Auth-Type", "jwt")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		observability.ChatProviderCalls.WithLabelValues("upsert_user", "error").Inc()
		span.RecordError(err)
		return fmt.Errorf("chat provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		observability.ChatProviderCalls.WithLabelValues("upsert_user", "error").Inc()
		err := fmt.Errorf("chat provider returned status %d", resp.StatusCode)
		span.RecordError(err)
		return err
	}

	observability.ChatProviderCalls.WithLabelValues("upsert_user", "ok").Inc()
	return nil
}

// serverToken mints the server-to-server token used to authenticate REST calls.
func (p *streamProvider) serverToken() (string, error) {
	claims := jwt.MapClaims{
		"server": true,
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.apiSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign server token: %w", err)
	}
	return signed, nil
}

func (p *streamProvider) Enabled() bool { return true }

// disabledProvider is used when no credentials are configured. Profile sync
// is a no-op and token requests fail loudly so handlers can surface it.
type disabledProvider struct{}

func (disabledProvider) UpsertUser(_ context.Context, _ User) error { return nil }

func (disabledProvider) CreateToken(_ string) (string, error) {
	return "", fmt.Errorf("chat provider is not configured")
}

func (disabledProvider) Enabled() bool { return false }
