package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the imagery provider boundary: one bearer token per job, one
// statistics call per missing range, one process call per raster. Calls are
// not retried here; a failure fails the whole job.
type Client interface {
	AccessToken(ctx context.Context) (string, error)
	FetchStats(ctx context.Context, token string, payload any) (*StatsResponse, error)
	FetchImage(ctx context.Context, token string, payload any, accept string) ([]byte, error)
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sentinel: status %d: %s", e.Status, e.Body)
}

type httpClient struct {
	tokenURL     string
	statsURL     string
	processURL   string
	clientID     string
	clientSecret string
	httpc        *http.Client
}

func New(tokenURL, statsURL, processURL, clientID, clientSecret string) Client {
	return &httpClient{
		tokenURL:     tokenURL,
		statsURL:     statsURL,
		processURL:   processURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpc:        &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *httpClient) AccessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("token response: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("token response: empty access_token")
	}
	return out.AccessToken, nil
}

func (c *httpClient) FetchStats(ctx context.Context, token string, payload any) (*StatsResponse, error) {
	body, err := c.post(ctx, c.statsURL, token, payload, "application/json")
	if err != nil {
		return nil, err
	}
	var out StatsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("stats response: %w", err)
	}
	return &out, nil
}

func (c *httpClient) FetchImage(ctx context.Context, token string, payload any, accept string) ([]byte, error) {
	return c.post(ctx, c.processURL, token, payload, accept)
}

func (c *httpClient) post(ctx context.Context, endpoint, token string, payload any, accept string) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", accept)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sentinel request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
