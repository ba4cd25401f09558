package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// AuthOptions controls how the handle treats user sessions.
type AuthOptions struct {
	PersistSession   bool
	AutoRefreshToken bool
}

type Options struct {
	Auth AuthOptions

	// HTTPClient overrides the underlying client. Its transport is wrapped
	// with AuthTransport.
	HTTPClient *http.Client
	Timeout    time.Duration
	Headers    map[string]string
}

// Client is a handle to a Supabase project. Building one performs no I/O and
// the handle is safe for concurrent use.
type Client struct {
	client  *http.Client
	baseURL *url.URL
	options Options
}

func NewClient(rawURL, key string, opts Options) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid supabase url %q: must be an absolute http(s) url", rawURL)
	}
	if key == "" {
		return nil, fmt.Errorf("supabase key must be set")
	}
	u.Path = strings.TrimRight(u.Path, "/")

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := http.DefaultTransport
	if opts.HTTPClient != nil && opts.HTTPClient.Transport != nil {
		base = opts.HTTPClient.Transport
	}
	if opts.HTTPClient != nil && opts.HTTPClient.Timeout > 0 {
		timeout = opts.HTTPClient.Timeout
	}

	return &Client{
		client: &http.Client{
			Transport: &AuthTransport{
				APIKey:  key,
				Headers: opts.Headers,
				Base:    base,
			},
			Timeout: timeout,
		},
		baseURL: u,
		options: opts,
	}, nil
}

func (c *Client) URL() string {
	return c.baseURL.String()
}

func (c *Client) Options() Options {
	return c.options
}

// RestURL is the PostgREST endpoint of the project.
func (c *Client) RestURL() string {
	return c.URL() + "/rest/v1"
}

// AuthURL is the auth (GoTrue) endpoint of the project.
func (c *Client) AuthURL() string {
	return c.URL() + "/auth/v1"
}

// Health queries the auth service health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.AuthURL()+"/health", nil)
	if err != nil {
		return nil, err
	}
	var status HealthStatus
	if err := c.do(req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Ping checks that the project answers authenticated requests.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Health(ctx)
	return err
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.message() == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode supabase response: %w", err)
	}
	return nil
}
