// Where: internal/vcd/client.go
// What: Minimal Cloud Director API client for session login and branding.
// Why: Keep the three-endpoint REST surface behind one typed client.
package vcd

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/vcdtools/vcdbrand/internal/branding"
)

const (
	// acceptHeader pins the legacy API version the session endpoint expects.
	acceptHeader = "application/json;version=30.0"

	headerAuthorization = "x-vcloud-authorization"
	headerAccessToken   = "X-VMWARE-VCLOUD-ACCESS-TOKEN"
)

// ErrAuthenticationFailed reports a login response missing one or both
// session headers.
var ErrAuthenticationFailed = errors.New("authentication failed")

// StatusError reports an unexpected HTTP status, carrying the response body
// the API returned.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Credentials holds the login inputs. The username is qualified with the
// @system org on the wire.
type Credentials struct {
	Username string
	Password string
}

// Session holds the two opaque tokens the login endpoint issues. Both are
// attached to every subsequent call.
type Session struct {
	Authorization string
	AccessToken   string
}

// Options configures a Client.
type Options struct {
	// Insecure disables TLS certificate verification. Only for management
	// endpoints with self-signed certificates; must be an explicit opt-in.
	Insecure bool
	Timeout  time.Duration
	Logger   zerolog.Logger
}

// Client talks to one Cloud Director instance.
type Client struct {
	host string
	http *http.Client
	log  zerolog.Logger
}

// NewClient builds a client for the given instance URL. The URL is
// normalized; endpoints are always reconstructed over HTTPS.
func NewClient(rawURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	transport := http.DefaultTransport
	if opts.Insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		host: NormalizeURL(rawURL),
		http: &http.Client{Transport: transport, Timeout: timeout},
		log:  opts.Logger,
	}
}

// Login exchanges credentials for session tokens via POST /api/sessions.
// Both session headers must be present in the response or the login is
// treated as failed.
func (c *Client) Login(ctx context.Context, creds Credentials) (Session, error) {
	url := BuildURL(c.host, "api", "sessions")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+basicToken(creds))

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", http.MethodPost).Str("url", url).
		Int("status", resp.StatusCode).Msg("session login")

	session := Session{
		Authorization: resp.Header.Get(headerAuthorization),
		AccessToken:   resp.Header.Get(headerAccessToken),
	}
	if session.Authorization == "" || session.AccessToken == "" {
		return Session{}, ErrAuthenticationFailed
	}
	return session, nil
}

// SetTheme applies the theme descriptor via PUT /cloudapi/branding.
// The API answers 200 on success.
func (c *Client) SetTheme(ctx context.Context, session Session, theme branding.Theme) error {
	payload, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}

	resp, body, err := c.put(ctx, session, BuildURL(c.host, "cloudapi", "branding"),
		"application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Op: "set theme", StatusCode: resp.StatusCode, Body: body}
	}
	return nil
}

// UploadLogo reads the logo file and uploads it via
// PUT /cloudapi/branding/logo. The API answers 204 on success.
func (c *Client) UploadLogo(ctx context.Context, session Session, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read logo: %w", err)
	}

	resp, body, err := c.put(ctx, session, BuildURL(c.host, "cloudapi", "branding", "logo"),
		branding.LogoContentType(path), bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("upload logo %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusNoContent {
		return &StatusError{
			Op:         fmt.Sprintf("upload logo %s", path),
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}
	return nil
}

// put issues an authenticated PUT and drains the response body.
func (c *Client) put(ctx context.Context, session Session, url, contentType string, payload io.Reader) (*http.Response, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, payload)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(headerAuthorization, session.Authorization)
	req.Header.Set(headerAccessToken, session.AccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	c.log.Debug().Str("method", http.MethodPut).Str("url", url).
		Int("status", resp.StatusCode).Msg("branding call")

	return resp, string(body), nil
}

// basicToken encodes the credentials in the user@system:password form the
// session endpoint accepts.
func basicToken(creds Credentials) string {
	decoded := fmt.Sprintf("%s@system:%s", creds.Username, creds.Password)
	return base64.StdEncoding.EncodeToString([]byte(decoded))
}
