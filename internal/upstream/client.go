package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/locvowork/hospitality_backoffice/internal/logger"
)

// Config holds the connection settings for the upstream suite API.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// SessionCookie is an optional "name=value" pair seeded into the cookie
	// jar so every request rides an existing authenticated session.
	SessionCookie string
	// CSRFCookieName / CSRFHeaderName describe how the suite's CSRF token
	// travels: read from this cookie, sent back in this header.
	CSRFCookieName string
	CSRFHeaderName string
}

// Client wraps the upstream suite REST API. It is the only external
// collaborator this gateway talks to.
type Client struct {
	base       *url.URL
	http       *http.Client
	csrfCookie string
	csrfHeader string
}

// NewClient creates a Client with a fresh cookie jar.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("upstream base URL %q must be absolute", cfg.BaseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if cfg.SessionCookie != "" {
		name, value, ok := strings.Cut(cfg.SessionCookie, "=")
		if !ok {
			return nil, fmt.Errorf("UPSTREAM_SESSION_COOKIE must be in name=value form")
		}
		jar.SetCookies(base, []*http.Cookie{{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
			Path:  "/",
		}})
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		base:       base,
		http:       &http.Client{Jar: jar, Timeout: timeout},
		csrfCookie: cfg.CSRFCookieName,
		csrfHeader: cfg.CSRFHeaderName,
	}, nil
}

// page is the envelope shape the suite's paginated endpoints return.
type page struct {
	Results []json.RawMessage `json:"results"`
	Next    *string           `json:"next"`
}

// FetchAllPages GETs a paginated collection and follows the server-supplied
// next cursor until it is absent, concatenating pages in server order.
// Pages are fetched one at a time, never in parallel; page counts are small
// and the suite's ordering guarantees only hold per request sequence.
//
// A non-OK page does not fail the whole fetch: the status is logged and
// whatever was accumulated so far is returned, so callers degrade to
// partial data instead of blocking. Transport failures are returned as
// errors alongside the partial accumulation.
func (c *Client) FetchAllPages(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	next := c.base.JoinPath(path)
	if len(query) > 0 {
		next.RawQuery = query.Encode()
	}

	var out []json.RawMessage
	seen := make(map[string]struct{})
	for next != nil {
		// A cursor pointing back at a fetched page would loop forever;
		// treat it like any other degraded page and stop with what we have.
		if _, dup := seen[next.String()]; dup {
			logger.WarnLog(ctx, "page cursor %s repeats an already fetched page, keeping %d records fetched so far",
				next.Path, len(out))
			return out, nil
		}
		seen[next.String()] = struct{}{}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, next.String(), nil)
		if err != nil {
			return out, fmt.Errorf("build page request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return out, fmt.Errorf("fetch %s: %w", next.Path, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return out, fmt.Errorf("read page body: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			logger.WarnLog(ctx, "page request %s returned status %d, keeping %d records fetched so far",
				next.Path, resp.StatusCode, len(out))
			return out, nil
		}

		items, cursor, err := decodePage(body)
		if err != nil {
			return out, fmt.Errorf("decode page from %s: %w", next.Path, err)
		}
		out = append(out, items...)

		next, err = c.resolveCursor(cursor)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// decodePage normalizes the two response shapes the suite produces: a bare
// JSON array (single page, no cursor) or a results/next envelope.
func decodePage(body []byte) ([]json.RawMessage, string, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, "", err
		}
		return items, "", nil
	}

	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, "", err
	}
	if p.Next == nil {
		return p.Results, "", nil
	}
	return p.Results, *p.Next, nil
}

// resolveCursor turns a next cursor (absolute or relative) into a URL on
// the upstream host, or nil when pagination is exhausted.
func (c *Client) resolveCursor(cursor string) (*url.URL, error) {
	if cursor == "" {
		return nil, nil
	}
	u, err := url.Parse(cursor)
	if err != nil {
		return nil, fmt.Errorf("invalid next cursor %q: %w", cursor, err)
	}
	return c.base.ResolveReference(u), nil
}

// doJSON issues a single request with a JSON body and optional JSON result.
// Mutating methods carry the CSRF header sourced from the jar's CSRF
// cookie. Every call is attempt-once; there are no retries anywhere.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && c.csrfHeader != "" {
		if token := c.csrfToken(); token != "" {
			req.Header.Set(c.csrfHeader, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, u.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// csrfToken reads the CSRF token the upstream set on a previous response
// (or the seeded session) out of the cookie jar.
func (c *Client) csrfToken() string {
	if c.http.Jar == nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name == c.csrfCookie {
			return ck.Value
		}
	}
	return ""
}
