package verify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client requests legacy paths from a deployed site without following
// redirects, so the first hop's status and Location can be inspected.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

type Response struct {
	Status   int
	Location string
	NoIndex  bool
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.RetryMax = 3
	rc.Logger = nil
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rc.HTTPClient.Timeout = timeout
	rc.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

func (c *Client) Get(ctx context.Context, path string) (Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("accept", "text/html")
	req.Header.Set("user-agent", "legacy-url-verifier/1")

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	loc := resp.Header.Get("Location")
	if loc != "" {
		loc = strings.TrimPrefix(loc, c.baseURL)
	}
	return Response{
		Status:   resp.StatusCode,
		Location: loc,
		NoIndex:  strings.Contains(strings.ToLower(resp.Header.Get("X-Robots-Tag")), "noindex"),
	}, nil
}
