package client

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

	"go.uber.org/zap"

	"github.com/vasilii314/kennel/dog"
	"github.com/vasilii314/kennel/post"
	"github.com/vasilii314/kennel/utils"
)

// APIError is a non-2xx response carrying the server's detail message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Detail)
}

type Client struct {
	// BaseURL of the kennel API, e.g. http://localhost:8000
	BaseURL string
	HTTP    *http.Client
	// Attempts and RetryDelay apply to reads only.
	Attempts   int
	RetryDelay time.Duration
	logger     *zap.Logger
}

// New builds a client for server, given either as
// host:port or as a full http(s) URL.
func New(server string, logger *zap.Logger) *Client {
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "http://" + server
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(server, "/"),
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		Attempts:   3,
		RetryDelay: time.Second,
		logger:     logger.Named("client.Client"),
	}
}

func (c *Client) ListDogs(ctx context.Context, kind *dog.Kind) ([]dog.Dog, error) {
	path := "/dog"
	if kind != nil {
		path += "?kind=" + url.QueryEscape(kind.String())
	}
	var dogs []dog.Dog
	err := c.get(ctx, path, &dogs)
	return dogs, err
}

func (c *Client) GetDog(ctx context.Context, pk int) (dog.Dog, error) {
	var d dog.Dog
	err := c.get(ctx, fmt.Sprintf("/dog/%d", pk), &d)
	return d, err
}

func (c *Client) CreateDog(ctx context.Context, d dog.Dog) (dog.Dog, error) {
	var created dog.Dog
	err := c.send(ctx, http.MethodPost, "/dog", d, &created)
	return created, err
}

// UpdateDog replaces the record at pk with d.
func (c *Client) UpdateDog(ctx context.Context, pk int, d dog.Dog) (dog.Dog, error) {
	var replaced dog.Dog
	err := c.send(ctx, http.MethodPatch, fmt.Sprintf("/dog/%d", pk), d, &replaced)
	return replaced, err
}

func (c *Client) CreatePost(ctx context.Context) (post.Timestamp, error) {
	var p post.Timestamp
	err := c.send(ctx, http.MethodPost, "/post", nil, &p)
	return p, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := utils.HTTPWithRetry(ctx, c.logger, c.Attempts, c.RetryDelay, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
		if err != nil {
			return nil, err
		}
		return c.HTTP.Do(req)
	})
	if err != nil {
		return fmt.Errorf("unable to connect to %s: %w", c.BaseURL, err)
	}
	return decodeResponse(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("unable to connect to %s: %w", c.BaseURL, err)
	}
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := struct {
			Detail string `json:"detail"`
		}{}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
			e.Detail = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: e.Detail}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
