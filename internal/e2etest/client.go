// Package e2etest drives a running scoring server over HTTP. It is used by the server tests and the smoke test.
package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/myrjola/sustainscore/internal/campaign"
	"github.com/myrjola/sustainscore/internal/errors"
)

var ErrUnexpectedStatus = errors.NewSentinel("unexpected status code")

type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a JSON client for the server at url.
func NewClient(url string) *Client {
	return &Client{
		client: &http.Client{Timeout: 10 * time.Second}, //nolint:mnd // 10 seconds
		url:    url,
	}
}

func (c *Client) URL() string {
	return c.url
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		resp *http.Response
	)
	for {
		if resp, err = c.Do(ctx, http.MethodGet, urlPath, nil); err == nil {
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready", slog.String("path", urlPath))
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Do sends a request to the server. The caller must close the response body.
func (c *Client) Do(ctx context.Context, method, urlPath string, body io.Reader) (*http.Response, error) {
	var (
		req  *http.Request
		resp *http.Response
		err  error
	)
	if req, err = http.NewRequestWithContext(ctx, method, c.url+urlPath, body); err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// getJSON sends a request and decodes the JSON response into out if the status is 200.
func (c *Client) getJSON(ctx context.Context, method, urlPath string, body io.Reader, out any) error {
	resp, err := c.Do(ctx, method, urlPath, body)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return errors.Wrap(ErrUnexpectedStatus, "check status",
			slog.String("path", urlPath), slog.Int("status", resp.StatusCode))
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response", slog.String("path", urlPath))
	}
	return nil
}

// Healthy checks the health endpoint.
func (c *Client) Healthy(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, http.MethodGet, "/api/healthy", nil, &status); err != nil {
		return errors.Wrap(err, "get healthy")
	}
	if status.Status != "ok" {
		return errors.New("server not healthy", slog.String("status", status.Status))
	}
	return nil
}

// Score submits doc for scoring.
func (c *Client) Score(ctx context.Context, doc campaign.Document) (campaign.ReportDocument, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return campaign.ReportDocument{}, errors.Wrap(err, "marshal campaign")
	}
	var report campaign.ReportDocument
	if err = c.getJSON(ctx, http.MethodPost, "/api/score", bytes.NewReader(body), &report); err != nil {
		return campaign.ReportDocument{}, errors.Wrap(err, "post score", slog.String("campaign", doc.Name))
	}
	return report, nil
}

// Reference fetches the reference tables the server scores with.
func (c *Client) Reference(ctx context.Context) (campaign.ReferenceDocument, error) {
	var reference campaign.ReferenceDocument
	if err := c.getJSON(ctx, http.MethodGet, "/api/reference", nil, &reference); err != nil {
		return campaign.ReferenceDocument{}, errors.Wrap(err, "get reference")
	}
	return reference, nil
}
