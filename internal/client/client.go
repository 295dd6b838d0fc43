// Package client is the Go counterpart of the site frontend's API calls. It
// resolves the API base address exactly once, from configuration, so no
// caller carries its own hardcoded endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/booking"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
)

// Client talks to the portfolio API over HTTP.
type Client struct {
	base string
	http *http.Client
}

// New builds a client for the given API base, e.g. "http://localhost:3001/api".
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Content fetches the public portfolio content.
func (c *Client) Content(ctx context.Context) (portfolio.Content, error) {
	var out portfolio.Content
	if err := c.do(ctx, http.MethodGet, "/portfolio", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveContent replaces the portfolio content wholesale. On error the caller's
// optimistic local copy must be discarded: nothing was saved.
func (c *Client) SaveContent(ctx context.Context, content portfolio.Content) error {
	return c.do(ctx, http.MethodPost, "/portfolio", content, nil)
}

// SubmitMessage sends a contact-form submission.
func (c *Client) SubmitMessage(ctx context.Context, name, email, message string) error {
	payload := map[string]string{"name": name, "email": email, "message": message}
	return c.do(ctx, http.MethodPost, "/contact", payload, nil)
}

// SubmitBooking sends a booking. Its signature matches booking.SubmitFunc so
// a workflow can be wired directly to it.
func (c *Client) SubmitBooking(ctx context.Context, item booking.Item, d booking.Details) error {
	payload := map[string]string{
		"type":  item.Kind,
		"title": item.Title,
		"price": item.Price,
		"name":  d.Name,
		"email": d.Email,
		"date":  d.Date,
		"notes": d.Notes,
	}
	return c.do(ctx, http.MethodPost, "/booking", payload, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return fmt.Errorf("api %s %s: %s", method, path, e.Error)
		}
		return fmt.Errorf("api %s %s: http %d", method, path, resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}
