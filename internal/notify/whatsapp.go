// Package notify forwards receipts to the external WhatsApp messaging webhook.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"
)

var (
	// ErrEmptyMessage is returned when number or message is missing
	ErrEmptyMessage = errors.New("number & message wajib")

	// ErrInvalidNumber is returned for numbers outside the 62... format
	ErrInvalidNumber = errors.New("format nomor harus 62...")
)

// Message is the body sent to the webhook
type Message struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

// Reply is the webhook answer, passed back to the caller unchanged
type Reply struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client posts messages to the webhook endpoint
type Client struct {
	http     *resty.Client
	endpoint string
}

// NewClient creates a client with a fixed timeout for every call
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		http:     resty.New().SetTimeout(timeout),
		endpoint: endpoint,
	}
}

// Close releases idle connections
func (c *Client) Close() error {
	return c.http.Close()
}

// Validate trims and checks a message before it is sent
func Validate(number, message string) (Message, error) {
	m := Message{Number: strings.TrimSpace(number), Message: strings.TrimSpace(message)}
	if m.Number == "" || m.Message == "" {
		return m, ErrEmptyMessage
	}
	if !strings.HasPrefix(m.Number, "62") || !isDigits(m.Number) {
		return m, ErrInvalidNumber
	}
	return m, nil
}

// Send posts the message. Any HTTP answer is returned as a Reply, only transport
// failures produce an error.
func (c *Client) Send(ctx context.Context, m Message) (*Reply, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(m).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("post to webhook: %w", err)
	}
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}
	return &Reply{
		StatusCode:  resp.StatusCode(),
		ContentType: contentType,
		Body:        resp.Bytes(),
	}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
