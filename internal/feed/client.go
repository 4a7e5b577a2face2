package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/odysseus0/onthisday/internal/config"
	"github.com/odysseus0/onthisday/internal/model"
)

const maxResponseBytes = 16 << 20

// Client fetches "on this day" payloads from the Wikimedia feed API.
type Client struct {
	cfg    config.Config
	client *http.Client
}

func NewClient(cfg config.Config) *Client {
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	return &Client{
		cfg:    cfg,
		client: client,
	}
}

// Fetch performs the single GET for the given category and date and returns
// the raw body. A non-2xx status comes back as *StatusError; everything else
// that fails is a transport error.
func (c *Client) Fetch(ctx context.Context, category model.Category, month, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/onthisday/%s/%02d/%02d",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Language, category, month, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	// The Wikimedia API rejects anonymous clients with 403.
	// See: https://meta.wikimedia.org/wiki/User-Agent_policy
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	log.WithFields(log.Fields{
		"url":      url,
		"category": category,
	}).Debug("requesting feed")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"status": resp.StatusCode,
		"bytes":  len(data),
	}).Debug("feed response received")

	return data, nil
}
