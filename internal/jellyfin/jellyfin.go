// Package jellyfin triggers library rescans on a Jellyfin server.
package jellyfin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jellytube/internal/domain/consts"
	"jellytube/internal/domain/errconsts"
	"jellytube/internal/domain/logger"
	"jellytube/internal/net"
)

// Client talks to one Jellyfin server.
type Client struct {
	serverURL string
	apiKey    string
	client    *http.Client
	pl        *logger.ProgramLogger
}

// NewClient returns a client for serverURL. An empty apiKey disables refreshes.
func NewClient(serverURL, apiKey string, pl *logger.ProgramLogger) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		apiKey:    apiKey,
		client:    net.NewClient(serverURL, consts.JellyfinTimeout),
		pl:        pl,
	}
}

// RefreshLibrary asks Jellyfin to rescan all libraries.
//
// Returns true only when the server answers 204 No Content. Without an API key
// no request is made and false is returned.
func (c *Client) RefreshLibrary(ctx context.Context) bool {
	pl := logger.FromContext(ctx, c.pl)
	if err := c.refresh(ctx); err != nil {
		if errors.Is(err, errconsts.ErrNoAPIKey) {
			pl.W("%v - skipping library update", err)
		} else {
			pl.E("Failed to update Jellyfin library: %v", err)
		}
		return false
	}
	pl.S("Jellyfin library scan triggered successfully")
	return true
}

func (c *Client) refresh(ctx context.Context) error {
	if c.apiKey == "" {
		return errconsts.ErrNoAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+consts.JellyfinRefreshPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set(consts.JellyfinTokenHeader, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.pl.E("Failed to close HTTP response body: %v", err)
		}
	}()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("library scan not triggered, status %d", resp.StatusCode)
	}
	return nil
}
