package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jellytube/internal/domain/consts"
	"jellytube/internal/domain/logger"
	"jellytube/internal/models"
	"jellytube/internal/net"
	"jellytube/internal/parsing"
)

// Ntfy publishes messages to an ntfy topic.
type Ntfy struct {
	server string
	topic  string
	client *http.Client
	pl     *logger.ProgramLogger
}

// NewNtfy returns a notifier for the configured server and topic.
func NewNtfy(n models.Ntfy, pl *logger.ProgramLogger) *Ntfy {
	return &Ntfy{
		server: strings.TrimRight(n.Server, "/"),
		topic:  strings.Trim(n.Topic, "/"),
		client: net.NewClient(n.Server, consts.NotifyTimeout),
		pl:     pl,
	}
}

// Send posts message to the topic. Without a server or topic it does nothing.
func (n *Ntfy) Send(ctx context.Context, title, message, priority string) error {
	pl := logger.FromContext(ctx, n.pl)
	if n.server == "" || n.topic == "" {
		pl.D(1, "No ntfy server or topic configured, not sending %q", title)
		return nil
	}

	notifyURL := n.server + "/" + n.topic
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, notifyURL, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("invalid notification URL %q: %w", notifyURL, err)
	}
	req.Header.Set("Title", consts.NotifyTitlePrefix+title)
	req.Header.Set("Priority", priority)
	req.Header.Set("Tags", consts.NotifyTags)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification to %q: %w", notifyURL, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			pl.E("Failed to close HTTP response body: %v", err)
		}
	}()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification failed with status %d", resp.StatusCode)
	}
	pl.D(1, "Notified %q", notifyURL)
	return nil
}

// Summary renders the end-of-cycle notification body.
func Summary(r *models.CycleResult, next time.Time) string {
	var b strings.Builder
	b.Grow(256)

	b.WriteString("🎬 YouTube Update Complete\n\n")
	b.WriteString("📊 Summary:\n")
	fmt.Fprintf(&b, "• Channels processed: %d\n", r.ChannelsProcessed())
	fmt.Fprintf(&b, "• Successful: %d\n", r.ChannelsSucceeded)
	fmt.Fprintf(&b, "• Failed: %d\n", r.ChannelsFailed)
	fmt.Fprintf(&b, "• Total downloads: %d\n", r.Downloads)
	fmt.Fprintf(&b, "• Playlists: %d\n", len(r.Playlists))
	fmt.Fprintf(&b, "• Duration: %s\n\n", parsing.FormatDuration(r.Duration))

	updated := "❌"
	if r.LibraryUpdated {
		updated = "✅"
	}
	fmt.Fprintf(&b, "📚 Library Updated: %s\n\n", updated)
	fmt.Fprintf(&b, "🗓️ Next update: %s", next.Format("15:04"))

	return b.String()
}

// Priority returns the notification priority for a cycle.
func Priority(r *models.CycleResult) string {
	if r.ChannelsFailed > 0 {
		return consts.NotifyPriorityHigh
	}
	return consts.NotifyPriorityDefault
}
