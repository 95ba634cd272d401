// Package validation checks loaded configuration before anything runs.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"jellytube/internal/models"
	"jellytube/internal/parsing"
)

// ValidateConfig checks the loaded documents for problems that stop jellytube
// from running at all. Problems confined to one creator or playlist are left
// to ValidateCreator and ValidatePlaylist.
//
// Every problem found is reported, joined into one error.
func ValidateConfig(c *models.Config) error {
	if c.Jellyfin.Jellyfin.LibraryPath == "" {
		return errors.New("jellyfin.library_path is required")
	}

	var errs []error
	if c.Jellyfin.Jellyfin.ServerURL == "" {
		errs = append(errs, errors.New("jellyfin.server_url is required"))
	} else if err := ValidateURL(c.Jellyfin.Jellyfin.ServerURL); err != nil {
		errs = append(errs, fmt.Errorf("jellyfin.server_url: %w", err))
	}
	if s := c.Jellyfin.Notifications.Ntfy.Server; s != "" {
		if err := ValidateURL(s); err != nil {
			errs = append(errs, fmt.Errorf("notifications.ntfy.server: %w", err))
		}
	}

	seen := make(map[string]string, len(c.Creators.Creators))
	for _, cr := range c.Creators.Creators {
		if err := ValidateSegment(seen, "creator", cr.Name); err != nil {
			errs = append(errs, err)
		}
	}
	seen = make(map[string]string, len(c.Creators.Playlists))
	for _, p := range c.Creators.Playlists {
		if err := ValidateSegment(seen, "playlist", p.Name); err != nil {
			errs = append(errs, err)
		}
	}

	if old := c.Jellyfin.Cleanup.OldFiles; old.Enabled && old.RetentionDays <= 0 {
		errs = append(errs, fmt.Errorf("cleanup.old_files.retention_days must be positive when cleanup is enabled, got %d", old.RetentionDays))
	}
	return errors.Join(errs...)
}

// ValidateCreator checks one creator entry can be downloaded.
func ValidateCreator(c models.Creator) error {
	if parsing.PathSegment(c.Name) == "" {
		return fmt.Errorf("creator name %q cannot be used as a directory name", c.Name)
	}
	if err := ValidateSourceURL(c.URL); err != nil {
		return fmt.Errorf("creator %q: %w", c.Name, err)
	}
	if c.DownloadRecent < 0 {
		return fmt.Errorf("creator %q has negative download_recent %d", c.Name, c.DownloadRecent)
	}
	return nil
}

// ValidatePlaylist checks one playlist entry can be downloaded.
func ValidatePlaylist(p models.Playlist) error {
	if parsing.PathSegment(p.Name) == "" {
		return fmt.Errorf("playlist name %q cannot be used as a directory name", p.Name)
	}
	if err := ValidateSourceURL(p.URL); err != nil {
		return fmt.Errorf("playlist %q: %w", p.Name, err)
	}
	if p.MaxVideos < 0 {
		return fmt.Errorf("playlist %q has negative max_videos %d", p.Name, p.MaxVideos)
	}
	return nil
}

// ValidateSourceURL checks a URL handed to yt-dlp.
//
// yt-dlp accepts bare hosts such as "www.youtube.com/@name", so a missing
// scheme is fine; an explicit scheme must be http or https.
func ValidateSourceURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("no url")
	}
	if strings.HasPrefix(raw, "-") {
		return fmt.Errorf("URL %q would be read as a yt-dlp option", raw)
	}
	if !strings.Contains(raw, "://") {
		return nil
	}
	return ValidateURL(raw)
}

// ValidateURL checks that raw is an absolute http or https URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}

// ValidateSegment records the directory name derives from and reports a
// collision with an earlier entry in seen. Names with no usable segment are
// skipped here; ValidateCreator and ValidatePlaylist fail those entries.
func ValidateSegment(seen map[string]string, kind, name string) error {
	seg := parsing.PathSegment(name)
	if seg == "" {
		return nil
	}
	if prev, ok := seen[seg]; ok {
		return fmt.Errorf("%s names %q and %q both map to directory %q", kind, prev, name, seg)
	}
	seen[seg] = name
	return nil
}
