package models

import (
	"fmt"
	"time"

	"jellytube/internal/domain/consts"

	"gopkg.in/yaml.v3"
)

// Config holds everything loaded at startup. It is built once and never mutated.
type Config struct {
	Main     MainConfig
	Creators CreatorsConfig
	Jellyfin JellyfinConfig
}

// MainConfig holds process-level settings from config.yml.
type MainConfig struct {
	YtDLPPath     string
	LogDir        string
	DebugLevel    int
	CycleInterval time.Duration
	ChannelPause  time.Duration
	ErrorCooldown time.Duration

	// Raw holds every key in config.yml, including ones jellytube does not read.
	Raw map[string]any
}

// CreatorsConfig is the creators.yaml document.
type CreatorsConfig struct {
	Creators        []Creator       `yaml:"creators"`
	QualityProfiles QualityProfiles `yaml:"quality_profiles"`
	Playlists       []Playlist      `yaml:"playlists"`
}

// Creator is a channel to mirror.
type Creator struct {
	Name           string `yaml:"name"`
	URL            string `yaml:"url"`
	Category       string `yaml:"category"`
	DownloadRecent int    `yaml:"download_recent"`
	Quality        string `yaml:"quality"`
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys absent from the document
// take their defaults; keys present keep their value, zero included.
func (c *Creator) UnmarshalYAML(value *yaml.Node) error {
	type plain Creator
	p := plain{
		Category:       consts.DefaultCategory,
		DownloadRecent: consts.DefaultDownloadRecent,
		Quality:        consts.DefaultQuality,
	}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = Creator(p)
	return nil
}

// Playlist is a playlist to mirror.
type Playlist struct {
	Name      string `yaml:"name"`
	URL       string `yaml:"url"`
	MaxVideos int    `yaml:"max_videos"`
}

// UnmarshalYAML implements yaml.Unmarshaler, defaulting max_videos.
func (p *Playlist) UnmarshalYAML(value *yaml.Node) error {
	type plain Playlist
	pp := plain{MaxVideos: consts.DefaultMaxVideos}
	if err := value.Decode(&pp); err != nil {
		return err
	}
	*p = Playlist(pp)
	return nil
}

// QualityProfiles maps a quality label to a yt-dlp format selector.
type QualityProfiles map[string]QualityProfile

// QualityProfile is a yt-dlp format selector.
//
// In YAML it is either a plain string or a mapping with a "format" key.
type QualityProfile string

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *QualityProfile) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*q = QualityProfile(s)
		return nil
	case yaml.MappingNode:
		var m struct {
			Format string `yaml:"format"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		if m.Format == "" {
			return fmt.Errorf("line %d: quality profile has no format", value.Line)
		}
		*q = QualityProfile(m.Format)
		return nil
	default:
		return fmt.Errorf("line %d: quality profile must be a string or a mapping with a format key", value.Line)
	}
}

// JellyfinConfig is the jellyfin_youtube.yaml document.
type JellyfinConfig struct {
	Jellyfin      JellyfinServer `yaml:"jellyfin"`
	Notifications Notifications  `yaml:"notifications"`
	Cleanup       Cleanup        `yaml:"cleanup"`

	// APIKey only comes from the environment.
	APIKey string `yaml:"-"`
}

// JellyfinServer locates the library and the server.
type JellyfinServer struct {
	LibraryPath string `yaml:"library_path"`
	ServerURL   string `yaml:"server_url"`
}

// Notifications holds notification targets.
type Notifications struct {
	Ntfy Ntfy `yaml:"ntfy"`
}

// Ntfy is an ntfy server and topic.
type Ntfy struct {
	Server string `yaml:"server"`
	Topic  string `yaml:"topic"`
}

// Cleanup holds cleanup policies.
type Cleanup struct {
	OldFiles OldFiles `yaml:"old_files"`
}

// OldFiles is the age-based retention policy.
type OldFiles struct {
	Enabled       bool `yaml:"enabled"`
	RetentionDays int  `yaml:"retention_days"`
}

// UnmarshalYAML implements yaml.Unmarshaler, defaulting retention_days.
func (o *OldFiles) UnmarshalYAML(value *yaml.Node) error {
	type plain OldFiles
	p := plain{RetentionDays: consts.DefaultRetentionDays}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*o = OldFiles(p)
	return nil
}
