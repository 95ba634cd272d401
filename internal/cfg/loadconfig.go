package cfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"jellytube/internal/domain/command"
	"jellytube/internal/domain/consts"
	"jellytube/internal/domain/errconsts"
	"jellytube/internal/domain/keys"
	"jellytube/internal/domain/paths"
	"jellytube/internal/models"
	"jellytube/internal/validation"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads the three configuration documents from dir.
//
// Defaults for absent keys are applied while decoding.
//
// Any missing or malformed document is an error; the caller is expected to exit.
// Problems confined to one creator or playlist are not: that entry fails when
// its turn comes.
func Load(dir string) (*models.Config, error) {
	mainCfg, err := loadMain(viper.New(), filepath.Join(dir, paths.MainConfigFile))
	if err != nil {
		return nil, err
	}

	var creators models.CreatorsConfig
	creatorsPath := filepath.Join(dir, paths.CreatorsConfigFile)
	if err := loadYAML(creatorsPath, &creators); err != nil {
		return nil, fmt.Errorf(errconsts.ConfigFileLoadFail, creatorsPath, err)
	}

	var jf models.JellyfinConfig
	jellyfinPath := filepath.Join(dir, paths.JellyfinConfigFile)
	if err := loadYAML(jellyfinPath, &jf); err != nil {
		return nil, fmt.Errorf(errconsts.ConfigFileLoadFail, jellyfinPath, err)
	}

	env, err := envOverrides()
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(env, &jf)

	c := &models.Config{
		Main:     mainCfg,
		Creators: creators,
		Jellyfin: jf,
	}
	if err := validation.ValidateConfig(c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// loadMain reads config.yml through viper.
func loadMain(v *viper.Viper, path string) (models.MainConfig, error) {
	v.SetDefault(keys.YtDLPPath, command.YTDLP)
	v.SetDefault(keys.LogDir, paths.DefaultLogDir)
	v.SetDefault(keys.LogLevel, 0)
	v.SetDefault(keys.CycleInterval, consts.DefaultCycleInterval)
	v.SetDefault(keys.ChannelPause, consts.DefaultChannelPause)
	v.SetDefault(keys.ErrorCooldown, consts.DefaultErrorCooldown)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return models.MainConfig{}, fmt.Errorf(errconsts.ConfigFileLoadFail, path, err)
	}

	m := models.MainConfig{
		YtDLPPath:  v.GetString(keys.YtDLPPath),
		LogDir:     v.GetString(keys.LogDir),
		DebugLevel: v.GetInt(keys.LogLevel),
		Raw:        v.AllSettings(),
	}

	var err error
	if m.CycleInterval, err = durationSetting(v, keys.CycleInterval); err != nil {
		return m, err
	}
	if m.ChannelPause, err = durationSetting(v, keys.ChannelPause); err != nil {
		return m, err
	}
	if m.ErrorCooldown, err = durationSetting(v, keys.ErrorCooldown); err != nil {
		return m, err
	}

	if m.CycleInterval < consts.MinCycleInterval {
		return m, fmt.Errorf("%s must be at least %v, got %v", keys.CycleInterval, consts.MinCycleInterval, m.CycleInterval)
	}
	if m.ErrorCooldown < consts.MinErrorCooldown {
		return m, fmt.Errorf("%s must be at least %v, got %v", keys.ErrorCooldown, consts.MinErrorCooldown, m.ErrorCooldown)
	}
	if m.ChannelPause < 0 {
		return m, fmt.Errorf("%s must not be negative, got %v", keys.ChannelPause, m.ChannelPause)
	}
	return m, nil
}

// durationSetting reads a duration key. Bare numbers are seconds; strings
// may also use Go duration syntax ("90s", "1h").
func durationSetting(v *viper.Viper, key string) (time.Duration, error) {
	switch val := v.Get(key).(type) {
	case time.Duration:
		return val, nil
	case string:
		s := strings.TrimSpace(val)
		if secs, err := strconv.ParseFloat(s, 64); err == nil {
			return seconds(secs), nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid duration %q: %w", key, val, err)
		}
		return d, nil
	default:
		secs, err := cast.ToFloat64E(val)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid duration %v: %w", key, val, err)
		}
		return seconds(secs), nil
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// envOverrides binds the environment variables that override the YAML
// documents. It is kept apart from the config.yml instance so values can
// only come from the environment.
func envOverrides() (*viper.Viper, error) {
	env := viper.New()
	for key, name := range map[string]string{
		keys.NtfyServer:     keys.EnvNtfyServer,
		keys.NtfyTopic:      keys.EnvNtfyTopic,
		keys.JellyfinAPIKey: keys.EnvJellyfinAPIKey,
	} {
		if err := env.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}
	return env, nil
}

// loadYAML decodes a single YAML document into out.
func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// applyEnvOverrides replaces config values with environment values where present.
func applyEnvOverrides(v *viper.Viper, j *models.JellyfinConfig) {
	if s := v.GetString(keys.NtfyServer); s != "" {
		j.Notifications.Ntfy.Server = s
	}
	if s := v.GetString(keys.NtfyTopic); s != "" {
		j.Notifications.Ntfy.Topic = s
	}
	j.APIKey = v.GetString(keys.JellyfinAPIKey)
}
