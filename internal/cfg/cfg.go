// Package cfg provides configuration loading and the command-line entrypoint for jellytube.
package cfg

import (
	"context"
	"fmt"
	"strings"

	"jellytube/internal/domain/keys"
	"jellytube/internal/domain/paths"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options are the values taken from the command line (or JELLYTUBE_* environment variables).
type Options struct {
	ConfigDir     string
	Once          bool
	DebugLevel    int
	DebugLevelSet bool
}

// RunFunc runs the program once flags are parsed.
type RunFunc func(ctx context.Context, o Options) error

// NewRootCmd returns the jellytube root command.
func NewRootCmd(run RunFunc) (*cobra.Command, error) {
	v := viper.New()
	v.SetEnvPrefix("jellytube")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "config-dir" -> JELLYTUBE_CONFIG_DIR
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "jellytube",
		Short:        "jellytube mirrors YouTube channels and playlists into a Jellyfin library.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), Options{
				ConfigDir:     v.GetString(keys.ConfigDir),
				Once:          v.GetBool(keys.RunOnce),
				DebugLevel:    v.GetInt(keys.DebugLevel),
				DebugLevelSet: v.IsSet(keys.DebugLevel),
			})
		},
	}

	if err := initProgramFlags(rootCmd, v); err != nil {
		return nil, err
	}
	return rootCmd, nil
}

// initProgramFlags initializes user flag settings related to the core program.
func initProgramFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	flags := rootCmd.Flags()

	// Config directory
	flags.String(keys.ConfigDir, paths.DefaultConfigDir, "Directory holding config.yml, creators.yaml and jellyfin_youtube.yaml")

	// Single cycle
	flags.Bool(keys.RunOnce, false, "Run one update cycle and exit instead of running hourly")

	// Debug level
	flags.Int(keys.DebugLevel, 0, "Debugging level (0 - 5), overrides debug_level in config.yml")

	return bindFlags(v, flags, keys.ConfigDir, keys.RunOnce, keys.DebugLevel)
}

// bindFlags binds each named flag into v.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}
