package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"trackforge/internal/album"
	"trackforge/internal/config"
	"trackforge/internal/encoding"
)

// makefileFlags are shared by the archive and oggify commands. Flags that
// were not set on the command line fall back to the configuration file.
type makefileFlags struct {
	simpleAlbum bool
	verbose     bool
	useEchoE    bool
	output      string
}

func (f *makefileFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.simpleAlbum, "simple-album", false, "Group tracks by album title only")
	cmd.Flags().BoolVar(&f.verbose, "verbose-makefile", false, "Let make print full recipes")
	cmd.Flags().BoolVar(&f.useEchoE, "use-echo-e", false, "Use echo -e when writing tag values")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write the Makefile to this path instead of stdout")
}

func (f *makefileFlags) groupOptions(cmd *cobra.Command, cfg *config.Config) album.Options {
	return album.Options{
		SimpleAlbum: boolFlag(cmd, "simple-album", f.simpleAlbum, cfg.Grouping.SimpleAlbum),
	}
}

func (f *makefileFlags) encodingOptions(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) encoding.Options {
	return encoding.Options{
		Verbose:  boolFlag(cmd, "verbose-makefile", f.verbose, cfg.Makefile.Verbose),
		UseEchoE: boolFlag(cmd, "use-echo-e", f.useEchoE, cfg.Makefile.UseEchoE),
		Tools:    encoding.ToolsFromConfig(cfg),
		Logger:   logger,
	}
}

// boolFlag returns the flag value when it was set explicitly and fallback
// otherwise.
func boolFlag(cmd *cobra.Command, name string, value, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
