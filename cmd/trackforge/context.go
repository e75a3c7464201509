package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"trackforge/internal/album"
	"trackforge/internal/audiofile"
	"trackforge/internal/config"
	"trackforge/internal/failure"
	"trackforge/internal/logging"
	"trackforge/internal/sanity"
	"trackforge/internal/track"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = failure.Wrap(failure.ErrConfiguration, "config", "load", path, err)
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
				cfg.Logging.Level = strings.ToLower(level)
				if err := cfg.Validate(); err != nil {
					c.configErr = failure.Wrap(failure.ErrConfiguration, "config", "log level", "", err)
					return
				}
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds a logger writing to the command's stderr.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

// readAudioFiles reads tags from the given files with the configured
// concurrency.
func (c *commandContext) readAudioFiles(ctx context.Context, logger *slog.Logger, paths []string) ([]*track.Track, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	tracks, err := audiofile.ReadTracks(ctx, paths, cfg.Scan.Concurrency)
	if err != nil {
		return nil, err
	}
	logger.Debug("audio files read",
		logging.String(logging.FieldComponent, "audiofile"),
		logging.Int("count", len(tracks)),
	)
	return tracks, nil
}

// groupTracks groups tracks into albums. A nil checker disables warnings.
func groupTracks(logger *slog.Logger, tracks []*track.Track, opts album.Options, checker *sanity.Checker) ([]*album.Album, error) {
	albums, err := album.Group(tracks, opts, checker)
	if err != nil {
		return nil, err
	}
	logger.Debug("tracks grouped",
		logging.String(logging.FieldComponent, "album"),
		logging.Int("albums", len(albums)),
		logging.Bool("simple_album", opts.SimpleAlbum),
		logging.Bool("warnings", checker.WarningsEnabled()),
	)
	return albums, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
