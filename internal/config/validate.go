package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTools() error {
	for name, value := range map[string]string{
		"tools.flac":     c.Tools.FLAC,
		"tools.metaflac": c.Tools.Metaflac,
		"tools.oggenc":   c.Tools.Oggenc,
	} {
		if strings.ContainsAny(value, " \t\n\"'") {
			return fmt.Errorf("%s must be a single command without whitespace or quotes", name)
		}
	}
	if c.Tools.OggBitrate < 32 || c.Tools.OggBitrate > 500 {
		return errors.New("tools.ogg_bitrate must be between 32 and 500")
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Concurrency < 1 {
		return errors.New("scan.concurrency must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
