package config

import "strings"

func (c *Config) normalize() {
	c.normalizeTools()
	c.normalizeScan()
	c.normalizeLogging()
}

func (c *Config) normalizeTools() {
	c.Tools.FLAC = strings.TrimSpace(c.Tools.FLAC)
	if c.Tools.FLAC == "" {
		c.Tools.FLAC = defaultFLACBinary
	}
	c.Tools.Metaflac = strings.TrimSpace(c.Tools.Metaflac)
	if c.Tools.Metaflac == "" {
		c.Tools.Metaflac = defaultMetaflacBinary
	}
	c.Tools.Oggenc = strings.TrimSpace(c.Tools.Oggenc)
	if c.Tools.Oggenc == "" {
		c.Tools.Oggenc = defaultOggencBinary
	}
	if c.Tools.OggBitrate == 0 {
		c.Tools.OggBitrate = defaultOggBitrate
	}
}

func (c *Config) normalizeScan() {
	if c.Scan.Concurrency == 0 {
		c.Scan.Concurrency = defaultScanConcurrency
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "console", "pretty", "text":
		c.Logging.Format = "console"
	case "json":
		c.Logging.Format = "json"
	default:
		c.Logging.Format = format
	}

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}
