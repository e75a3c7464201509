package config

const (
	defaultConfigPath      = "~/.config/trackforge/config.toml"
	defaultProjectConfig   = "trackforge.toml"
	defaultFLACBinary      = "flac"
	defaultMetaflacBinary  = "metaflac"
	defaultOggencBinary    = "oggenc"
	defaultOggBitrate      = 128
	defaultScanConcurrency = 4
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Sanity: Sanity{
			Warnings: true,
		},
		Tools: Tools{
			FLAC:       defaultFLACBinary,
			Metaflac:   defaultMetaflacBinary,
			Oggenc:     defaultOggencBinary,
			OggBitrate: defaultOggBitrate,
		},
		Scan: Scan{
			Concurrency: defaultScanConcurrency,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
