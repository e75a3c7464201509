package main

import (
	"io"

	"github.com/spf13/cobra"

	"trackforge/internal/encoding"
	"trackforge/internal/logging"
	"trackforge/internal/sanity"
	"trackforge/internal/trackxml"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	var flags makefileFlags

	cmd := &cobra.Command{
		Use:   "archive <tracks.xml>",
		Short: "Print a Makefile that archives the listed tracks as FLAC albums",
		Long: "Read a track-list document, check its tags, group the tracks into albums, and\n" +
			"print a Makefile that encodes each album to FLAC and adds replay gain.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			tracks, err := trackxml.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("track list read",
				logging.String(logging.FieldFile, args[0]),
				logging.Int("tracks", len(tracks)),
			)

			checker := sanity.NewChecker(cfg.Sanity.Warnings, logger)
			albums, err := groupTracks(logger, tracks, flags.groupOptions(cmd, cfg), checker)
			if err != nil {
				return err
			}

			mk := encoding.Archive(albums, flags.encodingOptions(cmd, cfg, logger))
			return writeOutput(cmd, flags.output, func(w io.Writer) error {
				_, err := mk.WriteTo(w)
				return err
			})
		},
	}

	flags.register(cmd)
	return cmd
}
