package main

import (
	"io"

	"github.com/spf13/cobra"

	"trackforge/internal/encoding"
)

func newOggifyCommand(ctx *commandContext) *cobra.Command {
	var flags makefileFlags

	cmd := &cobra.Command{
		Use:   "oggify <audio files...>",
		Short: "Print a Makefile that transcodes audio files to Ogg Vorbis",
		Long: "Read tags from the given audio files, group them into albums, and print a\n" +
			"Makefile that writes one directory of Ogg Vorbis files per album.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			tracks, err := ctx.readAudioFiles(cmd.Context(), logger, args)
			if err != nil {
				return err
			}

			// Sanity warnings are off for raw audio files.
			albums, err := groupTracks(logger, tracks, flags.groupOptions(cmd, cfg), nil)
			if err != nil {
				return err
			}

			mk := encoding.Oggify(albums, flags.encodingOptions(cmd, cfg, logger))
			return writeOutput(cmd, flags.output, func(w io.Writer) error {
				_, err := mk.WriteTo(w)
				return err
			})
		},
	}

	flags.register(cmd)
	return cmd
}
