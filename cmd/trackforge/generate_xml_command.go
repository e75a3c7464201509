package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"trackforge/internal/album"
	"trackforge/internal/logging"
	"trackforge/internal/track"
	"trackforge/internal/trackxml"
)

func newGenerateXMLCommand(ctx *commandContext) *cobra.Command {
	var (
		autoTrackNo  bool
		simpleAlbum  bool
		createGlobal bool
		output       string
	)

	cmd := &cobra.Command{
		Use:   "generate-xml <audio files...>",
		Short: "Print a track-list document for the given audio files",
		Long: "Read tags from the given audio files and print a track-list document that\n" +
			"can be edited and passed to the archive command.",
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

			if boolFlag(cmd, "auto-track-no", autoTrackNo, cfg.Grouping.AutoTrackNumbers) {
				tracks = numberTracks(tracks, album.Options{
					SimpleAlbum:      boolFlag(cmd, "simple-album", simpleAlbum, cfg.Grouping.SimpleAlbum),
					AutoTrackNumbers: true,
				}, logger)
			}

			global := boolFlag(cmd, "create-global", createGlobal, cfg.XML.CreateGlobal)
			return writeOutput(cmd, output, func(w io.Writer) error {
				return trackxml.Write(w, tracks, global)
			})
		},
	}

	cmd.Flags().BoolVar(&autoTrackNo, "auto-track-no", false, "Add tracknumber tags from each track's position")
	cmd.Flags().BoolVar(&simpleAlbum, "simple-album", false, "Group tracks by album title only when numbering")
	cmd.Flags().BoolVar(&createGlobal, "create-global", false, "Add an empty global tag section")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this path instead of stdout")
	return cmd
}

// numberTracks adds tracknumber tags per album and returns the tracks in
// album order. When the tracks cannot be grouped the whole list is numbered
// in argument order instead.
func numberTracks(tracks []*track.Track, opts album.Options, logger *slog.Logger) []*track.Track {
	albums, err := groupTracks(logger, tracks, opts, nil)
	if err != nil {
		logger.Info("tracks could not be grouped; numbering sequentially", logging.Error(err))
		track.NumberSequentially(tracks)
		return tracks
	}
	return album.Flatten(albums)
}
