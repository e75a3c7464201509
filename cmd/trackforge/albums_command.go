package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"trackforge/internal/album"
	"trackforge/internal/sanity"
	"trackforge/internal/tags"
	"trackforge/internal/track"
	"trackforge/internal/trackxml"
)

type albumView struct {
	Name      string      `json:"name"`
	Artist    *string     `json:"artist,omitempty"`
	Album     *string     `json:"album,omitempty"`
	Performer *string     `json:"performer,omitempty"`
	Tracks    []trackView `json:"tracks"`
}

type trackView struct {
	Filename string     `json:"filename"`
	Kind     string     `json:"kind"`
	Tags     []tags.Tag `json:"tags"`
}

func newAlbumsCommand(ctx *commandContext) *cobra.Command {
	var (
		xmlPath     string
		simpleAlbum bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "albums [audio files...]",
		Short: "Show how tracks group into albums",
		Long: "Group audio files, or the tracks of a track-list document given with --xml,\n" +
			"into albums and list them. Sanity warnings are reported for documents.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			xmlPath = strings.TrimSpace(xmlPath)
			if xmlPath == "" && len(args) == 0 {
				return errors.New("no input: pass audio files or --xml <file>")
			}
			if xmlPath != "" && len(args) > 0 {
				return errors.New("pass either audio files or --xml, not both")
			}

			var (
				tracks  []*track.Track
				checker *sanity.Checker
			)
			if xmlPath != "" {
				tracks, err = trackxml.ReadFile(xmlPath)
				checker = sanity.NewChecker(cfg.Sanity.Warnings, logger)
			} else {
				tracks, err = ctx.readAudioFiles(cmd.Context(), logger, args)
			}
			if err != nil {
				return err
			}

			albums, err := groupTracks(logger, tracks, album.Options{
				SimpleAlbum: boolFlag(cmd, "simple-album", simpleAlbum, cfg.Grouping.SimpleAlbum),
			}, checker)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, albumViews(albums))
			}

			out := cmd.OutOrStdout()
			if len(albums) == 0 {
				fmt.Fprintln(out, "No albums")
				return nil
			}
			rows := make([][]string, 0, len(albums))
			for i, a := range albums {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					a.Name,
					strconv.Itoa(len(a.Tracks)),
					kindSummary(a.Tracks),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Album", "Tracks", "Sources"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
				shouldColorize(out),
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&xmlPath, "xml", "", "Read tracks from a track-list document")
	cmd.Flags().BoolVar(&simpleAlbum, "simple-album", false, "Group tracks by album title only")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print albums as JSON")
	return cmd
}

func albumViews(albums []*album.Album) []albumView {
	views := make([]albumView, 0, len(albums))
	for _, a := range albums {
		view := albumView{
			Name:      a.Name,
			Artist:    a.Key.Artist,
			Album:     a.Key.Album,
			Performer: a.Key.Performer,
			Tracks:    make([]trackView, 0, len(a.Tracks)),
		}
		for _, tr := range a.Tracks {
			view.Tracks = append(view.Tracks, trackView{
				Filename: tr.Filename,
				Kind:     tr.Kind.String(),
				Tags:     tr.Tags().List(),
			})
		}
		views = append(views, view)
	}
	return views
}

// kindSummary counts tracks per kind, e.g. "2 flac, 1 native".
func kindSummary(tracks []*track.Track) string {
	var flac, native int
	for _, tr := range tracks {
		if tr.Kind == track.KindFLAC {
			flac++
		} else {
			native++
		}
	}
	var parts []string
	if flac > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", flac, track.KindFLAC))
	}
	if native > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", native, track.KindNative))
	}
	return strings.Join(parts, ", ")
}
