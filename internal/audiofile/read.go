package audiofile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dhowden/tag"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
	"golang.org/x/sync/errgroup"

	"trackforge/internal/failure"
	"trackforge/internal/tags"
	"trackforge/internal/track"
)

// DefaultConcurrency bounds parallel reads when callers pass zero.
const DefaultConcurrency = 4

// sniff reports whether r holds a FLAC stream. Short or unrecognized input is
// not FLAC.
func sniff(r io.ReadSeeker) bool {
	_, fileType, err := tag.Identify(r)
	if err != nil {
		return false
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false
	}
	return fileType == tag.FLAC
}

// DetectKind classifies the file at path. Missing or unreadable files are
// native.
func DetectKind(path string) track.Kind {
	f, err := os.Open(path)
	if err != nil {
		return track.KindNative
	}
	defer f.Close()
	if !sniff(f) {
		return track.KindNative
	}
	if _, err := readComments(f); err != nil {
		return track.KindNative
	}
	return track.KindFLAC
}

// ReadTrack opens path and builds a track from it. FLAC files whose metadata
// cannot be parsed fall back to native tracks without tags.
func ReadTrack(path string) (*track.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrAudioFile, "audiofile", "open", path, err)
	}
	defer f.Close()

	if !sniff(f) {
		return track.New(path, track.KindNative), nil
	}
	comments, err := readComments(f)
	if err != nil {
		return track.New(path, track.KindNative), nil
	}

	tr := track.New(path, track.KindFLAC)
	for _, comment := range comments {
		parsed, err := tags.ParseAssignment(comment, '=')
		if err != nil {
			continue
		}
		tr.AddTag(parsed)
	}
	return tr, nil
}

// readComments collects the entries of every Vorbis comment block in order.
func readComments(r io.Reader) ([]string, error) {
	file, err := flac.ParseMetadata(r)
	if err != nil {
		return nil, fmt.Errorf("parse flac metadata: %w", err)
	}
	var comments []string
	for _, meta := range file.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		block, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, fmt.Errorf("parse vorbis comment: %w", err)
		}
		comments = append(comments, block.Comments...)
	}
	return comments, nil
}

// ReadTracks reads paths concurrently, at most limit at a time, and returns
// the tracks in argument order. The first error cancels outstanding reads and
// no tracks are returned.
func ReadTracks(ctx context.Context, paths []string, limit int) ([]*track.Track, error) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	out := make([]*track.Track, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr, err := ReadTrack(path)
			if err != nil {
				return err
			}
			out[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
