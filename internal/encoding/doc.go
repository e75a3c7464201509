// Package encoding turns album groupings into Makefiles that re-encode each
// track with its metadata.
//
// Archive produces lossless FLAC copies with sanitized names plus an
// album-wide replay gain pass. Oggify produces lossy Ogg Vorbis copies laid
// out in one directory per album. Both leave the actual transcoding to the
// external flac, metaflac, and oggenc programs named in Tools; recipes decode
// the source to stdout and pipe it into the encoder, passing every tag as an
// argument.
package encoding
