// Package audiofile builds tracks from audio files on disk.
//
// FLAC files contribute their Vorbis comments as tags. Any other readable file
// is treated as native audio (WAV, raw PCM) with no tags, so its metadata must
// come from a track list document instead.
package audiofile
