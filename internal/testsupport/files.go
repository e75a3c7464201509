package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0x42
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteFLAC writes a minimal FLAC stream at path: a zeroed STREAMINFO block,
// one Vorbis comment block holding comments verbatim, and a frame sync code.
func WriteFLAC(t testing.TB, path string, comments ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	vc := flacvorbis.New()
	vc.Comments = append(vc.Comments, comments...)
	block := vc.Marshal()

	file := &flac.File{
		Meta: []*flac.MetaDataBlock{
			{Type: flac.StreamInfo, Data: make([]byte, 34)},
			&block,
		},
		Frames: flac.FrameData{0xFF, 0xF8},
	}
	if err := file.Save(path); err != nil {
		t.Fatalf("write flac %s: %v", path, err)
	}
}
