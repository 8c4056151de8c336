package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// minSize keeps face creation valid for zero or negative requests.
const minSize = 1

// Font is a parsed TrueType/OpenType font with one face per pixel size.
// Not safe for concurrent use.
type Font struct {
	src   *opentype.Font
	faces map[int]font.Face
}

// Parse reads TTF/OTF bytes.
func Parse(ttf []byte) (*Font, error) {
	src, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{src: src, faces: make(map[int]font.Face)}, nil
}

// Default returns the Go Regular font bundled with x/image.
func Default() (*Font, error) { return Parse(goregular.TTF) }

// Face returns the face for size pixels, creating it on first use.
func (f *Font) Face(size int) (font.Face, error) {
	if size < minSize {
		size = minSize
	}
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.src, &opentype.FaceOptions{
		Size: float64(size), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %dpx: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}

// Close releases every cached face.
func (f *Font) Close() {
	if f == nil {
		return
	}
	for size, face := range f.faces {
		_ = face.Close()
		delete(f.faces, size)
	}
}
