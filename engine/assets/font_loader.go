package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/STBoyden/ptgui/engine/text"
)

// FontDir is where LoadFont resolves bare file names.
var FontDir = filepath.Join("assets", "fonts")

// LoadFont parses a TTF/OTF file. A bare name is looked up in FontDir; a path
// containing a separator is used as is. An empty name returns the bundled font.
func LoadFont(name string) (*text.Font, error) {
	if name == "" {
		return text.Default()
	}
	path := name
	if filepath.Base(name) == name {
		path = filepath.Join(FontDir, name)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	f, err := text.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	return f, nil
}
