package intake

import (
	"fmt"
	"io/fs"
	"mime"
	"path/filepath"
)

// Candidate is one file reference offered for intake. Drag-drop, the
// file picker and the folder picker all reduce to this shape.
type Candidate struct {
	// Name is the display name of the file, no directory part.
	Name string

	// MediaType is the declared media type, if any.
	MediaType string

	// Path is where the bytes can be read from.
	Path string
}

// FromPath builds a Candidate for a single file path, deriving the media
// type from the extension.
func FromPath(path string) Candidate {
	return Candidate{
		Name:      filepath.Base(path),
		MediaType: mime.TypeByExtension(filepath.Ext(path)),
		Path:      path,
	}
}

// CollectDir walks dir recursively and returns a candidate per regular
// file, in lexical walk order. A mixed folder is expected; filtering
// happens at intake, not here.
func CollectDir(dir string) ([]Candidate, error) {
	var cands []Candidate

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		cands = append(cands, FromPath(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	return cands, nil
}
