// Package dataset locates images under a dataset root and derives their
// canonical identifiers.
package dataset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// imageExts are the recognized image extensions, matched case-insensitively.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
}

// CollectImages returns every recognized image file under root, in lexical
// walk order. An unreadable root (or any unreadable directory below it) fails
// the whole collection: a partial dataset would silently produce a partial
// solution file.
func CollectImages(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if imageExts[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk dataset root %s: %w", root, err)
	}
	return paths, nil
}
