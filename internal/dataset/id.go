package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ImageID derives the canonical identifier for an image inside the dataset
// hierarchy: the first two directory levels below root plus the filename
// without its extension, joined by "/". Case is preserved.
//
//	root/altitude01/longitude05/orientation01_light01.png
//	-> altitude01/longitude05/orientation01_light01
//
// Images nested fewer than two directories below root cannot produce a
// well-formed identifier and return an error instead of a fabricated key.
func ImageID(path, root string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("image %s is not under dataset root %s: %w", path, root, err)
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("image %s is nested %d directory level(s) below the dataset root, want 2", path, len(parts)-1)
	}
	name := parts[len(parts)-1]
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return parts[0] + "/" + parts[1] + "/" + name, nil
}
