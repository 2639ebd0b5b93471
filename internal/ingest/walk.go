package ingest

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gestir-app/wardrobe-tracker/constants"
)

// WalkImages walks root and returns the paths of ingestable photos,
// skipping hidden files and directories. Used by the batch CLI; each
// returned path becomes its own independent pipeline run.
func WalkImages(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if constants.MimeForExt(filepath.Ext(path)) != "" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
