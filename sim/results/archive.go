package results

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BuildArchive packages the named files into a zip at archivePath, storing
// each entry under its base name. An existing archive is replaced.
func BuildArchive(archivePath string, files ...string) error {
	f, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("zip: create %s: %w", archivePath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, file := range files {
		if err := addFile(zw, file); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("zip: close %s: %w", archivePath, err)
	}
	return nil
}

func addFile(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("zip: open %s: %w", path, err)
	}
	defer src.Close()

	entry, err := zw.Create(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("zip: create entry %s: %w", filepath.Base(path), err)
	}
	if _, err := io.Copy(entry, src); err != nil {
		return fmt.Errorf("zip: write entry %s: %w", filepath.Base(path), err)
	}
	return nil
}
