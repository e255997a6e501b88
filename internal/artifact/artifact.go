// Package artifact writes rendered figures to disk.
package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// YearPlaceholder is replaced by the figure year in output paths.
const YearPlaceholder = "{year}"

// ExpandPath substitutes year into a path template.
func ExpandPath(tmpl string, year int) string {
	return strings.ReplaceAll(tmpl, YearPlaceholder, strconv.Itoa(year))
}

// Encoder serializes an artifact.
type Encoder interface {
	EncodePNG(w io.Writer) error
}

// FileWriter replaces the file at a path with a freshly encoded artifact.
// Existing files are overwritten; readers never observe a partial image
// because the data is written to a sibling temp file and renamed into place.
type FileWriter struct{}

func (FileWriter) Write(path string, enc Encoder) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := enc.EncodePNG(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
