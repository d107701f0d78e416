package wavegen

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes an already fully encoded byte stream to path in one
// shot: the data lands in a temp file in the destination directory and
// is renamed into place, so a failure never leaves a half-written file
// behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("unable to create file %s: %w", path, err)
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("could not write file %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("could not write file %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("could not write file %s: %w", path, err)
	}

	return nil
}
