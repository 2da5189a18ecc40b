package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is one rendered artifact and its destination.
type GeneratedFile struct {
	Dir      string
	Filename string
	Content  []byte
}

// Path returns the destination path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// WriteFiles writes all files or none of them. Each file is staged in a
// temporary file next to its destination and renamed into place only once
// every file has been staged; on failure the staged files are removed and
// files already renamed are deleted.
func WriteFiles(files ...GeneratedFile) (err error) {
	staged := make([]string, 0, len(files))
	defer func() {
		if err != nil {
			for _, tmp := range staged {
				os.Remove(tmp)
			}
		}
	}()

	for _, file := range files {
		tmp, serr := stage(file)
		if serr != nil {
			return serr
		}
		staged = append(staged, tmp)
	}

	for i, tmp := range staged {
		if rerr := os.Rename(tmp, files[i].Path()); rerr != nil {
			for _, done := range files[:i] {
				os.Remove(done.Path())
			}
			return fmt.Errorf("writing file %s: %w", files[i].Filename, rerr)
		}
	}
	return nil
}

// stage writes file to a temporary file in its destination directory.
func stage(file GeneratedFile) (string, error) {
	if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(file.Dir, "."+file.Filename+".*")
	if err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}
	_, err = tmp.Write(file.Content)
	if err == nil {
		err = tmp.Chmod(filePerm)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}
	return tmp.Name(), nil
}
