package archivator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Scan walks dir recursively and returns a Record for every regular file
// found, in traversal discovery order.
//
// Directories, symbolic links, and special files are excluded. Each
// record carries the file's base name, its source path, and its size at
// scan time. A source that does not exist or is not a directory returns
// [ErrNotDirectory]; a file that cannot be stat'd during the walk aborts
// the scan (see the skip policy note on [Archive]).
func Scan(dir string) ([]Record, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	records := make([]Record, 0, 64)
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.Size() < 0 {
			return fmt.Errorf("negative file size: %s", path)
		}
		records = append(records, Record{
			Name: d.Name(),
			Path: path,
			Size: uint64(fi.Size()),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return records, nil
}
