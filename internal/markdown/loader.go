package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader lists and reads content files from a flat directory. It performs no
// filtering: every entry the directory holds is reported, and files that are
// not valid documents are expected to fail later during header validation.
type Loader struct {
	fs fs.FS
}

// NewLoader constructs a Loader over the provided filesystem. The
// filesystem's root is the content directory itself.
func NewLoader(filesystem fs.FS) *Loader {
	return &Loader{fs: filesystem}
}

// NewDirLoader constructs a Loader rooted at the given directory path.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(filepath.Clean(dir)))
}

// List returns the filenames present in the content directory. No ordering
// is guaranteed beyond what the filesystem reports. A missing directory
// surfaces as fs.ErrNotExist.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := fs.ReadDir(l.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("content loader list: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Read returns the raw bytes of a single content file. A missing file
// surfaces as fs.ErrNotExist; any other failure is an I/O error. Single
// attempt, no retries.
func (l *Loader) Read(ctx context.Context, filename string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	name := strings.TrimSpace(filename)
	if name == "" || !fs.ValidPath(name) || strings.Contains(name, "/") {
		return nil, fmt.Errorf("content loader read %q: %w", filename, fs.ErrNotExist)
	}

	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("content loader read %s: %w", name, err)
	}
	return data, nil
}
