package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// osFile implements File interface for OS filesystem
type osFile struct {
	path    string
	relPath string
	info    fs.FileInfo
}

func (f *osFile) Path() string         { return f.path }
func (f *osFile) RelativePath() string { return f.relPath }
func (f *osFile) Info() FileInfo       { return f.info }

func (f *osFile) ReadContent() ([]byte, error) {
	return os.ReadFile(f.path)
}

// osDirectory implements Directory interface for OS filesystem
type osDirectory struct {
	path string
}

func (d *osDirectory) Path() string { return d.path }

// Walk visits the tree depth-first in lexical order. Symbolic links are
// resolved: a link to a directory is recursed into under the link's path, and
// a link that cannot be resolved is reported as an error. Each directory is
// expanded at most once, keyed by its resolved path, so link cycles end.
func (d *osDirectory) Walk(fn func(File, error) error) error {
	w := &osWalker{
		root: d.path,
		fn:   fn,
		seen: make(map[string]struct{}),
	}

	info, err := os.Stat(d.path)
	if err != nil {
		return w.visit(d.path, nil, err)
	}
	return w.walk(d.path, info)
}

type osWalker struct {
	root string
	fn   func(File, error) error
	seen map[string]struct{}
}

func (w *osWalker) walk(path string, info fs.FileInfo) error {
	if err := w.visit(path, info, nil); err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return w.visit(path, nil, err)
	}
	if _, ok := w.seen[realPath]; ok {
		return nil
	}
	w.seen[realPath] = struct{}{}

	entries, err := os.ReadDir(path)
	if err != nil {
		// A nil return from the callback skips the unreadable directory.
		return w.visit(path, nil, err)
	}

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())

		var childInfo fs.FileInfo
		if entry.Type()&fs.ModeSymlink != 0 {
			childInfo, err = os.Stat(child)
		} else {
			childInfo, err = entry.Info()
		}
		if err != nil {
			if err := w.visit(child, nil, err); err != nil {
				return err
			}
			continue
		}

		if err := w.walk(child, childInfo); err != nil {
			return err
		}
	}
	return nil
}

// visit hands one entry, or the error met at path, to the callback and turns
// a callback panic into an error.
func (w *osWalker) visit(path string, info fs.FileInfo, walkErr error) (callbackErr error) {
	defer func() {
		if r := recover(); r != nil {
			callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
		}
	}()

	if walkErr != nil {
		return w.fn(nil, walkErr)
	}

	relPath, err := filepath.Rel(w.root, path)
	if err != nil {
		return w.fn(nil, fmt.Errorf("failed to get relative path: %w", err))
	}

	return w.fn(&osFile{
		path:    path,
		relPath: relPath,
		info:    info,
	}, nil)
}

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open keeps the path as given (cleaned) so reported file paths stay relative
// to the working directory when the caller passed a relative root.
func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	return &osDirectory{path: filepath.Clean(path)}, nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}
