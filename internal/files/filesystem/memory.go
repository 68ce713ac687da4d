package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	path    string
	relPath string
	content []byte
	info    fs.FileInfo

	// readErr is returned by ReadContent instead of content when set.
	readErr error
	// walkErr is delivered to the walk callback instead of the entry when set.
	walkErr error
}

func (f *memoryFile) Path() string         { return f.path }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.content, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	path string
	fs   *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.path }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.path)

	// Segment-wise ordering keeps the walk depth-first: "a/b.ts" sorts
	// before "a.ts" just as filepath.Walk visits directory "a" first.
	sort.Slice(entries, func(i, j int) bool {
		return comparePaths(entries[i].path, entries[j].path) < 0
	})

	skipped := ""
	for _, entry := range entries {
		if skipped != "" && strings.HasPrefix(entry.path, skipped+"/") {
			continue
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.path, r)
				}
			}()

			if entry.walkErr != nil {
				callbackErr = fn(nil, &fs.PathError{Op: "open", Path: entry.path, Err: entry.walkErr})
				return
			}
			callbackErr = fn(entry, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}

		// An unlistable directory is skipped with everything beneath it.
		if entry.walkErr != nil && entry.info.IsDir() {
			skipped = entry.path
		}
	}

	return nil
}

// comparePaths orders slash-separated paths segment by segment.
func comparePaths(a, b string) int {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return len(as) - len(bs)
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = filepath.ToSlash(root)
	root = path.Clean(root)

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}

	mfs.files[root] = newMemoryDir(root, ".")

	return mfs
}

func newMemoryDir(dirPath, relPath string) *memoryFile {
	return &memoryFile{
		path:    dirPath,
		relPath: relPath,
		info: &memoryFileInfo{
			name:    path.Base(dirPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	mfs.files[absPath] = &memoryFile{
		path:    absPath,
		relPath: mfs.relative(absPath),
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: time.Now(),
			isDir:   false,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory to the in-memory filesystem
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newMemoryDir(absPath, mfs.relative(absPath))
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddUnreadableFile adds a file whose ReadContent fails with readErr
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string, readErr error) {
	mfs.AddFile(filePath, "")
	mfs.files[mfs.resolve(filePath)].readErr = readErr
}

// AddWalkError makes the walk report walkErr at the given path instead of the
// entry itself. If the path is a directory its contents are skipped when the
// callback chooses to continue.
func (mfs *MemoryFileSystem) AddWalkError(entryPath string, walkErr error) {
	absPath := mfs.resolve(entryPath)
	entry, exists := mfs.files[absPath]
	if !exists {
		mfs.AddDir(entryPath)
		entry = mfs.files[absPath]
	}
	entry.walkErr = walkErr
}

// resolve turns a path relative to the root into an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)

	var absPath string
	switch {
	case p == "." || p == "":
		absPath = mfs.root
	case strings.HasPrefix(p, "/") || path.IsAbs(p):
		absPath = p
	default:
		absPath = path.Join(mfs.root, p)
	}
	return path.Clean(absPath)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	relPath, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		return absPath
	}
	return filepath.ToSlash(relPath)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = newMemoryDir(dir, mfs.relative(dir))

	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	basePath = filepath.ToSlash(basePath)
	var entries []*memoryFile

	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}

		if matched {
			entries = append(entries, file)
		}
	}

	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{
		path: absPath,
		fs:   mfs,
	}, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}

	return file.info, nil
}
