package assets

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// IndexName is the document served for "/" and "/index.html".
const IndexName = "index.html"

// ErrNotFound reports that a URL path does not resolve to a servable
// file. Rejected paths, missing files, directories and read errors all
// wrap it.
var ErrNotFound = errors.New("asset not found")

// Asset is an open file under the asset root. The caller must Close it.
type Asset struct {
	*os.File

	// Name is the slash-separated path relative to the root.
	Name        string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Resolver maps URL paths onto an asset root directory.
type Resolver struct {
	root string
}

// NewResolver returns a resolver for the directory root. The directory is
// not required to exist yet; lookups simply fail until it does.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Root returns the asset root directory.
func (r *Resolver) Root() string { return r.root }

// Name maps a URL path to a slash-separated name relative to the root.
// "/" and "/index.html" map to IndexName; any other path maps to itself
// without the leading slash.
func Name(urlPath string) (string, error) {
	if urlPath == "" || urlPath == "/" || urlPath == "/"+IndexName {
		return IndexName, nil
	}
	if !strings.HasPrefix(urlPath, "/") {
		return "", fmt.Errorf("%w: %q is not absolute", ErrNotFound, urlPath)
	}
	if strings.ContainsAny(urlPath, "\\\x00") {
		return "", fmt.Errorf("%w: %q contains a forbidden character", ErrNotFound, urlPath)
	}
	for _, seg := range strings.Split(urlPath[1:], "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q escapes the asset root", ErrNotFound, urlPath)
		}
	}
	name := path.Clean(urlPath[1:])
	if name == "." {
		return IndexName, nil
	}
	return name, nil
}

// Open resolves urlPath and opens the file it names. Directories are not
// servable. Any failure wraps ErrNotFound.
func (r *Resolver) Open(urlPath string) (*Asset, error) {
	name, err := Name(urlPath)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenInRoot(r.root, filepath.FromSlash(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: stat %s: %w", ErrNotFound, name, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, name)
	}

	return &Asset{
		File:        f,
		Name:        name,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: ContentType(name),
	}, nil
}
