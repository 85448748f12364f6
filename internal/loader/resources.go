package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// ResourceExt is appended to resource names that carry no extension.
const ResourceExt = ".json"

// Resources reads named JSON resources from a file tree.
// Layout: <dir>/<name>.json
type Resources struct {
	fsys fs.FS
}

// NewResources roots a resource set at dir on the local filesystem.
func NewResources(dir string) *Resources {
	return &Resources{fsys: os.DirFS(dir)}
}

// NewResourcesFS wraps an arbitrary file tree (embedded, in-memory).
func NewResourcesFS(fsys fs.FS) *Resources {
	return &Resources{fsys: fsys}
}

// Path returns the slash-separated path a resource name resolves to.
func (r *Resources) Path(name string) string {
	p := path.Clean(strings.TrimPrefix(strings.TrimSpace(name), "/"))
	if path.Ext(p) == "" {
		p += ResourceExt
	}
	return p
}

// Read returns the bytes of the named resource.
func (r *Resources) Read(name string) ([]byte, error) {
	if r == nil || r.fsys == nil {
		return nil, fmt.Errorf("read resource %q: %w", name, fs.ErrNotExist)
	}
	p := r.Path(name)
	if !fs.ValidPath(p) {
		return nil, fmt.Errorf("read resource %q: %w", name, fs.ErrInvalid)
	}
	data, err := fs.ReadFile(r.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read resource %q: %w", name, err)
	}
	return data, nil
}
