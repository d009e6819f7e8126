package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	keplergl "github.com/flywave/go-keplergl"
)

type document struct {
	path    string
	doc     *keplergl.Document
	modTime time.Time
	err     error
}

func (d *document) isStale() (bool, error) {
	info, err := os.Stat(d.path)
	if err != nil {
		return true, err
	}
	return !info.ModTime().Equal(d.modTime), nil
}

// Cache keeps parsed documents and reloads a file once its
// modification time changes.
type Cache struct {
	mu   sync.Mutex
	docs map[string]*document
	log  *zap.Logger
}

func NewCache(log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		docs: make(map[string]*document),
		log:  log,
	}
}

func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path := range c.docs {
		delete(c.docs, path)
	}
}

func (c *Cache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, path)
}

// Update is the outcome of a Refresh. Err is the load or validation error
// of the current file content.
type Update struct {
	Path     string
	Doc      *keplergl.Document
	Err      error
	Time     time.Time
	Reloaded bool
}

// Document returns the document at path, loading it on first use and
// whenever the file changed since.
func (c *Cache) Document(path string) (*keplergl.Document, error) {
	u := c.Refresh(path)
	return u.Doc, u.Err
}

// Refresh reloads path if it changed and validates the result.
func (c *Cache) Refresh(path string) Update {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.docs[path]
	if ok {
		stale, err := d.isStale()
		if err != nil {
			delete(c.docs, path)
			return Update{Path: path, Err: err, Time: time.Now()}
		}
		if !stale {
			return Update{Path: path, Doc: d.doc, Err: d.err, Time: d.modTime}
		}
	}

	d, err := c.load(path)
	if err != nil {
		return Update{Path: path, Err: err, Time: time.Now()}
	}
	c.docs[path] = d
	return Update{Path: path, Doc: d.doc, Err: d.err, Time: d.modTime, Reloaded: true}
}

func (c *Cache) load(path string) (*document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	doc, err := keplergl.Load(path)
	if err != nil {
		return nil, err
	}
	c.log.Debug("loaded map config", zap.String("path", path), zap.Time("mtime", info.ModTime()))
	return &document{
		path:    path,
		doc:     doc,
		modTime: info.ModTime(),
		err:     keplergl.Validate(doc),
	}, nil
}

type FilesMissingError struct {
	Files []string
}

func (e *FilesMissingError) Error() string {
	return fmt.Sprintf("missing files: %v", e.Files)
}

// Preload loads all paths. Missing files are collected into a
// *FilesMissingError, any other load failure is returned as is. Documents
// that load but fail validation are cached without error, Refresh and
// Document report their problems.
func (c *Cache) Preload(paths ...string) error {
	var missing []string
	for _, p := range paths {
		u := c.Refresh(p)
		if u.Err == nil {
			continue
		}
		if errors.Is(u.Err, fs.ErrNotExist) {
			missing = append(missing, p)
			continue
		}
		if u.Doc == nil {
			return u.Err
		}
	}
	if len(missing) > 0 {
		return &FilesMissingError{missing}
	}
	return nil
}
