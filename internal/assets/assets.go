// Package assets serves the browser client from an in-memory cache.
// The fixed file list is loaded once at startup and answered cache-first;
// anything else falls through to the underlying file system.
package assets

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"
)

//go:embed static
var static embed.FS

// CacheName identifies the current asset set; it is also the name the
// service worker caches under.
const CacheName = "lane-shift-cache-v1"

// Files is the list of paths available offline.
var Files = []string{
	"/",
	"/index.html",
	"/style.css",
	"/game.js",
	"/manifest.json",
	"/service-worker.js",
}

// Static returns the embedded client files.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // embed path is fixed at compile time
	}
	return sub
}

type entry struct {
	body        []byte
	contentType string
	etag        string
}

// Cache holds pre-loaded assets. Safe for concurrent use after NewCache.
type Cache struct {
	name     string
	entries  map[string]entry
	fallback http.Handler
	modTime  time.Time
}

// NewCache loads every path in files from fsys. "/" and directory paths
// resolve to their index.html. A missing file is an error.
func NewCache(fsys fs.FS, name string, files []string) (*Cache, error) {
	c := &Cache{
		name:     name,
		entries:  make(map[string]entry, len(files)),
		fallback: http.FileServer(http.FS(fsys)),
		modTime:  time.Now(),
	}

	for _, p := range files {
		file := fsPath(p)
		body, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot load %s: %w", p, err)
		}

		sum := sha256.Sum256(body)
		ctype := mime.TypeByExtension(path.Ext(file))
		if ctype == "" {
			ctype = http.DetectContentType(body)
		}
		c.entries[p] = entry{
			body:        body,
			contentType: ctype,
			etag:        `"` + hex.EncodeToString(sum[:8]) + `"`,
		}
	}
	return c, nil
}

// fsPath maps a URL path to a file system path.
func fsPath(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" || strings.HasSuffix(p, "/") {
		return p + "index.html"
	}
	return p
}

// Name returns the cache name.
func (c *Cache) Name() string {
	return c.name
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Lookup returns a cached body.
func (c *Cache) Lookup(p string) ([]byte, bool) {
	e, ok := c.entries[p]
	return e.body, ok
}

// ServeHTTP answers from the cache, falling back to the file system.
func (c *Cache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	e, ok := c.entries[r.URL.Path]
	if !ok {
		w.Header().Set("X-Cache", "MISS")
		c.fallback.ServeHTTP(w, r)
		return
	}

	h := w.Header()
	h.Set("X-Cache", "HIT")
	h.Set("Content-Type", e.contentType)
	h.Set("ETag", e.etag)
	if strings.HasSuffix(r.URL.Path, "service-worker.js") {
		// The worker script itself is always revalidated
		h.Set("Cache-Control", "no-cache")
	} else {
		h.Set("Cache-Control", "public, max-age=3600")
	}

	http.ServeContent(w, r, path.Base(fsPath(r.URL.Path)), c.modTime, bytes.NewReader(e.body))
}
