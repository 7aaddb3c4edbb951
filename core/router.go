package core

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	markdownExt     = ".md"
	htmlContentType = "text/html; charset=utf-8"
	textContentType = "text/plain; charset=utf-8"
)

// RenderRequest describes one request for a Markdown page. It lives for the
// duration of a single request.
type RenderRequest struct {
	// Path is the URL path as requested by the client.
	Path string
	// File is the target relative to the router root. Empty when the path is
	// not routed to the Markdown renderer.
	File string
	// Exists is true only when File names a regular file.
	Exists bool
	Suffix string
}

func (rr RenderRequest) Routed() bool {
	return rr.File != ""
}

// Response is the outcome of routing a request. Fallback responses carry no
// body: the request should be answered by the static file server instead.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
	File        string
	Fallback    bool
}

type Router struct {
	config   Config
	renderer *Renderer
	root     *os.Root
	dir      string
	static   http.Handler
}

// NewRouter confines all file access to config.Root. Paths and symlinks that
// escape it are treated as missing files.
func NewRouter(config Config, renderer *Renderer) (*Router, error) {
	dir := config.Root
	if dir == "" {
		dir = "."
	}
	if config.Index == "" {
		config.Index = DefaultIndex
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open root %s: %w", dir, err)
	}

	// Symlinks are resolved against the real, absolute root.
	abs, err := filepath.Abs(dir)
	if err == nil {
		abs, err = filepath.EvalSymlinks(abs)
	}
	if err != nil {
		root.Close()
		return nil, fmt.Errorf("resolve root %s: %w", dir, err)
	}

	r := &Router{
		config:   config,
		renderer: renderer,
		root:     root,
		dir:      abs,
	}
	r.static = http.FileServerFS(rootFS{FS: root.FS(), router: r})
	return r, nil
}

func (r *Router) Close() error {
	return r.root.Close()
}

// Inspect applies the routing rule to urlPath without reading or rendering
// anything. "/" maps to the index file, any path ending in .md maps to that
// file, everything else is left to the static server.
func (r *Router) Inspect(urlPath string) RenderRequest {
	req := RenderRequest{Path: urlPath}

	switch {
	case urlPath == "/":
		req.File = r.config.Index
	case strings.HasSuffix(urlPath, markdownExt):
		req.File = strings.TrimPrefix(urlPath, "/")
	default:
		return req
	}

	req.Suffix = fileSuffix(req.File)
	if info, err := r.stat(req.File); err == nil {
		req.Exists = info.Mode().IsRegular()
	}
	return req
}

// Resolve routes one request and, for Markdown targets, renders the page.
func (r *Router) Resolve(method, urlPath string) Response {
	if method != http.MethodGet && method != http.MethodHead {
		return textResponse(http.StatusNotImplemented, "Unsupported method ("+method+")")
	}

	req := r.Inspect(urlPath)
	if !req.Routed() {
		return Response{Fallback: true}
	}

	src, err := r.load(req)
	if err != nil {
		if IsNotFoundError(err) {
			return textResponse(http.StatusNotFound, "File Not Found")
		}
		return textResponse(http.StatusInternalServerError, "Read error: "+err.Error())
	}

	page, err := r.renderer.Page(src)
	if err != nil {
		return textResponse(http.StatusInternalServerError, "Render error: "+err.Error())
	}

	return Response{
		Status:      http.StatusOK,
		ContentType: htmlContentType,
		Body:        page,
		File:        req.File,
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	res := r.Resolve(req.Method, req.URL.Path)
	if res.Fallback {
		r.static.ServeHTTP(w, req)
		return
	}

	if r.config.DebugHeaders && res.File != "" {
		w.Header().Set("X-Preview-File", res.File)
	}
	if res.Status == http.StatusOK {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("X-Content-Type-Options", "nosniff")
	}
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Body)))
	w.WriteHeader(res.Status)

	if req.Method != http.MethodHead {
		w.Write(res.Body)
	}
}

func (r *Router) load(req RenderRequest) ([]byte, error) {
	if !req.Exists {
		return nil, fmt.Errorf("%s: %w", req.File, ErrNotFound)
	}
	if req.Suffix != markdownExt {
		return nil, fmt.Errorf("%s: %w", req.File, ErrNotMarkdown)
	}

	f, err := r.open(req.File)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.File, ErrNotFound)
	}
	defer f.Close()

	return io.ReadAll(f)
}

// os.Root refuses symlinks with absolute targets even when they point back
// inside the root. stat and open retry those through the resolved path, as
// long as it stays under r.dir.
func (r *Router) stat(name string) (fs.FileInfo, error) {
	info, err := r.root.Stat(name)
	if err == nil {
		return info, nil
	}
	target, rerr := r.resolve(name)
	if rerr != nil {
		return nil, err
	}
	return os.Stat(target)
}

func (r *Router) open(name string) (*os.File, error) {
	f, err := r.root.Open(name)
	if err == nil {
		return f, nil
	}
	target, rerr := r.resolve(name)
	if rerr != nil {
		return nil, err
	}
	return os.Open(target)
}

// resolve follows every symlink in name and returns the real path, failing
// when it lies outside the root.
func (r *Router) resolve(name string) (string, error) {
	target, err := filepath.EvalSymlinks(filepath.Join(r.dir, filepath.FromSlash(name)))
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: outside %s: %w", name, r.dir, ErrNotFound)
	}
	return target, nil
}

// rootFS serves static files with the same symlink rule as the renderer.
type rootFS struct {
	fs.FS
	router *Router
}

func (f rootFS) Open(name string) (fs.File, error) {
	file, err := f.FS.Open(name)
	if err == nil || !fs.ValidPath(name) {
		return file, err
	}
	target, rerr := f.router.resolve(name)
	if rerr != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return os.Open(target)
}

// fileSuffix returns the extension of the last path element, ignoring a
// leading dot so that ".md" on its own has no suffix.
func fileSuffix(name string) string {
	base := path.Base(name)
	i := strings.LastIndex(base, ".")
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	return base[i:]
}

func textResponse(status int, msg string) Response {
	return Response{
		Status:      status,
		ContentType: textContentType,
		Body:        []byte(msg + "\n"),
	}
}
