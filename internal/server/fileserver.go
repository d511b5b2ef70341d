package server

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

var contentTypes = map[string]string{ //nolint:gochecknoglobals
	".html": "text/html; charset=UTF-8",
	".css":  "text/css; charset=UTF-8",
	".js":   "text/javascript; charset=UTF-8",
	".json": "application/json; charset=UTF-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

const defaultContentType = "application/octet-stream"

func contentTypeOf(name string) string {
	contentType, ok := contentTypes[strings.ToLower(path.Ext(name))]
	if !ok {
		return defaultContentType
	}
	return contentType
}

// assetServer serves the files of root. Unknown paths fall back to the
// root index.html, and a directory is served its own index.html.
type assetServer struct {
	root fs.FS
	// prefix is stripped from the request path before resolving it.
	prefix string
}

func (a *assetServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := strings.TrimPrefix(r.URL.Path, a.prefix)
	name, ok := resolveAssetName(urlPath)
	if !ok {
		writePlain(w, http.StatusForbidden, "Forbidden")
		return
	}

	info, err := fs.Stat(a.root, name)
	switch {
	case err != nil:
		name = "index.html"
	case info.IsDir():
		name = path.Join(name, "index.html")
	}

	a.sendFile(w, name)
}

// resolveAssetName returns the file system name of the URL path,
// and false if the path escapes the root directory.
func resolveAssetName(urlPath string) (name string, ok bool) {
	if urlPath == "" || urlPath == "/" {
		urlPath = "/index.html"
	}

	const root = "root"
	joined := path.Join(root, urlPath)
	switch {
	case joined == root:
		return ".", true
	case strings.HasPrefix(joined, root+"/"):
		return strings.TrimPrefix(joined, root+"/"), true
	default:
		return "", false
	}
}

func (a *assetServer) sendFile(w http.ResponseWriter, name string) {
	data, err := fs.ReadFile(a.root, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writePlain(w, http.StatusNotFound, "404 Not Found")
		} else {
			writePlain(w, http.StatusInternalServerError, "500 Internal Server Error")
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeOf(name))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writePlain(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
