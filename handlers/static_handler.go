package handlers

import (
	"net/http"
	"path"
	"strings"

	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// RouteNotFoundMessage is returned for any request no route or file answers.
const RouteNotFoundMessage = "Route not found"

// StaticHandler serves the landing page and its assets from a directory.
type StaticHandler struct {
	files static.ServeFileSystem
}

// NewStaticHandler serves files from dir. An empty dir disables file serving.
func NewStaticHandler(dir string) *StaticHandler {
	h := &StaticHandler{}
	if dir != "" {
		h.files = landingFileSystem{ServeFileSystem: static.LocalFile(dir, false)}
	}
	return h
}

// ServeFiles answers GET and HEAD requests with a matching file, index.html for
// directories, and otherwise passes the request on.
func (h *StaticHandler) ServeFiles() gin.HandlerFunc {
	if h.files == nil {
		return func(c *gin.Context) {}
	}
	serve := static.Serve("/", h.files)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			serve(c)
		}
	}
}

// NotFoundHandler writes the 404 envelope.
func (h *StaticHandler) NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, types.ErrorEnvelope(RouteNotFoundMessage))
}

// landingFileSystem keeps API paths and ".." segments away from the directory.
type landingFileSystem struct {
	static.ServeFileSystem
}

// Exists reports whether urlPath maps onto a servable file.
func (fs landingFileSystem) Exists(prefix string, urlPath string) bool {
	cleaned := path.Clean("/" + urlPath)
	if isAPIPath(cleaned) {
		return false
	}
	return fs.ServeFileSystem.Exists(prefix, cleaned)
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
