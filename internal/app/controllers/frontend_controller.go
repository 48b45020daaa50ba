package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/marksportal/internal/middleware"
)

const indexFile = "index.html"

// FrontendController serves the single page frontend for every unmatched route
type FrontendController struct {
	publicDir string
}

// NewFrontendController creates a new FrontendController rooted at publicDir
func NewFrontendController(publicDir string) *FrontendController {
	return &FrontendController{
		publicDir: publicDir,
	}
}

// NoRoute serves the requested file when it exists, otherwise index.html.
// API paths and non-GET requests get a JSON 404.
func (c *FrontendController) NoRoute(ctx *gin.Context) {
	path := ctx.Request.URL.Path
	if (ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead) ||
		path == "/api" || strings.HasPrefix(path, "/api/") {
		middleware.AbortWithError(ctx, http.StatusNotFound, "Not found")
		return
	}

	if file, ok := c.resolve(path); ok {
		ctx.File(file)
		return
	}

	index := filepath.Join(c.publicDir, indexFile)
	if !isRegularFile(index) {
		middleware.AbortWithError(ctx, http.StatusNotFound, "Not found")
		return
	}
	ctx.File(index)
}

// resolve maps a URL path to a regular file inside the public directory
func (c *FrontendController) resolve(urlPath string) (string, bool) {
	// Clean against "/" first so ".." can never climb above the root
	rel := strings.TrimPrefix(filepath.Clean("/"+filepath.FromSlash(urlPath)), string(filepath.Separator))
	if rel == "" || rel == "." {
		return "", false
	}

	file := filepath.Join(c.publicDir, rel)
	if !isRegularFile(file) {
		return "", false
	}
	return file, true
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
