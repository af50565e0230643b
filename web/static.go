package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Embed static directory files
//
//go:embed all:static
var staticFiles embed.FS

// contentTypes maps the asset extensions the catalog ships. Anything
// else is served without a Content-Type header.
var contentTypes = map[string]string{
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".svg":  "image/svg+xml",
	".png":  "image/png",
}

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	// Get the static subdirectory from embedded files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	// Serve /favicon.ico as an inline SVG so no separate icon file is needed
	const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#4f46e5"/><path d="M150 380 C150 220 230 120 370 110 C360 240 290 330 190 345 L190 380 Z" fill="white" fill-opacity=".9"/><path d="M185 330 C230 250 290 190 350 150" stroke="#4f46e5" stroke-width="14" fill="none"/></svg>`

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	// Serve static files at /static/ path
	s.Get("/static/*", func(c rweb.Context) error {
		path := c.Request().Path()[8:] // strip the "/static/" prefix

		file, err := staticFS.Open(path)
		if err != nil {
			c.SetStatus(http.StatusNotFound)
			return nil
		}
		defer file.Close()

		stat, err := file.Stat()
		if err != nil {
			c.SetStatus(http.StatusInternalServerError)
			return nil
		}

		if stat.IsDir() {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		if ct, ok := contentTypes[filepath.Ext(path)]; ok {
			c.Response().SetHeader("Content-Type", ct)
		}

		// The css and js change between releases
		c.Response().SetHeader("Cache-Control", "public, max-age=3600")

		content, err := io.ReadAll(file)
		if err != nil {
			c.SetStatus(http.StatusInternalServerError)
			return nil
		}

		return c.Bytes(content)
	})
}
