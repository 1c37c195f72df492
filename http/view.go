package http

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"os"
)

//go:embed views/*.html
var embeddedViews embed.FS

// EmbeddedViews returns the templates compiled into the binary.
func EmbeddedViews() fs.FS {
	sub, err := fs.Sub(embeddedViews, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

// ViewEngine renders named templates from a file system.
type ViewEngine struct {
	fsys fs.FS
	ext  string
}

// NewViewEngine creates a ViewEngine over fsys.
// ext is the file extension (e.g. ".html").
func NewViewEngine(fsys fs.FS, ext string) *ViewEngine {
	return &ViewEngine{fsys: fsys, ext: ext}
}

// NewDirViewEngine creates a ViewEngine reading templates from dir.
func NewDirViewEngine(dir, ext string) *ViewEngine {
	return NewViewEngine(os.DirFS(dir), ext)
}

// View renders a template file with data and status 200.
//
//	engine.View(res.Raw(), "register", page)
func (ve *ViewEngine) View(w http.ResponseWriter, name string, data any) {
	ve.ViewStatus(w, http.StatusOK, name, data)
}

// ViewStatus renders a template with an explicit status code. The template
// is rendered fully before anything is written.
func (ve *ViewEngine) ViewStatus(w http.ResponseWriter, status int, name string, data any) {
	tmpl, err := template.ParseFS(ve.fsys, name+ve.ext)
	if err != nil {
		http.Error(w, "Template not found: "+name, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		http.Error(w, "Template render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
