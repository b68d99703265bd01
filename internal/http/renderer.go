package httpx

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	// TemplateFS overrides the embedded templates (tests). Optional.
	TemplateFS fs.FS
	Logger     *slog.Logger
}

// NewTemplateRenderer constructs a renderer by parsing all embedded templates.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	fsys := cfg.TemplateFS
	if fsys == nil {
		var err error
		fsys, err = fs.Sub(templateFS, "templates")
		if err != nil {
			return nil, err
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
	t, err := template.New("").Funcs(funcs).ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// Render executes the named template into a buffer first so a template error
// never produces a half-written page.
func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, name string, data any) {
	if r.t.Lookup(name) == nil {
		r.renderError(w, errors.New("template not found: "+name))
		return
	}

	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		r.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Debug("write response failed", "error", err)
	}
}

func (r *TemplateRenderer) renderError(w http.ResponseWriter, err error) {
	r.logger.Error("template render failed", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
