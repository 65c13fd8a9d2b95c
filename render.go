package modalview

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/debianitram/modalview/csrf"
	"github.com/debianitram/modalview/html"
	"github.com/debianitram/modalview/templates"
)

// Renderer turns a template set and data into markup. Views hold the
// interface rather than a concrete renderer so tests can swap in spies.
type Renderer interface {
	RenderString(r *http.Request, set RenderSet, data Data) (string, error)
}

// RenderSet names the template files to parse together and the defined
// template to execute. Files parse in order, so a later file may redefine
// blocks from an earlier one.
type RenderSet struct {
	Files []string
	Name  string
}

// RendererConfig contains the custom renderer configuration settings
type RendererConfig struct {
	// ViewPath is the directory searched before the embedded bundle.
	// Leave it empty to render from the bundle only.
	ViewPath string

	// FuncMap holds app template functions, merged over the stock helpers.
	FuncMap template.FuncMap
}

var defaultRendererConfig = RendererConfig{}

// TemplateRenderer caches parsed template sets and renders them to strings.
// Safe for concurrent use; views share one across requests.
type TemplateRenderer struct {
	config RendererConfig

	mu        sync.RWMutex
	templates map[string]*template.Template

	helpers template.FuncMap
}

// NewRenderer allows one to override the default configuration settings.
//	renderer := modalview.NewRenderer(&modalview.RendererConfig{
//		ViewPath: "views/modals",
//	})
func NewRenderer(c *RendererConfig) *TemplateRenderer {
	t := TemplateRenderer{config: *c} // copy the passed in pointer
	t.templates = make(map[string]*template.Template)
	return &t
}

// DefaultRenderer uses the default config settings
func DefaultRenderer() *TemplateRenderer {
	return NewRenderer(&defaultRendererConfig)
}

// AddHelpers sets the html.template functions for the renderer. This method
// should be called once to initialize the renderer with the set of common
// template helpers used throughout the app.
func (t *TemplateRenderer) AddHelpers(helpers template.FuncMap) {
	dup := make(template.FuncMap)
	for k, v := range helpers {
		dup[k] = v
	}
	t.helpers = dup
}

// AddHelper allows one to add an additional helper to the renderer. Use this
// when a single view needs a less common helper.
func (t *TemplateRenderer) AddHelper(name string, fn interface{}) {
	if t.helpers == nil {
		t.helpers = make(template.FuncMap)
	}
	t.helpers[name] = fn
}

// RenderString parses and caches the named set, then executes it with the
// passed data. The visitor's csrf token is injected under csrf_token_value
// right before execution so any modal markup can post back safely.
func (t *TemplateRenderer) RenderString(r *http.Request, set RenderSet, data Data) (string, error) {
	tmpl, err := t.lookup(set)
	if err != nil {
		return "", err
	}

	if data == nil {
		data = NewData()
	}
	data["csrf_token_value"] = csrf.Token(r)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, set.Name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %v", set.Name, err)
	}
	return buf.String(), nil
}

// Invalidate drops the parsed template cache so the next render reparses
// from disk or the bundle.
func (t *TemplateRenderer) Invalidate() {
	t.mu.Lock()
	t.templates = make(map[string]*template.Template)
	t.mu.Unlock()
}

func (t *TemplateRenderer) lookup(set RenderSet) (*template.Template, error) {
	key := strings.Join(set.Files, ",")

	t.mu.RLock()
	tmpl := t.templates[key]
	t.mu.RUnlock()
	if tmpl != nil {
		return tmpl, nil
	}

	tmpl, err := t.parse(set)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.templates[key] = tmpl
	t.mu.Unlock()
	return tmpl, nil
}

func (t *TemplateRenderer) parse(set RenderSet) (*template.Template, error) {
	tmpl := template.New(set.Name).Funcs(html.FuncMap())
	if t.config.FuncMap != nil {
		tmpl = tmpl.Funcs(t.config.FuncMap)
	}
	if t.helpers != nil {
		tmpl = tmpl.Funcs(t.helpers)
	}

	var err error
	for _, f := range set.Files {
		name := fileNameWithExt(f)
		if path := t.diskPath(name); path != "" {
			tmpl, err = tmpl.ParseFiles(path)
		} else {
			tmpl, err = tmpl.ParseFS(templates.FS, name)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %v", name, err)
		}
	}
	return tmpl, nil
}

// diskPath returns the on disk override for name, or "" when the bundled
// copy should be used.
func (t *TemplateRenderer) diskPath(name string) string {
	if t.config.ViewPath == "" {
		return ""
	}
	path := filepath.Join(t.config.ViewPath, name)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func fileNameWithExt(name string) string {
	var ext string
	if strings.Index(name, ".") > 0 {
		ext = ""
	} else {
		ext = ".html"
	}
	return fmt.Sprintf("%s%s", name, ext)
}
