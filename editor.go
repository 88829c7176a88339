package cked

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/cked/lib/jsenc"
)

// Method is the way an editor is attached to the page.
type Method int

const (
	// MethodReplace replaces one textarea, found by name or id.
	MethodReplace Method = iota
	// MethodReplaceAll replaces every textarea, optionally only those with
	// a class.
	MethodReplaceAll
	// MethodInline makes one element editable in place.
	MethodInline
	// MethodInlineAll makes every contenteditable element editable in place.
	MethodInlineAll
	// MethodInsert writes a textarea and replaces it (or inlines it).
	MethodInsert
)

var methodNames = [...]string{
	MethodReplace:    "replace",
	MethodReplaceAll: "replaceAll",
	MethodInline:     "inline",
	MethodInlineAll:  "inlineAll",
	MethodInsert:     "insert",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod returns the Method named s, ignoring case.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if strings.EqualFold(name, s) {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Editor is one editor placement. It renders the script (and for Insert the
// textarea) that creates the editor in the browser, and implements
// templ.Component so it can be used directly in templates:
//
//	@cked.Replace("body").BasePath("/ckeditor/").Config(cfg)
//
// Editors are built once and may be rendered many times. Rendering never
// modifies the editor, its configuration, or any scope configuration.
type Editor struct {
	method       Method
	name         string
	className    string
	value        string
	attrs        templ.Attributes
	inline       bool
	basePath     string
	timestamp    string
	config       *Config
	events       *EventTable
	globalEvents *EventTable
	scopes       []Source
	initialized  bool
	logger       *slog.Logger
}

// Replace creates an editor replacing the textarea with the given name or id.
func Replace(name string) *Editor {
	return &Editor{method: MethodReplace, name: name}
}

// ReplaceAll creates editors for every textarea. With a non-empty class
// only textareas having that class are replaced.
func ReplaceAll(class string) *Editor {
	return &Editor{method: MethodReplaceAll, className: class}
}

// Inline creates an inline editor on the element with the given id.
func Inline(name string) *Editor {
	return &Editor{method: MethodInline, name: name}
}

// InlineAll creates inline editors on every contenteditable element.
func InlineAll() *Editor {
	return &Editor{method: MethodInlineAll}
}

// Insert writes a textarea named name holding value, and creates an editor
// on it. Call AsInline to create an inline editor instead.
func Insert(name, value string) *Editor {
	return &Editor{method: MethodInsert, name: name, value: value}
}

// New creates an editor for any method. name is the element name for
// Replace, Inline and Insert and the class for ReplaceAll.
func New(method Method, name string) (*Editor, error) {
	switch method {
	case MethodReplace:
		return Replace(name), nil
	case MethodReplaceAll:
		return ReplaceAll(name), nil
	case MethodInline:
		return Inline(name), nil
	case MethodInlineAll:
		return InlineAll(), nil
	case MethodInsert:
		return Insert(name, ""), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
}

// BasePath sets the URL of the editor installation. Absolute paths also set
// window.CKEDITOR_BASEPATH. Without a base path the library is assumed to
// be loaded elsewhere on the page.
func (e *Editor) BasePath(path string) *Editor {
	e.basePath = path
	return e
}

// Timestamp sets the cache-busting value appended to editor resource URLs.
func (e *Editor) Timestamp(ts string) *Editor {
	e.timestamp = ts
	return e
}

// Config sets the instance configuration. It is read, never modified.
func (e *Editor) Config(cfg *Config) *Editor {
	e.config = cfg
	return e
}

// Events sets handlers for events of this editor instance.
func (e *Editor) Events(events *EventTable) *Editor {
	e.events = events
	return e
}

// GlobalEvents sets handlers registered on the editor namespace for all
// instances. Each handler is written once per Page.
func (e *Editor) GlobalEvents(events *EventTable) *Editor {
	e.globalEvents = events
	return e
}

// Scopes sets where the global configuration is looked up, in order.
// Defaults to DefaultScopes.
func (e *Editor) Scopes(sources ...Source) *Editor {
	e.scopes = sources
	return e
}

// Value sets the initial textarea content for Insert.
func (e *Editor) Value(value string) *Editor {
	e.value = value
	return e
}

// Attrs sets textarea attributes for Insert.
func (e *Editor) Attrs(attrs templ.Attributes) *Editor {
	e.attrs = attrs
	return e
}

// AsInline makes Insert create an inline editor on its textarea.
func (e *Editor) AsInline() *Editor {
	e.inline = true
	return e
}

// Initialized skips loading the editor library, for pages that load it
// themselves.
func (e *Editor) Initialized() *Editor {
	e.initialized = true
	return e
}

// Logger sets the logger. Defaults to the logger in the render context.
func (e *Editor) Logger(logger *slog.Logger) *Editor {
	e.logger = logger
	return e
}

// Method returns the creation method.
func (e *Editor) Method() Method {
	return e.method
}

// Name returns the element name, or the class for ReplaceAll.
func (e *Editor) Name() string {
	if e.method == MethodReplaceAll {
		return e.className
	}
	return e.name
}

// Render implements templ.Component.
func (e *Editor) Render(ctx context.Context, w io.Writer) error {
	out, err := e.HTML(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// HTML returns the markup for the editor: the textarea for Insert, the
// library include when this is the first editor on the page to set a base
// path or timestamp, then one script element with global event
// registrations and the creation call.
func (e *Editor) HTML(ctx context.Context) (string, error) {
	switch e.method {
	case MethodReplace, MethodInline, MethodInsert:
		if e.name == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingName, e.method)
		}
	case MethodReplaceAll, MethodInlineAll:
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownMethod, int(e.method))
	}

	page := PageFrom(ctx)
	logger := e.log(ctx)

	var sb strings.Builder
	if e.method == MethodInsert {
		sb.WriteString(Textarea(e.name, e.value, e.attrs))
	}
	if init := e.initHTML(); init != "" && e.shouldInit(page) {
		sb.WriteString(init)
	}

	cfg := e.effectiveConfig(ctx, page, logger)

	var script strings.Builder
	script.WriteString(e.globalEvents.globalRegistrations(page))
	script.WriteString(e.call(page, cfg, logger))
	sb.WriteString(Script(script.String()))

	return sb.String(), nil
}

func (e *Editor) log(ctx context.Context) *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return LoggerFrom(ctx)
}

func (e *Editor) shouldInit(page *Page) bool {
	if e.initialized {
		return false
	}
	if page == nil {
		return true
	}
	return page.claimInit()
}

// initHTML loads the editor library and sets its base path and timestamp.
// Relative base paths are left for the library to resolve. An editor with
// neither writes nothing and leaves the page uninitialized for later editors.
func (e *Editor) initHTML() string {
	var sb strings.Builder
	if e.basePath != "" {
		path := AppendSlash(e.basePath)
		if !strings.HasPrefix(path, "..") && !strings.HasPrefix(path, "./") {
			sb.WriteString(Script("window.CKEDITOR_BASEPATH='" + quoteJS(path) + "';"))
		}
		query := ""
		if e.timestamp != "" {
			query = "?t=" + e.timestamp
		}
		sb.WriteString(IncludeScript(path, query))
	}
	if e.timestamp != "" {
		sb.WriteString(Script("CKEDITOR.timestamp='" + quoteJS(e.timestamp) + "';\n"))
	}
	return sb.String()
}

// effectiveConfig combines the instance configuration, page params, event
// handlers and the global configuration. Only clones are modified.
func (e *Editor) effectiveConfig(ctx context.Context, page *Page, logger *slog.Logger) *Config {
	instance := e.config.Clone()

	if page != nil {
		if params := page.Params(e.paramsName()); len(params) > 0 {
			if instance == nil {
				instance = NewConfig()
			}
			keys := make([]string, 0, len(params))
			for k := range params {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				instance.Set(k, jsenc.Text(params[k]))
			}
		}
	}

	if e.events != nil {
		instance = instance.WithEvents(e.events)
	}

	scopes := e.scopes
	if scopes == nil {
		scopes = DefaultScopes()
	}
	global, scope := LookupGlobal(ctx, scopes...)
	if global != nil {
		logger.Debug("cked: using global config", "scope", scope, "method", e.method.String(), "editor", e.Name())
	}

	return Resolve(global, instance)
}

func (e *Editor) paramsName() string {
	switch e.method {
	case MethodReplace, MethodInline, MethodInsert:
		return e.name
	}
	return ""
}

// literal encodes cfg. Values that cannot be encoded are logged and written
// as empty strings.
func (e *Editor) literal(cfg *Config, logger *slog.Logger) string {
	out, err := jsenc.Marshal(cfg.Value())
	if err != nil {
		logger.Warn("cked: degraded config value", "method", e.method.String(), "editor", e.Name(), "error", err)
		return cfg.Script()
	}
	return out
}

// call returns the creation call for the editor's method.
func (e *Editor) call(page *Page, cfg *Config, logger *slog.Logger) string {
	var sb strings.Builder
	configured := !cfg.IsEmpty()
	name := quoteJS(e.name)

	switch e.method {
	case MethodReplace:
		sb.WriteString("CKEDITOR.replace( '")
		sb.WriteString(name)
		if configured {
			sb.WriteString("', ")
			sb.WriteString(e.literal(cfg, logger))
			sb.WriteString(");\n")
		} else {
			sb.WriteString("' );\n")
		}

	case MethodInline:
		e.disableAutoInline(&sb, page)
		sb.WriteString("CKEDITOR.inline( '")
		sb.WriteString(name)
		if configured {
			sb.WriteString("', ")
			sb.WriteString(e.literal(cfg, logger))
			sb.WriteString(");")
		} else {
			sb.WriteString("' );")
		}

	case MethodInlineAll:
		sb.WriteString("CKEDITOR.inlineAll();\n")
		if configured {
			sb.WriteString("CKEDITOR.tools.extend( CKEDITOR.config,")
			sb.WriteString(e.literal(cfg, logger))
			sb.WriteString(", true);\n")
		}

	case MethodReplaceAll:
		class := quoteJS(e.className)
		switch {
		case !configured && e.className == "":
			sb.WriteString("CKEDITOR.replaceAll();\n")
		case !configured:
			sb.WriteString("CKEDITOR.replaceAll( '")
			sb.WriteString(class)
			sb.WriteString("' );\n")
		default:
			sb.WriteString("CKEDITOR.replaceAll( function(textarea, config) {\n")
			if e.className != "" {
				sb.WriteString("\tvar classRegex = new RegExp('(?:^| )' + '")
				sb.WriteString(class)
				sb.WriteString("' + '(?:$| )');\n")
				sb.WriteString("\tif (!classRegex.test(textarea.className))\n")
				sb.WriteString("\t\treturn false;\n")
			}
			sb.WriteString("CKEDITOR.tools.extend( config,")
			sb.WriteString(e.literal(cfg, logger))
			sb.WriteString(", true);} );\n")
		}

	case MethodInsert:
		if e.inline {
			e.disableAutoInline(&sb, page)
			sb.WriteString("CKEDITOR.inline( '")
		} else {
			sb.WriteString("CKEDITOR.replace( '")
		}
		sb.WriteString(name)
		if configured {
			sb.WriteString("', ")
			sb.WriteString(e.literal(cfg, logger))
			sb.WriteString(");\n")
		} else {
			sb.WriteString("');\n")
		}
	}

	return sb.String()
}

// disableAutoInline turns off automatic inline editing once per page, so
// only the editors created explicitly become inline.
func (e *Editor) disableAutoInline(sb *strings.Builder, page *Page) {
	if page == nil || page.claimDisableAutoInline() {
		sb.WriteString("CKEDITOR.disableAutoInline = true;\n")
	}
}
