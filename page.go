package cked

import (
	"context"
	"sync"
)

// ParamsWildcard is the Page params key that applies to every editor
// without params of its own.
const ParamsWildcard = "*"

// Page holds the state shared by all editors rendered into one page.
//
// It tracks what has already been written so the editor library is loaded
// once, auto-inline is disabled once and each global event handler is
// registered once. It also carries page-level options: a global
// configuration and per-editor params.
//
// Create one Page per response and attach it to the request context, either
// with WithPage or with an adapter middleware:
//
//	ctx := cked.WithPage(r.Context(), cked.NewPage())
//
// Without a Page every editor renders as if it were alone on the page.
type Page struct {
	mu                 sync.Mutex
	initialized        bool
	autoInlineDisabled bool
	globalEvents       map[string]map[string]struct{}
	config             *Config
	params             map[string]map[string]string
}

// NewPage returns empty page state.
func NewPage() *Page {
	return &Page{
		globalEvents: make(map[string]map[string]struct{}),
		params:       make(map[string]map[string]string),
	}
}

type pageKey struct{}

// WithPage returns a context carrying p.
func WithPage(ctx context.Context, p *Page) context.Context {
	return context.WithValue(ctx, pageKey{}, p)
}

// PageFrom returns the Page carried by ctx, or nil.
func PageFrom(ctx context.Context) *Page {
	p, _ := ctx.Value(pageKey{}).(*Page)
	return p
}

// SetConfig sets the page-scope global configuration.
func (p *Page) SetConfig(cfg *Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config = cfg
}

// Config returns the page-scope global configuration, or nil.
func (p *Page) Config() *Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config
}

// SetParams sets string options for the editor with the given name.
// Use ParamsWildcard to target every editor without params of its own.
// Params override the editor's own options with the same keys.
func (p *Page) SetParams(editor string, params map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.params == nil {
		p.params = make(map[string]map[string]string)
	}
	cp := make(map[string]string, len(params))
	for k, v := range params {
		cp[k] = v
	}
	p.params[editor] = cp
}

// Params returns the params for editor, falling back to the wildcard entry.
func (p *Page) Params(editor string) map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if params, ok := p.params[editor]; ok && editor != "" {
		return params
	}
	return p.params[ParamsWildcard]
}

// MarkInitialized records that the editor library is already loaded, for
// pages that include it by other means.
func (p *Page) MarkInitialized() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initialized = true
}

// Initialized reports whether the editor library has been written.
func (p *Page) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// claimInit returns true the first time it is called.
func (p *Page) claimInit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return false
	}
	p.initialized = true
	return true
}

// claimDisableAutoInline returns true the first time it is called.
func (p *Page) claimDisableAutoInline() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.autoInlineDisabled {
		return false
	}
	p.autoInlineDisabled = true
	return true
}

// markGlobalEvent returns true if the handler was not yet registered.
func (p *Page) markGlobalEvent(event, code string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.globalEvents == nil {
		p.globalEvents = make(map[string]map[string]struct{})
	}
	set, ok := p.globalEvents[event]
	if !ok {
		set = make(map[string]struct{})
		p.globalEvents[event] = set
	}
	if _, seen := set[code]; seen {
		return false
	}
	set[code] = struct{}{}
	return true
}
