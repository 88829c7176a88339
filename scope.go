package cked

import (
	"context"

	"github.com/alexedwards/scs/v2"
)

// GlobalConfigKey is the session key under which PutSessionConfig stores
// the global configuration.
const GlobalConfigKey = "ckeditor_global_config"

// Source provides a global configuration from one scope (page, request,
// session, application). Editors ask their sources in order and use the
// first configuration found.
type Source interface {
	Name() string
	GlobalConfig(ctx context.Context) *Config
}

// SourceFunc adapts a function to Source.
type SourceFunc struct {
	ScopeName string
	Lookup    func(ctx context.Context) *Config
}

func (s SourceFunc) Name() string { return s.ScopeName }

func (s SourceFunc) GlobalConfig(ctx context.Context) *Config {
	if s.Lookup == nil {
		return nil
	}
	return s.Lookup(ctx)
}

// PageScope reads the configuration set with Page.SetConfig.
func PageScope() Source {
	return SourceFunc{ScopeName: "page", Lookup: func(ctx context.Context) *Config {
		if p := PageFrom(ctx); p != nil {
			return p.Config()
		}
		return nil
	}}
}

type requestConfigKey struct{}

// WithRequestConfig returns a context carrying a request-scope global
// configuration, read by RequestScope.
func WithRequestConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, requestConfigKey{}, cfg)
}

// RequestScope reads the configuration set with WithRequestConfig.
func RequestScope() Source {
	return SourceFunc{ScopeName: "request", Lookup: func(ctx context.Context) *Config {
		cfg, _ := ctx.Value(requestConfigKey{}).(*Config)
		return cfg
	}}
}

// ApplicationScope always returns cfg. The configuration is shared by every
// request and is never modified by rendering.
func ApplicationScope(cfg *Config) Source {
	return SourceFunc{ScopeName: "application", Lookup: func(context.Context) *Config {
		return cfg
	}}
}

// SessionScope reads a configuration stored with PutSessionConfig. The
// request must pass through sm.LoadAndSave. Tokens that fail verification
// are logged and ignored.
func SessionScope(sm *scs.SessionManager, enc *Encoder) Source {
	return SourceFunc{ScopeName: "session", Lookup: func(ctx context.Context) *Config {
		token := sm.GetString(ctx, GlobalConfigKey)
		if token == "" {
			return nil
		}
		cfg, err := DecodeConfig(enc, token, false)
		if err != nil {
			LoggerFrom(ctx).Warn("cked: ignoring stored global config", "scope", "session", "error", err)
			return nil
		}
		return cfg
	}}
}

// PutSessionConfig stores cfg as the session-scope global configuration.
func PutSessionConfig(ctx context.Context, sm *scs.SessionManager, enc *Encoder, cfg *Config) error {
	token, err := EncodeConfig(enc, cfg, false)
	if err != nil {
		return err
	}
	sm.Put(ctx, GlobalConfigKey, token)
	return nil
}

// RemoveSessionConfig deletes the session-scope global configuration.
func RemoveSessionConfig(ctx context.Context, sm *scs.SessionManager) {
	sm.Remove(ctx, GlobalConfigKey)
}

// DefaultScopes returns the sources editors use when none are set: the page
// first, then the request.
func DefaultScopes() []Source {
	return []Source{PageScope(), RequestScope()}
}

// LookupGlobal asks sources in order and returns the first configuration
// found with the name of its scope. It returns nil and "" when no scope has
// one.
func LookupGlobal(ctx context.Context, sources ...Source) (*Config, string) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		if cfg := src.GlobalConfig(ctx); cfg != nil {
			return cfg, src.Name()
		}
	}
	return nil, ""
}
