// Package ckedecho provides Echo framework integration for cked editors.
//
// Install the middleware on an Echo instance or group so every request gets
// its own page state:
//
//	e := echo.New()
//	ckedecho.Use(e, ckedecho.WithConfig(siteConfig))
//
//	e.GET("/edit", func(c echo.Context) error {
//	    return ckedecho.Render(c, editPage(cked.Replace("body").BasePath("/ckeditor/")))
//	})
package ckedecho

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/cked"
)

// Option configures the page state created for each request.
type Option func(*options)

type options struct {
	config  *cked.Config
	profile *cked.Profile
}

// WithConfig sets the page-scope global configuration of every request.
// The configuration is shared and never modified by rendering.
func WithConfig(cfg *cked.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithProfile preloads every page with the profile's params.
func WithProfile(p *cked.Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// Use installs Middleware on an Echo instance.
func Use(e *echo.Echo, opts ...Option) {
	e.Use(Middleware(opts...))
}

// UseGroup installs Middleware on an Echo group, so only the group's routes
// carry page state.
//
//	g := e.Group("/admin", authMiddleware)
//	ckedecho.UseGroup(g)
func UseGroup(g *echo.Group, opts ...Option) {
	g.Use(Middleware(opts...))
}

// Middleware attaches a fresh cked.Page to every request that does not
// carry one yet.
func Middleware(opts ...Option) echo.MiddlewareFunc {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			if cked.PageFrom(r.Context()) == nil {
				c.SetRequest(r.WithContext(cked.WithPage(r.Context(), o.newPage())))
			}
			return next(c)
		}
	}
}

func (o *options) newPage() *cked.Page {
	page := cked.NewPage()
	if o.profile != nil {
		page = o.profile.Page()
	}
	if o.config != nil {
		page.SetConfig(o.config)
	}
	return page
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return ckedecho.Render(c, cked.Replace("body"))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
