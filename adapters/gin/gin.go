// Package ckedgin provides Gin framework integration for cked editors.
//
//	r := gin.New()
//	r.Use(ckedgin.Middleware(ckedgin.WithConfig(siteConfig)))
//
//	r.GET("/edit", func(c *gin.Context) {
//	    ckedgin.Render(c, http.StatusOK, editPage(cked.Replace("body")))
//	})
package ckedgin

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/pthm/cked"
)

// Option configures the page state created for each request.
type Option func(*options)

type options struct {
	config  *cked.Config
	profile *cked.Profile
}

// WithConfig sets the page-scope global configuration of every request.
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

// Middleware attaches a fresh cked.Page to every request that does not
// carry one yet.
func Middleware(opts ...Option) gin.HandlerFunc {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return func(c *gin.Context) {
		if cked.PageFrom(c.Request.Context()) == nil {
			page := cked.NewPage()
			if o.profile != nil {
				page = o.profile.Page()
			}
			if o.config != nil {
				page.SetConfig(o.config)
			}
			c.Request = c.Request.WithContext(cked.WithPage(c.Request.Context(), page))
		}
		c.Next()
	}
}

// Render writes a templ component with the given status. A render error is
// recorded on the context and aborts the chain.
func Render(c *gin.Context, status int, component templ.Component) error {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
		c.Abort()
		return err
	}
	return nil
}
