package cked

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context, so editors in it share the request's Page:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    cked.Render(w, r, editPage(cked.Replace("body").BasePath("/ckeditor/")))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// Middleware attaches a fresh Page to every request that does not carry one
// yet, so editors rendered during the request load the library once.
//
//	http.Handle("/", cked.Middleware(mux))
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, WithPageRequest(r))
	})
}

// WithPageRequest returns r with a fresh Page in its context, or r itself
// when it already has one.
func WithPageRequest(r *http.Request) *http.Request {
	if PageFrom(r.Context()) != nil {
		return r
	}
	return r.WithContext(WithPage(r.Context(), NewPage()))
}

// Fragment renders several editors as one component, in order.
func Fragment(editors ...*Editor) templ.Component {
	components := make([]templ.Component, 0, len(editors))
	for _, e := range editors {
		if e != nil {
			components = append(components, e)
		}
	}
	return templ.Join(components...)
}
